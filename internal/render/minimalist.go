package render

// minimalistTemplate is a single-column, ATS-friendly layout: no photo, no
// bars or tags, generous whitespace, content in plain reading order.
var minimalistTemplate = mustParse("minimalist", "Minimalist", minimalistHTML)

const minimalistHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>CV</title>
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body { background: #e5e7eb; font-family: {{fontStack .Theme.Fonts.Body}}; color: {{.Theme.Colors.Text}}; }
  h1, h2, h3 { font-family: {{fontStack .Theme.Fonts.Heading}}; }
  #cv-preview { width: 210mm; min-height: 297mm; margin: 0 auto; background: {{.Theme.Colors.Background}}; padding: 18mm 16mm; }
  .name { font-size: 30pt; font-weight: 300; letter-spacing: -0.5px; color: #111827; }
  .name strong { font-weight: 700; color: {{.Theme.Colors.Accent}}; }
  .headline { font-size: 11pt; text-transform: uppercase; letter-spacing: 3px; color: #6b7280; margin-top: 2mm; }
  .contact { margin-top: 5mm; font-size: 9pt; color: #4b5563; }
  .contact span + span::before { content: "  ·  "; color: #9ca3af; }
  section { margin-top: 9mm; }
  section > h2 { font-size: 9pt; font-weight: 700; text-transform: uppercase; letter-spacing: 3px; color: #9ca3af; margin-bottom: 4mm; }
  .entry { margin-bottom: 5mm; }
  .entry h3 { font-size: 11pt; font-weight: 600; color: #111827; }
  .entry .meta { font-size: 9pt; color: #6b7280; margin-top: 0.8mm; }
  .entry .org { color: {{.Theme.Colors.Primary}}; font-weight: 500; }
  .entry p { font-size: 9.5pt; color: #374151; line-height: 1.6; margin-top: 1.5mm; white-space: pre-line; }
  .entry ul { margin: 1.5mm 0 0 4.5mm; font-size: 9.5pt; color: #374151; }
  .summary p { font-size: 10.5pt; line-height: 1.7; color: #374151; }
  .plainlist { font-size: 9.5pt; color: #374151; line-height: 1.7; }
</style>
</head>
<body>
<div id="cv-preview">
  {{- $c := .Content}}
  {{- if .Has "personalInfo"}}
  <header>
    <h1 class="name">{{$c.PersonalInfo.FirstName}} <strong>{{$c.PersonalInfo.LastName}}</strong></h1>
    {{- with $c.PersonalInfo.Title}}<p class="headline">{{.}}</p>{{end}}
    {{- if hasContact $c.PersonalInfo}}
    <div class="contact">
      {{- with $c.PersonalInfo.Email}}<span>{{.}}</span>{{end}}
      {{- with $c.PersonalInfo.Phone}}<span>{{.}}</span>{{end}}
      {{- with locality $c.PersonalInfo}}<span>{{.}}</span>{{end}}
      {{- with $c.PersonalInfo.LinkedIn}}<span>{{.}}</span>{{end}}
      {{- with $c.PersonalInfo.Website}}<span>{{.}}</span>{{end}}
    </div>
    {{- end}}
  </header>
  {{- end}}
  {{- range .Sections}}
  {{- if eq . "summary"}}
  <section class="summary">
    <h2>Profile</h2>
    <p>{{$c.Summary}}</p>
  </section>
  {{- else if eq . "experiences"}}
  <section>
    <h2>Experience</h2>
    {{- range $c.Experiences}}
    <div class="entry">
      <h3>{{.Position}}</h3>
      <div class="meta"><span class="org">{{.Company}}</span>{{with .Location}} — {{.}}{{end}} | {{dateRange .StartDate .EndDate .Current}}</div>
      {{- with .Description}}<p>{{.}}</p>{{end}}
      {{- if .Highlights}}<ul>{{range .Highlights}}<li>{{.}}</li>{{end}}</ul>{{end}}
    </div>
    {{- end}}
  </section>
  {{- else if eq . "education"}}
  <section>
    <h2>Education</h2>
    {{- range $c.Education}}
    <div class="entry">
      <h3>{{.Degree}}</h3>
      <div class="meta"><span class="org">{{.Institution}}</span> | {{dateRange .StartDate .EndDate .Current}}</div>
      {{- with .Description}}<p>{{.}}</p>{{end}}
    </div>
    {{- end}}
  </section>
  {{- else if eq . "skills"}}
  <section>
    <h2>Skills</h2>
    <p class="plainlist">
      {{- range $i, $s := $c.Skills}}{{if $i}}, {{end}}{{$s.Name}}{{end -}}
    </p>
  </section>
  {{- else if eq . "languages"}}
  <section>
    <h2>Languages</h2>
    <p class="plainlist">
      {{- range $i, $l := $c.Languages}}{{if $i}}, {{end}}{{$l.Name}} ({{langLabel $l.Level}}){{end -}}
    </p>
  </section>
  {{- else if eq . "projects"}}
  <section>
    <h2>Projects</h2>
    {{- range $c.Projects}}
    <div class="entry">
      <h3>{{.Name}}</h3>
      {{- with .URL}}<div class="meta">{{.}}</div>{{end}}
      {{- with .Description}}<p>{{.}}</p>{{end}}
      {{- if .Technologies}}<div class="meta">{{joinComma .Technologies}}</div>{{end}}
    </div>
    {{- end}}
  </section>
  {{- else if eq . "interests"}}
  <section>
    <h2>Interests</h2>
    <p class="plainlist">{{joinComma $c.Interests}}</p>
  </section>
  {{- else if eq . "customSections"}}
  {{- range $c.CustomSections}}
  <section>
    <h2>{{.Title}}</h2>
    {{- with .Content}}<p class="plainlist">{{.}}</p>{{end}}
    {{- range .Items}}
    <div class="entry">
      <h3>{{.Title}}</h3>
      {{- with .Description}}<p>{{.}}</p>{{end}}
    </div>
    {{- end}}
  </section>
  {{- end}}
  {{- end}}
  {{- end}}
</div>
</body>
</html>
`
