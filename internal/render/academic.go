package render

// academicTemplate is a classic serif layout in the style of an academic CV:
// centered small-caps name, horizontal rules, no color blocks beyond the
// heading accents.
var academicTemplate = mustParse("academic", "Academic", academicHTML)

const academicHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>CV</title>
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body { background: #e5e7eb; font-family: Georgia, 'Times New Roman', serif; color: {{.Theme.Colors.Text}}; }
  #cv-preview { width: 210mm; min-height: 297mm; margin: 0 auto; background: {{.Theme.Colors.Background}}; padding: 16mm 18mm; }
  .name { font-size: 24pt; font-variant: small-caps; text-align: center; letter-spacing: 2px; color: #111827; }
  .headline { font-size: 11pt; text-align: center; font-style: italic; color: #4b5563; margin-top: 1.5mm; }
  .contact { text-align: center; font-size: 9pt; color: #4b5563; margin-top: 3mm; }
  .contact span + span::before { content: " · "; }
  hr.head { border: 0; border-top: 1.5px solid #111827; margin: 6mm 0; }
  section { margin-bottom: 7mm; }
  section > h2 { font-size: 11pt; font-variant: small-caps; letter-spacing: 1.5px; color: {{.Theme.Colors.Primary}};
      border-bottom: 1px solid #9ca3af; padding-bottom: 1mm; margin-bottom: 3.5mm; }
  .entry { margin-bottom: 4mm; }
  .entry .top { display: flex; justify-content: space-between; align-items: baseline; }
  .entry h3 { font-size: 10.5pt; font-weight: 700; }
  .entry .dates { font-size: 9pt; font-style: italic; color: #4b5563; }
  .entry .org { font-size: 10pt; font-style: italic; }
  .entry p { font-size: 9.5pt; line-height: 1.55; margin-top: 1.2mm; text-align: justify; white-space: pre-line; }
  .entry ul { margin: 1.2mm 0 0 5mm; font-size: 9.5pt; }
  .summary p { font-size: 10pt; line-height: 1.65; text-align: justify; }
  .plain { font-size: 9.5pt; line-height: 1.6; }
</style>
</head>
<body>
<div id="cv-preview">
  {{- $c := .Content}}
  {{- if .Has "personalInfo"}}
  <header>
    <h1 class="name">{{fullName $c.PersonalInfo}}</h1>
    {{- with $c.PersonalInfo.Title}}<p class="headline">{{.}}</p>{{end}}
    {{- if hasContact $c.PersonalInfo}}
    <div class="contact">
      {{- with $c.PersonalInfo.Address}}<span>{{.}}</span>{{end}}
      {{- with locality $c.PersonalInfo}}<span>{{.}}</span>{{end}}
      {{- with $c.PersonalInfo.Email}}<span>{{.}}</span>{{end}}
      {{- with $c.PersonalInfo.Phone}}<span>{{.}}</span>{{end}}
      {{- with $c.PersonalInfo.Website}}<span>{{.}}</span>{{end}}
    </div>
    {{- end}}
  </header>
  <hr class="head">
  {{- end}}
  {{- range .Sections}}
  {{- if eq . "summary"}}
  <section class="summary">
    <h2>Profile</h2>
    <p>{{$c.Summary}}</p>
  </section>
  {{- else if eq . "experiences"}}
  <section>
    <h2>Appointments &amp; Experience</h2>
    {{- range $c.Experiences}}
    <div class="entry">
      <div class="top"><h3>{{.Position}}</h3><span class="dates">{{dateRange .StartDate .EndDate .Current}}</span></div>
      <div class="org">{{.Company}}{{with .Location}}, {{.}}{{end}}</div>
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
      <div class="top"><h3>{{.Degree}}</h3><span class="dates">{{dateRange .StartDate .EndDate .Current}}</span></div>
      <div class="org">{{.Institution}}{{with .Location}}, {{.}}{{end}}</div>
      {{- with .GPA}}<p>GPA: {{.}}</p>{{end}}
      {{- with .Description}}<p>{{.}}</p>{{end}}
    </div>
    {{- end}}
  </section>
  {{- else if eq . "projects"}}
  <section>
    <h2>Selected Projects</h2>
    {{- range $c.Projects}}
    <div class="entry">
      <div class="top"><h3>{{.Name}}</h3>{{with dateRange .StartDate .EndDate false}}<span class="dates">{{.}}</span>{{end}}</div>
      {{- with .Description}}<p>{{.}}</p>{{end}}
      {{- with .URL}}<p class="plain">{{.}}</p>{{end}}
    </div>
    {{- end}}
  </section>
  {{- else if eq . "skills"}}
  <section>
    <h2>Skills</h2>
    <p class="plain">
      {{- range $i, $s := $c.Skills}}{{if $i}}; {{end}}{{$s.Name}}{{with $s.Category}} ({{.}}){{end}}{{end -}}
    </p>
  </section>
  {{- else if eq . "languages"}}
  <section>
    <h2>Languages</h2>
    <p class="plain">
      {{- range $i, $l := $c.Languages}}{{if $i}}; {{end}}{{$l.Name}}, {{langLabel $l.Level}}{{end -}}
    </p>
  </section>
  {{- else if eq . "interests"}}
  <section>
    <h2>Interests</h2>
    <p class="plain">{{joinComma $c.Interests}}</p>
  </section>
  {{- else if eq . "customSections"}}
  {{- range $c.CustomSections}}
  <section>
    <h2>{{.Title}}</h2>
    {{- with .Content}}<p class="plain">{{.}}</p>{{end}}
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
