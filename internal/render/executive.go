package render

// executiveTemplate is a formal layout with a dark centered header band and
// understated section rules, aimed at senior profiles.
var executiveTemplate = mustParse("executive", "Executive", executiveHTML)

const executiveHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>CV</title>
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body { background: #e5e7eb; font-family: {{fontStack .Theme.Fonts.Body}}; color: {{.Theme.Colors.Text}}; }
  #cv-preview { width: 210mm; min-height: 297mm; margin: 0 auto; background: {{.Theme.Colors.Background}}; }
  header { background: #111827; color: #f9fafb; text-align: center; padding: 12mm 14mm 10mm; }
  h1, h2, h3 { font-family: {{fontStack .Theme.Fonts.Heading}}; }
  .name { font-size: 28pt; font-weight: 700; letter-spacing: 1px; }
  .headline { font-size: 11pt; text-transform: uppercase; letter-spacing: 4px; color: {{.Theme.Colors.Secondary}}; margin-top: 3mm; }
  .contact { margin-top: 5mm; font-size: 8.5pt; color: #d1d5db; }
  .contact span + span::before { content: "  |  "; color: #6b7280; }
  .body { padding: 10mm 14mm; }
  section { margin-bottom: 8mm; }
  .sechead { display: flex; align-items: center; gap: 4mm; margin-bottom: 4mm; }
  .sechead h2 { font-size: 10pt; font-weight: 700; text-transform: uppercase; letter-spacing: 3px; color: {{.Theme.Colors.Primary}}; white-space: nowrap; }
  .sechead .line { flex: 1; height: 1px; background: #d1d5db; }
  .summary p { font-size: 10pt; font-style: italic; text-align: center; line-height: 1.7; color: #374151; padding: 0 8mm; }
  .entry { margin-bottom: 5mm; }
  .entry .top { display: flex; justify-content: space-between; align-items: baseline; }
  .entry h3 { font-size: 12pt; color: #111827; }
  .entry .dates { font-size: 8.5pt; color: #6b7280; }
  .entry .org { font-size: 10pt; font-weight: 600; color: {{.Theme.Colors.Primary}}; }
  .entry p { font-size: 9.5pt; color: #374151; line-height: 1.6; margin-top: 1.5mm; white-space: pre-line; }
  .entry ul { margin: 1.5mm 0 0 4.5mm; font-size: 9.5pt; color: #374151; }
  .pairs { display: grid; grid-template-columns: 1fr 1fr; gap: 1.5mm 10mm; font-size: 9.5pt; }
  .pairs .item { display: flex; justify-content: space-between; }
  .pairs .lv { color: #6b7280; font-size: 8.5pt; }
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
      {{- with $c.PersonalInfo.Email}}<span>{{.}}</span>{{end}}
      {{- with $c.PersonalInfo.Phone}}<span>{{.}}</span>{{end}}
      {{- with locality $c.PersonalInfo}}<span>{{.}}</span>{{end}}
      {{- with $c.PersonalInfo.LinkedIn}}<span>{{.}}</span>{{end}}
    </div>
    {{- end}}
  </header>
  {{- end}}
  <div class="body">
    {{- range .Sections}}
    {{- if eq . "summary"}}
    <section class="summary">
      <div class="sechead"><h2>Executive Summary</h2><div class="line"></div></div>
      <p>{{$c.Summary}}</p>
    </section>
    {{- else if eq . "experiences"}}
    <section>
      <div class="sechead"><h2>Professional Experience</h2><div class="line"></div></div>
      {{- range $c.Experiences}}
      <div class="entry">
        <div class="top"><h3>{{.Position}}</h3><span class="dates">{{dateRange .StartDate .EndDate .Current}}</span></div>
        <div class="org">{{.Company}}{{with .Location}} · {{.}}{{end}}</div>
        {{- with .Description}}<p>{{.}}</p>{{end}}
        {{- if .Highlights}}<ul>{{range .Highlights}}<li>{{.}}</li>{{end}}</ul>{{end}}
      </div>
      {{- end}}
    </section>
    {{- else if eq . "education"}}
    <section>
      <div class="sechead"><h2>Education</h2><div class="line"></div></div>
      {{- range $c.Education}}
      <div class="entry">
        <div class="top"><h3>{{.Degree}}</h3><span class="dates">{{dateRange .StartDate .EndDate .Current}}</span></div>
        <div class="org">{{.Institution}}</div>
        {{- with .Description}}<p>{{.}}</p>{{end}}
      </div>
      {{- end}}
    </section>
    {{- else if eq . "skills"}}
    <section>
      <div class="sechead"><h2>Core Competencies</h2><div class="line"></div></div>
      <div class="pairs">
        {{- range $c.Skills}}
        <div class="item"><span>{{.Name}}</span><span class="lv">{{.Level}}</span></div>
        {{- end}}
      </div>
    </section>
    {{- else if eq . "languages"}}
    <section>
      <div class="sechead"><h2>Languages</h2><div class="line"></div></div>
      <div class="pairs">
        {{- range $c.Languages}}
        <div class="item"><span>{{.Name}}</span><span class="lv">{{langLabel .Level}}</span></div>
        {{- end}}
      </div>
    </section>
    {{- else if eq . "projects"}}
    <section>
      <div class="sechead"><h2>Key Projects</h2><div class="line"></div></div>
      {{- range $c.Projects}}
      <div class="entry">
        <div class="top"><h3>{{.Name}}</h3>{{with dateRange .StartDate .EndDate false}}<span class="dates">{{.}}</span>{{end}}</div>
        {{- with .Description}}<p>{{.}}</p>{{end}}
      </div>
      {{- end}}
    </section>
    {{- else if eq . "interests"}}
    <section>
      <div class="sechead"><h2>Interests</h2><div class="line"></div></div>
      <p class="entry">{{joinComma $c.Interests}}</p>
    </section>
    {{- else if eq . "customSections"}}
    {{- range $c.CustomSections}}
    <section>
      <div class="sechead"><h2>{{.Title}}</h2><div class="line"></div></div>
      {{- with .Content}}<p class="entry">{{.}}</p>{{end}}
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
</div>
</body>
</html>
`
