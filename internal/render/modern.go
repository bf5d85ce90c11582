package render

// modernTemplate is a two-column chronological layout: a bold header with an
// optional photo, a wide main column for the narrative sections and a narrow
// side column for skills and languages.
var modernTemplate = mustParse("modern", "Modern", modernHTML)

const modernHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>CV</title>
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body { background: #e5e7eb; font-family: {{fontStack .Theme.Fonts.Body}}; color: {{.Theme.Colors.Text}}; }
  h1, h2, h3 { font-family: {{fontStack .Theme.Fonts.Heading}}; }
  #cv-preview { width: 210mm; min-height: 297mm; margin: 0 auto; background: {{.Theme.Colors.Background}}; padding: 14mm; }
  .name { font-size: 34pt; font-weight: 700; color: {{.Theme.Colors.Primary}}; letter-spacing: -0.5px; }
  .rule { height: 4px; width: 26mm; background: {{.Theme.Colors.Primary}}; margin: 4mm 0; }
  .headline { font-size: 13pt; text-transform: uppercase; letter-spacing: 1px; color: #4b5563; }
  .photo { width: 32mm; height: 32mm; object-fit: cover; border-radius: 3mm; border: 2mm solid {{.Theme.Colors.Secondary}}22; }
  .contact { display: grid; grid-template-columns: 1fr 1fr; gap: 1.5mm 8mm; margin-top: 5mm; font-size: 9pt; color: #4b5563; }
  .contact span::before { content: "• "; color: {{.Theme.Colors.Primary}}; }
  header { display: flex; justify-content: space-between; align-items: flex-start; margin-bottom: 8mm; }
  section { margin-bottom: 7mm; }
  section > h2 { font-size: 11pt; text-transform: uppercase; letter-spacing: 2px; color: {{.Theme.Colors.Primary}};
      border-bottom: 2px solid {{.Theme.Colors.Primary}}; padding-bottom: 1.5mm; margin-bottom: 3.5mm; }
  .columns { display: grid; grid-template-columns: 2fr 1fr; gap: 9mm; }
  .entry { margin-bottom: 4.5mm; padding-left: 4.5mm; position: relative; }
  .entry::before { content: ""; position: absolute; left: 0; top: 2mm; width: 2mm; height: 2mm; border-radius: 50%; background: {{.Theme.Colors.Primary}}; }
  .entry h3 { font-size: 11.5pt; color: #111827; }
  .entry .meta { display: flex; justify-content: space-between; font-size: 9pt; margin-top: 0.8mm; }
  .entry .org { font-weight: 600; color: {{.Theme.Colors.Primary}}; }
  .entry .dates { color: #6b7280; font-size: 8pt; }
  .entry .where { color: #6b7280; font-size: 8pt; }
  .entry p { font-size: 9.5pt; color: #374151; line-height: 1.5; margin-top: 1.5mm; white-space: pre-line; }
  .entry ul { margin: 1.5mm 0 0 4.5mm; font-size: 9.5pt; color: #374151; }
  .skill { margin-bottom: 2.5mm; font-size: 9.5pt; }
  .skill .bar { height: 1.6mm; background: #e5e7eb; border-radius: 1mm; margin-top: 1mm; }
  .skill .fill { height: 100%; border-radius: 1mm; background: {{.Theme.Colors.Secondary}}; }
  .lang { display: flex; justify-content: space-between; font-size: 9.5pt; margin-bottom: 2mm; }
  .lang .level { color: #6b7280; font-size: 8.5pt; }
  .tags { display: flex; flex-wrap: wrap; gap: 1.5mm; }
  .tag { font-size: 8.5pt; padding: 1mm 2.5mm; border-radius: 3mm; background: {{.Theme.Colors.Primary}}18; color: {{.Theme.Colors.Primary}}; }
  .summary p { font-size: 10pt; line-height: 1.6; color: #374151; text-align: justify; }
</style>
</head>
<body>
<div id="cv-preview">
  {{- $c := .Content}}{{$t := .Theme}}
  {{- if .Has "personalInfo"}}
  <header>
    <div>
      <h1 class="name">{{fullName $c.PersonalInfo}}</h1>
      <div class="rule"></div>
      {{- if $c.PersonalInfo.Title}}<p class="headline">{{$c.PersonalInfo.Title}}</p>{{end}}
      {{- if hasContact $c.PersonalInfo}}
      <div class="contact">
        {{- with $c.PersonalInfo.Email}}<span>{{.}}</span>{{end}}
        {{- with $c.PersonalInfo.Phone}}<span>{{.}}</span>{{end}}
        {{- with locality $c.PersonalInfo}}<span>{{.}}</span>{{end}}
        {{- with $c.PersonalInfo.LinkedIn}}<span>{{.}}</span>{{end}}
        {{- with $c.PersonalInfo.Website}}<span>{{.}}</span>{{end}}
        {{- with $c.PersonalInfo.GitHub}}<span>{{.}}</span>{{end}}
      </div>
      {{- end}}
    </div>
    {{- with $c.PersonalInfo.Photo}}<img class="photo" src="{{photoURL .}}" alt="">{{end}}
  </header>
  {{- end}}
  {{- if .Has "summary"}}
  <section class="summary">
    <h2>Professional Profile</h2>
    <p>{{$c.Summary}}</p>
  </section>
  {{- end}}
  <div class="columns">
    <div class="main">
      {{- range .Sections}}
      {{- if eq . "experiences"}}
      <section>
        <h2>Experience</h2>
        {{- range $c.Experiences}}
        <div class="entry">
          <h3>{{.Position}}</h3>
          <div class="meta"><span class="org">{{.Company}}</span><span class="dates">{{dateRange .StartDate .EndDate .Current}}</span></div>
          {{- with .Location}}<div class="where">{{.}}</div>{{end}}
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
          <div class="meta"><span class="org">{{.Institution}}</span><span class="dates">{{dateRange .StartDate .EndDate .Current}}</span></div>
          {{- with .Description}}<p>{{.}}</p>{{end}}
          {{- with .GPA}}<div class="where">GPA: {{.}}</div>{{end}}
        </div>
        {{- end}}
      </section>
      {{- else if eq . "projects"}}
      <section>
        <h2>Projects</h2>
        {{- range $c.Projects}}
        <div class="entry">
          <h3>{{.Name}}</h3>
          {{- with dateRange .StartDate .EndDate false}}<div class="dates">{{.}}</div>{{end}}
          {{- with .Description}}<p>{{.}}</p>{{end}}
          {{- with .URL}}<div class="where">{{.}}</div>{{end}}
          {{- if .Technologies}}<div class="tags">{{range .Technologies}}<span class="tag">{{.}}</span>{{end}}</div>{{end}}
        </div>
        {{- end}}
      </section>
      {{- else if eq . "customSections"}}
      {{- range $c.CustomSections}}
      <section>
        <h2>{{.Title}}</h2>
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
    <div class="side">
      {{- range .Sections}}
      {{- if eq . "skills"}}
      <section>
        <h2>Skills</h2>
        {{- range $c.Skills}}
        <div class="skill">
          <span>{{.Name}}</span>
          <div class="bar"><div class="fill" style="width: {{skillPct .Level}}%"></div></div>
        </div>
        {{- end}}
      </section>
      {{- else if eq . "languages"}}
      <section>
        <h2>Languages</h2>
        {{- range $c.Languages}}
        <div class="lang"><span>{{.Name}}</span><span class="level">{{langLabel .Level}}</span></div>
        {{- end}}
      </section>
      {{- else if eq . "interests"}}
      <section>
        <h2>Interests</h2>
        <div class="tags">{{range $c.Interests}}<span class="tag">{{.}}</span>{{end}}</div>
      </section>
      {{- end}}
      {{- end}}
    </div>
  </div>
</div>
</body>
</html>
`
