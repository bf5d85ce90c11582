package render

// creativeTemplate is a sidebar-plus-main layout: a colored sidebar with the
// photo, contact details, skills and languages, and a main panel with the
// narrative sections.
var creativeTemplate = mustParse("creative", "Creative", creativeHTML)

const creativeHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>CV</title>
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body { background: #e5e7eb; font-family: {{fontStack .Theme.Fonts.Body}}; color: {{.Theme.Colors.Text}}; }
  h1, h2, h3 { font-family: {{fontStack .Theme.Fonts.Heading}}; }
  #cv-preview { width: 210mm; min-height: 297mm; margin: 0 auto; display: flex; background: {{.Theme.Colors.Background}}; }
  aside { width: 35%; background: linear-gradient(160deg, {{.Theme.Colors.Primary}}, {{.Theme.Colors.Secondary}}); color: #ffffff; padding: 10mm 7mm; }
  main { width: 65%; padding: 12mm 9mm; }
  .photo { width: 34mm; height: 34mm; border-radius: 50%; object-fit: cover; border: 1.2mm solid rgba(255,255,255,0.6); display: block; margin: 0 auto 6mm; }
  .monogram { width: 34mm; height: 34mm; border-radius: 50%; background: rgba(255,255,255,0.2); display: flex; align-items: center; justify-content: center;
      font-size: 20pt; font-weight: 700; margin: 0 auto 6mm; }
  aside h2 { font-size: 10pt; text-transform: uppercase; letter-spacing: 2px; border-bottom: 1px solid rgba(255,255,255,0.4); padding-bottom: 1.5mm; margin: 6mm 0 3mm; }
  .contact-item { font-size: 8.5pt; margin-bottom: 2mm; word-break: break-word; opacity: 0.95; }
  .skill { margin-bottom: 3mm; font-size: 9pt; }
  .skill .bar { height: 1.6mm; background: rgba(255,255,255,0.25); border-radius: 1mm; margin-top: 1mm; }
  .skill .fill { height: 100%; border-radius: 1mm; background: #ffffff; }
  .lang { display: flex; justify-content: space-between; font-size: 9pt; margin-bottom: 2mm; }
  .interest { display: inline-block; font-size: 8.5pt; background: rgba(255,255,255,0.18); border-radius: 3mm; padding: 1mm 2.5mm; margin: 0 1mm 1.5mm 0; }
  .name { font-size: 26pt; font-weight: 700; color: {{.Theme.Colors.Text}}; }
  .headline { font-size: 12pt; color: {{.Theme.Colors.Primary}}; font-weight: 600; margin-top: 1mm; }
  main section { margin-top: 7mm; }
  main section > h2 { font-size: 13pt; color: {{.Theme.Colors.Text}}; margin-bottom: 3mm; }
  main section > h2::after { content: ""; display: block; width: 14mm; height: 1.2mm; background: {{.Theme.Colors.Accent}}; margin-top: 1mm; border-radius: 1mm; }
  .entry { margin-bottom: 4.5mm; }
  .entry h3 { font-size: 11pt; }
  .entry .org { font-size: 9.5pt; font-weight: 600; color: {{.Theme.Colors.Primary}}; }
  .entry .dates { font-size: 8.5pt; color: #6b7280; }
  .entry p { font-size: 9.5pt; color: #374151; line-height: 1.5; margin-top: 1.2mm; white-space: pre-line; }
  .entry ul { margin: 1.2mm 0 0 4.5mm; font-size: 9.5pt; color: #374151; }
  .summary p { font-size: 10pt; line-height: 1.6; color: #374151; }
  .tag { font-size: 8.5pt; padding: 1mm 2.5mm; border-radius: 3mm; background: {{.Theme.Colors.Primary}}18; color: {{.Theme.Colors.Primary}}; margin-right: 1mm; }
</style>
</head>
<body>
<div id="cv-preview">
  {{- $c := .Content}}
  <aside>
    {{- if .Has "personalInfo"}}
    {{- with $c.PersonalInfo.Photo}}
    <img class="photo" src="{{photoURL .}}" alt="">
    {{- else}}
    <div class="monogram">{{printf "%.1s%.1s" $c.PersonalInfo.FirstName $c.PersonalInfo.LastName}}</div>
    {{- end}}
    {{- if hasContact $c.PersonalInfo}}
    <h2>Contact</h2>
    {{- with $c.PersonalInfo.Email}}<div class="contact-item">{{.}}</div>{{end}}
    {{- with $c.PersonalInfo.Phone}}<div class="contact-item">{{.}}</div>{{end}}
    {{- with $c.PersonalInfo.Address}}<div class="contact-item">{{.}}</div>{{end}}
    {{- with locality $c.PersonalInfo}}<div class="contact-item">{{.}}</div>{{end}}
    {{- with $c.PersonalInfo.LinkedIn}}<div class="contact-item">{{.}}</div>{{end}}
    {{- with $c.PersonalInfo.Website}}<div class="contact-item">{{.}}</div>{{end}}
    {{- with $c.PersonalInfo.GitHub}}<div class="contact-item">{{.}}</div>{{end}}
    {{- end}}
    {{- end}}
    {{- range .Sections}}
    {{- if eq . "skills"}}
    <h2>Skills</h2>
    {{- range $c.Skills}}
    <div class="skill">
      <span>{{.Name}}</span>
      <div class="bar"><div class="fill" style="width: {{skillPct .Level}}%"></div></div>
    </div>
    {{- end}}
    {{- else if eq . "languages"}}
    <h2>Languages</h2>
    {{- range $c.Languages}}
    <div class="lang"><span>{{.Name}}</span><span>{{.Level}}</span></div>
    {{- end}}
    {{- else if eq . "interests"}}
    <h2>Interests</h2>
    <div>{{range $c.Interests}}<span class="interest">{{.}}</span>{{end}}</div>
    {{- end}}
    {{- end}}
  </aside>
  <main>
    {{- if .Has "personalInfo"}}
    <h1 class="name">{{fullName $c.PersonalInfo}}</h1>
    {{- with $c.PersonalInfo.Title}}<p class="headline">{{.}}</p>{{end}}
    {{- end}}
    {{- range .Sections}}
    {{- if eq . "summary"}}
    <section class="summary">
      <h2>About Me</h2>
      <p>{{$c.Summary}}</p>
    </section>
    {{- else if eq . "experiences"}}
    <section>
      <h2>Experience</h2>
      {{- range $c.Experiences}}
      <div class="entry">
        <h3>{{.Position}}</h3>
        <div><span class="org">{{.Company}}</span> <span class="dates">{{dateRange .StartDate .EndDate .Current}}</span></div>
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
        <div><span class="org">{{.Institution}}</span> <span class="dates">{{dateRange .StartDate .EndDate .Current}}</span></div>
        {{- with .Description}}<p>{{.}}</p>{{end}}
      </div>
      {{- end}}
    </section>
    {{- else if eq . "projects"}}
    <section>
      <h2>Projects</h2>
      {{- range $c.Projects}}
      <div class="entry">
        <h3>{{.Name}}</h3>
        {{- with .Description}}<p>{{.}}</p>{{end}}
        {{- if .Technologies}}<div>{{range .Technologies}}<span class="tag">{{.}}</span>{{end}}</div>{{end}}
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
  </main>
</div>
</body>
</html>
`
