package render

import (
	"html/template"
	"strings"

	"github.com/mlefevre/cv-builder/internal/cv"
)

// templateFuncs returns the helper functions shared by every variant.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"dateRange":  dateRange,
		"joinComma":  joinComma,
		"fullName":   fullName,
		"locality":   locality,
		"skillPct":   skillPercent,
		"langLabel":  languageLabel,
		"photoURL":   photoURL,
		"fontStack":  fontStack,
		"hasContact": hasContact,
	}
}

// dateRange formats a start/end pair, substituting "Present" for open-ended
// entries.
func dateRange(start, end string, current bool) string {
	if current {
		end = "Present"
	}
	switch {
	case start == "" && end == "":
		return ""
	case start == "":
		return end
	case end == "":
		return start
	}
	return start + " - " + end
}

func joinComma(parts []string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ", ")
}

func fullName(pi cv.PersonalInfo) string {
	return strings.TrimSpace(strings.TrimSpace(pi.FirstName) + " " + strings.TrimSpace(pi.LastName))
}

// locality renders "City, Country" omitting whichever part is absent.
func locality(pi cv.PersonalInfo) string {
	return joinComma([]string{pi.City, pi.Country})
}

func hasContact(pi cv.PersonalInfo) bool {
	return pi.Email != "" || pi.Phone != "" || pi.City != "" || pi.Country != "" ||
		pi.LinkedIn != "" || pi.Website != "" || pi.GitHub != ""
}

// skillPercent maps a proficiency level onto a bar width.
func skillPercent(level cv.SkillLevel) int {
	switch level {
	case cv.SkillBeginner:
		return 25
	case cv.SkillIntermediate:
		return 50
	case cv.SkillAdvanced:
		return 75
	case cv.SkillExpert:
		return 100
	}
	return 50
}

// languageLabel expands a CEFR code into its display label.
func languageLabel(level cv.LanguageLevel) string {
	switch level {
	case "A1":
		return "A1 - Beginner"
	case "A2":
		return "A2 - Elementary"
	case "B1":
		return "B1 - Intermediate"
	case "B2":
		return "B2 - Upper intermediate"
	case "C1":
		return "C1 - Advanced"
	case "C2":
		return "C2 - Proficient"
	case "Native":
		return "Native"
	}
	return string(level)
}

// photoURL marks a photo data URL as safe. html/template otherwise filters
// data: URLs; photos are user-owned image data embedded at upload time.
func photoURL(src string) template.URL {
	return template.URL(src)
}

// fontStack builds a CSS font-family stack with a sans-serif fallback.
func fontStack(family string) template.CSS {
	quoted := family
	if strings.ContainsAny(family, " ") {
		quoted = `'` + family + `'`
	}
	return template.CSS(quoted + ", sans-serif")
}
