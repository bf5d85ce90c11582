package render

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PlainText extracts the readable text of a rendered CV page, one block per
// line, for ATS-friendly text export. Headings are upper-cased to keep the
// section structure visible in plain text.
func PlainText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse rendered page: %w", err)
	}

	container := doc.Find("#" + PreviewContainerID)
	if container.Length() == 0 {
		return "", fmt.Errorf("rendered page has no #%s container", PreviewContainerID)
	}

	var lines []string
	container.Find("h1, h2, h3, p, li, .meta, .org, .dates, .contact span, .contact-item, .skill span, .lang span, .item span, .tag, .interest").
		Each(func(_ int, s *goquery.Selection) {
			text := strings.Join(strings.Fields(s.Text()), " ")
			if text == "" {
				return
			}
			if goquery.NodeName(s) == "h2" {
				text = strings.ToUpper(text)
			}
			lines = append(lines, text)
		})

	return strings.Join(lines, "\n") + "\n", nil
}
