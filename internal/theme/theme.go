// Package theme holds the static color palettes and font pairings templates
// render with. Lookups always succeed: an unknown key resolves to the first
// table entry so a stale or mistyped scheme can never break rendering.
package theme

// ColorScheme is one palette of the fixed color table.
type ColorScheme struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Text       string `json:"text"`
	Background string `json:"background"`
}

// FontPairing is one heading/body font combination.
type FontPairing struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// Theme is a resolved color scheme plus font pairing, the presentation input
// of every template.
type Theme struct {
	Colors ColorScheme
	Fonts  FontPairing
}

// ColorSchemes is the fixed palette table. The first entry is the default.
var ColorSchemes = []ColorScheme{
	{
		ID:         "purple-blue",
		Name:       "Purple & Blue",
		Primary:    "#8B5CF6",
		Secondary:  "#0EA5E9",
		Accent:     "#EC4899",
		Text:       "#1E293B",
		Background: "#FFFFFF",
	},
	{
		ID:         "blue-teal",
		Name:       "Blue & Teal",
		Primary:    "#3B82F6",
		Secondary:  "#14B8A6",
		Accent:     "#F59E0B",
		Text:       "#1E293B",
		Background: "#FFFFFF",
	},
	{
		ID:         "green-emerald",
		Name:       "Green & Emerald",
		Primary:    "#10B981",
		Secondary:  "#059669",
		Accent:     "#8B5CF6",
		Text:       "#1E293B",
		Background: "#FFFFFF",
	},
	{
		ID:         "slate-gray",
		Name:       "Slate & Gray",
		Primary:    "#475569",
		Secondary:  "#64748B",
		Accent:     "#0EA5E9",
		Text:       "#1E293B",
		Background: "#FFFFFF",
	},
	{
		ID:         "rose-pink",
		Name:       "Rose & Pink",
		Primary:    "#F43F5E",
		Secondary:  "#EC4899",
		Accent:     "#8B5CF6",
		Text:       "#1E293B",
		Background: "#FFFFFF",
	},
	{
		ID:         "orange-amber",
		Name:       "Orange & Amber",
		Primary:    "#F97316",
		Secondary:  "#F59E0B",
		Accent:     "#EF4444",
		Text:       "#1E293B",
		Background: "#FFFFFF",
	},
}

// FontPairings is the fixed font table. The first entry is the default.
var FontPairings = []FontPairing{
	{
		ID:      "inter-inter",
		Name:    "Modern (Inter)",
		Heading: "Inter",
		Body:    "Inter",
	},
	{
		ID:      "poppins-opensans",
		Name:    "Dynamic (Poppins + Open Sans)",
		Heading: "Poppins",
		Body:    "Open Sans",
	},
	{
		ID:      "playfair-lato",
		Name:    "Elegant (Playfair + Lato)",
		Heading: "Playfair Display",
		Body:    "Lato",
	},
	{
		ID:      "merriweather-opensans",
		Name:    "Classic (Merriweather + Open Sans)",
		Heading: "Merriweather",
		Body:    "Open Sans",
	},
	{
		ID:      "montserrat-roboto",
		Name:    "Professional (Montserrat + Roboto)",
		Heading: "Montserrat",
		Body:    "Roboto",
	},
}

// ResolveColorScheme returns the palette for id, or the default palette when
// id is unknown.
func ResolveColorScheme(id string) ColorScheme {
	for _, cs := range ColorSchemes {
		if cs.ID == id {
			return cs
		}
	}
	return ColorSchemes[0]
}

// ResolveFontPairing returns the font pairing for id, or the default pairing
// when id is unknown.
func ResolveFontPairing(id string) FontPairing {
	for _, fp := range FontPairings {
		if fp.ID == id {
			return fp
		}
	}
	return FontPairings[0]
}

// Resolve builds a Theme from presentation keys, falling back to defaults
// for anything unrecognized.
func Resolve(colorScheme, fontFamily string) Theme {
	return Theme{
		Colors: ResolveColorScheme(colorScheme),
		Fonts:  ResolveFontPairing(fontFamily),
	}
}
