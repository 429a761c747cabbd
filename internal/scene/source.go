// Package scene holds the pickable scene graph: event markers on the
// celestial shell and the correlation edges between them.
package scene

// Source identifies the survey or observatory an event came from.
type Source string

const (
	SourceGWOSC   Source = "GWOSC"
	SourceZTF     Source = "ZTF"
	SourceHEASARC Source = "HEASARC"
	SourceUnknown Source = "unknown"
)

// ParseSource maps a raw source string to a known Source. Anything
// unrecognized becomes SourceUnknown; unknown data is expected, not an
// error.
func ParseSource(s string) Source {
	switch s {
	case "GWOSC", "gwosc":
		return SourceGWOSC
	case "ZTF", "ztf":
		return SourceZTF
	case "HEASARC", "heasarc":
		return SourceHEASARC
	default:
		return SourceUnknown
	}
}

// Style is the base visual identity for a source category. Colors are
// terminal color values understood by lipgloss.
type Style struct {
	Color       string // base marker color
	BrightColor string // color when the selection channel is lit
	Glyph       rune   // baseline marker glyph
}

// sourceStyles is the exhaustive category table. SourceUnknown doubles
// as the fallback for anything not present.
var sourceStyles = map[Source]Style{
	SourceGWOSC:   {Color: "213", BrightColor: "219", Glyph: '✦'}, // pink
	SourceZTF:     {Color: "81", BrightColor: "123", Glyph: '✦'},  // cyan
	SourceHEASARC: {Color: "220", BrightColor: "229", Glyph: '✦'}, // amber
	SourceUnknown: {Color: "250", BrightColor: "255", Glyph: '·'}, // neutral gray
}

// StyleFor returns the style for a source, falling back to the neutral
// unknown style.
func StyleFor(s Source) Style {
	if st, ok := sourceStyles[s]; ok {
		return st
	}
	return sourceStyles[SourceUnknown]
}
