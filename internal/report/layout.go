package report

import "strings"

// Page geometry in millimeters, A4 portrait.
const (
	pageWidth  = 210.0
	pageHeight = 297.0
	margin     = 20.0

	contentLeft  = margin
	contentRight = pageWidth - margin
	contentWidth = pageWidth - 2*margin
	contentTop   = margin

	footerHeight  = 12.0
	contentBottom = pageHeight - margin - footerHeight
)

// Font selects a Helvetica face for a span. Style is "" for regular, "B"
// for bold, "I" for italic.
type Font struct {
	Style string
	Size  float64
}

var (
	fontTitle    = Font{Style: "B", Size: 16}
	fontHeading  = Font{Style: "B", Size: 12}
	fontBody     = Font{Size: 11}
	fontBodyBold = Font{Style: "B", Size: 11}
	fontNote     = Font{Style: "I", Size: 10}
	fontFooter   = Font{Size: 9}
)

const (
	mmPerPoint = 0.3528
	// Average Helvetica character advance as a fraction of the point
	// size, in mm. Used for wrapping and right-alignment so the layout
	// is a pure function of the text.
	charWidthFactor = 0.176
	lineSpacing     = 1.45
)

func lineHeight(f Font) float64 {
	return f.Size * mmPerPoint * lineSpacing
}

func textWidth(s string, f Font) float64 {
	return float64(len([]rune(s))) * f.Size * charWidthFactor
}

// maxChars returns how many characters of the given font fit in width mm.
func maxChars(width float64, f Font) int {
	n := int(width / (f.Size * charWidthFactor))
	if n < 1 {
		n = 1
	}
	return n
}

// wrapText word-wraps s to at most limit characters per line. Words longer
// than the limit are split hard so a pathological token cannot overflow
// the content box.
func wrapText(s string, limit int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	var line strings.Builder
	flush := func() {
		if line.Len() > 0 {
			lines = append(lines, line.String())
			line.Reset()
		}
	}
	for _, word := range words {
		for len([]rune(word)) > limit {
			flush()
			r := []rune(word)
			lines = append(lines, string(r[:limit]))
			word = string(r[limit:])
		}
		width := len([]rune(word))
		if line.Len() > 0 {
			width += line.Len() + 1
		}
		if width > limit {
			flush()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	flush()
	return lines
}
