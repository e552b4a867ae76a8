package report

// Document is a fully laid-out report: every span and rule carries its
// final page coordinates, so rendering is a straight walk with no layout
// decisions left. Compiling the same attempt twice yields identical
// documents.
type Document struct {
	Filename string
	Pages    []Page
}

// Page holds the placed primitives for one output page.
type Page struct {
	Spans []TextSpan
	Rules []RuleLine
	Fills []FillRect
}

// TextSpan is one line of text with its baseline position.
type TextSpan struct {
	X, Y float64
	Font Font
	Text string
}

// RuleLine is a horizontal separator.
type RuleLine struct {
	X1, Y1, X2, Y2 float64
}

// FillRect is a filled background rectangle, painted before any text on
// the page.
type FillRect struct {
	X, Y, W, H float64
}

// block is a unit of content that is never split across a page break. Span
// and rule positions are relative to the block top until pagination places
// the block.
type block struct {
	height float64
	spans  []TextSpan
	rules  []RuleLine
	fills  []FillRect
}

// blockBuilder accumulates lines into a block, tracking the running
// baseline offset.
type blockBuilder struct {
	b block
	y float64
}

// line appends one baseline-positioned line and advances the offset.
func (bb *blockBuilder) line(x float64, f Font, s string) {
	bb.y += lineHeight(f)
	bb.b.spans = append(bb.b.spans, TextSpan{X: x, Y: bb.y, Font: f, Text: s})
}

// wrapped appends s word-wrapped to the content width available right of x.
func (bb *blockBuilder) wrapped(x float64, f Font, s string) {
	for _, ln := range wrapText(s, maxChars(contentRight-x, f)) {
		bb.line(x, f, ln)
	}
}

// band records a background fill from top to the current offset plus pad.
// It does not advance the offset; text laid down in the same range paints
// over it.
func (bb *blockBuilder) band(top, pad float64) {
	bb.b.fills = append(bb.b.fills, FillRect{X: contentLeft, Y: top, W: contentWidth, H: bb.y - top + pad})
}

// rule appends a full-width separator at the current offset.
func (bb *blockBuilder) rule() {
	bb.y += 1.5
	bb.b.rules = append(bb.b.rules, RuleLine{X1: contentLeft, Y1: bb.y, X2: contentRight, Y2: bb.y})
	bb.y += 1.5
}

// gap inserts vertical space.
func (bb *blockBuilder) gap(mm float64) { bb.y += mm }

func (bb *blockBuilder) build() block {
	bb.b.height = bb.y
	return bb.b
}

// paginate places blocks top to bottom, starting a new page whenever the
// next block would cross into the footer area. A block taller than a full
// page is placed alone and allowed to overflow rather than dropped.
func paginate(blocks []block) []Page {
	pages := []Page{{}}
	cursor := contentTop
	for _, b := range blocks {
		if cursor+b.height > contentBottom && cursor > contentTop {
			pages = append(pages, Page{})
			cursor = contentTop
		}
		page := &pages[len(pages)-1]
		for _, s := range b.spans {
			s.Y += cursor
			page.Spans = append(page.Spans, s)
		}
		for _, r := range b.rules {
			r.Y1 += cursor
			r.Y2 += cursor
			page.Rules = append(page.Rules, r)
		}
		for _, f := range b.fills {
			f.Y += cursor
			page.Fills = append(page.Fills, f)
		}
		cursor += b.height
	}
	return pages
}
