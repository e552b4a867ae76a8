package report

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/artemsultanov-dotcom/colreg-quiz/internal/exam"
	"github.com/artemsultanov-dotcom/colreg-quiz/internal/questiongen"
	"github.com/artemsultanov-dotcom/colreg-quiz/internal/scoring"
)

func sampleParams() Params {
	questions := make([]questiongen.Question, questiongen.SetSize)
	for i := range questions {
		questions[i] = questiongen.Question{
			Prompt: fmt.Sprintf("Question %d: two power-driven vessels are crossing so as to involve "+
				"risk of collision, with the other vessel on your starboard bow. What action is required?", i+1),
			Options:      []string{"Stand on", "Alter course to starboard", "Alter course to port", "Stop and assess"},
			CorrectIndex: 1,
			Explanation: "Rule 15: the vessel which has the other on her own starboard side shall keep out " +
				"of the way and avoid crossing ahead of the other vessel.",
		}
	}
	answers := []int{1, 1, 1, 1, 1, 0, 0, 2}
	return Params{
		Profile:     exam.Profile{Name: "Anna Marie Larsen", Rank: "Chief Mate", Vessel: "MV Baltic Star"},
		SessionID:   "3f1c9a2e",
		Reviews:     scoring.Review(questions, answers),
		Result:      scoring.Score(questions, answers),
		Expired:     true,
		GeneratedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Anna Larsen", "Anna_Larsen" + FilenameSuffix},
		{"  Anna   Marie\tLarsen ", "Anna_Marie_Larsen" + FilenameSuffix},
		{"Larsen", "Larsen" + FilenameSuffix},
	}
	for _, tt := range tests {
		if got := Filename(tt.name); got != tt.want {
			t.Errorf("Filename(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestCompileDeterministic(t *testing.T) {
	a := Compile(sampleParams())
	b := Compile(sampleParams())
	if !reflect.DeepEqual(a, b) {
		t.Error("compiling identical params produced different documents")
	}
}

func TestCompilePagination(t *testing.T) {
	doc := Compile(sampleParams())
	if len(doc.Pages) < 2 {
		t.Fatalf("pages = %d, want a full question review to span multiple pages", len(doc.Pages))
	}
	for i, page := range doc.Pages {
		if len(page.Spans) == 0 {
			t.Errorf("page %d is empty", i+1)
		}
		for _, s := range page.Spans {
			if s.Y > pageHeight-margin+1 {
				t.Errorf("page %d: span %q placed at y=%.1f, below the bottom margin", i+1, s.Text, s.Y)
			}
			if s.X < contentLeft-0.01 {
				t.Errorf("page %d: span %q placed at x=%.1f, left of the margin", i+1, s.Text, s.X)
			}
		}
	}
}

func TestCompileFooters(t *testing.T) {
	doc := Compile(sampleParams())
	total := len(doc.Pages)
	for i, page := range doc.Pages {
		want := fmt.Sprintf("Page %d of %d", i+1, total)
		found := false
		for _, s := range page.Spans {
			if s.Text == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("page %d: footer %q missing", i+1, want)
		}
	}
}

func TestCompileContent(t *testing.T) {
	p := sampleParams()
	doc := Compile(p)
	var all []string
	for _, page := range doc.Pages {
		for _, s := range page.Spans {
			all = append(all, s.Text)
		}
	}
	joined := strings.Join(all, "\n")
	for _, want := range []string{
		"Anna Marie Larsen",
		"Chief Mate",
		"MV Baltic Star",
		"Score: 5/10 (50%)",
		"Verdict: FAIL",
		"The attempt was closed when the time limit ran out.",
		"Question 1  -  CORRECT",
		"Question 10  -  INCORRECT",
		"Your answer: No Answer (time expired)",
		"Correct answer: Alter course to starboard",
		"14 Mar 2026 09:30 UTC",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("document missing %q", want)
		}
	}
	if got := doc.Filename; got != "Anna_Marie_Larsen"+FilenameSuffix {
		t.Errorf("Filename = %q", got)
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  []string
	}{
		{"", 10, nil},
		{"short", 10, []string{"short"}},
		{"one two three four", 9, []string{"one two", "three", "four"}},
		{"abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
	}
	for _, tt := range tests {
		if got := wrapText(tt.in, tt.limit); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("wrapText(%q, %d) = %v, want %v", tt.in, tt.limit, got, tt.want)
		}
	}
	for _, line := range wrapText("the stand-on vessel shall keep her course and speed", 12) {
		if len(line) > 12 {
			t.Errorf("line %q exceeds limit", line)
		}
	}
}

// captureRenderer records the render walk for assertions.
type captureRenderer struct {
	pages  int
	texts  []string
	lines  int
	rects  int
	output string
}

func (c *captureRenderer) AddPage()                    { c.pages++ }
func (c *captureRenderer) SetFont(string, float64)     {}
func (c *captureRenderer) Text(_, _ float64, s string) { c.texts = append(c.texts, s) }
func (c *captureRenderer) Line(_, _, _, _ float64)     { c.lines++ }
func (c *captureRenderer) Rect(_, _, _, _ float64)     { c.rects++ }
func (c *captureRenderer) Output(path string) error    { c.output = path; return nil }

func TestRenderWalk(t *testing.T) {
	doc := Compile(sampleParams())
	var c captureRenderer
	path, err := Save(doc, &c, "/tmp/reports")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if c.pages != len(doc.Pages) {
		t.Errorf("AddPage calls = %d, want %d", c.pages, len(doc.Pages))
	}
	wantPath := "/tmp/reports/" + doc.Filename
	if path != wantPath || c.output != wantPath {
		t.Errorf("path = %q, output = %q, want %q", path, c.output, wantPath)
	}
	if c.lines == 0 {
		t.Error("no rules rendered")
	}
	if c.rects != 1 {
		t.Errorf("Rect calls = %d, want the header band only", c.rects)
	}
}
