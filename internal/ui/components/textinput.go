package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/artemsultanov-dotcom/colreg-quiz/internal/ui/theme"
)

// FormField wraps bubbles/textinput as a labeled intake form field.
type FormField struct {
	Label   string
	Model   textinput.Model
	Invalid bool
}

// NewFormField creates a labeled text input.
func NewFormField(label, placeholder string, maxWidth int) FormField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}
	return FormField{
		Label: label,
		Model: ti,
	}
}

// Init returns the initial command.
func (f FormField) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (f FormField) Update(msg tea.Msg) (FormField, tea.Cmd) {
	var cmd tea.Cmd
	f.Model, cmd = f.Model.Update(msg)
	return f, cmd
}

// Focus moves keyboard focus to the field.
func (f *FormField) Focus() tea.Cmd {
	return f.Model.Focus()
}

// Blur removes keyboard focus from the field.
func (f *FormField) Blur() {
	f.Model.Blur()
}

// Focused reports whether the field has keyboard focus.
func (f FormField) Focused() bool {
	return f.Model.Focused()
}

// Value returns the current input value.
func (f FormField) Value() string {
	return f.Model.Value()
}

// MarkInvalid flags the field after a rejected submission. Typing any
// change clears the flag via Update callers calling ClearInvalid.
func (f *FormField) MarkInvalid() {
	f.Invalid = true
}

// ClearInvalid removes the invalid flag.
func (f *FormField) ClearInvalid() {
	f.Invalid = false
}

// View renders the labeled field.
func (f FormField) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if f.Focused() {
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}
	view := labelStyle.Render(f.Label) + "\n" + f.Model.View()
	if f.Invalid {
		view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("required")
	}
	return view
}
