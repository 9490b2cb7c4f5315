package element

import (
	"strings"

	"github.com/goliatone/go-formlayout/internal/ordered"
	"github.com/goliatone/go-formlayout/pkg/attrs"
)

// Button describes an action offered next to a table or a table row. It
// carries no behaviour of its own.
type Button struct {
	attrs.Bag[*Button]

	name   string
	label  string
	icon   string
	hidden bool
}

// NewButton creates a visible button identified by name.
func NewButton(name string) *Button {
	b := &Button{name: name}
	b.Bind(b)
	return b
}

func (b *Button) Name() string { return b.name }

func (b *Button) Label() string { return b.label }

func (b *Button) SetLabel(label string) { b.label = label }

// Icon returns the icon name or the sanitised icon markup.
func (b *Button) Icon() string { return b.icon }

// SetIcon stores an icon reference. Inline markup (anything starting with
// `<`) is restricted to a safe SVG subset; plain icon names pass unchanged.
func (b *Button) SetIcon(icon string) {
	trimmed := strings.TrimSpace(icon)
	if strings.HasPrefix(trimmed, "<") {
		b.icon = sanitizeIconMarkup(trimmed)
		return
	}
	b.icon = trimmed
}

func (b *Button) Show() { b.hidden = false }

func (b *Button) Hide() { b.hidden = true }

func (b *Button) IsHidden() bool { return b.hidden }

// ButtonSet keeps operations keyed by button name in insertion order.
type ButtonSet struct {
	buttons ordered.Map[*Button]
}

// Add registers button. A button with the same name is replaced in place.
func (s *ButtonSet) Add(button *Button) {
	if button == nil {
		return
	}
	s.buttons.Set(button.Name(), button)
}

// Remove drops the button registered under name.
func (s *ButtonSet) Remove(name string) {
	s.buttons.Delete(name)
}

// Get returns the button registered under name, hidden or not.
func (s *ButtonSet) Get(name string) (*Button, bool) {
	return s.buttons.Get(name)
}

// Has reports whether name is registered. Hidden buttons only count when
// includeHidden is set.
func (s *ButtonSet) Has(name string, includeHidden bool) bool {
	button, ok := s.buttons.Get(name)
	if !ok {
		return false
	}
	return includeHidden || !button.IsHidden()
}

// List returns the buttons in insertion order, skipping hidden ones unless
// includeHidden is set.
func (s *ButtonSet) List(includeHidden bool) []*Button {
	all := s.buttons.Values()
	if includeHidden {
		return all
	}
	visible := make([]*Button, 0, len(all))
	for _, button := range all {
		if !button.IsHidden() {
			visible = append(visible, button)
		}
	}
	return visible
}

// Set replaces every registered button.
func (s *ButtonSet) Set(buttons ...*Button) {
	s.buttons.Clear()
	for _, button := range buttons {
		s.Add(button)
	}
}

// Len returns the number of registered buttons, hidden ones included.
func (s *ButtonSet) Len() int {
	return s.buttons.Len()
}
