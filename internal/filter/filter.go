package filter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iburimskiy/particle-header/internal/config"
)

var ErrNoControl = errors.New("no such filter control")

// Item is one content card. Category may carry several labels, e.g.
// "ml, systems".
type Item struct {
	Title    string `yaml:"title" csv:"title"`
	Category string `yaml:"category" csv:"category"`
	Summary  string `yaml:"summary" csv:"summary"`
	Visible  bool   `yaml:"-" csv:"-"`
}

// Control is a filter button. Active is a visual marker only.
type Control struct {
	Label  string
	Active bool
}

// Board is a set of filter controls over a list of items.
type Board struct {
	Controls []Control
	Items    []Item
}

// NewBoard returns a board with every item visible and no active control.
func NewBoard(labels []string, items []Item) *Board {
	b := &Board{
		Controls: make([]Control, len(labels)),
		Items:    make([]Item, len(items)),
	}
	for i, l := range labels {
		b.Controls[i] = Control{Label: l}
	}
	copy(b.Items, items)
	for i := range b.Items {
		b.Items[i].Visible = true
	}
	return b
}

// Matches reports whether an item with the given category is shown under
// label.
func Matches(label, category string) bool {
	if strings.EqualFold(label, config.WildcardFilter) {
		return true
	}
	return strings.Contains(strings.ToLower(category), strings.ToLower(label))
}

// Activate applies control i to the items and marks it as the only
// active control.
func (b *Board) Activate(i int) error {
	if i < 0 || i >= len(b.Controls) {
		return fmt.Errorf("%w: %d of %d", ErrNoControl, i, len(b.Controls))
	}
	label := b.Controls[i].Label
	for j := range b.Items {
		b.Items[j].Visible = Matches(label, b.Items[j].Category)
	}
	for j := range b.Controls {
		b.Controls[j].Active = j == i
	}
	return nil
}

// ActivateLabel activates the first control whose label equals label,
// ignoring case.
func (b *Board) ActivateLabel(label string) error {
	for i, c := range b.Controls {
		if strings.EqualFold(c.Label, label) {
			return b.Activate(i)
		}
	}
	return fmt.Errorf("%w: %q", ErrNoControl, label)
}

// ActiveLabel returns the label of the active control, or "" if none has
// been activated yet.
func (b *Board) ActiveLabel() string {
	for _, c := range b.Controls {
		if c.Active {
			return c.Label
		}
	}
	return ""
}

// Visible returns the shown items in order.
func (b *Board) Visible() []Item {
	var out []Item
	for _, it := range b.Items {
		if it.Visible {
			out = append(out, it)
		}
	}
	return out
}
