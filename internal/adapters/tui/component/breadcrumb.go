package component

import (
	"strings"

	"github.com/bloznelis/lgm/internal/adapters/tui/style"
)

// Breadcrumb shows the drill-down path, one segment per stack frame.
// The last segment is the level currently on screen.
type Breadcrumb struct {
	items []string
	width int
}

// NewBreadcrumb creates an empty breadcrumb.
func NewBreadcrumb() Breadcrumb {
	return Breadcrumb{}
}

// SetItems replaces the path segments.
func (b *Breadcrumb) SetItems(items []string) {
	b.items = items
}

// SetWidth sets the maximum rendered width.
func (b *Breadcrumb) SetWidth(width int) {
	b.width = width
}

// View renders the segments joined by " > ", last segment highlighted.
func (b Breadcrumb) View() string {
	if len(b.items) == 0 {
		return ""
	}

	items := b.items
	if b.width > 0 {
		// Truncate plain text before styling so ANSI sequences stay intact.
		budget := b.width/len(items) - 3
		if budget < 8 {
			budget = 8
		}
		items = make([]string, len(b.items))
		for i, item := range b.items {
			items[i] = style.Truncate(item, budget)
		}
	}

	sep := style.BreadcrumbStyle.Render(" > ")
	parts := make([]string, 0, len(items))
	for i, item := range items {
		if i == len(items)-1 {
			parts = append(parts, style.BreadcrumbActiveStyle.Render(item))
		} else {
			parts = append(parts, style.BreadcrumbStyle.Render(item))
		}
	}
	return strings.Join(parts, sep)
}
