package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/dynvec/internal/catalog"
)

const catalogRuleWidth = 40

// RenderAuthor renders one author and their books inside a panel.
func RenderAuthor(a *catalog.Author) string {
	var b strings.Builder
	b.WriteString(titleStyle().Render(a.Name))
	for i := 0; i < a.Books.Size(); i++ {
		book := a.Books.Get(i)
		b.WriteString("\n")
		b.WriteString(Subtle.Render(" - "))
		b.WriteString(book.Title)
		b.WriteString(Subtle.Render(fmt.Sprintf(" (%d pages)", book.Pages)))
	}
	b.WriteString("\n")
	b.WriteString(MetricLabel.Render("Total") + MetricValue.Render(fmt.Sprintf("%d pages", a.TotalPages())))
	return GlassPanel.Render(b.String())
}

// RenderCatalog stacks the author panels vertically with a rule between them.
func RenderCatalog(c *catalog.Catalog) string {
	panels := make([]string, 0, 2*c.Authors.Size())
	for i := 0; i < c.Authors.Size(); i++ {
		if i > 0 {
			panels = append(panels, Separator(catalogRuleWidth))
		}
		panels = append(panels, RenderAuthor(c.Authors.Get(i)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, panels...)
}
