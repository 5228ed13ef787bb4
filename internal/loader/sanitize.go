package loader

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/griffnb/core-openapify/internal/domain"
)

var textPolicy = bluemonday.StrictPolicy()

// stripDocumentation reduces every documentation string of m to plain text.
func stripDocumentation(m *domain.Model) {
	for i := range m.Classes {
		c := &m.Classes[i]
		c.Documentation = stripText(c.Documentation)
		for j := range c.Properties {
			c.Properties[j].Documentation = stripText(c.Properties[j].Documentation)
		}
	}
	for i := range m.Enums {
		for j := range m.Enums[i].Constants {
			ec := &m.Enums[i].Constants[j]
			ec.Documentation = stripText(ec.Documentation)
		}
	}
}

func stripText(s *string) *string {
	if s == nil {
		return nil
	}
	text := strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(*s)))
	return &text
}
