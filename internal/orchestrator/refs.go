package orchestrator

import (
	"github.com/griffnb/core-openapify/internal/domain"
	"github.com/griffnb/core-openapify/internal/model"
	"github.com/griffnb/core-openapify/internal/parser/collection"
)

// linkProperties records the value type of every annotated property and, when
// that type is a modeled class, the definition it refers to.
func (s *Service) linkProperties(c *domain.Class, target *model.AnnotatedClass, names map[string]string) {
	for i := range c.Properties {
		p := &c.Properties[i]
		if !target.HasProperty(p.Name) {
			continue
		}

		res := collection.Resolve(p)
		link := model.PropertyLink{ValueType: res.EffectiveType}
		if _, ok := s.registry.LookupClass(res.EffectiveType); ok {
			link.Ref = names[res.EffectiveType]
		}
		target.SetLink(p.Name, link)
	}
}

// CollectReferencedDefinitions returns the definitions referenced by property
// links, mapped to the first "Class.property" that refers to each.
func CollectReferencedDefinitions(doc *model.Document) map[string]string {
	refs := make(map[string]string)
	if doc == nil {
		return refs
	}
	for _, c := range doc.Classes {
		for _, p := range c.Properties() {
			link, ok := c.Link(p.Name)
			if !ok || link.Ref == "" {
				continue
			}
			if _, seen := refs[link.Ref]; !seen {
				refs[link.Ref] = c.FullName + "." + p.Name
			}
		}
	}
	return refs
}
