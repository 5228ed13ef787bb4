// Package collection resolves the array metadata and effective item type of a property.
package collection

import (
	"github.com/griffnb/core-openapify/internal/domain"
)

// Result describes a property as seen by the array annotations.
type Result struct {
	IsArray  bool
	MinItems *int64
	MaxItems *int64
	// EffectiveType is the type used for enum and facet lookups. It is empty
	// when Ambiguous is set.
	EffectiveType string
	// Ambiguous is set for collections referencing more than one item type.
	Ambiguous bool
}

// Resolve inspects prop. Occurrence bounds are read only for collections
// backed by a particle; minOccurs is reported even when it is zero.
func Resolve(prop *domain.Property) Result {
	var res Result
	if prop == nil {
		return res
	}

	res.IsArray = prop.Collection
	if res.IsArray && prop.Particle != nil {
		if maxOccurs := prop.Particle.MaxOccurs; maxOccurs != nil && !maxOccurs.IsUnbounded() {
			v := int64(*maxOccurs)
			res.MaxItems = &v
		}
		if minOccurs := prop.Particle.MinOccurs; minOccurs != nil {
			v := *minOccurs
			res.MinItems = &v
		}
	}

	res.EffectiveType, res.Ambiguous = effectiveType(prop)
	return res
}

func effectiveType(prop *domain.Property) (string, bool) {
	if !prop.Collection {
		return prop.Type, false
	}

	refs := distinct(prop.RefTypes)
	switch len(refs) {
	case 0:
		return prop.Type, false
	case 1:
		return refs[0], false
	default:
		return "", true
	}
}

func distinct(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
