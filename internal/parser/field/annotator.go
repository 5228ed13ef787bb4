// Package field builds the schema annotation of a single class property.
package field

import (
	"strings"

	"github.com/griffnb/core-openapify/internal/console"
	"github.com/griffnb/core-openapify/internal/domain"
	"github.com/griffnb/core-openapify/internal/model"
	"github.com/griffnb/core-openapify/internal/parser/collection"
	"github.com/griffnb/core-openapify/internal/parser/facet"
	"github.com/griffnb/core-openapify/internal/restriction"
)

// Service annotates properties against a shared enum lookup table.
type Service struct {
	config Config
	enums  domain.EnumLookup
}

// NewService creates a property annotator. enums may be nil when no
// enumerations are known.
func NewService(enums domain.EnumLookup, config Config) *Service {
	return &Service{
		config: config,
		enums:  enums,
	}
}

// AnnotateField builds the annotation of prop and attaches it to target.
// required and defaultValue are computed by the caller. It reports whether a
// new annotation was attached; a property that is already annotated is left
// untouched.
func (s *Service) AnnotateField(
	class *domain.Class,
	prop *domain.Property,
	target *model.AnnotatedClass,
	required bool,
	defaultValue *string,
) bool {
	if prop == nil || target == nil {
		return false
	}
	if target.HasProperty(prop.Name) {
		return false
	}

	ann := &model.AnnotationSet{
		Name:  prop.Name,
		Title: prop.Name,
	}
	var buf restriction.Buffer

	coll := collection.Resolve(prop)
	if coll.IsArray {
		ann.Type = model.TypeArray
		ann.MinItems = coll.MinItems
		ann.MaxItems = coll.MaxItems
	}

	if !coll.Ambiguous {
		enum := model.ResolveEnum(s.enums, coll.EffectiveType)
		if enum.Found() {
			ann.Enumeration = enum.Values
			buf.Append(enum.Restrictions)
		}
	} else {
		console.Logger.Debug("$Faint{%s.%s references several item types, skipping enum and facets}",
			className(class), prop.Name)
	}

	if required {
		ann.Required = true
	}
	if defaultValue != nil {
		v := *defaultValue
		ann.DefaultValue = &v
	}

	if st := simpleType(prop); st != nil && !coll.Ambiguous {
		applyFacets(ann, facet.Resolve(st), &buf)
	}

	ann.Description = s.description(prop.Documentation, buf)

	return target.AttachProperty(prop.Name, ann)
}

// AnnotateMethod annotates the property behind an accessor method. Methods
// without a matching declared field are skipped.
func (s *Service) AnnotateMethod(
	class *domain.Class,
	method *domain.Method,
	target *model.AnnotatedClass,
	required bool,
	defaultValue *string,
) bool {
	if method == nil {
		return false
	}
	prop, ok := FieldForAccessor(class, method.Name)
	if !ok {
		console.Logger.Debug("$Faint{no field found for accessor %s.%s}", className(class), method.Name)
		return false
	}
	return s.AnnotateField(class, prop, target, required, defaultValue)
}

func (s *Service) description(doc *string, buf restriction.Buffer) string {
	var desc string
	if doc != nil {
		desc = *doc
	}
	if !s.config.VerboseDescriptions || buf.Len() == 0 {
		return desc
	}
	rendered := buf.Render()
	if strings.TrimSpace(rendered) == "" {
		return desc
	}
	return desc + restrictionsHeading + rendered
}

func applyFacets(ann *model.AnnotationSet, res facet.Result, buf *restriction.Buffer) {
	ann.MaxLength = res.MaxLength
	ann.MinLength = res.MinLength
	ann.Pattern = res.Pattern

	if res.Maximum.Valid() {
		value, exclusive := res.Maximum.Value, res.Maximum.Exclusive
		ann.Maximum = &value
		ann.ExclusiveMaximum = &exclusive
	}
	if res.Minimum.Valid() {
		value, exclusive := res.Minimum.Value, res.Minimum.Exclusive
		ann.Minimum = &value
		ann.ExclusiveMinimum = &exclusive
	}

	buf.Append(res.Restrictions)
}

// simpleType returns the simple type of the element a property's particle
// refers to, or nil when the property is not backed by a simple-typed element.
func simpleType(prop *domain.Property) *domain.SimpleType {
	if prop.Particle == nil || prop.Particle.Term == nil {
		return nil
	}
	return prop.Particle.Term.SimpleType
}

func className(class *domain.Class) string {
	if class == nil {
		return ""
	}
	return class.FullName
}
