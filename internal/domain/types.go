// Package domain contains the read-only schema object model the annotators consume.
// These types describe classes generated from an XML Schema, their properties,
// the originating schema particles and simple-type facets, and known enumerations.
package domain

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// AccessType selects which members of a generated class carry annotations.
type AccessType string

const (
	// AccessField annotates every declared field.
	AccessField AccessType = "field"
	// AccessProperty annotates fields reached through their getters.
	AccessProperty AccessType = "property"
	// AccessPublicMember annotates public fields and getters.
	AccessPublicMember AccessType = "public_member"
	// AccessNone annotates only explicitly bound fields.
	AccessNone AccessType = "none"
)

// Model is the complete object model of one compilation run.
type Model struct {
	Classes []Class `json:"classes"`
	Enums   []Enum  `json:"enums,omitempty"`
}

// Class is one generated class.
type Class struct {
	// Name is the bare schema type name.
	Name string `json:"name"`
	// ElementName is the local name of the top-level element the class models, if any.
	ElementName string `json:"elementName,omitempty"`
	// FullName is the fully-qualified name of the generated class.
	FullName      string     `json:"fullName"`
	Documentation *string    `json:"documentation,omitempty"`
	AccessType    AccessType `json:"accessType,omitempty"`
	Properties    []Property `json:"properties,omitempty"`
	Methods       []Method   `json:"methods,omitempty"`
}

// IsElement reports whether the class models a top-level schema element.
func (c *Class) IsElement() bool {
	return c.ElementName != ""
}

// Property returns the declared property with the given name.
func (c *Class) Property(name string) (*Property, bool) {
	for i := range c.Properties {
		if c.Properties[i].Name == name {
			return &c.Properties[i], true
		}
	}
	return nil, false
}

// Property is one field of a generated class.
type Property struct {
	Name string `json:"name"`
	// Type is the full name of the declared value type.
	Type       string `json:"type"`
	Collection bool   `json:"collection,omitempty"`
	// RefTypes lists the full names of the item types a collection references.
	RefTypes      []string  `json:"refTypes,omitempty"`
	Documentation *string   `json:"documentation,omitempty"`
	Required      bool      `json:"required,omitempty"`
	DefaultValue  *string   `json:"defaultValue,omitempty"`
	Public        bool      `json:"public,omitempty"`
	Bound         bool      `json:"bound,omitempty"`
	Particle      *Particle `json:"particle,omitempty"`
}

// Method is an accessor declared on a generated class.
type Method struct {
	Name         string  `json:"name"`
	Required     *bool   `json:"required,omitempty"`
	DefaultValue *string `json:"defaultValue,omitempty"`
}

// Particle is the schema construct carrying occurrence bounds for a property.
type Particle struct {
	MinOccurs *int64       `json:"minOccurs,omitempty"`
	MaxOccurs *Occurs      `json:"maxOccurs,omitempty"`
	Term      *ElementDecl `json:"term,omitempty"`
}

// ElementDecl is the element declaration a particle refers to.
type ElementDecl struct {
	Name       string      `json:"name,omitempty"`
	SimpleType *SimpleType `json:"simpleType,omitempty"`
}

// SimpleType is a simple schema type and its constraint facets.
type SimpleType struct {
	Name   string   `json:"name,omitempty"`
	Facets FacetSet `json:"facets"`
}

// FacetSet holds the lexical values of the facets declared on a simple type.
// A nil field means the facet is absent.
type FacetSet struct {
	Length       *string `json:"length,omitempty"`
	MinLength    *string `json:"minLength,omitempty"`
	MaxLength    *string `json:"maxLength,omitempty"`
	Pattern      *string `json:"pattern,omitempty"`
	MaxInclusive *string `json:"maxInclusive,omitempty"`
	MaxExclusive *string `json:"maxExclusive,omitempty"`
	MinInclusive *string `json:"minInclusive,omitempty"`
	MinExclusive *string `json:"minExclusive,omitempty"`
}

// Enum is a known enumeration keyed by the full name of its type.
type Enum struct {
	TypeName  string         `json:"typeName"`
	Constants []EnumConstant `json:"constants,omitempty"`
}

// EnumConstant is one constant of an enumeration.
type EnumConstant struct {
	// Value is the lexical value as written in the schema.
	Value string `json:"value"`
	// Name is the identifier-safe constant name. It is never emitted.
	Name          string  `json:"name,omitempty"`
	Documentation *string `json:"documentation,omitempty"`
}

// Unbounded is the maxOccurs sentinel.
const Unbounded = -1

// Occurs is a maxOccurs value: a non-negative count or Unbounded.
type Occurs int64

// IsUnbounded reports whether o is the unbounded sentinel.
func (o Occurs) IsUnbounded() bool {
	return o == Unbounded
}

// MarshalJSON writes unbounded as the schema keyword.
func (o Occurs) MarshalJSON() ([]byte, error) {
	if o.IsUnbounded() {
		return []byte(`"unbounded"`), nil
	}
	return []byte(strconv.FormatInt(int64(o), 10)), nil
}

// UnmarshalJSON accepts a number, a numeric string, or "unbounded".
func (o *Occurs) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if s, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(s)
	}
	if strings.EqualFold(raw, "unbounded") {
		*o = Unbounded
		return nil
	}

	var n int64
	if err := json.Unmarshal([]byte(raw), &n); err != nil {
		return errors.Errorf("invalid occurrence value %s", string(data))
	}
	if n < Unbounded {
		return errors.Errorf("invalid occurrence value %d", n)
	}
	*o = Occurs(n)
	return nil
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
