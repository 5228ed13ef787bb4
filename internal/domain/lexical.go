package domain

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// Model documents are often written in YAML, where facet values, defaults and
// enum values are easily left unquoted. The decoders below keep such scalars as
// their literal text instead of rejecting them. YAML input reaches them with
// those scalars already quoted by the loader.

// lexical returns the text of a JSON scalar. Strings are unquoted, numbers and
// booleans are kept as written. A null or missing value yields nil.
func lexical(raw json.RawMessage) (*string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return &s, nil
	}
	if raw[0] == '{' || raw[0] == '[' {
		return nil, errors.Errorf("expected a scalar, got %s", string(raw))
	}
	s := string(raw)
	return &s, nil
}

// UnmarshalJSON accepts facet values as strings, numbers or booleans.
func (f *FacetSet) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	targets := map[string]**string{
		"length":       &f.Length,
		"minLength":    &f.MinLength,
		"maxLength":    &f.MaxLength,
		"pattern":      &f.Pattern,
		"maxInclusive": &f.MaxInclusive,
		"maxExclusive": &f.MaxExclusive,
		"minInclusive": &f.MinInclusive,
		"minExclusive": &f.MinExclusive,
	}
	for key, dst := range targets {
		v, err := lexical(raw[key])
		if err != nil {
			return errors.Wrapf(err, "facet %s", key)
		}
		*dst = v
	}
	return nil
}

// UnmarshalJSON accepts a scalar default value.
func (p *Property) UnmarshalJSON(data []byte) error {
	type propertyAlias Property
	aux := struct {
		*propertyAlias
		DefaultValue json.RawMessage `json:"defaultValue,omitempty"`
	}{propertyAlias: (*propertyAlias)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	v, err := lexical(aux.DefaultValue)
	if err != nil {
		return errors.Wrapf(err, "property %s defaultValue", p.Name)
	}
	p.DefaultValue = v
	return nil
}

// UnmarshalJSON accepts a scalar default value.
func (m *Method) UnmarshalJSON(data []byte) error {
	type methodAlias Method
	aux := struct {
		*methodAlias
		DefaultValue json.RawMessage `json:"defaultValue,omitempty"`
	}{methodAlias: (*methodAlias)(m)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	v, err := lexical(aux.DefaultValue)
	if err != nil {
		return errors.Wrapf(err, "method %s defaultValue", m.Name)
	}
	m.DefaultValue = v
	return nil
}

// UnmarshalJSON accepts a scalar constant value.
func (c *EnumConstant) UnmarshalJSON(data []byte) error {
	type constantAlias EnumConstant
	aux := struct {
		*constantAlias
		Value json.RawMessage `json:"value"`
	}{constantAlias: (*constantAlias)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	v, err := lexical(aux.Value)
	if err != nil {
		return errors.Wrapf(err, "enum constant %s value", c.Name)
	}
	c.Value = ""
	if v != nil {
		c.Value = *v
	}
	return nil
}
