// Package facet normalizes the constraint facets of a simple schema type into
// schema annotation values and restriction text.
package facet

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/griffnb/core-openapify/internal/console"
	"github.com/griffnb/core-openapify/internal/domain"
	"github.com/griffnb/core-openapify/internal/model"
	"github.com/griffnb/core-openapify/internal/restriction"
)

const lengthFacet = "length"

// Extremum is a resolved minimum or maximum bound.
//
// Number is nil when Value is not a decimal literal; Diagnostic then explains
// why. The raw value still takes part in the restriction text.
type Extremum struct {
	Value      string
	Exclusive  bool
	Number     *decimal.Decimal
	Diagnostic string
}

// Valid reports whether the bound parsed as a decimal number.
func (e *Extremum) Valid() bool {
	return e != nil && e.Number != nil
}

// Result holds every structured value found on a simple type plus the
// restriction fragments in emission order.
type Result struct {
	MaxLength    *int64
	MinLength    *int64
	Maximum      *Extremum
	Minimum      *Extremum
	Pattern      *string
	Restrictions restriction.Buffer
}

// Resolve reads the facets of st. A nil simple type yields an empty result.
func Resolve(st *domain.SimpleType) Result {
	var res Result
	if st == nil {
		return res
	}

	resolveLength(st, &res)
	res.Maximum = resolveExtremum(st, true, &res.Restrictions)
	res.Minimum = resolveExtremum(st, false, &res.Restrictions)
	resolvePattern(st, &res)

	return res
}

// resolveLength lets an exact length override both independent length facets.
// An unparsable length counts as absent.
func resolveLength(st *domain.SimpleType, res *Result) {
	facets := st.Facets
	if length, ok := facetAsInteger(st, lengthFacet, facets.Length); ok {
		maxLength, minLength := length, length
		res.MaxLength = &maxLength
		res.MinLength = &minLength
	} else {
		if v, ok := facetAsInteger(st, model.FieldMaxLength, facets.MaxLength); ok {
			res.MaxLength = &v
		}
		if v, ok := facetAsInteger(st, model.FieldMinLength, facets.MinLength); ok {
			res.MinLength = &v
		}
	}

	if res.MaxLength != nil {
		res.Restrictions.Add(model.FieldMaxLength, *res.MaxLength)
	}
	if res.MinLength != nil {
		res.Restrictions.Add(model.FieldMinLength, *res.MinLength)
	}
}

// resolveExtremum prefers the exclusive facet and falls back to the inclusive one.
func resolveExtremum(st *domain.SimpleType, isMaximum bool, buf *restriction.Buffer) *Extremum {
	exclusive, inclusive := st.Facets.MinExclusive, st.Facets.MinInclusive
	valueField, flagField := model.FieldMinimum, model.FieldExclusiveMinimum
	if isMaximum {
		exclusive, inclusive = st.Facets.MaxExclusive, st.Facets.MaxInclusive
		valueField, flagField = model.FieldMaximum, model.FieldExclusiveMaximum
	}

	var ext *Extremum
	switch {
	case exclusive != nil:
		ext = &Extremum{Value: *exclusive, Exclusive: true}
	case inclusive != nil:
		ext = &Extremum{Value: *inclusive}
	default:
		return nil
	}

	if n, err := decimal.NewFromString(ext.Value); err == nil {
		ext.Number = &n
	} else {
		ext.Diagnostic = err.Error()
		console.Logger.Debug("Extremum: [%s] could not be set for simple type [%s], since it cannot be parsed as a decimal: %s",
			ext.Value, st.Name, ext.Diagnostic)
	}

	buf.Add(valueField, ext.Value)
	buf.Add(flagField, ext.Exclusive)

	return ext
}

func resolvePattern(st *domain.SimpleType, res *Result) {
	if st.Facets.Pattern == nil {
		return
	}
	pattern := *st.Facets.Pattern
	res.Pattern = &pattern
	res.Restrictions.Add(model.FieldPattern, pattern)
}

// facetAsInteger parses a length facet. Values outside the 32-bit range or not
// integers at all are reported and treated as absent.
func facetAsInteger(st *domain.SimpleType, facetName string, value *string) (int64, bool) {
	if value == nil {
		return 0, false
	}
	n, err := strconv.ParseInt(*value, 10, 32)
	if err != nil {
		console.Logger.Warn("Could not obtain facet : [%s]=[%s] as integer from simple type [%s]!", facetName, *value, st.Name)
		return 0, false
	}
	return n, true
}
