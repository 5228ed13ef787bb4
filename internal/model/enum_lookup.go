package model

import (
	"strings"

	"github.com/griffnb/core-openapify/internal/console"
	"github.com/griffnb/core-openapify/internal/domain"
	"github.com/griffnb/core-openapify/internal/restriction"
)

const enumLabel = "Enum"

// EnumResolution is the outcome of looking up an enumeration for a type.
type EnumResolution struct {
	// Enum is the matched enumeration, nil when the type is not a known enum.
	Enum *domain.Enum
	// Values are the lexical values in declaration order.
	Values []string
	// Restrictions holds the Enum bullet with one nested item per constant.
	Restrictions restriction.Buffer
}

// Found reports whether an enumeration with constants was matched.
func (r EnumResolution) Found() bool {
	return r.Enum != nil && len(r.Values) > 0
}

// ResolveEnum looks up typeName by exact match and extracts the lexical values
// of its constants. The restriction fragment is always built when constants
// exist; whether it is shown is decided by the caller.
func ResolveEnum(lookup domain.EnumLookup, typeName string) EnumResolution {
	var res EnumResolution
	if lookup == nil || typeName == "" {
		return res
	}

	enum, ok := lookup.LookupEnum(typeName)
	if !ok || enum == nil {
		return res
	}
	res.Enum = enum
	if len(enum.Constants) == 0 {
		console.Logger.Debug("$Faint{enum %s has no constants}", typeName)
		return res
	}

	items := make([]string, 0, len(enum.Constants))
	res.Values = make([]string, 0, len(enum.Constants))
	for _, c := range enum.Constants {
		res.Values = append(res.Values, c.Value)
		items = append(items, enumItem(c))
	}
	res.Restrictions.AddList(enumLabel, items)

	return res
}

func enumItem(c domain.EnumConstant) string {
	var sb strings.Builder
	sb.WriteString("**")
	sb.WriteString(c.Value)
	sb.WriteString("**")
	if c.Documentation != nil {
		sb.WriteString(" - ")
		sb.WriteString(*c.Documentation)
	}
	return sb.String()
}
