package schema

import (
	"sort"

	"github.com/go-openapi/spec"
	"github.com/pkg/errors"
)

const definitionsPrefix = "#/definitions/"

// RefSchema builds a reference schema.
func RefSchema(refType string) *spec.Schema {
	return spec.RefSchema(definitionsPrefix + refType)
}

// IsRefSchema determines whether a schema is a reference schema.
func IsRefSchema(schema *spec.Schema) bool {
	if schema == nil {
		return false
	}
	return schema.Ref.Ref.GetURL() != nil
}

// ResolveReferences checks that every $ref in definitions points to a
// definition of the same map.
func ResolveReferences(definitions spec.Definitions) error {
	var missing []string
	for name, s := range definitions {
		s := s
		walkRefs(&s, func(ref string) {
			target := getRefName(ref)
			if _, ok := definitions[target]; !ok {
				missing = append(missing, name+" -> "+ref)
			}
		})
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return errors.Errorf("unresolved references: %v", missing)
	}
	return nil
}

func walkRefs(s *spec.Schema, visit func(ref string)) {
	if s == nil {
		return
	}
	if IsRefSchema(s) {
		visit(s.Ref.String())
	}
	for k := range s.Properties {
		p := s.Properties[k]
		walkRefs(&p, visit)
	}
	if s.Items != nil {
		walkRefs(s.Items.Schema, visit)
	}
}

// getRefName extracts the definition name from a $ref string like "#/definitions/ModelName".
func getRefName(ref string) string {
	if len(ref) > len(definitionsPrefix) && ref[:len(definitionsPrefix)] == definitionsPrefix {
		return ref[len(definitionsPrefix):]
	}
	return ""
}
