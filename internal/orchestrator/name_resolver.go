package orchestrator

import (
	"fmt"
	"strings"

	"github.com/griffnb/core-openapify/internal/domain"
	classparser "github.com/griffnb/core-openapify/internal/parser/class"
)

// definitionNames assigns every class the key it is stored under in generated
// documents. The schema name is used when unique; classes sharing a schema
// name fall back to their full-path name, and classes of one package sharing
// a schema name use their class name instead. A numeric suffix settles what
// remains.
func definitionNames(classes []*domain.Class) map[string]string {
	counts := make(map[string]int, len(classes))
	for _, c := range classes {
		counts[classparser.Name(c)]++
	}
	fullPathCounts := make(map[string]int)
	for _, c := range classes {
		if short := classparser.Name(c); counts[short] > 1 {
			fullPathCounts[makeFullPathDefName(c.FullName, short)]++
		}
	}

	names := make(map[string]string, len(classes))
	taken := make(map[string]bool, len(classes))
	for _, c := range classes {
		name := classparser.Name(c)
		if counts[name] > 1 {
			name = makeFullPathDefName(c.FullName, name)
			if fullPathCounts[name] > 1 {
				name = makeFullPathDefName(c.FullName, domain.SimpleName(c.FullName))
			}
		}
		names[c.FullName] = uniqueName(name, taken)
	}
	return names
}

func uniqueName(name string, taken map[string]bool) string {
	candidate := name
	for i := 2; taken[candidate]; i++ {
		candidate = fmt.Sprintf("%s_%d", name, i)
	}
	taken[candidate] = true
	return candidate
}

// makeFullPathDefName joins the sanitized package of fullName with name.
// "com.example.model.User", "user" -> "com_example_model.user"
func makeFullPathDefName(fullName, name string) string {
	lastDot := strings.LastIndex(fullName, ".")
	if lastDot == -1 {
		return name
	}
	pkgPath := fullName[:lastDot]

	sanitized := strings.Map(func(r rune) rune {
		if r == '\\' || r == '/' || r == '.' || r == '$' {
			return '_'
		}
		return r
	}, pkgPath)

	return sanitized + "." + name
}
