package loader

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const facetsKey = "facets"

// lexicalKeys name the mapping entries whose scalar values are kept exactly
// as written, whatever YAML would resolve them to.
var lexicalKeys = map[string]bool{
	"defaultValue": true,
	"value":        true,
}

// quoteLexicalScalars rewrites a YAML or JSON document so that its string
// scalars and every non-null scalar of a lexical entry are double quoted.
// The JSON conversion applied afterwards then cannot turn NO into false or
// 010 into 8.
func quoteLexicalScalars(data []byte) ([]byte, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrap(err, "failed to decode model document")
	}
	if root.Kind == 0 {
		return data, nil
	}

	quoteScalars(&root, false)

	out, err := yaml.Marshal(&root)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode model document")
	}
	return out, nil
}

func quoteScalars(n *yaml.Node, lexical bool) {
	switch n.Kind {
	case yaml.ScalarNode:
		tag := n.ShortTag()
		if tag == "!!str" || (lexical && tag != "!!null") {
			n.Tag = "!!str"
			n.Style = yaml.DoubleQuotedStyle
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, value := n.Content[i], n.Content[i+1]
			quoteScalars(key, false)
			quoteScalars(value, lexical || key.Value == facetsKey || lexicalKeys[key.Value])
		}
	case yaml.DocumentNode, yaml.SequenceNode:
		for _, c := range n.Content {
			quoteScalars(c, lexical)
		}
	}
}
