package loader

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/harrison/boostcfg/internal/diagnostic"
	"github.com/harrison/boostcfg/internal/params"
)

// YAMLLoader reads a top-level mapping. Scalars are taken verbatim, lists are
// comma joined and lists of lists keep their brackets:
//
//	metric: [auc, binary_logloss]          -> metric=auc,binary_logloss
//	interaction_constraints: [[0, 1], [2]] -> interaction_constraints=[[0,1],[2]]
type YAMLLoader struct{}

// Load implements Loader.
func (l *YAMLLoader) Load(r io.Reader, raw *params.RawSet, rep *diagnostic.Reporter) error {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil
	}

	root := resolveAlias(doc.Content[0])
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return nil
	}
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("expected a mapping at the top level, found %s", kindName(root.Kind))
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key := strings.TrimSpace(root.Content[i].Value)
		value, err := flattenYAML(root.Content[i+1])
		if err != nil {
			return fmt.Errorf("parameter %s: %w", key, err)
		}
		raw.Add(key, value)
	}
	return nil
}

func flattenYAML(n *yaml.Node) (string, error) {
	n = resolveAlias(n)
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return "", nil
		}
		return n.Value, nil
	case yaml.SequenceNode:
		nested := false
		for _, item := range n.Content {
			if resolveAlias(item).Kind == yaml.SequenceNode {
				nested = true
				break
			}
		}
		parts := make([]string, len(n.Content))
		for i, item := range n.Content {
			s, err := flattenYAML(item)
			if err != nil {
				return "", err
			}
			if nested {
				s = "[" + s + "]"
			}
			parts[i] = s
		}
		if nested {
			return "[" + strings.Join(parts, ",") + "]", nil
		}
		return strings.Join(parts, ","), nil
	default:
		return "", fmt.Errorf("unsupported YAML %s value", kindName(n.Kind))
	}
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
