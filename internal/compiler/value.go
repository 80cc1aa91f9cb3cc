package compiler

import (
	"fmt"
	"strconv"

	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// The document tree is built from explicit yaml.Node values rather than Go
// maps so the key order is exactly the order we append, independent of map
// iteration.

func mappingNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func sequenceNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
}

func strNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func intNode(n int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(n)}
}

func boolNode(b bool) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(b)}
}

// put appends a key/value pair to a mapping node.
func put(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, strNode(key), value)
}

// ctyToNode renders a cty value as a YAML node. Map keys iterate in cty's
// key order, which is already sorted, so output stays deterministic.
func ctyToNode(val cty.Value) *yaml.Node {
	if val.IsNull() {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}

	ty := val.Type()
	switch {
	case ty == cty.String:
		return strNode(val.AsString())

	case ty == cty.Bool:
		return boolNode(val.True())

	case ty == cty.Number:
		bf := val.AsBigFloat()
		if bf.IsInt() {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: bf.Text('f', -1)}
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: bf.Text('f', -1)}

	case ty.IsListType() || ty.IsSetType() || ty.IsTupleType():
		seq := sequenceNode()
		for it := val.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			seq.Content = append(seq.Content, ctyToNode(ev))
		}
		return seq

	case ty.IsMapType() || ty.IsObjectType():
		m := mappingNode()
		for it := val.ElementIterator(); it.Next(); {
			ek, ev := it.Element()
			put(m, ek.AsString(), ctyToNode(ev))
		}
		return m

	default:
		// Unsupported types cannot appear: the registry only admits
		// primitives and collections of primitives.
		return strNode(fmt.Sprintf("%#v", val))
	}
}
