package yaml

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/shapestone/shape-core/pkg/ast"

	"github.com/alexdrone/swatch-yaml/pkg/value"
)

// ToInterface converts v to native Go types:
//
//   - Null → nil
//   - Bool, Int, Double, String → bool, int64, float64, string
//   - Array → []interface{}
//   - Map with only string keys → map[string]interface{}
//   - any other Map → map[interface{}]interface{}; collection keys are
//     replaced by their description (see value.Value.String)
//
// Example:
//
//	v, _ := yaml.Load("name: Alice\ntags: [go, yaml]")
//	data := yaml.ToInterface(v)
//	// data is map[string]interface{}{"name": "Alice", "tags": []interface{}{"go", "yaml"}}
func ToInterface(v value.Value) interface{} {
	switch v.Kind() {
	case value.KindBool:
		b, _ := v.AsBool()
		return b
	case value.KindInt:
		i, _ := v.AsInt()
		return i
	case value.KindDouble:
		f, _ := v.AsDouble()
		return f
	case value.KindString:
		s, _ := v.AsString()
		return s
	case value.KindArray:
		items, _ := v.AsArray()
		arr := make([]interface{}, len(items))
		for i, item := range items {
			arr[i] = ToInterface(item)
		}
		return arr
	case value.KindMap:
		pairs, _ := v.AsPairs()
		if m, ok := stringKeyed(pairs); ok {
			return m
		}
		m := make(map[interface{}]interface{}, len(pairs))
		for _, p := range pairs {
			key := ToInterface(p.Key)
			if !p.Key.IsScalar() {
				key = p.Key.String()
			}
			m[key] = ToInterface(p.Value)
		}
		return m
	}
	return nil
}

func stringKeyed(pairs []value.Pair) (map[string]interface{}, bool) {
	m := make(map[string]interface{}, len(pairs))
	for _, p := range pairs {
		key, ok := p.Key.AsString()
		if !ok {
			return nil, false
		}
		m[key] = ToInterface(p.Value)
	}
	return m, true
}

// ToNode converts v to a Shape AST node. Scalars become *ast.LiteralNode;
// arrays and maps become *ast.ObjectNode, arrays keyed "0", "1", ... as in
// the rest of the Shape ecosystem. Maps must have string keys.
func ToNode(v value.Value) (ast.SchemaNode, error) {
	pos := ast.Position{}

	switch v.Kind() {
	case value.KindArray:
		items, _ := v.AsArray()
		props := make(map[string]ast.SchemaNode, len(items))
		for i, item := range items {
			node, err := ToNode(item)
			if err != nil {
				return nil, fmt.Errorf("sequence element %d: %w", i, err)
			}
			props[strconv.Itoa(i)] = node
		}
		return ast.NewObjectNode(props, pos), nil

	case value.KindMap:
		pairs, _ := v.AsPairs()
		props := make(map[string]ast.SchemaNode, len(pairs))
		for _, p := range pairs {
			key, ok := p.Key.AsString()
			if !ok {
				return nil, fmt.Errorf("unsupported mapping key %s", p.Key)
			}
			node, err := ToNode(p.Value)
			if err != nil {
				return nil, fmt.Errorf("mapping property %s: %w", key, err)
			}
			props[key] = node
		}
		return ast.NewObjectNode(props, pos), nil
	}
	return ast.NewLiteralNode(ToInterface(v), pos), nil
}

// FromNode converts a Shape AST node back to a value. Object nodes whose
// keys are exactly "0" to "n-1" become arrays; other object nodes become
// maps with keys in sorted order, since AST properties are unordered. An
// empty object node becomes an empty map.
func FromNode(node ast.SchemaNode) (value.Value, error) {
	switch n := node.(type) {
	case *ast.LiteralNode:
		return literalValue(n.Value())

	case *ast.ObjectNode:
		props := n.Properties()
		if isSequence(props) {
			items := make([]value.Value, len(props))
			for i := range items {
				item, err := FromNode(props[strconv.Itoa(i)])
				if err != nil {
					return value.Value{}, fmt.Errorf("sequence element %d: %w", i, err)
				}
				items[i] = item
			}
			return value.Array(items...), nil
		}

		keys := make([]string, 0, len(props))
		for key := range props {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		pairs := make([]value.Pair, 0, len(keys))
		for _, key := range keys {
			v, err := FromNode(props[key])
			if err != nil {
				return value.Value{}, fmt.Errorf("mapping property %s: %w", key, err)
			}
			pairs = append(pairs, value.P(key, v))
		}
		return value.NewMap(pairs...)
	}
	return value.Value{}, fmt.Errorf("unsupported node type %T", node)
}

func literalValue(v interface{}) (value.Value, error) {
	switch x := v.(type) {
	case nil:
		return value.Null(), nil
	case bool:
		return value.Bool(x), nil
	case int:
		return value.Int(int64(x)), nil
	case int64:
		return value.Int(x), nil
	case float64:
		return value.Double(x), nil
	case string:
		return value.String(x), nil
	}
	return value.Value{}, fmt.Errorf("unsupported literal type %T", v)
}

// isSequence reports whether props is keyed exactly "0" to "n-1".
func isSequence(props map[string]ast.SchemaNode) bool {
	if len(props) == 0 {
		return false
	}
	for i := 0; i < len(props); i++ {
		if _, ok := props[strconv.Itoa(i)]; !ok {
			return false
		}
	}
	return true
}
