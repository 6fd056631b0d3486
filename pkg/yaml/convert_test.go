package yaml

import (
	"reflect"
	"testing"

	"github.com/shapestone/shape-core/pkg/ast"

	"github.com/alexdrone/swatch-yaml/pkg/value"
)

func TestToInterface(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  interface{}
	}{
		{"null", "null", nil},
		{"scalars", "[true, 3, 1.5, text]", []interface{}{true, int64(3), 1.5, "text"}},
		{"string keys", "name: Alice\ntags: [go, yaml]", map[string]interface{}{
			"name": "Alice",
			"tags": []interface{}{"go", "yaml"},
		}},
		{"scalar keys", "? 1\n: one\n? true\n: yes", map[interface{}]interface{}{
			int64(1): "one",
			true:     "yes",
		}},
		{"collection key", "? [a]\n: x", map[interface{}]interface{}{
			"Array([String(a)])": "x",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Load(tt.input)
			assertNoError(t, err)
			if got := ToInterface(v); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ToInterface() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestToNode(t *testing.T) {
	v, err := Load("users:\n  - name: Alice\n    age: 30\n  - name: Bob\n    age: 25")
	assertNoError(t, err)

	node, err := ToNode(v)
	assertNoError(t, err)

	obj := assertObjectNode(t, node)
	users := assertObjectNode(t, obj.Properties()["users"])
	alice := assertObjectNode(t, users.Properties()["0"])
	assertLiteralValue(t, alice.Properties()["name"], "Alice")
	assertLiteralValue(t, alice.Properties()["age"], int64(30))
	bob := assertObjectNode(t, users.Properties()["1"])
	assertLiteralValue(t, bob.Properties()["name"], "Bob")
}

func TestToNode_NonStringKey(t *testing.T) {
	v, err := Load("outer:\n  ? 1\n  : one")
	assertNoError(t, err)
	if _, err := ToNode(v); err == nil {
		t.Fatal("expected error for integer mapping key")
	}
}

func TestFromNode(t *testing.T) {
	v, err := Load("b: [1, 2.5, null]\na: {x: true}\nc: {}")
	assertNoError(t, err)

	node, err := ToNode(v)
	assertNoError(t, err)
	back, err := FromNode(node)
	assertNoError(t, err)
	if !value.Equal(back, v) {
		t.Errorf("FromNode(ToNode(v)) = %s, want %s", back, v)
	}

	pairs, _ := back.AsPairs()
	var keys []string
	for _, p := range pairs {
		k, _ := p.Key.AsString()
		keys = append(keys, k)
	}
	if !reflect.DeepEqual(keys, []string{"a", "b", "c"}) {
		t.Errorf("keys = %v, want sorted [a b c]", keys)
	}
}

func TestFromNode_UnsupportedLiteral(t *testing.T) {
	node := ast.NewLiteralNode([]byte("raw"), ast.Position{})
	if _, err := FromNode(node); err == nil {
		t.Fatal("expected error for []byte literal")
	}
}

func assertObjectNode(t *testing.T, node ast.SchemaNode) *ast.ObjectNode {
	t.Helper()
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		t.Fatalf("expected *ast.ObjectNode, got %T", node)
	}
	return obj
}

func assertLiteralValue(t *testing.T, node ast.SchemaNode, want interface{}) {
	t.Helper()
	lit, ok := node.(*ast.LiteralNode)
	if !ok {
		t.Fatalf("expected *ast.LiteralNode, got %T", node)
	}
	if lit.Value() != want {
		t.Errorf("literal = %#v, want %#v", lit.Value(), want)
	}
}
