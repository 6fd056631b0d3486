package yaml

import (
	"reflect"
	"testing"

	yamlv3 "gopkg.in/yaml.v3"
)

// differentialCorpus holds documents on which this package and yaml.v3 are
// expected to agree. Features where the two differ on purpose (tags, merge
// keys, non-string keys, YAML 1.1 booleans) are left out.
var differentialCorpus = []string{
	"null",
	"42",
	"-17",
	"0x1F",
	"3.25",
	"-.inf",
	"true",
	"plain text",
	`"double \"quoted\"\ttext"`,
	`'single ''quoted'''`,
	"[1, two, 3.5, null]",
	"{a: 1, b: [x, y]}",
	"name: Alice\nage: 30\nactive: true",
	"server:\n  host: localhost\n  ports:\n    - 80\n    - 443",
	"- a\n- b\n- - c\n  - d",
	"- name: one\n  value: 1\n- name: two\n  value: 2",
	"text: |\n  line one\n  line two\n",
	"text: >\n  folded\n  lines\n\n  new paragraph\n",
	"keep: |+\n  kept\n\nnext: 1",
	"strip: >-\n  stripped\n",
	"base: &base\n  x: 1\ncopy: *base",
	"plain: multi\n  line\n  words",
	"quoted: \"multi\n  line\"",
	"# comment\nkey: value # trailing\n",
	"empty:\nafter: 1",
	"nested: [[1, 2], {k: v}]",
}

func TestDifferential_YAMLv3(t *testing.T) {
	for _, input := range differentialCorpus {
		t.Run(input, func(t *testing.T) {
			v, err := Load(input)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}

			var want interface{}
			if err := yamlv3.Unmarshal([]byte(input), &want); err != nil {
				t.Fatalf("yaml.v3 Unmarshal() error = %v", err)
			}

			got := ToInterface(v)
			if !reflect.DeepEqual(got, normalizeV3(want)) {
				t.Errorf("mismatch\n got: %#v\nwant: %#v", got, normalizeV3(want))
			}
		})
	}
}

// normalizeV3 maps yaml.v3's decoded types onto the ones ToInterface uses.
func normalizeV3(v interface{}) interface{} {
	switch x := v.(type) {
	case int:
		return int64(x)
	case uint64:
		return int64(x)
	case []interface{}:
		out := make([]interface{}, len(x))
		for i, item := range x {
			out[i] = normalizeV3(item)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(x))
		for k, item := range x {
			out[k] = normalizeV3(item)
		}
		return out
	}
	return v
}
