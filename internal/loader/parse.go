package loader

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-better-config/internal/document"
)

var errInvalidJSON = errors.New("invalid JSON document")

// Parse decodes data in the given structured format into a document tree.
// FormatAuto and FormatEnv have no document form and are rejected.
func Parse(format Format, data []byte) (document.Value, error) {
	switch format {
	case FormatJSON:
		return ParseJSON(data)
	case FormatYAML:
		return ParseYAML(data)
	case FormatTOML:
		return ParseTOML(data)
	case FormatINI:
		return ParseINI(data)
	default:
		return document.Null(), fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// ── JSON ─────────────────────────────────────────────────────────────────────

// ParseJSON decodes a JSON document. Member order and duplicate keys are
// preserved; numbers keep their integer or float nature from the source
// text.
func ParseJSON(data []byte) (document.Value, error) {
	if !gjson.ValidBytes(data) {
		return document.Null(), errInvalidJSON
	}
	return fromJSON(gjson.ParseBytes(data)), nil
}

func fromJSON(r gjson.Result) document.Value {
	switch r.Type {
	case gjson.Null:
		return document.Null()
	case gjson.True:
		return document.Bool(true)
	case gjson.False:
		return document.Bool(false)
	case gjson.String:
		return document.String(r.Str)
	case gjson.Number:
		return jsonNumber(r)
	}

	if r.IsArray() {
		var items []document.Value
		r.ForEach(func(_, value gjson.Result) bool {
			items = append(items, fromJSON(value))
			return true
		})
		return document.Sequence(items...)
	}

	var members []document.Member
	r.ForEach(func(key, value gjson.Result) bool {
		members = append(members, document.M(key.String(), fromJSON(value)))
		return true
	})
	return document.Mapping(members...)
}

func jsonNumber(r gjson.Result) document.Value {
	raw := strings.TrimSpace(r.Raw)
	if !strings.ContainsAny(raw, ".eE") {
		if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return document.Int(i)
		}
		if u, err := strconv.ParseUint(raw, 10, 64); err == nil {
			return document.Uint(u)
		}
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return document.Float(f)
	}
	return document.Float(r.Num)
}

// ── YAML ─────────────────────────────────────────────────────────────────────

// ParseYAML decodes the first document of a YAML stream. Aliases are
// expanded and merge keys ("<<") are applied with explicit members taking
// precedence. An empty stream yields a null document.
func ParseYAML(data []byte) (document.Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return document.Null(), err
	}
	return fromYAML(&root)
}

func fromYAML(n *yaml.Node) (document.Value, error) {
	switch n.Kind {
	case 0:
		return document.Null(), nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return document.Null(), nil
		}
		return fromYAML(n.Content[0])
	case yaml.AliasNode:
		return fromYAML(n.Alias)
	case yaml.SequenceNode:
		items := make([]document.Value, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := fromYAML(c)
			if err != nil {
				return document.Null(), err
			}
			items = append(items, v)
		}
		return document.Sequence(items...), nil
	case yaml.MappingNode:
		members, err := yamlMembers(n)
		if err != nil {
			return document.Null(), err
		}
		return document.Mapping(members...), nil
	case yaml.ScalarNode:
		return yamlScalar(n)
	default:
		return document.Null(), fmt.Errorf("line %d: unexpected YAML node kind %d", n.Line, n.Kind)
	}
}

func yamlMembers(n *yaml.Node) ([]document.Member, error) {
	var merged, own []document.Member
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]

		if key.Kind == yaml.ScalarNode && key.ShortTag() == "!!merge" {
			m, err := yamlMergeSources(value)
			if err != nil {
				return nil, err
			}
			merged = append(merged, m...)
			continue
		}

		name, err := yamlKey(key)
		if err != nil {
			return nil, err
		}
		v, err := fromYAML(value)
		if err != nil {
			return nil, err
		}
		own = append(own, document.M(name, v))
	}
	return append(merged, own...), nil
}

func yamlMergeSources(n *yaml.Node) ([]document.Member, error) {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	switch n.Kind {
	case yaml.MappingNode:
		return yamlMembers(n)
	case yaml.SequenceNode:
		var out []document.Member
		for _, c := range n.Content {
			m, err := yamlMergeSources(c)
			if err != nil {
				return nil, err
			}
			out = append(out, m...)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("line %d: merge key requires a mapping", n.Line)
	}
}

func yamlKey(n *yaml.Node) (string, error) {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	if n.Kind == yaml.ScalarNode {
		return n.Value, nil
	}
	out, err := yaml.Marshal(n)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

func yamlScalar(n *yaml.Node) (document.Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return document.Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return document.Null(), err
		}
		return document.Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return document.Int(i), nil
		}
		var u uint64
		if err := n.Decode(&u); err == nil {
			return document.Uint(u), nil
		}
		var f float64
		if err := n.Decode(&f); err != nil {
			return document.Null(), err
		}
		return document.Float(f), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return document.Null(), err
		}
		return document.Float(f), nil
	default:
		return document.String(n.Value), nil
	}
}

// ── TOML ─────────────────────────────────────────────────────────────────────

// ParseTOML decodes a TOML document. Tables are mappings with lexically
// ordered keys, arrays are sequences and date/time values are strings.
func ParseTOML(data []byte) (document.Value, error) {
	var tree map[string]any
	if err := toml.Unmarshal(data, &tree); err != nil {
		return document.Null(), err
	}
	return document.FromAny(tree)
}

// ── INI ──────────────────────────────────────────────────────────────────────

// ParseINI decodes an INI file. Keys outside any section live at the root;
// every section becomes a mapping named after it. All values are strings.
func ParseINI(data []byte) (document.Value, error) {
	file, err := ini.Load(data)
	if err != nil {
		return document.Null(), err
	}

	var members []document.Member
	for _, section := range file.Sections() {
		keys := section.Keys()
		if len(keys) == 0 {
			continue
		}

		fields := make([]document.Member, 0, len(keys))
		for _, key := range keys {
			fields = append(fields, document.M(key.Name(), document.String(key.Value())))
		}

		if section.Name() == ini.DefaultSection {
			members = append(members, fields...)
			continue
		}
		members = append(members, document.M(section.Name(), document.Mapping(fields...)))
	}
	return document.Mapping(members...), nil
}
