package document

import (
	"encoding"
	"fmt"
	"sort"
	"time"
)

// FromAny converts a value produced by a generic decoder (map[string]any,
// []any and scalars, as returned by TOML or YAML unmarshalers) into a
// [Value]. Map members are sorted by key because Go maps carry no order.
//
// Types that implement encoding.TextMarshaler or fmt.Stringer become
// strings. Anything else that cannot be represented returns a
// *ConversionError naming the offending path.
func FromAny(in any) (Value, error) {
	return fromAny(in, "")
}

func fromAny(in any, path string) (Value, error) {
	switch v := in.(type) {
	case nil:
		return Null(), nil
	case Value:
		return v, nil
	case bool:
		return Bool(v), nil
	case string:
		return String(v), nil
	case int:
		return Int(int64(v)), nil
	case int8:
		return Int(int64(v)), nil
	case int16:
		return Int(int64(v)), nil
	case int32:
		return Int(int64(v)), nil
	case int64:
		return Int(v), nil
	case uint:
		return Uint(uint64(v)), nil
	case uint8:
		return Uint(uint64(v)), nil
	case uint16:
		return Uint(uint64(v)), nil
	case uint32:
		return Uint(uint64(v)), nil
	case uint64:
		return Uint(v), nil
	case float32:
		return Float(float64(v)), nil
	case float64:
		return Float(v), nil
	case time.Time:
		return String(v.Format(time.RFC3339Nano)), nil
	case time.Duration:
		return String(v.String()), nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		members := make([]Member, 0, len(v))
		for _, k := range keys {
			child, err := fromAny(v[k], join(path, k))
			if err != nil {
				return Value{}, err
			}
			members = append(members, M(k, child))
		}
		return Mapping(members...), nil
	case map[any]any:
		converted := make(map[string]any, len(v))
		for k, val := range v {
			converted[fmt.Sprint(k)] = val
		}
		return fromAny(converted, path)
	case []any:
		items := make([]Value, 0, len(v))
		for i, el := range v {
			child, err := fromAny(el, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return Value{}, err
			}
			items = append(items, child)
		}
		return Sequence(items...), nil
	case []map[string]any:
		items := make([]Value, 0, len(v))
		for i, el := range v {
			child, err := fromAny(el, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return Value{}, err
			}
			items = append(items, child)
		}
		return Sequence(items...), nil
	case []string:
		items := make([]Value, 0, len(v))
		for _, el := range v {
			items = append(items, String(el))
		}
		return Sequence(items...), nil
	case encoding.TextMarshaler:
		text, err := v.MarshalText()
		if err != nil {
			return Value{}, &ConversionError{Path: path, Type: fmt.Sprintf("%T", in), Err: err}
		}
		return String(string(text)), nil
	case fmt.Stringer:
		return String(v.String()), nil
	default:
		return Value{}, &ConversionError{Path: path, Type: fmt.Sprintf("%T", in)}
	}
}

func join(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}
