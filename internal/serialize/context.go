// Package serialize bridges a Context's variable bindings to and from
// JSON and YAML, the "natural home for every teacher dependency the
// tree-walking core itself has no business importing" (§4.6). It is
// grounded on CWBudde-go-dws/internal/jsonvalue, the one place in the
// corpus where a tagged value type grows a JSON bridge, generalized
// here to also cover YAML via goccy/go-yaml.
package serialize

import (
	"math"

	"github.com/ISibboI/evalexpr/internal/evalerr"
	"github.com/ISibboI/evalexpr/internal/value"
)

// Context is the minimal surface serialize needs: enough to read every
// binding for export, and to write bindings back for import. The root
// package's *Context satisfies this structurally.
type Context interface {
	Variables() map[string]value.Value
	SetValue(name string, v value.Value) error
}

// toNative converts a Value to the plain Go value gjson/sjson and
// goccy/go-yaml both marshal natively: string, int64, float64, bool,
// []interface{}, or nil.
func toNative(v value.Value) (any, error) {
	switch v.Kind() {
	case value.TypeString:
		return v.AsString()
	case value.TypeInt:
		return v.AsInt()
	case value.TypeFloat:
		return v.AsFloat()
	case value.TypeBoolean:
		return v.AsBoolean()
	case value.TypeEmpty:
		return nil, nil
	case value.TypeTuple:
		elems, err := v.AsTuple()
		if err != nil {
			return nil, err
		}
		out := make([]any, len(elems))
		for i, e := range elems {
			n, err := toNative(e)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	default:
		return nil, evalerr.Newf(evalerr.CustomMessage, evalerr.Position{}, "unserializable value kind %s", v.Kind())
	}
}

// fromNative converts a plain Go value (as produced by gjson.Value()
// or goccy/go-yaml's Unmarshal into interface{}) back to a Value.
func fromNative(n any) (value.Value, error) {
	switch t := n.(type) {
	case nil:
		return value.Empty, nil
	case string:
		return value.String(t), nil
	case bool:
		return value.Boolean(t), nil
	case int:
		return value.Int(int64(t)), nil
	case int64:
		return value.Int(t), nil
	case uint64:
		// goccy/go-yaml decodes non-negative integers as uint64.
		if t > math.MaxInt64 {
			return value.Value{}, evalerr.Newf(evalerr.CustomMessage, evalerr.Position{}, "integer %d does not fit in Int", t)
		}
		return value.Int(int64(t)), nil
	case float64:
		if t == float64(int64(t)) {
			return value.Int(int64(t)), nil
		}
		return value.Float(t), nil
	case []any:
		elems := make([]value.Value, len(t))
		for i, e := range t {
			v, err := fromNative(e)
			if err != nil {
				return value.Value{}, err
			}
			elems[i] = v
		}
		return value.Tuple(elems...), nil
	default:
		return value.Value{}, evalerr.Newf(evalerr.CustomMessage, evalerr.Position{}, "unrepresentable decoded value of type %T", n)
	}
}
