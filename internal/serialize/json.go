package serialize

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ContextToJSON renders every variable binding in ctx as a top-level
// JSON object field, one call to sjson.SetBytes per binding.
func ContextToJSON(ctx Context) ([]byte, error) {
	out := []byte("{}")
	for name, v := range ctx.Variables() {
		native, err := toNative(v)
		if err != nil {
			return nil, err
		}
		out, err = sjson.SetBytes(out, name, native)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ContextFromJSON parses data as a JSON object and SetValues one
// binding per top-level field into ctx.
func ContextFromJSON(data []byte, ctx Context) error {
	parsed := gjson.ParseBytes(data)
	var setErr error
	parsed.ForEach(func(key, val gjson.Result) bool {
		v, err := fromNative(val.Value())
		if err != nil {
			setErr = err
			return false
		}
		if err := ctx.SetValue(key.String(), v); err != nil {
			setErr = err
			return false
		}
		return true
	})
	return setErr
}
