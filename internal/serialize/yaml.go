package serialize

import (
	"github.com/goccy/go-yaml"

	"github.com/ISibboI/evalexpr/internal/evalerr"
)

// ContextToYAML renders every variable binding in ctx as a top-level
// YAML mapping entry.
func ContextToYAML(ctx Context) ([]byte, error) {
	doc := make(map[string]any)
	for name, v := range ctx.Variables() {
		native, err := toNative(v)
		if err != nil {
			return nil, err
		}
		doc[name] = native
	}
	return yaml.Marshal(doc)
}

// ContextFromYAML parses data as a YAML mapping and SetValues one
// binding per top-level key into ctx.
func ContextFromYAML(data []byte, ctx Context) error {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return evalerr.Newf(evalerr.CustomMessage, evalerr.Position{}, "invalid YAML context: %v", err)
	}
	for name, raw := range doc {
		v, err := fromNative(raw)
		if err != nil {
			return err
		}
		if err := ctx.SetValue(name, v); err != nil {
			return err
		}
	}
	return nil
}
