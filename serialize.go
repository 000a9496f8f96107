package evalexpr

import "github.com/ISibboI/evalexpr/internal/serialize"

// ContextToJSON renders ctx's variable bindings as a JSON object
// (§4.6).
func ContextToJSON(ctx *Context) ([]byte, error) {
	return serialize.ContextToJSON(ctx)
}

// ContextFromJSON parses data as a JSON object and binds each
// top-level field into ctx as a variable.
func ContextFromJSON(data []byte, ctx *Context) error {
	return serialize.ContextFromJSON(data, ctx)
}

// ContextToYAML renders ctx's variable bindings as a YAML mapping.
func ContextToYAML(ctx *Context) ([]byte, error) {
	return serialize.ContextToYAML(ctx)
}

// ContextFromYAML parses data as a YAML mapping and binds each
// top-level key into ctx as a variable.
func ContextFromYAML(data []byte, ctx *Context) error {
	return serialize.ContextFromYAML(data, ctx)
}
