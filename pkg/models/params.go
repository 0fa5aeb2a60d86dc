package models

// Params carries the loosely typed arguments of an action or query.
// Handlers read it through typed accessors that validate as they go.
type Params map[string]any

// Has reports whether key is present with a non-nil value.
func (p Params) Has(key string) bool {
	if p == nil {
		return false
	}
	v, ok := p[key]
	return ok && v != nil
}

// Get returns the raw value for key.
func (p Params) Get(key string) any {
	if p == nil {
		return nil
	}
	return p[key]
}

// Options returns the nested "options" object, if any.
func (p Params) Options() map[string]any {
	if opts, ok := p.Get("options").(map[string]any); ok {
		return opts
	}
	return nil
}
