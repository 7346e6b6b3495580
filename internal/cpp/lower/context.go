package lower

import "github.com/jacoelho/py2cpp/internal/cpp/registry"

// Context is the state shared by all lines of one translation run.
type Context struct {
	Registry *registry.Registry
}

// NewContext returns a context with an empty registry.
func NewContext() *Context {
	return &Context{Registry: registry.New()}
}
