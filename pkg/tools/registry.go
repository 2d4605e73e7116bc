package tools

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"regboard-be/pkg/apperror"
)

// Handler executes one tool invocation.
type Handler func(ctx context.Context, params map[string]any) (any, error)

// Registry binds declared tools to their handlers and dispatches invocations.
type Registry struct {
	mu       sync.RWMutex
	specs    map[string]ToolSpec
	handlers map[string]Handler
}

func NewRegistry(catalog *Catalog) *Registry {
	specs := make(map[string]ToolSpec, len(catalog.Tools))
	for _, tool := range catalog.Tools {
		specs[tool.Name] = tool
	}
	return &Registry{
		specs:    specs,
		handlers: make(map[string]Handler, len(specs)),
	}
}

// Bind attaches a handler to a declared tool. Binding an undeclared tool or
// rebinding a bound one is an error.
func (r *Registry) Bind(name string, h Handler) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.specs[name]; !ok {
		return fmt.Errorf("tool not declared in catalog: %s", name)
	}
	if _, ok := r.handlers[name]; ok {
		return fmt.Errorf("tool already bound: %s", name)
	}
	r.handlers[name] = h
	return nil
}

// Dispatch validates params against the tool's declaration and invokes its
// handler. Parameter violations come back as *apperror.ValidationError.
func (r *Registry) Dispatch(ctx context.Context, tool string, params map[string]any) (any, error) {
	r.mu.RLock()
	spec, declared := r.specs[tool]
	handler, bound := r.handlers[tool]
	r.mu.RUnlock()

	if !declared {
		return nil, fmt.Errorf("unknown tool: %s", tool)
	}
	if !bound {
		return nil, fmt.Errorf("tool not bound: %s", tool)
	}

	if errs := checkParams(spec, params); len(errs) > 0 {
		return nil, &apperror.ValidationError{Errors: errs}
	}
	return handler(ctx, params)
}

// Specs lists the declared tools, sorted by name.
func (r *Registry) Specs() []ToolSpec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ToolSpec, 0, len(r.specs))
	for _, spec := range r.specs {
		out = append(out, spec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func checkParams(spec ToolSpec, params map[string]any) []string {
	var errs []string
	for _, p := range spec.Params {
		v, present := params[p.Name]
		if !present {
			if p.Required {
				errs = append(errs, fmt.Sprintf("missing required parameter %q for tool %s", p.Name, spec.Name))
			}
			continue
		}
		if p.Type != "" && !typeMatches(p.Type, v) {
			errs = append(errs, fmt.Sprintf("parameter %q for tool %s must be a %s", p.Name, spec.Name, p.Type))
		}
	}
	return errs
}

func typeMatches(declared string, v any) bool {
	if v == nil {
		return true
	}
	switch declared {
	case "string":
		_, ok := v.(string)
		return ok
	case "number":
		switch v.(type) {
		case float64, float32, int, int64:
			return true
		}
		return false
	case "boolean":
		_, ok := v.(bool)
		return ok
	case "object":
		_, ok := v.(map[string]any)
		return ok
	case "array":
		_, ok := v.([]any)
		return ok
	default:
		return true
	}
}
