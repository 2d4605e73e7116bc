package genui

import "fmt"

// Result is the outcome of validating a component tree. Valid is true exactly
// when Errors is empty.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Validate checks a component tree: kind membership, props presence, and
// props/kind agreement, then recurses depth-first. Errors come back in
// document order, parent before children, children left to right. Validate
// never mutates the tree.
func Validate(c *UIComponent) Result {
	errs := validateComponent(c, nil)
	return Result{Valid: len(errs) == 0, Errors: errs}
}

func validateComponent(c *UIComponent, errs []string) []string {
	if c == nil {
		return append(errs, "missing component")
	}

	if !c.Kind.Valid() {
		errs = append(errs, fmt.Sprintf("invalid component kind: %s", c.Kind))
	}
	if c.Props == nil {
		errs = append(errs, "missing properties")
	} else if c.Kind.Valid() && c.Props.Kind() != c.Kind {
		errs = append(errs, fmt.Sprintf("props do not match component kind: %s", c.Kind))
	}

	for _, embedded := range c.embeddedComponents() {
		errs = validateComponent(embedded, errs)
	}
	for _, child := range c.Children {
		errs = validateComponent(child, errs)
	}
	return errs
}
