package genui

import (
	"encoding/json"
	"errors"
)

var (
	ErrNilChild   = errors.New("nil child")
	ErrSelfAttach = errors.New("component cannot contain itself")
	ErrReattach   = errors.New("component is already attached to a parent")
	ErrCycle      = errors.New("component cannot contain one of its ancestors")
)

// UIComponent is one node of a widget tree. Children are ordered and every
// node has at most one parent; AppendChild enforces that at construction, so
// a built tree never needs a cycle check afterwards.
type UIComponent struct {
	Kind     Kind
	Variant  Variant
	Props    Props
	Children []*UIComponent
	Actions  []Action

	parent *UIComponent
}

// New builds a component of the given kind. Factories in factory.go cover the
// common shapes; none of them validate, that is the caller's explicit step.
func New(kind Kind, props Props) *UIComponent {
	return &UIComponent{Kind: kind, Props: props}
}

// WithVariant sets the visual variant and returns the component.
func (c *UIComponent) WithVariant(v Variant) *UIComponent {
	c.Variant = v
	return c
}

// Bind appends an action binding and returns the component.
func (c *UIComponent) Bind(event ActionEvent, tool string, params map[string]any) *UIComponent {
	c.Actions = append(c.Actions, Action{Event: event, Tool: tool, Params: params})
	return c
}

// ActionFor returns the first action bound to event.
func (c *UIComponent) ActionFor(event ActionEvent) (Action, bool) {
	for _, a := range c.Actions {
		if a.Event == event {
			return a, true
		}
	}
	return Action{}, false
}

// AppendChild attaches child as the last child of c. It rejects nil, c
// itself, a node that already has a parent, and any ancestor of c, so the
// tree stays acyclic and single-parented by construction.
func (c *UIComponent) AppendChild(child *UIComponent) error {
	if err := c.adopt(child); err != nil {
		return err
	}
	c.Children = append(c.Children, child)
	return nil
}

// Parent returns the owning node, nil for a root.
func (c *UIComponent) Parent() *UIComponent {
	return c.parent
}

func (c *UIComponent) adopt(child *UIComponent) error {
	if child == nil {
		return ErrNilChild
	}
	if child == c {
		return ErrSelfAttach
	}
	if child.parent != nil {
		return ErrReattach
	}
	for a := c.parent; a != nil; a = a.parent {
		if a == child {
			return ErrCycle
		}
	}
	child.parent = c
	return nil
}

type componentJSON struct {
	Kind     Kind            `json:"kind"`
	Variant  Variant         `json:"variant,omitempty"`
	Props    json.RawMessage `json:"props,omitempty"`
	Children []*UIComponent  `json:"children,omitempty"`
	Actions  []Action        `json:"actions,omitempty"`
}

func (c *UIComponent) MarshalJSON() ([]byte, error) {
	out := struct {
		Kind     Kind           `json:"kind"`
		Variant  Variant        `json:"variant,omitempty"`
		Props    Props          `json:"props,omitempty"`
		Children []*UIComponent `json:"children,omitempty"`
		Actions  []Action       `json:"actions,omitempty"`
	}{
		Kind:     c.Kind,
		Variant:  c.Variant,
		Props:    c.Props,
		Children: c.Children,
		Actions:  c.Actions,
	}
	return json.Marshal(out)
}

func (c *UIComponent) UnmarshalJSON(data []byte) error {
	var raw componentJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	c.Kind = raw.Kind
	c.Variant = raw.Variant
	c.Children = raw.Children
	c.Actions = raw.Actions
	c.Props = nil

	if len(raw.Props) > 0 && string(raw.Props) != "null" {
		props, err := decodeProps(raw.Kind, raw.Props)
		if err != nil {
			return err
		}
		c.Props = props
	}

	// Restore parent pointers; JSON input is always a literal tree.
	for _, child := range c.Children {
		if child != nil {
			child.parent = c
		}
	}
	for _, embedded := range c.embeddedComponents() {
		embedded.parent = c
	}

	return nil
}

// embeddedComponents lists the components nested inside the props record, in
// document order (card content/footer, dialog trigger/content).
func (c *UIComponent) embeddedComponents() []*UIComponent {
	var out []*UIComponent
	switch p := c.Props.(type) {
	case CardProps:
		if p.Content != nil && p.Content.Component != nil {
			out = append(out, p.Content.Component)
		}
		if p.Footer != nil && p.Footer.Component != nil {
			out = append(out, p.Footer.Component)
		}
	case DialogProps:
		if p.Trigger != nil {
			out = append(out, p.Trigger)
		}
		if p.Content != nil {
			out = append(out, p.Content)
		}
	}
	return out
}
