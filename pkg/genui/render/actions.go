package render

import (
	"log"

	"regboard-be/pkg/genui"
)

// FormDataKey is the reserved parameter key that carries live form values
// into a submit action. Live values always win for this key; every other
// action parameter is passed through untouched.
const FormDataKey = "formData"

// Trigger activates the first action bound to event. The callback receives a
// copy of the action parameters, so handlers can mutate theirs freely. No
// matching action is a silent no-op; a nil callback is a logged one.
func (r *Renderer) Trigger(c *genui.UIComponent, event genui.ActionEvent) (any, error) {
	if c == nil {
		return nil, nil
	}
	action, ok := c.ActionFor(event)
	if !ok {
		return nil, nil
	}
	return r.invoke(action, cloneParams(action.Params))
}

// Submit activates the component's submit action with values merged under
// the reserved formData parameter key.
func (r *Renderer) Submit(c *genui.UIComponent, values map[string]any) (any, error) {
	if c == nil {
		return nil, nil
	}
	action, ok := c.ActionFor(genui.ActionSubmit)
	if !ok {
		return nil, nil
	}

	params := cloneParams(action.Params)
	params[FormDataKey] = values
	return r.invoke(action, params)
}

func (r *Renderer) invoke(action genui.Action, params map[string]any) (any, error) {
	if r.onAction == nil {
		log.Printf("[WARN] No action handler configured, dropping %s for tool %s", action.Event, action.Tool)
		return nil, nil
	}
	return r.onAction(action.Tool, params)
}

func cloneParams(params map[string]any) map[string]any {
	out := make(map[string]any, len(params)+1)
	for k, v := range params {
		out[k] = v
	}
	return out
}
