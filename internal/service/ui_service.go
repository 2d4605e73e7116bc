package service

import (
	"context"

	"regboard-be/internal/dto"
	"regboard-be/pkg/apperror"
	"regboard-be/pkg/genui"
	"regboard-be/pkg/genui/render"
	"regboard-be/pkg/tools"
)

type IUIService interface {
	RenderComponent(raw []byte) (*dto.RenderComponentResponse, error)
	ExecuteAction(ctx context.Context, req *dto.ComponentActionRequest) (*dto.ComponentActionResponse, error)
	ListTools() []tools.ToolSpec
}

type uiService struct {
	registry *tools.Registry
}

func NewUIService(registry *tools.Registry) IUIService {
	return &uiService{
		registry: registry,
	}
}

// decode gates component JSON coming from outside the process. Malformed JSON
// is the caller's fault, so it surfaces as a validation error, not as a bad
// gateway the way upstream format errors do.
func (c *uiService) decode(raw []byte) (*genui.UIComponent, error) {
	component, err := genui.DecodeComponent(raw)
	if err != nil {
		if apperror.IsFormat(err) {
			return nil, &apperror.ValidationError{Errors: []string{"component is not valid JSON"}}
		}
		return nil, err
	}
	return component, nil
}

func (c *uiService) RenderComponent(raw []byte) (*dto.RenderComponentResponse, error) {
	component, err := c.decode(raw)
	if err != nil {
		return nil, err
	}

	renderer := render.New(nil)
	return &dto.RenderComponentResponse{Html: renderer.Render(component)}, nil
}

// ExecuteAction activates the binding for the event on the submitted
// component. With no matching binding the result is empty rather than an
// error, mirroring how a UI ignores clicks on inert elements.
func (c *uiService) ExecuteAction(ctx context.Context, req *dto.ComponentActionRequest) (*dto.ComponentActionResponse, error) {
	component, err := c.decode(req.Component)
	if err != nil {
		return nil, err
	}

	// Rebuilt per call so the dispatch closure carries the request context.
	renderer := render.New(func(tool string, params map[string]any) (any, error) {
		return c.registry.Dispatch(ctx, tool, params)
	})

	event := genui.ActionEvent(req.Event)

	var result any
	if event == genui.ActionSubmit {
		result, err = renderer.Submit(component, req.FormData)
	} else {
		result, err = renderer.Trigger(component, event)
	}
	if err != nil {
		return nil, err
	}

	res := &dto.ComponentActionResponse{Result: result}
	if action, ok := component.ActionFor(event); ok {
		res.Tool = action.Tool
	}
	return res, nil
}

// ListTools exposes the declared tool catalog, sorted by name.
func (c *uiService) ListTools() []tools.ToolSpec {
	return c.registry.Specs()
}
