package dto

import "encoding/json"

type RenderComponentResponse struct {
	Html string `json:"html"`
}

type ComponentActionRequest struct {
	Component json.RawMessage `json:"component" validate:"required"`
	Event     string          `json:"event" validate:"required,oneof=click submit change"`
	FormData  map[string]any  `json:"formData"`
}

type ComponentActionResponse struct {
	Tool   string `json:"tool,omitempty"` // empty when the event had no binding
	Result any    `json:"result"`
}
