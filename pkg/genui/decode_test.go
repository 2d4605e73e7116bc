package genui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regboard-be/pkg/apperror"
)

func TestDecodeComponentAccepts(t *testing.T) {
	raw := []byte(`{
		"kind": "button",
		"variant": "destructive",
		"props": {"text": "Delete chunk", "size": "sm"},
		"actions": [{"event": "click", "tool": "delete_document", "params": {"id": "d1"}}]
	}`)

	c, err := DecodeComponent(raw)
	require.NoError(t, err)
	assert.Equal(t, KindButton, c.Kind)
	assert.Equal(t, VariantDestructive, c.Variant)

	props, ok := c.Props.(ButtonProps)
	require.True(t, ok)
	assert.Equal(t, "Delete chunk", props.Text)

	require.Len(t, c.Actions, 1)
	assert.Equal(t, ActionClick, c.Actions[0].Event)
}

func TestDecodeComponentNestedDialog(t *testing.T) {
	raw := []byte(`{
		"kind": "dialog",
		"props": {
			"title": "Edit Document",
			"trigger": {"kind": "button", "props": {"text": "Edit"}},
			"content": {
				"kind": "form",
				"props": {"fields": [{"name": "content", "label": "Content", "type": "textarea"}]},
				"actions": [{"event": "submit", "tool": "update_document"}]
			},
			"confirmText": "Save"
		}
	}`)

	c, err := DecodeComponent(raw)
	require.NoError(t, err)

	props, ok := c.Props.(DialogProps)
	require.True(t, ok)
	require.NotNil(t, props.Trigger)
	require.NotNil(t, props.Content)
	assert.Equal(t, KindButton, props.Trigger.Kind)
	assert.Equal(t, KindForm, props.Content.Kind)
	assert.Same(t, c, props.Trigger.Parent())
	assert.Same(t, c, props.Content.Parent())

	result := Validate(c)
	assert.True(t, result.Valid, "gated tree must pass structural validation: %v", result.Errors)
}

func TestDecodeComponentRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "missing kind", raw: `{"props": {"text": "x"}}`},
		{name: "unknown kind", raw: `{"kind": "sparkle", "props": {}}`},
		{name: "missing props", raw: `{"kind": "button"}`},
		{name: "button without text", raw: `{"kind": "button", "props": {"size": "sm"}}`},
		{name: "bad variant", raw: `{"kind": "button", "props": {"text": "x"}, "variant": "festive"}`},
		{name: "bad action event", raw: `{"kind": "button", "props": {"text": "x"}, "actions": [{"event": "hover", "tool": "t"}]}`},
		{name: "action without tool", raw: `{"kind": "button", "props": {"text": "x"}, "actions": [{"event": "click"}]}`},
		{name: "table without columns", raw: `{"kind": "data-table", "props": {"data": []}}`},
		{name: "chart with bad type", raw: `{"kind": "chart", "props": {"type": "donut", "data": [], "xKey": "x", "yKey": "y"}}`},
		{name: "unexpected top level field", raw: `{"kind": "badge", "props": {"text": "x"}, "style": "bold"}`},
		{name: "bad nested child", raw: `{"kind": "card", "props": {"title": "T", "content": "ok"}, "children": [{"kind": "mystery", "props": {}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeComponent([]byte(tt.raw))
			require.Error(t, err)

			var ve *apperror.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.NotEmpty(t, ve.Errors)
		})
	}
}

func TestDecodeComponentNotJSON(t *testing.T) {
	_, err := DecodeComponent([]byte(`<component kind="button"/>`))
	require.Error(t, err)
	assert.True(t, apperror.IsFormat(err))
}
