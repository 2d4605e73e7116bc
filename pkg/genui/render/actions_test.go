package render

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regboard-be/pkg/genui"
)

type actionRecorder struct {
	calls  []recordedCall
	result any
	err    error
}

type recordedCall struct {
	tool   string
	params map[string]any
}

func (a *actionRecorder) fn(tool string, params map[string]any) (any, error) {
	a.calls = append(a.calls, recordedCall{tool: tool, params: params})
	return a.result, a.err
}

func TestTriggerInvokesBoundTool(t *testing.T) {
	rec := &actionRecorder{result: "ok"}
	r := New(rec.fn)

	button := genui.NewButton("Search").Bind(genui.ActionClick, "search_documents", map[string]any{"limit": 10})

	result, err := r.Trigger(button, genui.ActionClick)
	require.NoError(t, err)
	assert.Equal(t, "ok", result)

	require.Len(t, rec.calls, 1)
	assert.Equal(t, "search_documents", rec.calls[0].tool)
	assert.Equal(t, map[string]any{"limit": 10}, rec.calls[0].params)
}

func TestTriggerWithoutBindingIsNoOp(t *testing.T) {
	rec := &actionRecorder{}
	r := New(rec.fn)

	button := genui.NewButton("Plain")

	result, err := r.Trigger(button, genui.ActionClick)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Empty(t, rec.calls, "a button with no click action must never invoke the callback")
}

func TestTriggerCopiesParams(t *testing.T) {
	var seen map[string]any
	r := New(func(tool string, params map[string]any) (any, error) {
		seen = params
		params["mutated"] = true
		return nil, nil
	})

	original := map[string]any{"id": "d1"}
	button := genui.NewButton("x").Bind(genui.ActionClick, "t", original)

	_, err := r.Trigger(button, genui.ActionClick)
	require.NoError(t, err)
	require.NotNil(t, seen)
	assert.NotContains(t, original, "mutated", "handler mutations must not reach the component")
	assert.Equal(t, map[string]any{"id": "d1"}, button.Actions[0].Params)
}

func TestTriggerNilCallbackNeverFails(t *testing.T) {
	r := New(nil)
	button := genui.NewButton("x").Bind(genui.ActionClick, "t", nil)

	result, err := r.Trigger(button, genui.ActionClick)
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestTriggerPropagatesHandlerError(t *testing.T) {
	rec := &actionRecorder{err: errors.New("boom")}
	r := New(rec.fn)
	button := genui.NewButton("x").Bind(genui.ActionClick, "t", nil)

	_, err := r.Trigger(button, genui.ActionClick)
	assert.EqualError(t, err, "boom")
}

func TestSubmitMergesFormData(t *testing.T) {
	rec := &actionRecorder{}
	r := New(rec.fn)

	form := genui.NewForm(genui.FormField{Name: "content", Label: "Content", Type: genui.FieldTextarea}).
		Bind(genui.ActionSubmit, "update_document", map[string]any{"id": "d1", "regenerate_embedding": true})

	values := map[string]any{"content": "amended text"}
	_, err := r.Submit(form, values)
	require.NoError(t, err)

	require.Len(t, rec.calls, 1)
	params := rec.calls[0].params
	assert.Equal(t, "d1", params["id"])
	assert.Equal(t, true, params["regenerate_embedding"])
	assert.Equal(t, values, params[FormDataKey])
}

func TestSubmitLiveValuesWinForFormDataKey(t *testing.T) {
	rec := &actionRecorder{}
	r := New(rec.fn)

	// An action that tries to pin its own formData loses to the live values.
	form := genui.NewForm().Bind(genui.ActionSubmit, "update_document", map[string]any{
		FormDataKey: map[string]any{"content": "stale"},
		"id":        "d1",
	})

	live := map[string]any{"content": "fresh"}
	_, err := r.Submit(form, live)
	require.NoError(t, err)

	require.Len(t, rec.calls, 1)
	assert.Equal(t, live, rec.calls[0].params[FormDataKey])
	assert.Equal(t, "d1", rec.calls[0].params["id"])
}

func TestSubmitWithoutSubmitActionIsNoOp(t *testing.T) {
	rec := &actionRecorder{}
	r := New(rec.fn)

	form := genui.NewForm().Bind(genui.ActionChange, "autosave", nil)

	result, err := r.Submit(form, map[string]any{"x": 1})
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Empty(t, rec.calls)
}
