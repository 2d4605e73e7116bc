package genui

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"regboard-be/pkg/apperror"
)

//go:embed schemas/component.schema.json
var schemaFS embed.FS

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func componentSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		data, err := schemaFS.ReadFile("schemas/component.schema.json")
		if err != nil {
			schemaErr = fmt.Errorf("read embedded schema: %w", err)
			return
		}

		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			schemaErr = fmt.Errorf("parse embedded schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("component.schema.json", doc); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		schema, schemaErr = c.Compile("component.schema.json")
	})
	return schema, schemaErr
}

// DecodeComponent is the gate for component JSON produced outside this
// process (tool output, request bodies). The raw document is checked against
// the embedded JSON Schema before the typed decode, so malformed trees are
// rejected with a flat error list instead of surfacing as decode panics or
// half-filled structs. Schema violations come back as *apperror.ValidationError.
func DecodeComponent(raw []byte) (*UIComponent, error) {
	compiled, err := componentSchema()
	if err != nil {
		return nil, err
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, apperror.Format("component decode", err)
	}

	if err := compiled.Validate(doc); err != nil {
		ve, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return nil, &apperror.ValidationError{Errors: []string{err.Error()}}
		}
		return nil, &apperror.ValidationError{Errors: collectSchemaErrors(ve, nil)}
	}

	var c UIComponent
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, apperror.Format("component decode", err)
	}
	return &c, nil
}

// collectSchemaErrors flattens a validation error tree into its leaf
// messages, each prefixed with the instance path it refers to.
func collectSchemaErrors(ve *jsonschema.ValidationError, errs []string) []string {
	if len(ve.Causes) == 0 {
		msg := ve.Error()
		if len(ve.InstanceLocation) > 0 {
			msg = fmt.Sprintf("/%s: %s", strings.Join(ve.InstanceLocation, "/"), msg)
		}
		return append(errs, msg)
	}
	for _, cause := range ve.Causes {
		errs = collectSchemaErrors(cause, errs)
	}
	return errs
}
