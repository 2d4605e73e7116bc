// Package genui defines the component schema rendered on the dashboard:
// a closed vocabulary of widget kinds, typed per-kind properties, and action
// bindings that map UI events to named tool invocations.
package genui

// Kind identifies a widget in the closed component vocabulary.
type Kind string

const (
	KindButton    Kind = "button"
	KindCard      Kind = "card"
	KindDataTable Kind = "data-table"
	KindDialog    Kind = "dialog"
	KindForm      Kind = "form"
	KindInput     Kind = "input"
	KindChart     Kind = "chart"
	KindAlert     Kind = "alert"
	KindBadge     Kind = "badge"
	KindToast     Kind = "toast"
)

var kinds = map[Kind]struct{}{
	KindButton:    {},
	KindCard:      {},
	KindDataTable: {},
	KindDialog:    {},
	KindForm:      {},
	KindInput:     {},
	KindChart:     {},
	KindAlert:     {},
	KindBadge:     {},
	KindToast:     {},
}

// Valid reports whether k belongs to the vocabulary.
func (k Kind) Valid() bool {
	_, ok := kinds[k]
	return ok
}

// Variant selects a visual style. Empty means the kind's default.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
	VariantOutline     Variant = "outline"
	VariantSecondary   Variant = "secondary"
	VariantGhost       Variant = "ghost"
	VariantLink        Variant = "link"
)

// ActionEvent is the UI event an action is bound to.
type ActionEvent string

const (
	ActionClick  ActionEvent = "click"
	ActionSubmit ActionEvent = "submit"
	ActionChange ActionEvent = "change"
)

// Action binds a UI event to a named tool with fixed parameters.
type Action struct {
	Event  ActionEvent    `json:"event"`
	Tool   string         `json:"tool"`
	Params map[string]any `json:"params,omitempty"`
}

// FieldType is the input control of a form field.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldNumber   FieldType = "number"
	FieldEmail    FieldType = "email"
	FieldPassword FieldType = "password"
	FieldTextarea FieldType = "textarea"
	FieldSelect   FieldType = "select"
)

// FieldOption is one choice of a select field.
type FieldOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FieldValidation holds client-side validation hints for a form field.
type FieldValidation struct {
	Min     *int   `json:"min,omitempty"`
	Max     *int   `json:"max,omitempty"`
	Pattern string `json:"pattern,omitempty"`
	Message string `json:"message,omitempty"`
}

// FormField describes a single field of a form component.
type FormField struct {
	Name        string           `json:"name"`
	Label       string           `json:"label"`
	Type        FieldType        `json:"type"`
	Placeholder string           `json:"placeholder,omitempty"`
	Required    bool             `json:"required,omitempty"`
	Options     []FieldOption    `json:"options,omitempty"`
	Validation  *FieldValidation `json:"validation,omitempty"`
}
