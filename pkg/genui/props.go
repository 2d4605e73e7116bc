package genui

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Props is the per-kind property record of a component. The concrete type is
// keyed by the component kind, so a card can never carry button properties
// without validation noticing.
type Props interface {
	Kind() Kind
}

// Slot is a content position that holds either plain text or a nested
// component. In JSON it is a bare string or a component object.
type Slot struct {
	Text      string
	Component *UIComponent
}

// TextSlot returns a text-only slot.
func TextSlot(text string) *Slot {
	return &Slot{Text: text}
}

// ComponentSlot returns a slot holding a nested component.
func ComponentSlot(c *UIComponent) *Slot {
	return &Slot{Component: c}
}

func (s Slot) MarshalJSON() ([]byte, error) {
	if s.Component != nil {
		return json.Marshal(s.Component)
	}
	return json.Marshal(s.Text)
}

func (s *Slot) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		return json.Unmarshal(trimmed, &s.Text)
	}
	var c UIComponent
	if err := json.Unmarshal(trimmed, &c); err != nil {
		return fmt.Errorf("slot content: %w", err)
	}
	s.Component = &c
	return nil
}

type ButtonProps struct {
	Text string `json:"text"`
	Size string `json:"size,omitempty"` // sm, default, lg
}

func (ButtonProps) Kind() Kind { return KindButton }

type CardProps struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Content     *Slot  `json:"content,omitempty"`
	Footer      *Slot  `json:"footer,omitempty"`
}

func (CardProps) Kind() Kind { return KindCard }

// Column defines one column of a data table.
type Column struct {
	Key      string `json:"key"`
	Header   string `json:"header"`
	Type     string `json:"type,omitempty"` // text, number, date, badge
	Sortable bool   `json:"sortable,omitempty"`
	Width    string `json:"width,omitempty"`
}

type DataTableProps struct {
	Columns      []Column         `json:"columns"`
	Data         []map[string]any `json:"data"`
	Pagination   bool             `json:"pagination,omitempty"`
	PageSize     int              `json:"pageSize,omitempty"`
	Search       bool             `json:"search,omitempty"`
	SearchColumn string           `json:"searchColumn,omitempty"`
}

func (DataTableProps) Kind() Kind { return KindDataTable }

type DialogProps struct {
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Trigger     *UIComponent `json:"trigger,omitempty"`
	Content     *UIComponent `json:"content,omitempty"`
	ConfirmText string       `json:"confirmText,omitempty"`
	CancelText  string       `json:"cancelText,omitempty"`
}

func (DialogProps) Kind() Kind { return KindDialog }

type FormProps struct {
	Fields []FormField `json:"fields"`
}

func (FormProps) Kind() Kind { return KindForm }

type InputProps struct {
	Placeholder string `json:"placeholder,omitempty"`
	Type        string `json:"type,omitempty"`
	Value       string `json:"value,omitempty"`
}

func (InputProps) Kind() Kind { return KindInput }

// ChartType is the plot family of a chart component.
type ChartType string

const (
	ChartLine ChartType = "line"
	ChartBar  ChartType = "bar"
	ChartPie  ChartType = "pie"
	ChartArea ChartType = "area"
)

type ChartProps struct {
	Type  ChartType        `json:"type"`
	Title string           `json:"title,omitempty"`
	Data  []map[string]any `json:"data"`
	XKey  string           `json:"xKey"`
	YKey  string           `json:"yKey"`
}

func (ChartProps) Kind() Kind { return KindChart }

type AlertProps struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

func (AlertProps) Kind() Kind { return KindAlert }

type BadgeProps struct {
	Text string `json:"text"`
}

func (BadgeProps) Kind() Kind { return KindBadge }

type ToastProps struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

func (ToastProps) Kind() Kind { return KindToast }

// RawProps holds properties that could not be bound to a typed record, which
// only happens for kinds outside the vocabulary.
type RawProps map[string]any

func (RawProps) Kind() Kind { return "" }

func decodeProps(kind Kind, raw json.RawMessage) (Props, error) {
	var (
		props Props
		err   error
	)

	switch kind {
	case KindButton:
		var p ButtonProps
		err = json.Unmarshal(raw, &p)
		props = p
	case KindCard:
		var p CardProps
		err = json.Unmarshal(raw, &p)
		props = p
	case KindDataTable:
		var p DataTableProps
		err = json.Unmarshal(raw, &p)
		props = p
	case KindDialog:
		var p DialogProps
		err = json.Unmarshal(raw, &p)
		props = p
	case KindForm:
		var p FormProps
		err = json.Unmarshal(raw, &p)
		props = p
	case KindInput:
		var p InputProps
		err = json.Unmarshal(raw, &p)
		props = p
	case KindChart:
		var p ChartProps
		err = json.Unmarshal(raw, &p)
		props = p
	case KindAlert:
		var p AlertProps
		err = json.Unmarshal(raw, &p)
		props = p
	case KindBadge:
		var p BadgeProps
		err = json.Unmarshal(raw, &p)
		props = p
	case KindToast:
		var p ToastProps
		err = json.Unmarshal(raw, &p)
		props = p
	default:
		var p RawProps
		err = json.Unmarshal(raw, &p)
		props = p
	}

	if err != nil {
		return nil, fmt.Errorf("%s props: %w", kind, err)
	}
	return props, nil
}
