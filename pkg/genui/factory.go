package genui

// Factory helpers for the common component shapes. None of them validate.

func NewButton(text string) *UIComponent {
	return New(KindButton, ButtonProps{Text: text})
}

func NewBadge(text string) *UIComponent {
	return New(KindBadge, BadgeProps{Text: text})
}

func NewInput(props InputProps) *UIComponent {
	return New(KindInput, props)
}

func NewAlert(title string, description string) *UIComponent {
	return New(KindAlert, AlertProps{Title: title, Description: description})
}

func NewToast(title string, description string) *UIComponent {
	return New(KindToast, ToastProps{Title: title, Description: description})
}

func NewForm(fields ...FormField) *UIComponent {
	return New(KindForm, FormProps{Fields: fields})
}

func NewDataTable(columns []Column, rows []map[string]any) *UIComponent {
	if rows == nil {
		rows = []map[string]any{}
	}
	return New(KindDataTable, DataTableProps{Columns: columns, Data: rows})
}

func NewChart(props ChartProps) *UIComponent {
	if props.Data == nil {
		props.Data = []map[string]any{}
	}
	return New(KindChart, props)
}

// NewCard builds a card, adopting any components nested in its content and
// footer slots. Adoption fails if a nested component already has a parent.
func NewCard(props CardProps) (*UIComponent, error) {
	c := New(KindCard, props)
	for _, embedded := range c.embeddedComponents() {
		if err := c.adopt(embedded); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// NewDialog builds a dialog, adopting its trigger and content components.
func NewDialog(props DialogProps) (*UIComponent, error) {
	c := New(KindDialog, props)
	for _, embedded := range c.embeddedComponents() {
		if err := c.adopt(embedded); err != nil {
			return nil, err
		}
	}
	return c, nil
}
