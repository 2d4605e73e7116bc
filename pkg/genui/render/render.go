// Package render turns genui component trees into HTML and activates the
// action bindings attached to them.
package render

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"regboard-be/pkg/genui"
)

// ActionFunc handles an activated action binding. It receives the bound tool
// name and its parameters and returns the tool result.
type ActionFunc func(tool string, params map[string]any) (any, error)

// Renderer renders component trees. Rendering is total over the component
// vocabulary: unknown kinds come out as a visible placeholder, never as an
// error or a panic.
type Renderer struct {
	onAction ActionFunc
}

// New builds a renderer. onAction may be nil; activations then log and do
// nothing instead of failing.
func New(onAction ActionFunc) *Renderer {
	return &Renderer{onAction: onAction}
}

// Render returns the HTML for a component tree. All interpolated text is
// escaped; nested components in card and dialog slots go through this same
// entry point.
func (r *Renderer) Render(c *genui.UIComponent) string {
	var b strings.Builder
	r.render(&b, c)
	return b.String()
}

func (r *Renderer) render(b *strings.Builder, c *genui.UIComponent) {
	if c == nil {
		b.WriteString(`<div class="ui-unknown">missing component</div>`)
		return
	}

	switch c.Kind {
	case genui.KindButton:
		r.renderButton(b, c)
	case genui.KindCard:
		r.renderCard(b, c)
	case genui.KindDataTable:
		r.renderDataTable(b, c)
	case genui.KindDialog:
		r.renderDialog(b, c)
	case genui.KindForm:
		r.renderForm(b, c)
	case genui.KindInput:
		r.renderInput(b, c)
	case genui.KindChart:
		r.renderChart(b, c)
	case genui.KindAlert:
		r.renderCallout(b, c, "ui-alert")
	case genui.KindBadge:
		r.renderBadge(b, c)
	case genui.KindToast:
		r.renderCallout(b, c, "ui-toast")
	default:
		fmt.Fprintf(b, `<div class="ui-unknown">unknown component kind: %s</div>`, html.EscapeString(string(c.Kind)))
	}
}

func (r *Renderer) renderChildren(b *strings.Builder, c *genui.UIComponent) {
	for _, child := range c.Children {
		r.render(b, child)
	}
}

func (r *Renderer) renderSlot(b *strings.Builder, slot *genui.Slot) {
	if slot == nil {
		return
	}
	if slot.Component != nil {
		r.render(b, slot.Component)
		return
	}
	b.WriteString(html.EscapeString(slot.Text))
}

func (r *Renderer) renderButton(b *strings.Builder, c *genui.UIComponent) {
	props, _ := c.Props.(genui.ButtonProps)

	class := classes("ui-button", c.Variant)
	if props.Size != "" && props.Size != "default" {
		class += " ui-button--" + html.EscapeString(props.Size)
	}

	fmt.Fprintf(b, `<button type="button" class="%s"%s>%s</button>`,
		class, actionAttrs(c), html.EscapeString(props.Text))
	r.renderChildren(b, c)
}

func (r *Renderer) renderBadge(b *strings.Builder, c *genui.UIComponent) {
	props, _ := c.Props.(genui.BadgeProps)
	fmt.Fprintf(b, `<span class="%s">%s</span>`, classes("ui-badge", c.Variant), html.EscapeString(props.Text))
}

func (r *Renderer) renderInput(b *strings.Builder, c *genui.UIComponent) {
	props, _ := c.Props.(genui.InputProps)

	inputType := props.Type
	if inputType == "" {
		inputType = "text"
	}

	fmt.Fprintf(b, `<input class="%s" type="%s"`, classes("ui-input", c.Variant), html.EscapeString(inputType))
	if props.Placeholder != "" {
		fmt.Fprintf(b, ` placeholder="%s"`, html.EscapeString(props.Placeholder))
	}
	if props.Value != "" {
		fmt.Fprintf(b, ` value="%s"`, html.EscapeString(props.Value))
	}
	b.WriteString(actionAttrs(c))
	b.WriteString("/>")
}

// renderCallout covers alert and toast, which share a shape.
func (r *Renderer) renderCallout(b *strings.Builder, c *genui.UIComponent, base string) {
	var title, description string
	switch props := c.Props.(type) {
	case genui.AlertProps:
		title, description = props.Title, props.Description
	case genui.ToastProps:
		title, description = props.Title, props.Description
	}

	fmt.Fprintf(b, `<div class="%s" role="status"><strong>%s</strong>`, classes(base, c.Variant), html.EscapeString(title))
	if description != "" {
		fmt.Fprintf(b, `<p>%s</p>`, html.EscapeString(description))
	}
	r.renderChildren(b, c)
	b.WriteString("</div>")
}

func (r *Renderer) renderCard(b *strings.Builder, c *genui.UIComponent) {
	props, _ := c.Props.(genui.CardProps)

	fmt.Fprintf(b, `<div class="%s"%s>`, classes("ui-card", c.Variant), actionAttrs(c))
	fmt.Fprintf(b, `<div class="ui-card__header"><h3>%s</h3>`, html.EscapeString(props.Title))
	if props.Description != "" {
		fmt.Fprintf(b, `<p>%s</p>`, html.EscapeString(props.Description))
	}
	b.WriteString("</div>")

	b.WriteString(`<div class="ui-card__content">`)
	r.renderSlot(b, props.Content)
	r.renderChildren(b, c)
	b.WriteString("</div>")

	if props.Footer != nil {
		b.WriteString(`<div class="ui-card__footer">`)
		r.renderSlot(b, props.Footer)
		b.WriteString("</div>")
	}
	b.WriteString("</div>")
}

func (r *Renderer) renderDataTable(b *strings.Builder, c *genui.UIComponent) {
	props, _ := c.Props.(genui.DataTableProps)

	fmt.Fprintf(b, `<table class="%s"%s><thead><tr>`, classes("ui-data-table", c.Variant), actionAttrs(c))
	for _, col := range props.Columns {
		sortable := ""
		if col.Sortable {
			sortable = ` data-sortable="true"`
		}
		fmt.Fprintf(b, `<th data-key="%s"%s>%s</th>`, html.EscapeString(col.Key), sortable, html.EscapeString(col.Header))
	}
	b.WriteString("</tr></thead><tbody>")

	// One row per data entry, one cell per column, in given order. Missing
	// values render as an empty cell.
	for _, row := range props.Data {
		b.WriteString("<tr>")
		for _, col := range props.Columns {
			b.WriteString("<td>")
			if v, ok := row[col.Key]; ok && v != nil {
				b.WriteString(html.EscapeString(cellText(v)))
			}
			b.WriteString("</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")
	r.renderChildren(b, c)
}

func (r *Renderer) renderDialog(b *strings.Builder, c *genui.UIComponent) {
	props, _ := c.Props.(genui.DialogProps)

	fmt.Fprintf(b, `<div class="%s"%s>`, classes("ui-dialog", c.Variant), actionAttrs(c))
	if props.Trigger != nil {
		b.WriteString(`<div class="ui-dialog__trigger">`)
		r.render(b, props.Trigger)
		b.WriteString("</div>")
	}

	fmt.Fprintf(b, `<div class="ui-dialog__panel" hidden><h2>%s</h2>`, html.EscapeString(props.Title))
	if props.Description != "" {
		fmt.Fprintf(b, `<p>%s</p>`, html.EscapeString(props.Description))
	}
	if props.Content != nil {
		b.WriteString(`<div class="ui-dialog__content">`)
		r.render(b, props.Content)
		b.WriteString("</div>")
	}

	confirm := props.ConfirmText
	if confirm == "" {
		confirm = "Confirm"
	}
	cancel := props.CancelText
	if cancel == "" {
		cancel = "Cancel"
	}
	fmt.Fprintf(b, `<div class="ui-dialog__actions"><button type="button" data-dialog="cancel">%s</button><button type="button" data-dialog="confirm">%s</button></div>`,
		html.EscapeString(cancel), html.EscapeString(confirm))

	r.renderChildren(b, c)
	b.WriteString("</div></div>")
}

func (r *Renderer) renderForm(b *strings.Builder, c *genui.UIComponent) {
	props, _ := c.Props.(genui.FormProps)

	fmt.Fprintf(b, `<form class="%s"%s>`, classes("ui-form", c.Variant), actionAttrs(c))
	for _, field := range props.Fields {
		r.renderField(b, field)
	}
	r.renderChildren(b, c)
	b.WriteString(`<button type="submit" class="ui-button">Submit</button></form>`)
}

func (r *Renderer) renderField(b *strings.Builder, field genui.FormField) {
	name := html.EscapeString(field.Name)
	required := ""
	if field.Required {
		required = " required"
	}

	fmt.Fprintf(b, `<label class="ui-form__field">%s`, html.EscapeString(field.Label))
	switch field.Type {
	case genui.FieldTextarea:
		fmt.Fprintf(b, `<textarea name="%s"`, name)
		if field.Placeholder != "" {
			fmt.Fprintf(b, ` placeholder="%s"`, html.EscapeString(field.Placeholder))
		}
		fmt.Fprintf(b, `%s></textarea>`, required)
	case genui.FieldSelect:
		fmt.Fprintf(b, `<select name="%s"%s>`, name, required)
		for _, opt := range field.Options {
			fmt.Fprintf(b, `<option value="%s">%s</option>`, html.EscapeString(opt.Value), html.EscapeString(opt.Label))
		}
		b.WriteString("</select>")
	default:
		fieldType := string(field.Type)
		if fieldType == "" {
			fieldType = "text"
		}
		fmt.Fprintf(b, `<input name="%s" type="%s"`, name, html.EscapeString(fieldType))
		if field.Placeholder != "" {
			fmt.Fprintf(b, ` placeholder="%s"`, html.EscapeString(field.Placeholder))
		}
		fmt.Fprintf(b, `%s/>`, required)
	}
	b.WriteString("</label>")
}

func (r *Renderer) renderChart(b *strings.Builder, c *genui.UIComponent) {
	props, _ := c.Props.(genui.ChartProps)

	fmt.Fprintf(b, `<figure class="ui-chart ui-chart--%s" data-x-key="%s" data-y-key="%s">`,
		html.EscapeString(string(props.Type)), html.EscapeString(props.XKey), html.EscapeString(props.YKey))
	if props.Title != "" {
		fmt.Fprintf(b, `<figcaption>%s</figcaption>`, html.EscapeString(props.Title))
	}

	// json.Marshal escapes <, > and & by default, so the data island cannot
	// break out of the script element.
	if data, err := json.Marshal(props.Data); err == nil {
		fmt.Fprintf(b, `<script type="application/json">%s</script>`, data)
	}
	r.renderChildren(b, c)
	b.WriteString("</figure>")
}

func classes(base string, v genui.Variant) string {
	if v == "" || v == genui.VariantDefault {
		return base
	}
	return base + " " + base + "--" + html.EscapeString(string(v))
}

// actionAttrs annotates an element with its action bindings so a thin client
// can wire them up. Parameters stay server side.
func actionAttrs(c *genui.UIComponent) string {
	if len(c.Actions) == 0 {
		return ""
	}
	var b strings.Builder
	for _, a := range c.Actions {
		fmt.Fprintf(&b, ` data-on-%s="%s"`, html.EscapeString(string(a.Event)), html.EscapeString(a.Tool))
	}
	return b.String()
}

func cellText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		// JSON numbers arrive as float64; render integers without a decimal.
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
