package openapi

import (
	"maps"
	"slices"
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formlayout/pkg/form"
)

// builder turns one object schema into a form. Top-level fields get a row
// each; the fields of a nested object share one row grouped under the
// object's dotted path.
type builder struct {
	cfg    config
	form   *form.Form
	layout *form.Layout
	rules  form.RuleSet
}

func newBuilder(cfg config) *builder {
	f := form.New()
	return &builder{cfg: cfg, form: f, layout: form.NewLayout(f), rules: form.RuleSet{}}
}

func (b *builder) finish() *form.Form {
	_ = b.form.SetLayout(b.layout)
	if len(b.rules) > 0 {
		b.form.Validate(b.rules)
	}
	return b.form
}

func (b *builder) object(schema *openapi3.Schema, prefix, rulePrefix string, depth int) {
	if schema == nil || depth >= b.cfg.maxDepth {
		return
	}

	var group *form.Row
	for _, name := range slices.Sorted(maps.Keys(schema.Properties)) {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		prop := ref.Value
		fieldName, ruleKey := name, name
		if prefix != "" {
			fieldName = prefix + "[" + name + "]"
			ruleKey = rulePrefix + "." + name
		}

		if isObject(prop) {
			b.object(prop, fieldName, ruleKey, depth+1)
			continue
		}

		field := b.field(fieldName, prop, depth)
		b.form.AddField(field)
		if prefix == "" {
			_ = b.layout.NewRow().AddField(field, 0)
		} else {
			if group == nil {
				group = b.layout.NewRow(form.WithParent(rulePrefix))
			}
			_ = group.AddField(field, 0)
		}

		if rules := rulesFor(prop, slices.Contains(schema.Required, name)); len(rules) > 0 {
			b.rules[ruleKey] = rules
		}
		if nested, ok := field.Option("form").(*form.Form); ok {
			b.mergeNested(ruleKey, nested)
		}
	}
}

func (b *builder) field(name string, prop *openapi3.Schema, depth int) *form.Field {
	field := form.NewField(name, inputType(prop))
	if prop.Title != "" {
		field.SetOption("label", prop.Title)
	}
	if prop.Description != "" {
		field.SetOption("help", prop.Description)
	}
	if prop.Default != nil {
		field.SetValue(prop.Default)
	}
	if len(prop.Enum) > 0 {
		field.SetOption("values", slices.Clone(prop.Enum))
	}

	if prop.Type.Is(openapi3.TypeArray) && prop.Items != nil && prop.Items.Value != nil {
		items := prop.Items.Value
		switch {
		case isObject(items):
			nested := newBuilder(b.cfg)
			nested.object(items, "", "", depth+1)
			field.SetType("multiple")
			field.SetOption("form", nested.finish())
		case len(items.Enum) > 0:
			field.SetOption("values", slices.Clone(items.Enum))
		}
	}

	if prop.ReadOnly {
		field.Disable()
	}
	return field
}

// mergeNested exposes the rules of a repeating sub-form under
// `outer.*.inner` keys.
func (b *builder) mergeNested(outer string, nested *form.Form) {
	for _, field := range nested.Fields() {
		rules, ok := field.Attr(form.ValidateAttr).([]form.Rule)
		if !ok || len(rules) == 0 {
			continue
		}
		b.rules[outer+".*."+field.Name()] = slices.Clone(rules)
	}
}

func isObject(schema *openapi3.Schema) bool {
	return schema.Type.Is(openapi3.TypeObject) || (schema.Type == nil && len(schema.Properties) > 0)
}

func inputType(schema *openapi3.Schema) string {
	switch {
	case schema.Type.Is(openapi3.TypeBoolean):
		return "checkbox"
	case schema.Type.Is(openapi3.TypeInteger), schema.Type.Is(openapi3.TypeNumber):
		return "number"
	case schema.Type.Is(openapi3.TypeArray):
		return "tags"
	case len(schema.Enum) > 0:
		return "select"
	}
	switch schema.Format {
	case "email":
		return "email"
	case "date":
		return "date"
	case "date-time":
		return "datetime-local"
	case "password":
		return "password"
	case "uri", "url":
		return "url"
	}
	return "text"
}

func rulesFor(schema *openapi3.Schema, required bool) []form.Rule {
	var rules []form.Rule
	if required {
		rules = append(rules, form.Rule{Kind: form.RuleRequired})
	}
	if schema.Min != nil {
		rules = append(rules, valueRule(form.RuleMin, formatFloat(*schema.Min)))
	}
	if schema.Max != nil {
		rules = append(rules, valueRule(form.RuleMax, formatFloat(*schema.Max)))
	}
	if schema.MinLength > 0 {
		rules = append(rules, valueRule(form.RuleMinLength, strconv.FormatUint(schema.MinLength, 10)))
	}
	if schema.MaxLength != nil {
		rules = append(rules, valueRule(form.RuleMaxLength, strconv.FormatUint(*schema.MaxLength, 10)))
	}
	if schema.Pattern != "" {
		rules = append(rules, form.Rule{Kind: form.RulePattern, Params: map[string]string{"pattern": schema.Pattern}})
	}
	return rules
}

func valueRule(kind, value string) form.Rule {
	return form.Rule{Kind: kind, Params: map[string]string{"value": value}}
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
