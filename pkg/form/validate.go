package form

import (
	"sort"
	"strings"

	"github.com/goliatone/go-formlayout/internal/pathwalk"
)

// ValidateAttr is the field attribute receiving the rule list.
const ValidateAttr = "data-validate"

// Canonical rule kinds. Numeric bounds and lengths carry their threshold in
// Params["value"]; pattern rules keep the expression in Params["pattern"].
const (
	RuleRequired  = "required"
	RuleMin       = "min"
	RuleMax       = "max"
	RuleMinLength = "minLength"
	RuleMaxLength = "maxLength"
	RulePattern   = "pattern"
)

// Rule is a single validation constraint. The form only stores rules;
// evaluating them is up to the validator consuming the attribute.
type Rule struct {
	Kind   string            `json:"kind" yaml:"kind" toml:"kind"`
	Params map[string]string `json:"params,omitempty" yaml:"params,omitempty" toml:"params,omitempty"`
}

// RuleSet maps dotted field paths to their rules. A `*` segment stands for
// every item of a repeating sub-form (`items.*.name`).
type RuleSet map[string][]Rule

// RuleSource is implemented by validators able to describe their rules.
type RuleSource interface {
	Rules() RuleSet
}

// Rules lets a RuleSet act as its own source.
func (s RuleSet) Rules() RuleSet { return s }

// Validate attaches the rules of src to the matching fields through the
// data-validate attribute. For every key it tries, in order: the field named
// by the key itself, the field named by the bracket form of the key
// (`a.b` → `a[b]`), and for `outer.*.inner` keys the field `inner` of the
// nested forms stored in the `form` and `create` options of field `outer`.
// Passing nil removes the attribute from every field.
func (f *Form) Validate(src RuleSource) {
	var rules RuleSet
	if src != nil {
		rules = src.Rules()
	}
	if rules == nil {
		for _, field := range f.fields.Values() {
			field.DelAttr(ValidateAttr)
		}
		return
	}

	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		list := rules[key]
		if field, ok := f.fields.Get(key); ok {
			attachRules(field, list)
		}
		if field, ok := f.fields.Get(pathwalk.DotToBracket(key)); ok {
			attachRules(field, list)
		}
		if idx := strings.Index(key, ".*."); idx > 0 {
			parts := strings.Split(key, ".*.")
			f.attachNested(parts[0], parts[1], list)
		}
	}
}

func (f *Form) attachNested(outer, inner string, rules []Rule) {
	field, ok := f.fields.Get(outer)
	if !ok {
		return
	}
	for _, option := range []string{"form", "create"} {
		nested, ok := field.Option(option).(*Form)
		if !ok || nested == nil {
			continue
		}
		if target, ok := nested.fields.Get(inner); ok {
			attachRules(target, rules)
		}
	}
}

func attachRules(field *Field, rules []Rule) {
	field.SetAttr(ValidateAttr, append([]Rule{}, rules...))
}
