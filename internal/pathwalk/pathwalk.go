package pathwalk

import (
	"reflect"
	"strconv"
	"strings"
)

// Split converts a bracketed field name such as `user[address][0]` into its
// path segments (`user`, `address`, `0`). Empty segments produced by `[]`
// are dropped; "0" is a real segment.
func Split(name string) []string {
	if name == "" {
		return nil
	}
	replacer := strings.NewReplacer("][", "[", "]", "")
	parts := strings.Split(replacer.Replace(name), "[")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

// DotToBracket rewrites a dotted key into bracket notation: `a.b.*.c`
// becomes `a[b][][c]`. The wildcard segment turns into an empty bracket.
func DotToBracket(key string) string {
	parts := strings.Split(key, ".")
	var b strings.Builder
	for idx, part := range parts {
		if idx == 0 {
			b.WriteString(part)
			continue
		}
		if part == "*" {
			part = ""
		}
		b.WriteString("[")
		b.WriteString(part)
		b.WriteString("]")
	}
	return b.String()
}

// Walk descends into data following segments. Maps are indexed by key,
// slices and arrays by numeric position, structs by exported field name or
// json tag. It reports false as soon as a segment is missing or resolves to
// nil, leaving the decision of what to do with partial input to the caller.
func Walk(data any, segments []string) (any, bool) {
	current := reflect.ValueOf(data)
	for _, segment := range segments {
		next, ok := step(current, segment)
		if !ok {
			return nil, false
		}
		current = next
	}
	current = indirect(current)
	if !current.IsValid() {
		return nil, false
	}
	return current.Interface(), true
}

func step(value reflect.Value, segment string) (reflect.Value, bool) {
	value = indirect(value)
	if !value.IsValid() {
		return reflect.Value{}, false
	}

	switch value.Kind() {
	case reflect.Map:
		key, ok := mapKey(value.Type().Key(), segment)
		if !ok {
			return reflect.Value{}, false
		}
		found := value.MapIndex(key)
		if !found.IsValid() || isNil(found) {
			return reflect.Value{}, false
		}
		return found, true
	case reflect.Slice, reflect.Array:
		idx, err := strconv.Atoi(segment)
		if err != nil || idx < 0 || idx >= value.Len() {
			return reflect.Value{}, false
		}
		found := value.Index(idx)
		if isNil(found) {
			return reflect.Value{}, false
		}
		return found, true
	case reflect.Struct:
		found, ok := structField(value, segment)
		if !ok || isNil(found) {
			return reflect.Value{}, false
		}
		return found, true
	default:
		return reflect.Value{}, false
	}
}

func indirect(value reflect.Value) reflect.Value {
	for value.IsValid() && (value.Kind() == reflect.Pointer || value.Kind() == reflect.Interface) {
		if value.IsNil() {
			return reflect.Value{}
		}
		value = value.Elem()
	}
	return value
}

func isNil(value reflect.Value) bool {
	switch value.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return value.IsNil()
	default:
		return false
	}
}

func mapKey(keyType reflect.Type, segment string) (reflect.Value, bool) {
	switch keyType.Kind() {
	case reflect.String:
		return reflect.ValueOf(segment).Convert(keyType), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(segment, 10, 64)
		if err != nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(n).Convert(keyType), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(segment, 10, 64)
		if err != nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(n).Convert(keyType), true
	case reflect.Interface:
		return reflect.ValueOf(segment), true
	default:
		return reflect.Value{}, false
	}
}

func structField(value reflect.Value, segment string) (reflect.Value, bool) {
	typ := value.Type()
	for idx := 0; idx < typ.NumField(); idx++ {
		field := typ.Field(idx)
		if !field.IsExported() {
			continue
		}
		if tag := jsonName(field.Tag.Get("json")); tag != "" && tag == segment {
			return value.Field(idx), true
		}
	}
	for idx := 0; idx < typ.NumField(); idx++ {
		field := typ.Field(idx)
		if field.IsExported() && strings.EqualFold(field.Name, segment) {
			return value.Field(idx), true
		}
	}
	return reflect.Value{}, false
}

func jsonName(tag string) string {
	if tag == "" || tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	return name
}
