package openapi_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formlayout/pkg/form"
	"github.com/goliatone/go-formlayout/pkg/openapi"
	"github.com/goliatone/go-formlayout/pkg/testsupport"
)

func loadDocument(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "users.json"))
	if err != nil {
		t.Fatalf("read document: %v", err)
	}
	return data
}

func TestOperations(t *testing.T) {
	ops, err := openapi.Operations(context.Background(), loadDocument(t))
	if err != nil {
		t.Fatalf("operations: %v", err)
	}

	want := []openapi.Operation{
		{ID: "createUser", Method: "POST", Path: "/users", Summary: "Create a user", HasBody: true},
		{ID: "listUsers", Method: "GET", Path: "/users", Summary: "List users"},
		{ID: "put:/users/{id}/avatar", Method: "PUT", Path: "/users/{id}/avatar", HasBody: true},
	}
	if diff := cmp.Diff(want, ops); diff != "" {
		t.Fatalf("operations mismatch (-want +got):\n%s", diff)
	}
}

func TestFormFromOperation(t *testing.T) {
	f, rules, err := openapi.FormFromOperation(context.Background(), loadDocument(t), "createUser")
	if err != nil {
		t.Fatalf("form from operation: %v", err)
	}

	types := map[string]string{}
	var names []string
	for _, field := range f.Fields() {
		names = append(names, field.Name())
		types[field.Name()] = field.Type()
	}
	wantNames := []string{"address[city]", "address[zip]", "age", "contacts", "email", "id", "name", "newsletter", "role", "tags"}
	if diff := cmp.Diff(wantNames, names); diff != "" {
		t.Fatalf("field names mismatch (-want +got):\n%s", diff)
	}
	wantTypes := map[string]string{
		"address[city]": "text",
		"address[zip]":  "text",
		"age":           "number",
		"contacts":      "multiple",
		"email":         "email",
		"id":            "text",
		"name":          "text",
		"newsletter":    "checkbox",
		"role":          "select",
		"tags":          "tags",
	}
	if diff := cmp.Diff(wantTypes, types); diff != "" {
		t.Fatalf("field types mismatch (-want +got):\n%s", diff)
	}

	wantRules := form.RuleSet{
		"address.city": {
			{Kind: form.RuleRequired},
			{Kind: form.RuleMaxLength, Params: map[string]string{"value": "40"}},
		},
		"address.zip": {
			{Kind: form.RulePattern, Params: map[string]string{"pattern": "^[0-9]{5}$"}},
		},
		"age": {
			{Kind: form.RuleMin, Params: map[string]string{"value": "18"}},
			{Kind: form.RuleMax, Params: map[string]string{"value": "130"}},
		},
		"contacts.*.name": {{Kind: form.RuleRequired}},
		"email":           {{Kind: form.RuleRequired}},
		"name": {
			{Kind: form.RuleMinLength, Params: map[string]string{"value": "2"}},
			{Kind: form.RuleMaxLength, Params: map[string]string{"value": "50"}},
		},
	}
	if diff := cmp.Diff(wantRules, rules); diff != "" {
		t.Fatalf("rules mismatch (-want +got):\n%s", diff)
	}

	goldenPath := filepath.Join("testdata", "create_user.layout.json")
	gotLayout := f.LayoutArray(false)
	testsupport.WriteGolden(t, goldenPath, gotLayout)
	testsupport.AssertLayoutArray(t, testsupport.MustLoadLayoutArray(t, goldenPath), gotLayout)

	if f.Attr("method") != "post" || f.Attr("action") != "/users" {
		t.Fatalf("unexpected form attrs %+v", f.Attrs())
	}
}

func TestFormFromOperationFieldDetails(t *testing.T) {
	f, _, err := openapi.FormFromOperation(context.Background(), loadDocument(t), "createUser")
	if err != nil {
		t.Fatalf("form from operation: %v", err)
	}

	field := func(name string) *form.Field {
		t.Helper()
		got, err := f.Field(name)
		if err != nil {
			t.Fatalf("field %q: %v", name, err)
		}
		return got
	}

	if diff := cmp.Diff([]any{"admin", "user"}, field("role").Option("values")); diff != "" {
		t.Fatalf("role values mismatch (-want +got):\n%s", diff)
	}
	if got := field("role").Value(); got != "user" {
		t.Fatalf("expected default value, got %v", got)
	}
	if got := field("email").Option("label"); got != "Email address" {
		t.Fatalf("expected title as label, got %v", got)
	}
	if got := field("newsletter").Option("help"); got != "Receive updates" {
		t.Fatalf("expected description as help, got %v", got)
	}
	if !field("id").HasAttr("readonly") {
		t.Fatalf("readOnly properties must be disabled")
	}
	if diff := cmp.Diff([]form.Rule{{Kind: form.RuleRequired}}, field("email").Attr(form.ValidateAttr)); diff != "" {
		t.Fatalf("email rules not attached (-want +got):\n%s", diff)
	}

	nested, ok := field("contacts").Option("form").(*form.Form)
	if !ok {
		t.Fatalf("expected nested contact form")
	}
	if !nested.HasField("name") || !nested.HasField("phone") {
		t.Fatalf("nested form fields missing")
	}
	contactName, _ := nested.Field("name")
	if diff := cmp.Diff([]form.Rule{{Kind: form.RuleRequired}}, contactName.Attr(form.ValidateAttr)); diff != "" {
		t.Fatalf("nested rules not attached (-want +got):\n%s", diff)
	}
}

func TestFormFromOperationWithoutIDAndMediaTypes(t *testing.T) {
	f, rules, err := openapi.FormFromOperation(context.Background(), loadDocument(t), "put:/users/{id}/avatar")
	if err != nil {
		t.Fatalf("form from operation: %v", err)
	}
	if !f.HasField("file") || len(rules) != 0 {
		t.Fatalf("expected a single file field without rules")
	}

	empty, _, err := openapi.FormFromOperation(context.Background(), loadDocument(t), "listUsers")
	if err != nil {
		t.Fatalf("form from operation: %v", err)
	}
	if len(empty.Fields()) != 0 {
		t.Fatalf("operation without body must produce an empty form")
	}
}

func TestFormFromOperationMaxDepth(t *testing.T) {
	f, _, err := openapi.FormFromOperation(context.Background(), loadDocument(t), "createUser", openapi.WithMaxDepth(1))
	if err != nil {
		t.Fatalf("form from operation: %v", err)
	}
	if f.HasField("address[city]") {
		t.Fatalf("nested object must be skipped past the depth limit")
	}
	if !f.HasField("email") {
		t.Fatalf("top-level fields must remain")
	}
}

func TestFormFromOperationErrors(t *testing.T) {
	ctx := context.Background()
	if _, _, err := openapi.FormFromOperation(ctx, loadDocument(t), "missing"); !errors.Is(err, openapi.ErrOperationNotFound) {
		t.Fatalf("expected ErrOperationNotFound, got %v", err)
	}
	if _, _, err := openapi.FormFromOperation(ctx, nil, "createUser"); err == nil {
		t.Fatalf("expected error for empty document")
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := openapi.Operations(cancelled, loadDocument(t)); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
