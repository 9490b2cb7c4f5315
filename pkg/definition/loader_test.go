package definition_test

import (
	"errors"
	"os"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formlayout/pkg/definition"
	"github.com/goliatone/go-formlayout/pkg/element"
	"github.com/goliatone/go-formlayout/pkg/form"
	"github.com/goliatone/go-formlayout/pkg/testsupport"
)

func loadTestdata(t *testing.T) *definition.Store {
	t.Helper()
	store, err := definition.LoadFS(os.DirFS("testdata"))
	if err != nil {
		t.Fatalf("load testdata: %v", err)
	}
	return store
}

func TestLoadFSAllFormats(t *testing.T) {
	store := loadTestdata(t)

	if diff := cmp.Diff([]string{"address", "signup", "user_filter"}, store.FormNames()); diff != "" {
		t.Fatalf("form names mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"users"}, store.TableNames()); diff != "" {
		t.Fatalf("table names mismatch (-want +got):\n%s", diff)
	}

	signup, ok := store.Form("signup")
	if !ok {
		t.Fatalf("signup form not found")
	}
	if signup.Source != "forms.yaml" {
		t.Fatalf("unexpected source %q", signup.Source)
	}
	if got := len(signup.Fields); got != 4 {
		t.Fatalf("expected 4 fields, got %d", got)
	}

	users, ok := store.Table("users")
	if !ok {
		t.Fatalf("users table not found")
	}
	if users.Source != "tables.toml" || len(users.Columns) != 3 || len(users.Operations) != 2 {
		t.Fatalf("unexpected table definition %+v", users)
	}
}

func TestBuildForm(t *testing.T) {
	store := loadTestdata(t)

	f, err := store.BuildForm("signup")
	if err != nil {
		t.Fatalf("build form: %v", err)
	}

	var names []string
	for _, field := range f.Fields() {
		names = append(names, field.Name())
	}
	if diff := cmp.Diff([]string{"email", "password", "country", "addresses"}, names); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}

	want := form.LayoutArray{"Account:", "Credentials", []string{"email:6", "password:6"}, true, ":", []string{"country", "addresses"}}
	testsupport.AssertLayoutArray(t, want, f.LayoutArray(false))

	email, _ := f.Field("email")
	if email.Type() != "email" || email.Attr("placeholder") != "you@example.com" || !email.HasClass("wide") {
		t.Fatalf("email field not configured: %+v", email.Attrs())
	}
	if diff := cmp.Diff([]form.Rule{{Kind: form.RuleRequired}}, email.Attr(form.ValidateAttr)); diff != "" {
		t.Fatalf("email rules mismatch (-want +got):\n%s", diff)
	}
	password, _ := f.Field("password")
	help, ok := password.Option("help").(element.HTML)
	if !ok {
		t.Fatalf("expected help markup, got %T", password.Option("help"))
	}
	if !strings.Contains(help.String(), "<b>12</b>") || strings.Contains(help.String(), "script") {
		t.Fatalf("help markup not sanitised: %q", help.String())
	}
	if f.Attr("method") != "post" {
		t.Fatalf("form attrs not applied: %+v", f.Attrs())
	}

	addresses, _ := f.Field("addresses")
	nested, ok := addresses.Option("form").(*form.Form)
	if !ok {
		t.Fatalf("expected nested form option, got %T", addresses.Option("form"))
	}
	city, err := nested.Field("city")
	if err != nil {
		t.Fatalf("nested city: %v", err)
	}
	wantCity := []form.Rule{{Kind: form.RuleMaxLength, Params: map[string]string{"value": "40"}}}
	if diff := cmp.Diff(wantCity, city.Attr(form.ValidateAttr)); diff != "" {
		t.Fatalf("nested rules mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildTable(t *testing.T) {
	store := loadTestdata(t)

	tbl, err := store.BuildTable("users")
	if err != nil {
		t.Fatalf("build table: %v", err)
	}
	if diff := cmp.Diff([]string{"email", "name", "id"}, tbl.Order()); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	id, _ := tbl.Column("id")
	if !id.IsHidden() {
		t.Fatalf("column left out of the order must be hidden")
	}
	email, _ := tbl.Column("email")
	if email.IsSortable() {
		t.Fatalf("email must not be sortable")
	}
	if expr, ok := email.QuickFilter(); !ok || expr != "contains" {
		t.Fatalf("unexpected quick filter %q %v", expr, ok)
	}
	if !email.HasFilter() || !email.Filter().HasField("q") {
		t.Fatalf("expected filter form built from user_filter")
	}
	if tbl.Attr("class") != "striped" {
		t.Fatalf("table attrs not applied")
	}

	var visible []string
	for _, button := range tbl.Operations(false) {
		visible = append(visible, button.Name())
	}
	if diff := cmp.Diff([]string{"edit"}, visible); diff != "" {
		t.Fatalf("visible operations mismatch (-want +got):\n%s", diff)
	}
	if edit, _ := tbl.Operation("edit"); edit.Icon() != "pencil" || edit.Label() != "Edit" {
		t.Fatalf("edit operation not configured")
	}
}

func TestBuildNotFound(t *testing.T) {
	store := loadTestdata(t)
	if _, err := store.BuildForm("missing"); !errors.Is(err, definition.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := store.BuildTable("missing"); !errors.Is(err, definition.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBuildFormDetectsCycles(t *testing.T) {
	doc := `{"forms": {
		"a": {"fields": [{"name": "child", "form": "b"}]},
		"b": {"fields": [{"name": "child", "form": "a"}]}
	}}`
	store, err := definition.LoadBytes([]byte(doc), "cycle.json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := store.BuildForm("a"); !errors.Is(err, definition.ErrCycle) {
		t.Fatalf("expected ErrCycle, got %v", err)
	}
}

func TestLoadFSErrors(t *testing.T) {
	cases := []struct {
		name string
		fs   fstest.MapFS
		want string
	}{
		{
			name: "duplicate form across files",
			fs: fstest.MapFS{
				"a.json": {Data: []byte(`{"forms": {"login": {"fields": [{"name": "user"}]}}}`)},
				"b.yaml": {Data: []byte("forms:\n  login:\n    fields:\n      - name: user\n")},
			},
			want: `duplicate form "login"`,
		},
		{
			name: "duplicate field",
			fs: fstest.MapFS{
				"a.yaml": {Data: []byte("forms:\n  login:\n    fields:\n      - name: user\n      - name: user\n")},
			},
			want: `duplicate field "user"`,
		},
		{
			name: "duplicate column",
			fs: fstest.MapFS{
				"a.toml": {Data: []byte("[[tables.t.columns]]\nname = \"a\"\n\n[[tables.t.columns]]\nname = \"a\"\n")},
			},
			want: `duplicate column "a"`,
		},
		{
			name: "invalid layout",
			fs: fstest.MapFS{
				"a.json": {Data: []byte(`{"forms": {"login": {"layout": [[1, 2]]}}}`)},
			},
			want: "layout",
		},
		{
			name: "empty file",
			fs: fstest.MapFS{
				"a.yaml": {Data: []byte("  \n")},
			},
			want: "is empty",
		},
		{
			name: "invalid syntax",
			fs: fstest.MapFS{
				"a.yml": {Data: []byte("forms: [unterminated")},
			},
			want: "invalid JSON or YAML",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := definition.LoadFS(tc.fs)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadFSSkipsOtherFiles(t *testing.T) {
	store, err := definition.LoadFS(fstest.MapFS{
		"README.md": {Data: []byte("# not a definition")},
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !store.Empty() {
		t.Fatalf("expected empty store")
	}

	empty, err := definition.LoadFS(nil)
	if err != nil || !empty.Empty() {
		t.Fatalf("nil filesystem must yield an empty store: %v", err)
	}
}
