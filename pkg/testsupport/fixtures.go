package testsupport

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formlayout/pkg/form"
)

// NewForm returns a form with one text field per name, registered in order.
func NewForm(names ...string) *form.Form {
	f := form.New()
	for _, name := range names {
		f.AddField(form.NewField(name, "text"))
	}
	return f
}

// MustLoadLayoutArray reads a JSON or YAML layout array fixture.
func MustLoadLayoutArray(t *testing.T, path string) form.LayoutArray {
	t.Helper()

	data, err := LoadLayoutArray(path)
	if err != nil {
		t.Fatalf("load layout array: %v", err)
	}
	return data
}

// LoadLayoutArray reads a layout array fixture, returning an error for
// callers managing setup outside of *testing.T.
func LoadLayoutArray(path string) (form.LayoutArray, error) {
	if path == "" {
		return nil, errors.New("testsupport: layout array path is required")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read layout array: %w", err)
	}
	data, err := form.ParseLayoutArray(raw)
	if err != nil {
		return nil, fmt.Errorf("testsupport: parse layout array: %w", err)
	}
	return data, nil
}

// AssertLayoutArray fails the test when got differs from want.
func AssertLayoutArray(t *testing.T, want, got form.LayoutArray) {
	t.Helper()

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("layout array mismatch (-want +got):\n%s", diff)
	}
}

// WriteGolden rewrites the golden at path with value, as indented JSON, when
// UPDATE_GOLDENS is set. It reports whether the file was written.
func WriteGolden(t *testing.T, path string, value any) bool {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}
