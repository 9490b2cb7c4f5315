package element

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func names(buttons []*Button) []string {
	out := make([]string, 0, len(buttons))
	for _, b := range buttons {
		out = append(out, b.Name())
	}
	return out
}

func TestButtonSetHiddenFilter(t *testing.T) {
	var set ButtonSet
	edit := NewButton("edit")
	remove := NewButton("delete")
	remove.Hide()
	view := NewButton("view")
	set.Set(edit, remove, view)

	if diff := cmp.Diff([]string{"edit", "view"}, names(set.List(false))); diff != "" {
		t.Fatalf("visible operations mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"edit", "delete", "view"}, names(set.List(true))); diff != "" {
		t.Fatalf("all operations mismatch (-want +got):\n%s", diff)
	}
	if set.Has("delete", false) {
		t.Fatalf("hidden operation must not be reported without includeHidden")
	}
	if !set.Has("delete", true) {
		t.Fatalf("hidden operation must be reported with includeHidden")
	}
	if got, ok := set.Get("delete"); !ok || got != remove {
		t.Fatalf("expected Get to return hidden button")
	}
}

func TestButtonSetReplaceKeepsPosition(t *testing.T) {
	var set ButtonSet
	set.Add(NewButton("a"))
	set.Add(NewButton("b"))
	replacement := NewButton("a")
	replacement.SetLabel("Again")
	set.Add(replacement)

	all := set.List(true)
	if diff := cmp.Diff([]string{"a", "b"}, names(all)); diff != "" {
		t.Fatalf("operations mismatch (-want +got):\n%s", diff)
	}
	if all[0].Label() != "Again" {
		t.Fatalf("expected replacement button in first slot")
	}
	set.Remove("a")
	if set.Len() != 1 {
		t.Fatalf("expected one button left, got %d", set.Len())
	}
}

func TestButtonIconSanitising(t *testing.T) {
	b := NewButton("save")
	b.SetIcon("  floppy ")
	if b.Icon() != "floppy" {
		t.Fatalf("plain icon names must pass through, got %q", b.Icon())
	}

	b.SetIcon(`<svg><path d="M0 0L10 10"></path><script>alert(1)</script></svg>`)
	if !strings.Contains(b.Icon(), "<path") {
		t.Fatalf("expected svg path to survive sanitising, got %q", b.Icon())
	}
	if strings.Contains(b.Icon(), "script") {
		t.Fatalf("expected script to be stripped, got %q", b.Icon())
	}
}

func TestHTML(t *testing.T) {
	raw := NewHTML("<em>raw</em>")
	if raw.String() != "<em>raw</em>" {
		t.Fatalf("raw markup must be kept verbatim")
	}
	clean := SanitizedHTML(`<b>bold</b><script>alert(1)</script>`)
	if !strings.Contains(clean.String(), "<b>bold</b>") || strings.Contains(clean.String(), "script") {
		t.Fatalf("unexpected sanitised markup %q", clean.String())
	}
	if !NewHTML("").IsEmpty() {
		t.Fatalf("expected empty markup")
	}
}
