package pathwalk

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplit(t *testing.T) {
	cases := map[string][]string{
		"name":             {"name"},
		"user[name]":       {"user", "name"},
		"user[address][0]": {"user", "address", "0"},
		"tags[]":           {"tags"},
		"":                 nil,
	}
	for input, want := range cases {
		if diff := cmp.Diff(want, Split(input)); diff != "" {
			t.Fatalf("Split(%q) mismatch (-want +got):\n%s", input, diff)
		}
	}
}

func TestDotToBracket(t *testing.T) {
	cases := map[string]string{
		"name":         "name",
		"user.name":    "user[name]",
		"items.*.name": "items[][name]",
	}
	for input, want := range cases {
		if got := DotToBracket(input); got != want {
			t.Fatalf("DotToBracket(%q) = %q, want %q", input, got, want)
		}
	}
}

type address struct {
	City string `json:"city"`
	Zip  string
}

type account struct {
	Name      string
	Addresses []address `json:"addresses"`
	Manager   *account
}

func TestWalkMixedStructures(t *testing.T) {
	data := map[string]any{
		"user": map[string]any{
			"name": "Zed",
			"tags": []any{"a", "b"},
		},
		"account": &account{
			Name:      "acme",
			Addresses: []address{{City: "Berlin", Zip: "10115"}},
		},
	}

	cases := []struct {
		path []string
		want any
		ok   bool
	}{
		{[]string{"user", "name"}, "Zed", true},
		{[]string{"user", "tags", "1"}, "b", true},
		{[]string{"user", "tags", "5"}, nil, false},
		{[]string{"user", "age"}, nil, false},
		{[]string{"account", "name"}, "acme", true},
		{[]string{"account", "addresses", "0", "city"}, "Berlin", true},
		{[]string{"account", "addresses", "0", "zip"}, "10115", true},
		{[]string{"account", "manager", "name"}, nil, false},
		{[]string{"user", "name", "deeper"}, nil, false},
	}

	for _, tc := range cases {
		got, ok := Walk(data, tc.path)
		if ok != tc.ok {
			t.Fatalf("Walk(%v) ok = %v, want %v", tc.path, ok, tc.ok)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("Walk(%v) mismatch (-want +got):\n%s", tc.path, diff)
		}
	}
}

func TestWalkNilValueIsMissing(t *testing.T) {
	data := map[string]any{"user": map[string]any{"name": nil}}
	if _, ok := Walk(data, []string{"user", "name"}); ok {
		t.Fatalf("expected nil value to be reported as missing")
	}
}

func TestWalkIntKeyedMap(t *testing.T) {
	data := map[int]string{0: "zero", 2: "two"}
	got, ok := Walk(data, []string{"0"})
	if !ok || got != "zero" {
		t.Fatalf("expected zero, got %v %v", got, ok)
	}
}
