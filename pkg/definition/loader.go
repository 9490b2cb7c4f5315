package definition

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formlayout/pkg/form"
)

// LoadFS walks the provided filesystem and parses JSON, YAML and TOML
// definition files. When fsys is nil or holds no definition files, the
// returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := newStore()
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("definition: read %s: %w", path, err)
		}
		return store.add(data, path)
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// LoadBytes parses a single definition document. source names the document
// in errors and selects the decoder by extension.
func LoadBytes(data []byte, source string) (*Store, error) {
	store := newStore()
	if err := store.add(data, source); err != nil {
		return nil, err
	}
	return store, nil
}

func newStore() *Store {
	return &Store{forms: make(map[string]Form), tables: make(map[string]Table)}
}

// Form returns the definition registered under name.
func (s *Store) Form(name string) (Form, bool) {
	if s == nil {
		return Form{}, false
	}
	def, ok := s.forms[name]
	return def, ok
}

// Table returns the definition registered under name.
func (s *Store) Table(name string) (Table, bool) {
	if s == nil {
		return Table{}, false
	}
	def, ok := s.tables[name]
	return def, ok
}

// FormNames returns the registered form names sorted.
func (s *Store) FormNames() []string {
	if s == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(s.forms))
}

// TableNames returns the registered table names sorted.
func (s *Store) TableNames() []string {
	if s == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(s.tables))
}

// Empty reports whether the store holds any definitions.
func (s *Store) Empty() bool {
	return s == nil || (len(s.forms) == 0 && len(s.tables) == 0)
}

type documentFile struct {
	Forms  map[string]Form  `json:"forms" yaml:"forms" toml:"forms"`
	Tables map[string]Table `json:"tables" yaml:"tables" toml:"tables"`
}

func (s *Store) add(data []byte, source string) error {
	doc, err := parseDocument(data, source)
	if err != nil {
		return err
	}

	for _, key := range slices.Sorted(maps.Keys(doc.Forms)) {
		name := strings.TrimSpace(key)
		if name == "" {
			return fmt.Errorf("definition: file %s defines a form with an empty name", source)
		}
		if _, exists := s.forms[name]; exists {
			return fmt.Errorf("definition: duplicate form %q (file %s)", name, source)
		}
		def, err := normaliseForm(doc.Forms[key], name, source)
		if err != nil {
			return err
		}
		s.forms[name] = def
	}

	for _, key := range slices.Sorted(maps.Keys(doc.Tables)) {
		name := strings.TrimSpace(key)
		if name == "" {
			return fmt.Errorf("definition: file %s defines a table with an empty name", source)
		}
		if _, exists := s.tables[name]; exists {
			return fmt.Errorf("definition: duplicate table %q (file %s)", name, source)
		}
		def, err := normaliseTable(doc.Tables[key], name, source)
		if err != nil {
			return err
		}
		s.tables[name] = def
	}
	return nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("definition: file %s is empty", source)
	}

	if strings.EqualFold(filepath.Ext(source), ".toml") {
		if err := toml.Unmarshal(data, &doc); err != nil {
			return documentFile{}, fmt.Errorf("definition: parse %s: %w", source, err)
		}
		return doc, nil
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("definition: parse %s: invalid JSON or YAML", source)
}

func normaliseForm(raw Form, name, source string) (Form, error) {
	def := raw
	def.Name = name
	def.Source = source
	def.Fields = make([]Field, 0, len(raw.Fields))

	seen := make(map[string]struct{}, len(raw.Fields))
	for idx, field := range raw.Fields {
		field.Name = strings.TrimSpace(field.Name)
		if field.Name == "" {
			return Form{}, fmt.Errorf("definition: form %q (file %s) field %d has no name", name, source, idx)
		}
		if _, dup := seen[field.Name]; dup {
			return Form{}, fmt.Errorf("definition: form %q (file %s) defines duplicate field %q", name, source, field.Name)
		}
		seen[field.Name] = struct{}{}
		field.Form = strings.TrimSpace(field.Form)
		def.Fields = append(def.Fields, field)
	}

	if len(raw.Layout) > 0 {
		layout, err := form.LayoutArray(raw.Layout).Normalize()
		if err != nil {
			return Form{}, fmt.Errorf("definition: form %q (file %s) layout: %w", name, source, err)
		}
		def.Layout = layout
	}
	return def, nil
}

func normaliseTable(raw Table, name, source string) (Table, error) {
	def := raw
	def.Name = name
	def.Source = source
	def.Columns = make([]Column, 0, len(raw.Columns))

	seen := make(map[string]struct{}, len(raw.Columns))
	for idx, column := range raw.Columns {
		column.Name = strings.TrimSpace(column.Name)
		if column.Name == "" {
			return Table{}, fmt.Errorf("definition: table %q (file %s) column %d has no name", name, source, idx)
		}
		if _, dup := seen[column.Name]; dup {
			return Table{}, fmt.Errorf("definition: table %q (file %s) defines duplicate column %q", name, source, column.Name)
		}
		seen[column.Name] = struct{}{}
		column.Filter = strings.TrimSpace(column.Filter)
		def.Columns = append(def.Columns, column)
	}

	for idx, button := range raw.Operations {
		if strings.TrimSpace(button.Name) == "" {
			return Table{}, fmt.Errorf("definition: table %q (file %s) operation %d has no name", name, source, idx)
		}
	}
	return def, nil
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml", ".toml":
		return true
	default:
		return false
	}
}
