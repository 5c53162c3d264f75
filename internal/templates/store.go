package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"

	"dealrisk-mcp/internal/analysis"
	"dealrisk-mcp/internal/finance"
)

// Template pre-populates a deal analysis for one property type: typical base
// assumptions plus the variable list worth sweeping.
type Template struct {
	PropertyType string              `json:"property_type" yaml:"property_type"`
	Label        string              `json:"label" yaml:"label"`
	BaseInputs   finance.Assumptions `json:"base_inputs" yaml:"base_inputs"`
	Variables    []analysis.Variable `json:"variables" yaml:"variables"`
}

// Store serves property templates: compiled-in defaults, optionally overlaid
// by YAML files from a templates directory.
type Store struct {
	templates map[string]Template
}

// NewStore builds the store. dir may be empty (built-ins only); a YAML file
// named <property_type>.yaml replaces or adds a template. A malformed file is
// logged and skipped rather than failing the boot.
func NewStore(dir string) *Store {
	s := &Store{templates: make(map[string]Template)}
	for _, t := range builtinTemplates() {
		s.templates[t.PropertyType] = t
	}

	if dir == "" {
		return s
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Warn().Err(err).Str("path", dir).Msg("Templates directory not readable, using built-ins only")
		return s
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || (!strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml")) {
			continue
		}

		t, err := loadTemplateFile(filepath.Join(dir, name))
		if err != nil {
			log.Warn().Err(err).Str("file", name).Msg("Skipping malformed template file")
			continue
		}

		s.templates[t.PropertyType] = t
		log.Debug().Str("property_type", t.PropertyType).Str("file", name).Msg("Loaded template override")
	}

	return s
}

func loadTemplateFile(path string) (Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Template{}, fmt.Errorf("read template: %w", err)
	}

	var t Template
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Template{}, fmt.Errorf("parse template: %w", err)
	}

	if t.PropertyType == "" {
		return Template{}, fmt.Errorf("template %s is missing property_type", filepath.Base(path))
	}
	if err := analysis.ValidateVariables(t.Variables); err != nil {
		return Template{}, fmt.Errorf("template %s: %w", filepath.Base(path), err)
	}

	return t, nil
}

// List returns every template sorted by property type.
func (s *Store) List() []Template {
	out := make([]Template, 0, len(s.templates))
	for _, t := range s.templates {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PropertyType < out[j].PropertyType })
	return out
}

// Get returns the template for a property type.
func (s *Store) Get(propertyType string) (Template, bool) {
	t, ok := s.templates[propertyType]
	return t, ok
}
