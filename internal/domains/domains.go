// Package domains manages domain vocabularies: built-in term sets
// shipped with the binary, and custom vocabulary files in YAML or TOML.
// Domain terms suppress vagueness and jargon flags for field-specific
// language.
package domains

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"academiclint/internal/lerr"
)

//go:embed builtin/*.yml
var builtinFS embed.FS

// Domain is one vocabulary definition.
type Domain struct {
	Name                   string   `yaml:"name" toml:"name"`
	Description            string   `yaml:"description" toml:"description"`
	Parent                 string   `yaml:"parent" toml:"parent"`
	TechnicalTerms         []string `yaml:"technical_terms" toml:"technical_terms"`
	DomainWeasels          []string `yaml:"domain_weasels" toml:"domain_weasels"`
	PermittedHedges        []string `yaml:"permitted_hedges" toml:"permitted_hedges"`
	AcceptedCausalPatterns []string `yaml:"accepted_causal_patterns" toml:"accepted_causal_patterns"`
	DensityBaseline        float64  `yaml:"density_baseline" toml:"density_baseline"`
	DensityStrict          float64  `yaml:"density_strict" toml:"density_strict"`
	DomainFillers          []string `yaml:"domain_fillers" toml:"domain_fillers"`
}

// Manager resolves domain names to vocabularies, caching loads.
type Manager struct {
	loaded map[string]*Domain
}

// NewManager creates a domain manager.
func NewManager() *Manager {
	return &Manager{loaded: make(map[string]*Domain)}
}

// BuiltinNames lists the built-in domains in sorted order.
func BuiltinNames() []string {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yml"))
	}
	sort.Strings(names)
	return names
}

// Get resolves a domain by built-in name or file path.
func (m *Manager) Get(name string) (*Domain, error) {
	if d, ok := m.loaded[name]; ok {
		return d, nil
	}

	var (
		d   *Domain
		err error
	)
	if data, readErr := builtinFS.ReadFile("builtin/" + name + ".yml"); readErr == nil {
		d, err = parseYAML(data)
	} else {
		d, err = LoadFile(name)
	}
	if err != nil {
		return nil, err
	}

	m.loaded[name] = d
	return d, nil
}

// GetTerms returns all technical terms for a domain, including its
// parent chain. An empty name yields an empty set, not an error.
func (m *Manager) GetTerms(name string) ([]string, error) {
	if name == "" {
		return nil, nil
	}

	seen := make(map[string]bool)
	var out []string

	for name != "" {
		d, err := m.Get(name)
		if err != nil {
			return nil, err
		}
		for _, t := range d.TechnicalTerms {
			lower := strings.ToLower(t)
			if !seen[lower] {
				seen[lower] = true
				out = append(out, t)
			}
		}
		name = d.Parent
	}

	sort.Strings(out)
	return out, nil
}

// LoadFile loads a custom domain vocabulary from a YAML or TOML file.
func LoadFile(path string) (*Domain, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, lerr.Wrap(lerr.ConfigInvalid,
			fmt.Sprintf("domain file not found: %s", path), err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAML(data)
	case ".toml":
		return parseTOML(data)
	default:
		return nil, lerr.New(lerr.ConfigInvalid,
			fmt.Sprintf("unsupported domain file format %q (use .yaml, .yml, or .toml)", filepath.Ext(path)))
	}
}

func parseYAML(data []byte) (*Domain, error) {
	var d Domain
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, lerr.Wrap(lerr.ConfigInvalid, "invalid domain YAML", err)
	}
	return withDefaults(&d), nil
}

func parseTOML(data []byte) (*Domain, error) {
	var d Domain
	if err := toml.Unmarshal(data, &d); err != nil {
		return nil, lerr.Wrap(lerr.ConfigInvalid, "invalid domain TOML", err)
	}
	return withDefaults(&d), nil
}

func withDefaults(d *Domain) *Domain {
	if d.Name == "" {
		d.Name = "custom"
	}
	if d.DensityBaseline == 0 {
		d.DensityBaseline = 0.50
	}
	if d.DensityStrict == 0 {
		d.DensityStrict = 0.65
	}
	return d
}
