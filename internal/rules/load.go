package rules

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/afero"
	"go.yaml.in/yaml/v3"
)

// SupportedSchemaVersions is the semver range of rule definitions this
// build understands.
const SupportedSchemaVersions = ">=1.0.0 <2.0.0"

// ruleFile is the on-disk shape of a user-defined rule.
type ruleFile struct {
	Name           string    `yaml:"name"`
	ASNRule        string    `yaml:"asn_rule"`
	DefaultASNType string    `yaml:"default_asn_type"`
	SchemaVersion  string    `yaml:"schema_version"`
	Keys           *KeyTable `yaml:"keys"`
}

// LoadDir reads all *.yaml rule files in dir, sorted by filename for a
// stable override order. A missing directory yields no rules and no error.
func LoadDir(fsys afero.Fs, dir string) ([]Rule, error) {
	exists, err := afero.DirExists(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("checking rules directory %s: %w", dir, err)
	}
	if !exists {
		return nil, nil
	}

	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading rules directory %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var out []Rule
	for _, name := range names {
		path := filepath.Join(dir, name)
		rule, err := loadFile(fsys, path)
		if err != nil {
			return nil, err
		}
		out = append(out, *rule)
	}
	return out, nil
}

// loadFile parses and validates a single rule file.
func loadFile(fsys afero.Fs, path string) (*Rule, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading rule file %s: %w", path, err)
	}

	var rf ruleFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing rule file %s: %w", path, err)
	}

	if rf.Name == "" {
		return nil, fmt.Errorf("rule file %s: missing required 'name' field", path)
	}
	if rf.ASNRule == "" {
		return nil, fmt.Errorf("rule file %s: missing required 'asn_rule' field", path)
	}

	if err := checkSchemaVersion(rf.SchemaVersion); err != nil {
		return nil, fmt.Errorf("rule file %s: %w", path, err)
	}

	keys := DefaultKeys()
	if rf.Keys != nil {
		keys = rf.Keys.merged(keys)
	}

	return &Rule{
		Name:           rf.Name,
		ASNRule:        rf.ASNRule,
		DefaultASNType: rf.DefaultASNType,
		SchemaVersion:  rf.SchemaVersion,
		Keys:           keys,
	}, nil
}

// checkSchemaVersion verifies the declared version parses and falls inside
// the supported range.
func checkSchemaVersion(version string) error {
	if version == "" {
		return fmt.Errorf("%w: missing schema_version", ErrSchemaVersion)
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: parsing %q: %v", ErrSchemaVersion, version, err)
	}
	c, err := semver.NewConstraint(SupportedSchemaVersions)
	if err != nil {
		return fmt.Errorf("parsing supported version constraint: %w", err)
	}
	if !c.Check(v) {
		return fmt.Errorf("%w: %s is outside %s", ErrSchemaVersion, version, SupportedSchemaVersions)
	}
	return nil
}
