package rules

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
)

var (
	// ErrUnknownRule is returned when a rule name matches neither a built-in
	// rule nor a user-defined rule file.
	ErrUnknownRule = errors.New("unknown association rule")

	// ErrSchemaVersion is returned when a user rule file declares a schema
	// version outside the supported range.
	ErrSchemaVersion = errors.New("unsupported rule schema version")
)

// KeyTable maps logical manifest fields to the key names the downstream
// consumer reads. Key-naming drift between consumer versions is handled
// here and nowhere else.
type KeyTable struct {
	Rule        string `yaml:"rule"`
	ASNType     string `yaml:"asn_type"`
	Products    string `yaml:"products"`
	ProductName string `yaml:"product_name"`
	Members     string `yaml:"members"`
	MemberPath  string `yaml:"member_path"`
	MemberRole  string `yaml:"member_role"`
}

// DefaultKeys returns the key table for the current consumer contract.
func DefaultKeys() KeyTable {
	return KeyTable{
		Rule:        "asn_rule",
		ASNType:     "asn_type",
		Products:    "products",
		ProductName: "name",
		Members:     "members",
		MemberPath:  "expname",
		MemberRole:  "exptype",
	}
}

// merged returns kt with empty fields filled in from base.
func (kt KeyTable) merged(base KeyTable) KeyTable {
	if kt.Rule == "" {
		kt.Rule = base.Rule
	}
	if kt.ASNType == "" {
		kt.ASNType = base.ASNType
	}
	if kt.Products == "" {
		kt.Products = base.Products
	}
	if kt.ProductName == "" {
		kt.ProductName = base.ProductName
	}
	if kt.Members == "" {
		kt.Members = base.Members
	}
	if kt.MemberPath == "" {
		kt.MemberPath = base.MemberPath
	}
	if kt.MemberRole == "" {
		kt.MemberRole = base.MemberRole
	}
	return kt
}

// Rule describes one association schema convention.
type Rule struct {
	Name           string   // CLI-facing name, e.g. "level2"
	ASNRule        string   // wire value written to the manifest's rule field
	DefaultASNType string   // asn_type a fresh manifest starts with
	SchemaVersion  string   // semver of the rule definition
	Keys           KeyTable // external key names for this consumer version
}

// builtin rules, in the order they are listed to users.
var builtin = []Rule{
	{
		Name:           "level2",
		ASNRule:        "DMSLevel2bBase",
		DefaultASNType: "None",
		SchemaVersion:  "1.0.0",
		Keys:           DefaultKeys(),
	},
	{
		Name:           "level3",
		ASNRule:        "DMS_Level3_Base",
		DefaultASNType: "image3",
		SchemaVersion:  "1.0.0",
		Keys:           DefaultKeys(),
	},
}

// Builtin returns the built-in rules.
func Builtin() []Rule {
	out := make([]Rule, len(builtin))
	copy(out, builtin)
	return out
}

// LookupBuiltin returns the built-in rule with the given name.
func LookupBuiltin(name string) (*Rule, error) {
	for _, r := range builtin {
		if r.Name == name {
			rule := r
			return &rule, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
}

// Lookup resolves a rule name, preferring user-defined rules from dir over
// built-ins. A missing rules directory is not an error.
func Lookup(fsys afero.Fs, dir, name string) (*Rule, error) {
	user, err := LoadDir(fsys, dir)
	if err != nil {
		return nil, err
	}
	for _, r := range user {
		if r.Name == name {
			rule := r
			return &rule, nil
		}
	}
	return LookupBuiltin(name)
}

// All returns built-in and user-defined rules merged, with user rules
// overriding built-ins of the same name.
func All(fsys afero.Fs, dir string) ([]Rule, error) {
	user, err := LoadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	overridden := make(map[string]Rule, len(user))
	for _, r := range user {
		overridden[r.Name] = r
	}

	var out []Rule
	for _, r := range builtin {
		if u, ok := overridden[r.Name]; ok {
			out = append(out, u)
			delete(overridden, r.Name)
			continue
		}
		out = append(out, r)
	}
	for _, r := range user {
		if _, ok := overridden[r.Name]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}
