package asn

import (
	"errors"
	"testing"

	"github.com/gnoir0t/asnbuild/internal/rules"
)

func level2Rule(t *testing.T) *rules.Rule {
	t.Helper()
	r, err := rules.LookupBuiltin("level2")
	if err != nil {
		t.Fatalf("LookupBuiltin(level2) error: %v", err)
	}
	return r
}

func TestBuild_MemberOrderPreserved(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
	}{
		{"single exposure", []string{"examp_A_rate.fits"}},
		{"two exposures", []string{"a_rate.fits", "b_rate.fits"}},
		{"unsorted input stays unsorted", []string{"z_rate.fits", "a_rate.fits", "m_rate.fits"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Build(tt.paths, level2Rule(t), "prod")
			if err != nil {
				t.Fatalf("Build error: %v", err)
			}
			if len(m.Products) != 1 {
				t.Fatalf("Products len = %d, want 1", len(m.Products))
			}
			members := m.Products[0].Members
			if len(members) != len(tt.paths) {
				t.Fatalf("Members len = %d, want %d", len(members), len(tt.paths))
			}
			for i, p := range tt.paths {
				if members[i].Path != p {
					t.Errorf("Members[%d].Path = %q, want %q", i, members[i].Path, p)
				}
				if members[i].Role != RoleScience {
					t.Errorf("Members[%d].Role = %q, want %q", i, members[i].Role, RoleScience)
				}
			}
		})
	}
}

func TestBuild_RuleFieldsApplied(t *testing.T) {
	m, err := Build([]string{"a_rate.fits"}, level2Rule(t), "prod")
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if m.Rule != "DMSLevel2bBase" {
		t.Errorf("Rule = %q, want %q", m.Rule, "DMSLevel2bBase")
	}
	if m.ASNType != "None" {
		t.Errorf("ASNType = %q, want %q", m.ASNType, "None")
	}
	if m.Products[0].Name != "prod" {
		t.Errorf("Products[0].Name = %q, want %q", m.Products[0].Name, "prod")
	}
}

func TestBuild_EmptyMembers(t *testing.T) {
	for _, rule := range []string{"level2", "level3"} {
		t.Run(rule, func(t *testing.T) {
			r, err := rules.LookupBuiltin(rule)
			if err != nil {
				t.Fatalf("LookupBuiltin(%s) error: %v", rule, err)
			}
			_, err = Build(nil, r, "prod")
			if !errors.Is(err, ErrEmptyMembers) {
				t.Errorf("Build(nil) error = %v, want ErrEmptyMembers", err)
			}
		})
	}
}

func TestBuild_NilRule(t *testing.T) {
	_, err := Build([]string{"a_rate.fits"}, nil, "prod")
	if !errors.Is(err, rules.ErrUnknownRule) {
		t.Errorf("Build(nil rule) error = %v, want ErrUnknownRule", err)
	}
}

func TestSetASNType(t *testing.T) {
	m, err := Build([]string{"a_rate.fits"}, level2Rule(t), "prod")
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	m.SetASNType("spec2")
	if m.ASNType != "spec2" {
		t.Errorf("ASNType = %q, want %q", m.ASNType, "spec2")
	}
}

func TestAppendMember_PreservesOrder(t *testing.T) {
	m, err := Build([]string{"a_rate.fits", "b_rate.fits"}, level2Rule(t), "prod")
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	if err := m.AppendMember(0, "catalog.ecsv", "sourcecat"); err != nil {
		t.Fatalf("AppendMember error: %v", err)
	}

	members := m.Products[0].Members
	if len(members) != 3 {
		t.Fatalf("Members len = %d, want 3", len(members))
	}
	if members[0].Path != "a_rate.fits" || members[1].Path != "b_rate.fits" {
		t.Errorf("prior members reordered: %v", members)
	}
	last := members[2]
	if last.Path != "catalog.ecsv" {
		t.Errorf("last member path = %q, want %q", last.Path, "catalog.ecsv")
	}
	if last.Role != "sourcecat" {
		t.Errorf("last member role = %q, want %q", last.Role, "sourcecat")
	}
}

func TestAppendMember_EmptyRoleDefaults(t *testing.T) {
	m, err := Build([]string{"a_rate.fits"}, level2Rule(t), "prod")
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if err := m.AppendMember(0, "b_rate.fits", ""); err != nil {
		t.Fatalf("AppendMember error: %v", err)
	}
	got := m.Products[0].Members[1].Role
	if got != RoleScience {
		t.Errorf("Role = %q, want %q", got, RoleScience)
	}
}

func TestAppendMember_IndexOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		index int
	}{
		{"negative", -1},
		{"past end", 1},
		{"far past end", 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Build([]string{"a_rate.fits"}, level2Rule(t), "prod")
			if err != nil {
				t.Fatalf("Build error: %v", err)
			}

			err = m.AppendMember(tt.index, "catalog.ecsv", "sourcecat")
			if !errors.Is(err, ErrProductIndex) {
				t.Fatalf("AppendMember(%d) error = %v, want ErrProductIndex", tt.index, err)
			}

			// Manifest must be left unmodified.
			if len(m.Products) != 1 {
				t.Errorf("Products len = %d, want 1", len(m.Products))
			}
			if len(m.Products[0].Members) != 1 {
				t.Errorf("Members len = %d, want 1", len(m.Products[0].Members))
			}
		})
	}
}
