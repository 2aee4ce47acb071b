package asn

import (
	"errors"
	"fmt"

	"github.com/gnoir0t/asnbuild/internal/rules"
)

var (
	// ErrEmptyMembers is returned when a manifest is built from an empty
	// exposure list.
	ErrEmptyMembers = errors.New("association needs at least one member")

	// ErrProductIndex is returned when a member append targets a product
	// index outside the manifest's product list.
	ErrProductIndex = errors.New("product index out of range")
)

// Build constructs a manifest with a single product containing one member
// per path, in the given order, each with the implicit science role. The
// manifest's rule and initial asn_type come from the resolved rule.
func Build(paths []string, rule *rules.Rule, productName string) (*Manifest, error) {
	if rule == nil {
		return nil, fmt.Errorf("building association %q: %w", productName, rules.ErrUnknownRule)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("building association %q: %w", productName, ErrEmptyMembers)
	}

	members := make([]Member, len(paths))
	for i, p := range paths {
		members[i] = Member{Path: p, Role: RoleScience}
	}

	return &Manifest{
		Rule:    rule.ASNRule,
		ASNType: rule.DefaultASNType,
		Products: []Product{
			{Name: productName, Members: members},
		},
	}, nil
}

// SetASNType sets the manifest's processing-mode tag. The tag is not
// checked against the rule; the downstream consumer owns that judgement.
func (m *Manifest) SetASNType(tag string) {
	m.ASNType = tag
}

// AppendMember adds one member to the end of the given product's member
// list with an explicit role. An empty role defaults to the science role.
// On an out-of-range index the manifest is left unmodified.
func (m *Manifest) AppendMember(productIndex int, path, role string) error {
	if productIndex < 0 || productIndex >= len(m.Products) {
		return fmt.Errorf("appending %s to product %d of %d: %w",
			path, productIndex, len(m.Products), ErrProductIndex)
	}
	if role == "" {
		role = RoleScience
	}
	p := &m.Products[productIndex]
	p.Members = append(p.Members, Member{Path: path, Role: role})
	return nil
}
