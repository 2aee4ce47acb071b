package asn

// RoleScience is the implicit role a member gets when none is specified:
// a plain science exposure.
const RoleScience = "science"

// Manifest is one association: a rule tag, a processing-mode tag, and the
// products it groups. In practice a manifest carries exactly one product,
// but the sequence is preserved as-is for consumers that accept more.
type Manifest struct {
	Rule     string
	ASNType  string
	Products []Product
}

// Product groups the members that are combined into one output product.
// The name seeds downstream output file names.
type Product struct {
	Name    string
	Members []Member
}

// Member references one input file and the role it plays. Paths are opaque;
// existence is not checked here.
type Member struct {
	Path string
	Role string
}
