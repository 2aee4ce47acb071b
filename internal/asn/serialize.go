package asn

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gnoir0t/asnbuild/internal/rules"
)

// Serialize encodes a manifest as indented JSON. Key names come from the
// rule's key table; key order is fixed (rule, asn_type, products) so that
// repeated serialization of an unmodified manifest is byte-identical.
func Serialize(m *Manifest, keys rules.KeyTable) ([]byte, error) {
	products := make([]orderedObject, len(m.Products))
	for i, p := range m.Products {
		members := make([]orderedObject, len(p.Members))
		for j, mem := range p.Members {
			members[j] = orderedObject{
				{keys.MemberPath, mem.Path},
				{keys.MemberRole, mem.Role},
			}
		}
		products[i] = orderedObject{
			{keys.ProductName, p.Name},
			{keys.Members, members},
		}
	}

	doc := orderedObject{
		{keys.Rule, m.Rule},
		{keys.ASNType, m.ASNType},
		{keys.Products, products},
	}

	compact, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding association: %w", err)
	}

	// Indent explicitly: MarshalIndent does not reach inside custom
	// MarshalJSON output on all Go versions.
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return nil, fmt.Errorf("formatting association: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Deserialize is the inverse of Serialize for the same key table. The
// decoded manifest is structurally equal to the one that produced the text.
func Deserialize(data []byte, keys rules.KeyTable) (*Manifest, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding association: %w", err)
	}

	m := &Manifest{}
	if err := decodeString(raw, keys.Rule, &m.Rule); err != nil {
		return nil, err
	}
	if err := decodeString(raw, keys.ASNType, &m.ASNType); err != nil {
		return nil, err
	}

	rawProducts, ok := raw[keys.Products]
	if !ok {
		return nil, fmt.Errorf("decoding association: missing key %q", keys.Products)
	}
	var products []map[string]json.RawMessage
	if err := json.Unmarshal(rawProducts, &products); err != nil {
		return nil, fmt.Errorf("decoding association products: %w", err)
	}

	for i, rp := range products {
		var p Product
		if err := decodeString(rp, keys.ProductName, &p.Name); err != nil {
			return nil, fmt.Errorf("product %d: %w", i, err)
		}

		rawMembers, ok := rp[keys.Members]
		if !ok {
			return nil, fmt.Errorf("product %d: missing key %q", i, keys.Members)
		}
		var members []map[string]json.RawMessage
		if err := json.Unmarshal(rawMembers, &members); err != nil {
			return nil, fmt.Errorf("product %d: decoding members: %w", i, err)
		}
		if len(members) == 0 {
			return nil, fmt.Errorf("product %d (%s): %w", i, p.Name, ErrEmptyMembers)
		}

		for j, rm := range members {
			var mem Member
			if err := decodeString(rm, keys.MemberPath, &mem.Path); err != nil {
				return nil, fmt.Errorf("product %d member %d: %w", i, j, err)
			}
			if err := decodeString(rm, keys.MemberRole, &mem.Role); err != nil {
				return nil, fmt.Errorf("product %d member %d: %w", i, j, err)
			}
			p.Members = append(p.Members, mem)
		}
		m.Products = append(m.Products, p)
	}

	return m, nil
}

// decodeString extracts a required string field from a raw JSON object.
func decodeString(raw map[string]json.RawMessage, key string, dst *string) error {
	v, ok := raw[key]
	if !ok {
		return fmt.Errorf("missing key %q", key)
	}
	if err := json.Unmarshal(v, dst); err != nil {
		return fmt.Errorf("key %q: %w", key, err)
	}
	return nil
}

// orderedObject is a JSON object that marshals its fields in declaration
// order, unlike a map. The manifest contract fixes both key names and their
// conventional order.
type orderedObject []jsonField

type jsonField struct {
	Key   string
	Value interface{}
}

func (o orderedObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
