package cli

import (
	"path/filepath"
	"testing"
)

func TestResolveOutputPath(t *testing.T) {
	tests := []struct {
		name      string
		output    string
		outputDir string
		product   string
		expected  string
	}{
		{"explicit output wins", "custom.json", "out", "examp_A", "custom.json"},
		{"derived from product name", "", "out", "examp_A", filepath.Join("out", "examp_A_asn.json")},
		{"current dir fallback", "", ".", "examp_A", "examp_A_asn.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveOutputPath(tt.output, tt.outputDir, tt.product)
			if got != tt.expected {
				t.Errorf("resolveOutputPath(%q, %q, %q) = %q, want %q",
					tt.output, tt.outputDir, tt.product, got, tt.expected)
			}
		})
	}
}
