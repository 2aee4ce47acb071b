package asn

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gnoir0t/asnbuild/internal/rules"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
)

func TestPersist_WritesManifest(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := fsys.MkdirAll("out", 0755); err != nil {
		t.Fatalf("MkdirAll error: %v", err)
	}

	keys := rules.DefaultKeys()
	m := sampleManifest()

	if err := Persist(fsys, m, keys, "out/examp_A_asn.json"); err != nil {
		t.Fatalf("Persist error: %v", err)
	}

	got, err := Load(fsys, "out/examp_A_asn.json", keys)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if diff := cmp.Diff(m, got); diff != "" {
		t.Errorf("persisted manifest mismatch (-want +got):\n%s", diff)
	}
}

func TestPersist_MissingParentDir(t *testing.T) {
	fsys := afero.NewMemMapFs()

	err := Persist(fsys, sampleManifest(), rules.DefaultKeys(), "missing/examp_A_asn.json")
	if err == nil {
		t.Fatal("expected error for missing parent directory, got nil")
	}

	exists, statErr := afero.Exists(fsys, "missing/examp_A_asn.json")
	if statErr != nil {
		t.Fatalf("Exists error: %v", statErr)
	}
	if exists {
		t.Error("file was created despite missing parent directory")
	}
}

func TestPersist_NoTempResidue(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := fsys.MkdirAll("out", 0755); err != nil {
		t.Fatalf("MkdirAll error: %v", err)
	}

	if err := Persist(fsys, sampleManifest(), rules.DefaultKeys(), "out/examp_A_asn.json"); err != nil {
		t.Fatalf("Persist error: %v", err)
	}

	entries, err := afero.ReadDir(fsys, "out")
	if err != nil {
		t.Fatalf("ReadDir error: %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
	if len(entries) != 1 {
		t.Errorf("entries in out/ = %d, want 1", len(entries))
	}
}

func TestPersist_Overwrites(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := fsys.MkdirAll("out", 0755); err != nil {
		t.Fatalf("MkdirAll error: %v", err)
	}

	keys := rules.DefaultKeys()
	dest := "out/examp_A_asn.json"

	first := sampleManifest()
	if err := Persist(fsys, first, keys, dest); err != nil {
		t.Fatalf("Persist error: %v", err)
	}

	second := sampleManifest()
	second.SetASNType("spec2")
	if err := Persist(fsys, second, keys, dest); err != nil {
		t.Fatalf("Persist error: %v", err)
	}

	data, err := afero.ReadFile(fsys, dest)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if !bytes.Contains(data, []byte(`"spec2"`)) {
		t.Errorf("destination not replaced:\n%s", data)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	_, err := Load(fsys, "nope_asn.json", rules.DefaultKeys())
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}
