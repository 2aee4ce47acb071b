package asn

import (
	"fmt"
	"path/filepath"

	"github.com/gnoir0t/asnbuild/internal/rules"
	"github.com/spf13/afero"
)

// Persist serializes the manifest and writes it to dest. The write goes to
// a temp file in the destination directory which is renamed into place, so
// a failure partway never leaves a partial manifest at dest. The parent
// directory must already exist.
func Persist(fsys afero.Fs, m *Manifest, keys rules.KeyTable, dest string) error {
	data, err := Serialize(m, keys)
	if err != nil {
		return err
	}

	dir := filepath.Dir(dest)
	exists, err := afero.DirExists(fsys, dir)
	if err != nil {
		return fmt.Errorf("checking destination directory %s: %w", dir, err)
	}
	if !exists {
		return fmt.Errorf("writing association %s: destination directory %s does not exist", dest, dir)
	}

	tmp, err := afero.TempFile(fsys, dir, ".asn-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		fsys.Remove(tmpName)
		return fmt.Errorf("writing association %s: %w", dest, err)
	}
	if err := tmp.Close(); err != nil {
		fsys.Remove(tmpName)
		return fmt.Errorf("closing association %s: %w", dest, err)
	}

	if err := fsys.Chmod(tmpName, 0644); err != nil {
		fsys.Remove(tmpName)
		return fmt.Errorf("setting permissions on %s: %w", dest, err)
	}
	if err := fsys.Rename(tmpName, dest); err != nil {
		fsys.Remove(tmpName)
		return fmt.Errorf("replacing association %s: %w", dest, err)
	}
	return nil
}

// Load reads and decodes a manifest file using the given key table.
func Load(fsys afero.Fs, path string, keys rules.KeyTable) (*Manifest, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading association %s: %w", path, err)
	}
	m, err := Deserialize(data, keys)
	if err != nil {
		return nil, fmt.Errorf("association %s: %w", path, err)
	}
	return m, nil
}
