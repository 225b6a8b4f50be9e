package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Load reads a catalog from a TOML file. The file name (without extension)
// becomes the catalog name when the file does not declare one.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	var c Catalog
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}

	if c.Name == "" {
		base := filepath.Base(path)
		c.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return &c, nil
}

// LoadAll reads every *.toml catalog in the given paths. A path that is a
// directory contributes each of its .toml files in lexical order; a path that
// is a file contributes itself. Any unreadable or unparsable catalog is fatal:
// a broken catalog is a structural error, not a per-entry condition.
func LoadAll(paths []string) ([]*Catalog, error) {
	var catalogs []*Catalog
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("catalog path %s: %w", p, err)
		}

		if !info.IsDir() {
			c, err := Load(p)
			if err != nil {
				return nil, err
			}
			catalogs = append(catalogs, c)
			continue
		}

		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, fmt.Errorf("reading catalog directory %s: %w", p, err)
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".toml") {
				continue
			}
			c, err := Load(filepath.Join(p, e.Name()))
			if err != nil {
				return nil, err
			}
			catalogs = append(catalogs, c)
		}
	}
	return catalogs, nil
}
