package schema

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes a form definition from JSON or YAML, choosing the decoder by
// the provided filename extension. An empty or unknown extension defaults to
// JSON since that is what authoring systems emit.
func Parse(data []byte, filename string) (Form, error) {
	var form Form
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &form); err != nil {
			return Form{}, fmt.Errorf("schema: parse %s: %w", filename, err)
		}
	default:
		if err := json.Unmarshal(data, &form); err != nil {
			return Form{}, fmt.Errorf("schema: parse %s: %w", filename, err)
		}
	}
	return form, nil
}

// LoadFile reads and parses a form definition from disk.
func LoadFile(path string) (Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Form{}, fmt.Errorf("schema: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS walks the provided filesystem and parses every JSON/YAML form file,
// keyed by the form's path, falling back to its name, falling back to the
// file name without extension. A nil filesystem yields an empty map.
func LoadFS(fsys fs.FS) (map[string]Form, error) {
	forms := make(map[string]Form)
	if fsys == nil {
		return forms, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isFormFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("schema: read %s: %w", path, err)
		}
		form, err := Parse(data, path)
		if err != nil {
			return err
		}

		key := form.Path
		if key == "" {
			key = form.Name
		}
		if key == "" {
			base := filepath.Base(path)
			key = strings.TrimSuffix(base, filepath.Ext(base))
		}
		if _, exists := forms[key]; exists {
			return fmt.Errorf("schema: duplicate form %q from %s", key, path)
		}
		forms[key] = form
		return nil
	})
	if err != nil {
		return nil, err
	}
	return forms, nil
}

func isFormFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
