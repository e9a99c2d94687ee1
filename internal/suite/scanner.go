package suite

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Scanner scans for suite files in a directory
type Scanner struct {
	extensions map[string]bool
}

// NewScanner creates a new Scanner matching YAML suite files
func NewScanner() *Scanner {
	return &Scanner{extensions: map[string]bool{".yaml": true, ".yml": true}}
}

// Scan finds all suite files under root, sorted lexically
func (s *Scanner) Scan(root string) ([]string, error) {
	var files []string

	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("suite path does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("suite path is not a directory: %s", root)
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			name := d.Name()
			// Skip hidden directories (starting with .)
			if path != root && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if s.extensions[strings.ToLower(filepath.Ext(d.Name()))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
