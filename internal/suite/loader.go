package suite

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"mockcheck/internal/domain"
)

// ErrEmptySuite is returned when a suite source holds no cases
var ErrEmptySuite = errors.New("no test cases found")

// File is the on-disk layout of a suite file
type File struct {
	Name  string            `yaml:"name"`
	Cases []domain.TestCase `yaml:"cases"`
}

// Loader resolves the test cases to run
type Loader struct {
	scanner *Scanner
}

// NewLoader creates a new Loader
func NewLoader(scanner *Scanner) *Loader {
	return &Loader{scanner: scanner}
}

// Load returns the built-in contacts suite when path is empty, the cases of
// a single file, or the cases of every suite file under a directory.
func (l *Loader) Load(path string) ([]domain.TestCase, error) {
	if path == "" {
		return Contacts(), nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("suite path does not exist: %s", path)
	}

	files := []string{path}
	if info.IsDir() {
		files, err = l.scanner.Scan(path)
		if err != nil {
			return nil, err
		}
	}

	var cases []domain.TestCase
	for _, file := range files {
		loaded, err := l.LoadFile(file)
		if err != nil {
			return nil, err
		}
		cases = append(cases, loaded...)
	}

	if len(cases) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptySuite)
	}
	return cases, nil
}

// LoadFile reads and validates one suite file
func (l *Loader) LoadFile(path string) ([]domain.TestCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite %s: %w", path, err)
	}
	cases, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cases, nil
}

// Parse decodes a suite document, applies defaults and validates every case
func Parse(data []byte) ([]domain.TestCase, error) {
	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("parse suite: %w", err)
	}

	for i := range file.Cases {
		tc := &file.Cases[i]
		if tc.Request.Method == "" {
			tc.Request.Method = http.MethodGet
		}
		tc.Request.Method = strings.ToUpper(tc.Request.Method)
		if err := Validate(*tc); err != nil {
			return nil, fmt.Errorf("case %d: %w", i+1, err)
		}
	}
	return file.Cases, nil
}

// Validate checks that a case can be turned into a request
func Validate(tc domain.TestCase) error {
	if strings.TrimSpace(tc.Name) == "" {
		return errors.New("name is required")
	}
	if !strings.HasPrefix(tc.Request.Path, "/") {
		return fmt.Errorf("%s: path %q must start with /", tc.Name, tc.Request.Path)
	}
	if tc.Expect.Status < 100 || tc.Expect.Status > 599 {
		return fmt.Errorf("%s: expected status %d is not a valid HTTP status", tc.Name, tc.Expect.Status)
	}
	for name := range tc.Request.PathParams {
		if !strings.Contains(tc.Request.Path, "{"+name+"}") {
			return fmt.Errorf("%s: path parameter %q not used in %s", tc.Name, name, tc.Request.Path)
		}
	}
	return nil
}
