package results

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

const (
	// FormatName identifies a results document.
	FormatName = "stride-results"

	// FormatVersion is the current document version.
	FormatVersion = 1
)

// Format is an on-disk encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	// ErrNotResults is returned when a document is not a results file.
	ErrNotResults = errors.New("not a results file")

	// ErrUnsupportedVersion is returned for documents written by a newer version.
	ErrUnsupportedVersion = errors.New("unsupported results version")
)

type document struct {
	Format  string      `json:"format" yaml:"format"`
	Version int         `json:"version" yaml:"version"`
	Meta    Meta        `json:"meta" yaml:"meta"`
	Tests   []testEntry `json:"tests" yaml:"tests"`
}

type testEntry struct {
	Name    string  `json:"name" yaml:"name"`
	Samples []int64 `json:"samples" yaml:"samples,flow"`
}

// FormatForPath picks the encoding from a file extension. Anything that is
// not .yaml or .yml is JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Encode writes the store to w.
func Encode(w io.Writer, s *Store, format Format) error {
	doc := toDocument(s)

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode results: %w", err)
		}
		return enc.Close()
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode results: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown results format %q", format)
	}
}

// Decode reads a store from r, detecting JSON or YAML from the content.
func Decode(r io.Reader) (*Store, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read results: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrNotResults
	}

	var doc document
	if trimmed[0] == '{' {
		if err := checkHeader(trimmed); err != nil {
			return nil, err
		}
		if err := validateSchema(trimmed); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse results: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse results: %w", err)
		}
		if doc.Format != FormatName {
			return nil, ErrNotResults
		}
		if doc.Version > FormatVersion || doc.Version < 1 {
			return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, doc.Version)
		}

		// YAML documents are held to the same schema as JSON ones.
		asJSON, err := json.Marshal(&doc)
		if err != nil {
			return nil, fmt.Errorf("failed to parse results: %w", err)
		}
		if err := validateSchema(asJSON); err != nil {
			return nil, err
		}
	}

	return fromDocument(&doc)
}

// Save writes the store to path, creating parent directories as needed.
// The encoding follows the file extension.
func Save(path string, s *Store) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := Encode(&buf, s, FormatForPath(path)); err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	return nil
}

// Load reads a store previously written by Save.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("results file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to open results: %w", err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// DefaultFilename returns the file name used when saving without an explicit
// path: benchmark_[name_]YYYYMMDD-HHMM.json.
func DefaultFilename(name string, now time.Time) string {
	stamp := now.Format("20060102-1504")
	if name == "" {
		return fmt.Sprintf("benchmark_%s.json", stamp)
	}
	return fmt.Sprintf("benchmark_%s_%s.json", name, stamp)
}

// checkHeader inspects format and version before a full decode so that
// foreign JSON files produce a precise error.
func checkHeader(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("%w: invalid JSON", ErrNotResults)
	}

	header := gjson.GetManyBytes(data, "format", "version")
	if header[0].String() != FormatName {
		return ErrNotResults
	}
	if v := header[1].Int(); v < 1 || v > FormatVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, v)
	}
	return nil
}

func toDocument(s *Store) *document {
	doc := &document{
		Format:  FormatName,
		Version: FormatVersion,
		Meta:    s.Meta,
		Tests:   make([]testEntry, 0, len(s.names)),
	}
	for _, name := range s.names {
		samples := make([]int64, len(s.samples[name]))
		copy(samples, s.samples[name])
		doc.Tests = append(doc.Tests, testEntry{Name: name, Samples: samples})
	}
	return doc
}

func fromDocument(doc *document) (*Store, error) {
	s := NewStore(doc.Meta)
	for i, t := range doc.Tests {
		if t.Name == "" {
			return nil, fmt.Errorf("test %d has no name", i)
		}
		if _, dup := s.samples[t.Name]; dup {
			return nil, fmt.Errorf("duplicate test %q", t.Name)
		}
		s.Add(t.Name)
		s.samples[t.Name] = append(s.samples[t.Name], t.Samples...)
	}
	return s, nil
}
