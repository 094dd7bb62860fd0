package results

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStore() *Store {
	s := NewStore(Meta{
		Iterations:       3,
		TimePerIteration: 50 * time.Millisecond,
		Suite:            "builtin",
		Filter:           "^test",
		GoVersion:        "go1.23.5",
		Platform:         "linux/amd64",
		Created:          time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	})
	s.Append("testZeta", 120)
	s.Append("testAlpha", 5)
	s.Append("testZeta", 118)
	s.Append("testAlpha", 0)
	s.Append("testZeta", 121)
	s.Add("testFailed")
	return s
}

func assertSameStore(t *testing.T, want, got *Store) {
	t.Helper()

	require.Equal(t, want.Names(), got.Names())
	for _, name := range want.Names() {
		w, _ := want.Samples(name)
		g, ok := got.Samples(name)
		require.True(t, ok, "missing %s", name)
		assert.Equal(t, w, g, "samples for %s", name)
	}
	assert.Equal(t, want.Meta.Iterations, got.Meta.Iterations)
	assert.Equal(t, want.Meta.TimePerIteration, got.Meta.TimePerIteration)
	assert.Equal(t, want.Meta.Suite, got.Meta.Suite)
	assert.True(t, want.Meta.Created.Equal(got.Meta.Created))
}

func TestRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			want := sampleStore()

			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, want, format))

			got, err := Decode(&buf)
			require.NoError(t, err)
			assertSameStore(t, want, got)
		})
	}
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"nested/run.json", "run.yaml", "run.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			want := sampleStore()

			require.NoError(t, Save(path, want))

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			if FormatForPath(path) == FormatJSON {
				assert.True(t, strings.HasPrefix(string(data), "{"))
			} else {
				assert.Contains(t, string(data), "format: stride-results")
			}

			got, err := Load(path)
			require.NoError(t, err)
			assertSameStore(t, want, got)
		})
	}
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestDecode_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		wantMsg string
	}{
		{name: "empty", input: "  ", wantErr: ErrNotResults},
		{name: "invalid json", input: `{"format":`, wantErr: ErrNotResults},
		{name: "foreign json", input: `{"name":"something else"}`, wantErr: ErrNotResults},
		{name: "newer version", input: `{"format":"stride-results","version":9,"tests":[]}`, wantErr: ErrUnsupportedVersion},
		{
			name:    "negative sample",
			input:   `{"format":"stride-results","version":1,"tests":[{"name":"a","samples":[1,-2]}]}`,
			wantMsg: "/tests/0/samples/1",
		},
		{
			name:    "fractional sample",
			input:   `{"format":"stride-results","version":1,"tests":[{"name":"a","samples":[1.5]}]}`,
			wantMsg: "invalid results document",
		},
		{
			name:    "duplicate test",
			input:   `{"format":"stride-results","version":1,"tests":[{"name":"a","samples":[]},{"name":"a","samples":[]}]}`,
			wantMsg: "duplicate test",
		},
		{name: "foreign yaml", input: "name: other\n", wantErr: ErrNotResults},
		{name: "yaml version 0", input: "format: stride-results\nversion: 0\ntests: []\n", wantErr: ErrUnsupportedVersion},
		{
			name:    "yaml negative sample",
			input:   "format: stride-results\nversion: 1\ntests:\n  - name: a\n    samples: [-5, 3]\n",
			wantMsg: "/tests/0/samples/0",
		},
		{
			name:    "yaml empty name",
			input:   "format: stride-results\nversion: 1\ntests:\n  - name: \"\"\n    samples: [1]\n",
			wantMsg: "/tests/0/name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestDecode_SchemaErrorsAreCollected(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"format":"stride-results","version":1,"tests":[{"name":"","samples":[-1]}]}`))
	require.Error(t, err)

	var schemaErrs SchemaErrors
	require.True(t, errors.As(err, &schemaErrs))
	assert.GreaterOrEqual(t, len(schemaErrs), 2)
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatForPath("a.json"))
	assert.Equal(t, FormatJSON, FormatForPath("a.txt"))
	assert.Equal(t, FormatYAML, FormatForPath("a.YAML"))
	assert.Equal(t, FormatYAML, FormatForPath("dir/a.yml"))
}
