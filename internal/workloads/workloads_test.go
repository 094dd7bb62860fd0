package workloads

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesleyorama2/stride/internal/bench"
)

func TestSuites_Sorted(t *testing.T) {
	var names []string
	for _, s := range Suites() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"builtin", "custom", "parsers", "templates"}, names)
}

func TestLookup(t *testing.T) {
	s, ok := Lookup("templates")
	require.True(t, ok)
	assert.True(t, s.Paired)

	_, ok = Lookup("nope")
	assert.False(t, ok)
}

func TestSuites_TestsRunCleanly(t *testing.T) {
	for _, s := range Suites() {
		s := s
		t.Run(s.Name, func(t *testing.T) {
			require.NotEmpty(t, s.Tests)
			for _, test := range s.Tests {
				assert.Truef(t, strings.HasPrefix(test.Name, "test"), "%s should start with test", test.Name)
				assert.NoErrorf(t, test.Func(), "%s", test.Name)
			}
		})
	}
}

func TestPairedSuites_HaveEvenCount(t *testing.T) {
	for _, s := range Suites() {
		if s.Paired {
			assert.Zerof(t, len(s.Tests)%2, "suite %s", s.Name)
		}
	}
}

func TestSuiteRegistry(t *testing.T) {
	s, ok := Lookup("parsers")
	require.True(t, ok)

	reg, err := s.Registry()
	require.NoError(t, err)

	names, err := reg.List("Field$")
	require.NoError(t, err)
	assert.Equal(t, []string{"testJSONField", "testGJSONField"}, names)
}

func TestRegister_Duplicate(t *testing.T) {
	s, _ := Lookup("custom")
	reg := bench.NewRegistry()

	require.NoError(t, Register(reg, s))
	err := Register(reg, s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "suite custom")
}

func TestTemplates_RenderSamePage(t *testing.T) {
	require.NoError(t, testTextTemplate())
	textLen := sink.(int)
	require.NoError(t, testHTMLTemplate())
	htmlLen := sink.(int)

	// no characters need escaping in the page params
	assert.Equal(t, textLen, htmlLen)
}
