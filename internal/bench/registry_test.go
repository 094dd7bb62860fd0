package bench

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop() error { return nil }

func TestRegistry_RegisterAndList(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("testB", noop))
	require.NoError(t, reg.Register("testA", noop))
	require.NoError(t, reg.Register("helper", noop))

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{name: "empty pattern matches all", pattern: "", want: []string{"testB", "testA", "helper"}},
		{name: "prefix", pattern: "^test", want: []string{"testB", "testA"}},
		{name: "suffix", pattern: "A$", want: []string{"testA"}},
		{name: "no match", pattern: "^zzz", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reg.List(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegistry_InvalidPattern(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.List("([")
	assert.Error(t, err)
}

func TestRegistry_RegisterErrors(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("test", noop))

	assert.Error(t, reg.Register("test", noop), "duplicate")
	assert.Error(t, reg.Register("", noop), "empty name")
	assert.Error(t, reg.Register("nil", nil), "nil func")

	assert.Panics(t, func() { reg.MustRegister("test", noop) })
}

func TestRegistry_Trial(t *testing.T) {
	reg := NewRegistry()
	boom := errors.New("boom")
	reg.MustRegister("ok", noop)
	reg.MustRegister("fails", func() error { return boom })
	reg.MustRegister("panics", func() error { panic("kaboom") })
	reg.MustRegister("panicsErr", func() error { panic(boom) })

	n, err := reg.Trial("ok", time.Millisecond)
	require.NoError(t, err)
	assert.Positive(t, n)

	_, err = reg.Trial("fails", time.Millisecond)
	assert.ErrorIs(t, err, boom)
	var terr *TrialError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "fails", terr.Test)
	assert.Contains(t, err.Error(), "test fails failed")

	_, err = reg.Trial("panics", time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kaboom")

	_, err = reg.Trial("panicsErr", time.Millisecond)
	assert.ErrorIs(t, err, boom)

	_, err = reg.Trial("missing", time.Millisecond)
	assert.ErrorIs(t, err, ErrUnknownTest)
}
