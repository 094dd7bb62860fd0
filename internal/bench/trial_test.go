package bench

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunTrial_CountsCompletedCalls(t *testing.T) {
	calls := 0
	fn := func() error {
		calls++
		return nil
	}

	start := time.Now()
	n, err := RunTrial(fn, 5*time.Millisecond)
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Greater(t, n, int64(0))
	// one warm-up call is not counted
	assert.Equal(t, int64(calls-1), n)
	assert.GreaterOrEqual(t, elapsed, 5*time.Millisecond)
}

func TestRunTrial_OverrunIsBoundedByOneCall(t *testing.T) {
	fn := func() error {
		time.Sleep(4 * time.Millisecond)
		return nil
	}

	n, err := RunTrial(fn, 10*time.Millisecond)
	require.NoError(t, err)
	// 3 calls take >= 12ms so the loop must stop at or before the third
	assert.GreaterOrEqual(t, n, int64(1))
	assert.LessOrEqual(t, n, int64(3))
}

func TestRunTrial_SlowCallStillCompletesOnce(t *testing.T) {
	fn := func() error {
		time.Sleep(3 * time.Millisecond)
		return nil
	}

	n, err := RunTrial(fn, time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestRunTrial_FailureIsDistinctFromZero(t *testing.T) {
	boom := errors.New("boom")

	t.Run("warm-up failure", func(t *testing.T) {
		_, err := RunTrial(func() error { return boom }, time.Millisecond)

		var terr *TrialError
		require.ErrorAs(t, err, &terr)
		assert.Equal(t, int64(0), terr.Completed)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("failure on second call", func(t *testing.T) {
		calls := 0
		fn := func() error {
			calls++
			if calls == 2 {
				return boom
			}
			return nil
		}

		_, err := RunTrial(fn, 10*time.Millisecond)
		var terr *TrialError
		require.ErrorAs(t, err, &terr)
		assert.Equal(t, 2, calls)
	})

	t.Run("panic", func(t *testing.T) {
		calls := 0
		fn := func() error {
			calls++
			if calls > 3 {
				panic("broken")
			}
			return nil
		}

		_, err := RunTrial(fn, 50*time.Millisecond)
		var terr *TrialError
		require.ErrorAs(t, err, &terr)
		assert.Equal(t, int64(2), terr.Completed)
		assert.Contains(t, err.Error(), "broken")
	})
}
