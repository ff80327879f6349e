package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"pet-adoption/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Spec(t *testing.T) {
	noop := func(ctx context.Context) (int, error) { return 0, nil }

	s, err := New("  ", noop, logger.Nop())
	require.NoError(t, err)
	assert.Nil(t, s)

	_, err = New("every now and then", noop, logger.Nop())
	assert.Error(t, err)

	s, err = New("@every 6h", noop, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, s)

	s, err = New("0 */6 * * *", noop, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestRunOnce_ReportsErrorsAndSkipsOverlap(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	started := make(chan struct{})

	s, err := New("@every 1h", func(ctx context.Context) (int, error) {
		if calls.Add(1) == 1 {
			close(started)
			<-release
		}
		return 0, errors.New("boom")
	}, logger.Nop())
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		s.RunOnce(context.Background())
		close(done)
	}()

	<-started
	s.RunOnce(context.Background()) // en curso: se salta
	close(release)
	<-done

	assert.Equal(t, int32(1), calls.Load())

	s.RunOnce(context.Background())
	assert.Equal(t, int32(2), calls.Load())
}

func TestStartStop_FiresJob(t *testing.T) {
	fired := make(chan struct{}, 1)
	s, err := New("@every 1s", func(ctx context.Context) (int, error) {
		select {
		case fired <- struct{}{}:
		default:
		}
		return 1, nil
	}, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("job did not fire")
	}
}

func TestKVToMap(t *testing.T) {
	m := kvToMap([]any{"entry", 1, 2, "two", "dangling"})
	assert.Equal(t, map[string]any{"entry": 1, "2": "two"}, m)
}
