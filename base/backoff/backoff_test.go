package backoff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExponential(t *testing.T) {
	req := require.New(t)
	b := NewExponential(time.Millisecond, 4*time.Millisecond)
	req.Equal(time.Millisecond, b.NextDuration)

	for _, want := range []time.Duration{2, 4, 4, 4} {
		req.NoError(b.Backoff(context.Background()))
		req.Equal(want*time.Millisecond, b.NextDuration)
	}

	b.Reset()
	req.Equal(time.Millisecond, b.NextDuration)
	req.Equal(time.Duration(0), b.LastDuration)
}

func TestBackoffCanceled(t *testing.T) {
	b := NewExponential(time.Hour, 0)
	c, cancel := context.WithCancel(context.Background())
	cancel()
	require.Equal(t, context.Canceled, b.Backoff(c))
	require.Equal(t, time.Hour, b.NextDuration)
}
