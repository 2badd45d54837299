package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTag(t *testing.T) {
	req := require.New(t)
	req.Nil(parseTag(nil))
	req.Equal([]string{"source:chainlink", "chain:1"}, parseTag([]string{"source", "chainlink", "chain", "1"}))
	req.Panics(func() { parseTag([]string{"odd"}) })
}

func TestBumpWithoutAgent(t *testing.T) {
	// no datadog_host configured, bumps land in the log client
	m := New("pricer", WithoutPodName())
	m.BumpSum("source.hit", 1, "source", "chainlink")
	m.BumpAvg("depth", 2)
	m.BumpHistogram("coins", 3)
	m.BumpTime("resolve.time").End()

	// odd tags panic inside parseTag and are swallowed
	require.NotPanics(t, func() { m.BumpSum("source.hit", 1, "source") })
}
