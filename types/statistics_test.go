package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCountersToStats(t *testing.T) {
	t.Parallel()

	var c Counters
	c.Frames.Received.Increment(100)
	c.Frames.Received.Increment(50)
	c.Frames.Processed.Increment(30)
	c.Reconfigurations.Inc()
	c.ReconfigurationsFailed.Inc()
	c.ReconfigurationsFailed.Inc()

	require.Equal(t, Statistics{
		Frames: FrameStatistics{
			Received:  StatisticsItem{Count: 2, Bytes: 150},
			Processed: StatisticsItem{Count: 1, Bytes: 30},
		},
		Reconfigurations:       1,
		ReconfigurationsFailed: 2,
	}, c.ToStats())
}
