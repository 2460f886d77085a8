package types

import (
	"go.uber.org/atomic"
)

type StatisticsItem struct {
	Count uint64 `json:",omitempty" yaml:"count,omitempty"`
	Bytes uint64 `json:",omitempty" yaml:"bytes,omitempty"`
}

type FrameStatistics struct {
	Received  StatisticsItem `yaml:"received"`
	Processed StatisticsItem `yaml:"processed"`
	Failed    StatisticsItem `yaml:"failed"`
}

type Statistics struct {
	Frames                 FrameStatistics `yaml:"frames"`
	Reconfigurations       uint64          `json:",omitempty" yaml:"reconfigurations,omitempty"`
	ReconfigurationsFailed uint64          `json:",omitempty" yaml:"reconfigurations_failed,omitempty"`
}

type CountersItem struct {
	Count atomic.Uint64
	Bytes atomic.Uint64
}

func (c *CountersItem) Increment(msgSize uint64) {
	c.Count.Inc()
	c.Bytes.Add(msgSize)
}

func (c *CountersItem) ToStats() StatisticsItem {
	return StatisticsItem{
		Count: c.Count.Load(),
		Bytes: c.Bytes.Load(),
	}
}

type FrameCounters struct {
	Received  CountersItem
	Processed CountersItem
	Failed    CountersItem
}

func (c *FrameCounters) ToStats() FrameStatistics {
	return FrameStatistics{
		Received:  c.Received.ToStats(),
		Processed: c.Processed.ToStats(),
		Failed:    c.Failed.ToStats(),
	}
}

// Counters are the live, concurrently updated counterpart of Statistics.
type Counters struct {
	Frames                 FrameCounters
	Reconfigurations       atomic.Uint64
	ReconfigurationsFailed atomic.Uint64
}

func (c *Counters) ToStats() Statistics {
	return Statistics{
		Frames:                 c.Frames.ToStats(),
		Reconfigurations:       c.Reconfigurations.Load(),
		ReconfigurationsFailed: c.ReconfigurationsFailed.Load(),
	}
}
