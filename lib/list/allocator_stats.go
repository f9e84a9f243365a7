package list

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const (
	AllocatorStatsName = "xcontainer/alloc"
)

type allocatorStats struct {
	allocated   metric.Int64Counter
	deallocated metric.Int64Counter
	live        metric.Int64UpDownCounter
	failed      metric.Int64Counter
}

func (stats *allocatorStats) recordAllocate() {
	if stats == nil {
		return
	}
	stats.allocated.Add(context.Background(), 1)
	stats.live.Add(context.Background(), 1)
}

func (stats *allocatorStats) recordDeallocate() {
	if stats == nil {
		return
	}
	stats.deallocated.Add(context.Background(), 1)
	stats.live.Add(context.Background(), -1)
}

func (stats *allocatorStats) recordFailure() {
	if stats == nil {
		return
	}
	stats.failed.Add(context.Background(), 1)
}

func newAllocatorStats(name string, mp metric.MeterProvider) *allocatorStats {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	meter := mp.Meter(fmt.Sprintf("%s/%s", AllocatorStatsName, name))
	return &allocatorStats{
		allocated: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"alloc.node.allocated",
			metric.WithDescription("The number of nodes handed out by the allocator."),
		)),
		deallocated: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"alloc.node.deallocated",
			metric.WithDescription("The number of nodes returned to the allocator."),
		)),
		live: lo.Must[metric.Int64UpDownCounter](meter.Int64UpDownCounter(
			"alloc.node.live",
			metric.WithDescription("The number of nodes currently owned by containers."),
		)),
		failed: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"alloc.node.failed",
			metric.WithDescription("The number of allocation requests that could not be served."),
		)),
	}
}
