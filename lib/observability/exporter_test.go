package observability

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"

	"github.com/benz9527/xcontainer/lib/list"
)

func fillArenaList(t *testing.T, name string) {
	t.Helper()
	arena := list.NewArenaAllocator[int](list.WithAllocatorStats(name, nil))
	dlist, err := list.NewLinkedListFromValues([]int{1, 2, 3}, list.WithLinkedListAllocator[int](arena))
	require.NoError(t, err)
	dlist.PopFront()
}

func TestInstallConsoleExporter(t *testing.T) {
	buf := &bytes.Buffer{}
	shutdown, err := InstallConsoleExporter(time.Minute, time.Second,
		stdoutmetric.WithWriter(buf),
		stdoutmetric.WithoutTimestamps(),
	)
	require.NoError(t, err)

	fillArenaList(t, "console")
	require.NoError(t, shutdown(context.Background()))

	out := buf.String()
	require.Contains(t, out, list.AllocatorStatsName+"/console")
	require.Contains(t, out, "alloc.node.allocated")
	require.Contains(t, out, "alloc.node.live")
}

func TestInstallPrometheusExporter(t *testing.T) {
	reg := prom.NewRegistry()
	shutdown, err := InstallPrometheusExporter(reg)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, shutdown(context.Background()))
	}()

	fillArenaList(t, "prometheus")

	families, err := reg.Gather()
	require.NoError(t, err)
	values := map[string]float64{}
	for _, family := range families {
		for _, m := range family.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				values[family.GetName()] += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				values[family.GetName()] += m.GetGauge().GetValue()
			}
		}
	}
	found := 0
	for name, v := range values {
		switch {
		case strings.HasPrefix(name, "alloc_node_allocated"):
			require.Equal(t, float64(3), v)
			found++
		case strings.HasPrefix(name, "alloc_node_deallocated"):
			require.Equal(t, float64(1), v)
			found++
		case strings.HasPrefix(name, "alloc_node_live"):
			require.Equal(t, float64(2), v)
			found++
		}
	}
	require.Equal(t, 3, found)
}
