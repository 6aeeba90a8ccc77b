// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package some_test

import (
	"context"
	"sync"
	"testing"

	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"code.hybscloud.com/some"
)

var (
	readerOnce sync.Once
	reader     *sdkmetric.ManualReader
)

func metricReader() *sdkmetric.ManualReader {
	readerOnce.Do(func() {
		reader = sdkmetric.NewManualReader()
		otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
	})
	return reader
}

// counters returns the cumulative value of every counter, keyed by name.
func counters(t *testing.T) map[string]int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := metricReader().Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect: %v", err)
	}
	out := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				out[m.Name] += dp.Value
			}
		}
	}
	return out
}

func TestTelemetry(t *testing.T) {
	before := counters(t)

	a := some.MustNew[Shape, some.Default](Square{Side: 1})
	b := some.MustNewFat[Shape, some.Heap](Big{})
	var c some.Box[Shape, some.Compact]
	if err := c.CopyFrom(&a); err != nil {
		t.Fatalf("CopyFrom: %v", err)
	}
	var d some.Fat[Shape, some.Default]
	if err := d.MoveFrom(&c); err != nil {
		t.Fatalf("MoveFrom: %v", err)
	}
	if err := d.MoveFrom(&b); err != nil {
		t.Fatalf("MoveFrom: %v", err)
	}
	a.Reset()
	d.Reset()

	after := counters(t)
	delta := func(name string) int64 { return after[name] - before[name] }
	if got := delta("some.placements"); got != 3 {
		t.Fatalf("placements: got %d, want 3", got)
	}
	if got := delta("some.relocations"); got != 1 {
		t.Fatalf("relocations: got %d, want 1", got)
	}
	if got := delta("some.releases"); got != 3 {
		t.Fatalf("releases: got %d, want 3", got)
	}
}
