package obs

import (
	"context"
	"errors"
	"testing"
	"truck-loading-service/internal/platform/metrics"
)

func TestRequestIDRoundTrip(t *testing.T) {
	if got := RequestID(context.Background()); got != "" {
		t.Fatalf("expected empty request id, got %q", got)
	}

	ctx := WithRequestID(context.Background(), "req-1")
	if got := RequestID(ctx); got != "req-1" {
		t.Fatalf("RequestID = %q, want req-1", got)
	}
}

func TestTimeRecordsOutcome(t *testing.T) {
	run := func(fail bool) (err error) {
		defer Time(context.Background(), "test.op")(&err)
		if fail {
			return errors.New("boom")
		}
		return nil
	}

	_ = run(false)
	_ = run(true)
	_ = run(true)

	metrics.Register()
	families, err := metrics.Registry.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}

	outcomes := map[string]uint64{}
	for _, mf := range families {
		if mf.GetName() != "operation_duration_seconds" {
			continue
		}
		for _, m := range mf.GetMetric() {
			var op, outcome string
			for _, l := range m.GetLabel() {
				switch l.GetName() {
				case "op":
					op = l.GetValue()
				case "outcome":
					outcome = l.GetValue()
				}
			}
			if op == "test.op" {
				outcomes[outcome] = m.GetHistogram().GetSampleCount()
			}
		}
	}

	if outcomes["ok"] != 1 || outcomes["error"] != 2 {
		t.Fatalf("unexpected outcome counts: %v", outcomes)
	}
}
