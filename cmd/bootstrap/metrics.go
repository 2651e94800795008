package bootstrap

import (
	"healthsched/internal/observability/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewSchedulingMetrics,
	),
)

func NewSchedulingMetrics() *metrics.SchedulingMetrics {
	return metrics.NewSchedulingMetrics(prometheus.DefaultRegisterer)
}
