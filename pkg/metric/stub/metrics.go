package stub

import (
	"time"

	"github.com/usergraph/social-service/pkg/metric"
)

type metrics struct{}

func NewMetrics() metric.Metrics {
	return metrics{}
}

func (m metrics) With(metric.Labels) metric.Metrics {
	return m
}

func (m metrics) Increment(string) {}

func (m metrics) Duration(string, time.Duration) {}
