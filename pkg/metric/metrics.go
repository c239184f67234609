package metric

import "time"

type Labels map[string]string

type Metrics interface {
	With(labels Labels) Metrics
	Increment(key string)
	Duration(key string, duration time.Duration)
}
