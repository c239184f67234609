package worker

import "context"

type (
	SimpleJob  func()
	ErrorJob   func() error
	ContextJob func(context.Context) error
)
