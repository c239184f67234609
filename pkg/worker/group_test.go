package worker_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usergraph/social-service/pkg/worker"
)

func TestGroup_Wait_ReturnsNilWhenAllJobsSucceed(t *testing.T) {
	_, group := worker.NewGroup(context.Background())

	var completed atomic.Int32
	for i := 0; i < 3; i++ {
		group.Do(func() error {
			completed.Add(1)
			return nil
		})
	}

	require.NoError(t, group.Wait())
	assert.Equal(t, int32(3), completed.Load())
}

func TestGroup_Wait_ReturnsFirstErrorAndCancelsContext(t *testing.T) {
	ctx, group := worker.NewGroup(context.Background())

	jobErr := errors.New("job failed")
	group.Do(func() error {
		return jobErr
	})
	group.Do(func() error {
		<-ctx.Done()
		return nil
	})

	assert.ErrorIs(t, group.Wait(), jobErr)
	assert.Error(t, ctx.Err())
}
