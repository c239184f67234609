package persistence

import (
	"context"
	"sort"

	pkgsync "github.com/usergraph/social-service/pkg/sync"
)

type lockingTransaction struct {
	critical pkgsync.CriticalSection
}

// NewLockingTransaction returns a Transaction for storages without native
// transaction support: it provides the lock-name serialization guarantee
// only, completed steps are not rolled back on failure.
func NewLockingTransaction(critical pkgsync.CriticalSection) Transaction {
	return lockingTransaction{critical: critical}
}

func (t lockingTransaction) Execute(ctx context.Context, fn func(ctx context.Context) error, lockNames ...string) error {
	if len(lockNames) == 0 {
		return fn(ctx)
	}

	// locks are taken in a stable order to avoid deadlocks between
	// executions requesting overlapping name sets
	sorted := make([]string, len(lockNames))
	copy(sorted, lockNames)
	sort.Strings(sorted)

	return t.executeLocked(ctx, fn, sorted)
}

func (t lockingTransaction) executeLocked(ctx context.Context, fn func(ctx context.Context) error, lockNames []string) error {
	if len(lockNames) == 0 {
		return fn(ctx)
	}

	return t.critical.Execute(ctx, lockNames[0], func() error {
		return t.executeLocked(ctx, fn, lockNames[1:])
	})
}
