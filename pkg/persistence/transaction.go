//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Transaction=Transaction"
package persistence

import "context"

// Transaction executes fn as a single unit of work. Mutations of a named
// resource are serialized by passing its lock name: two executions sharing
// a lock name never interleave.
type Transaction interface {
	Execute(ctx context.Context, fn func(ctx context.Context) error, lockNames ...string) error
}

func ExecuteWithResult[T any](
	ctx context.Context,
	tx Transaction,
	fn func(ctx context.Context) (T, error),
	lockNames ...string,
) (T, error) {
	var result T
	err := tx.Execute(ctx, func(ctx context.Context) error {
		var fnErr error
		result, fnErr = fn(ctx)
		return fnErr
	}, lockNames...)
	if err != nil {
		var blank T
		return blank, err
	}

	return result, nil
}
