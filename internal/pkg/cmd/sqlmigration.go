package cmd

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/usergraph/social-service/pkg/log"
	"github.com/usergraph/social-service/pkg/sql"
)

type (
	SQLMigrations interface {
		MustExecute(migrations fs.ReadDirFS)
	}

	sqlMigrations struct {
		ctx    context.Context
		db     sql.Database
		logger log.Logger
	}
)

func NewSQLMigrations(
	ctx context.Context,
	db sql.Database,
	logger log.Logger,
) SQLMigrations {
	return &sqlMigrations{
		ctx:    ctx,
		db:     db,
		logger: logger,
	}
}

func (s *sqlMigrations) MustExecute(migrations fs.ReadDirFS) {
	err := sql.NewMigration(s.db, migrations, s.logger).Execute(s.ctx)
	if err != nil {
		panic(fmt.Errorf("execute migrations: %w", err))
	}
}
