package sql

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/usergraph/social-service/pkg/log"
)

const (
	migrationLock  = "perform_migration_lock"
	querySeparator = ";\n"

	migrationTableDDL = `
		CREATE TABLE IF NOT EXISTS migration (
			id text PRIMARY KEY
		)
	`
)

type Migration struct {
	txClient   TxClient
	migrations fs.ReadDirFS
	logger     log.Logger
}

func NewMigration(txClient TxClient, migrations fs.ReadDirFS, logger log.Logger) *Migration {
	return &Migration{txClient, migrations, logger}
}

func (m *Migration) Execute(ctx context.Context) error {
	tx, err := m.txClient.Begin(ctx)
	if err != nil {
		return fmt.Errorf("start migration tx: %w", err)
	}

	err = m.performFileMigrations(ctx, tx)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("commit migration tx: %w", err)
	}
	return nil
}

func (m *Migration) performFileMigrations(ctx context.Context, tx ClientTx) error {
	err := withTransactionLevelLock(ctx, migrationLock, tx)
	if err != nil {
		return fmt.Errorf("get migration lock: %w", err)
	}

	_, err = tx.ExecContext(ctx, migrationTableDDL)
	if err != nil {
		return fmt.Errorf("create migration table: %w", err)
	}

	migrationIDs, err := m.getFileNames()
	if err != nil {
		return fmt.Errorf("get migration file names: %w", err)
	}
	if len(migrationIDs) == 0 {
		return nil
	}

	performedMigrationIDs, err := m.getPerformedMigrationIDs(ctx, tx)
	if err != nil {
		return fmt.Errorf("get performed migrations: %w", err)
	}

	for _, migrationID := range migrationIDs {
		if _, ok := performedMigrationIDs[migrationID]; ok {
			continue
		}

		migrationSQL, err := m.readFile(migrationID)
		if err != nil {
			return fmt.Errorf("read migration sql: %w", err)
		}

		err = m.performMigration(ctx, tx, migrationID, migrationSQL)
		if err != nil {
			return fmt.Errorf("migration %s failed: %w", migrationID, err)
		}

		m.logger.WithField("migrationID", migrationID).Info(ctx, "migration executed successfully")
	}
	return nil
}

func (m *Migration) getFileNames() ([]string, error) {
	entries, err := m.migrations.ReadDir(".")
	if err != nil {
		return nil, err
	}
	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		result = append(result, entry.Name())
	}
	sort.Strings(result)
	return result, nil
}

func (m *Migration) readFile(fileName string) (string, error) {
	content, err := fs.ReadFile(m.migrations, fileName)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

func (m *Migration) performMigration(ctx context.Context, client Client, migrationID, migrationSQL string) error {
	if migrationSQL == "" {
		return errors.New("empty migration")
	}

	_, err := client.ExecContext(ctx, `INSERT INTO migration VALUES ($1)`, migrationID)
	if err != nil {
		return err
	}

	for _, query := range strings.Split(migrationSQL, querySeparator) {
		if strings.TrimSpace(query) == "" {
			continue
		}
		_, err = client.ExecContext(ctx, query)
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *Migration) getPerformedMigrationIDs(ctx context.Context, client Client) (map[string]struct{}, error) {
	var fileNames []string
	err := client.SelectContext(ctx, &fileNames, `SELECT id FROM migration`)
	if err != nil {
		return nil, err
	}
	result := make(map[string]struct{}, len(fileNames))
	for _, id := range fileNames {
		result[id] = struct{}{}
	}
	return result, nil
}
