package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/usergraph/social-service/internal/social/domain"
	pkgsql "github.com/usergraph/social-service/pkg/sql"
)

type memberTypeRepository struct {
	db pkgsql.Client
}

func NewMemberTypeRepository(db pkgsql.Client) domain.MemberTypeRepository {
	return memberTypeRepository{db: db}
}

func (r memberTypeRepository) Store(ctx context.Context, memberType *domain.MemberType) error {
	query, args, err := sq.
		Insert("member_type").
		Columns("id", "discount", "month_posts_limit").
		Values(memberType.ID, memberType.Discount, memberType.MonthPostsLimit).
		Suffix(`on conflict (id) do update set
			discount = excluded.discount,
			month_posts_limit = excluded.month_posts_limit,
			updated_at = now()
		`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

func (r memberTypeRepository) Find(ctx context.Context, spec domain.FindMemberTypeSpecification) ([]domain.MemberType, error) {
	query, args, err := r.buildFindQuery(spec).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []sqlxMemberType
	err = r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, err
	}

	return toDomainMemberTypes(rows), nil
}

func (r memberTypeRepository) FindOne(ctx context.Context, spec domain.FindMemberTypeSpecification) (*domain.MemberType, error) {
	query, args, err := r.buildFindQuery(spec).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row sqlxMemberType
	err = r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrMemberTypeNotFound
	}
	if err != nil {
		return nil, err
	}

	return toDomainMemberType(&row), nil
}

func (r memberTypeRepository) buildFindQuery(spec domain.FindMemberTypeSpecification) sq.SelectBuilder {
	qb := sq.
		Select("id", "discount", "month_posts_limit").
		From("member_type").
		OrderBy("id")
	if len(spec.IDs) > 0 {
		qb = qb.Where(sq.Eq{"id": spec.IDs})
	}

	return qb
}

type sqlxMemberType struct {
	ID              string `db:"id"`
	Discount        int    `db:"discount"`
	MonthPostsLimit int    `db:"month_posts_limit"`
}
