package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/usergraph/social-service/internal/social/domain"
	pkgsql "github.com/usergraph/social-service/pkg/sql"
)

type postRepository struct {
	db pkgsql.Client
}

func NewPostRepository(db pkgsql.Client) domain.PostRepository {
	return postRepository{db: db}
}

func (r postRepository) NextID() domain.PostID {
	return domain.PostID{UUID: uuid.New()}
}

func (r postRepository) Store(ctx context.Context, post *domain.Post) error {
	query, args, err := sq.
		Insert("post").
		Columns("id", "title", "content", "user_id").
		Values(post.ID, post.Title, post.Content, post.UserID).
		Suffix(`on conflict (id) do update set
			title = excluded.title,
			content = excluded.content,
			updated_at = now()
		`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

func (r postRepository) Find(ctx context.Context, spec domain.FindPostSpecification) ([]domain.Post, error) {
	query, args, err := r.buildFindQuery(spec).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []sqlxPost
	err = r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, err
	}

	return toDomainPosts(rows), nil
}

func (r postRepository) FindOne(ctx context.Context, spec domain.FindPostSpecification) (*domain.Post, error) {
	query, args, err := r.buildFindQuery(spec).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row sqlxPost
	err = r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}

	return toDomainPost(&row), nil
}

func (r postRepository) Delete(ctx context.Context, id domain.PostID) error {
	query, args, err := sq.
		Delete("post").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrPostNotFound
	}

	return nil
}

func (r postRepository) buildFindQuery(spec domain.FindPostSpecification) sq.SelectBuilder {
	qb := sq.
		Select("id", "title", "content", "user_id").
		From("post").
		OrderBy("created_at")
	if len(spec.IDs) > 0 {
		qb = qb.Where(sq.Eq{"id": spec.IDs})
	}
	if len(spec.UserIDs) > 0 {
		qb = qb.Where(sq.Eq{"user_id": spec.UserIDs})
	}

	return qb
}

type sqlxPost struct {
	ID      domain.PostID `db:"id"`
	Title   string        `db:"title"`
	Content string        `db:"content"`
	UserID  domain.UserID `db:"user_id"`
}
