package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/usergraph/social-service/internal/social/domain"
	"github.com/usergraph/social-service/pkg/event"
	pkgsql "github.com/usergraph/social-service/pkg/sql"
)

type userRepository struct {
	db              pkgsql.Client
	eventDispatcher event.Dispatcher
}

func NewUserRepository(db pkgsql.Client, eventDispatcher event.Dispatcher) domain.UserRepository {
	return userRepository{db: db, eventDispatcher: eventDispatcher}
}

func (r userRepository) NextID() domain.UserID {
	return domain.UserID{UUID: uuid.New()}
}

func (r userRepository) Store(ctx context.Context, user *domain.User) error {
	err := r.eventDispatcher.Dispatch(ctx, user.Changes...)
	if err != nil {
		return fmt.Errorf("dispatch events: %w", err)
	}
	user.Changes = nil

	query, args, err := sq.
		Insert("social_user").
		Columns("id", "first_name", "last_name", "email").
		Values(user.ID, user.FirstName, user.LastName, user.Email).
		Suffix(`on conflict (id) do update set
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			email = excluded.email,
			updated_at = now()
		`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return r.storeSubscriptions(ctx, user)
}

func (r userRepository) Find(ctx context.Context, spec domain.FindUserSpecification) ([]domain.User, error) {
	query, args, err := r.buildFindQuery(spec).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []sqlxUser
	err = r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []domain.User{}, nil
	}

	subscriptions, err := r.findSubscriptions(ctx, rows)
	if err != nil {
		return nil, err
	}

	return toDomainUsers(rows, subscriptions), nil
}

func (r userRepository) FindOne(ctx context.Context, spec domain.FindUserSpecification) (*domain.User, error) {
	query, args, err := r.buildFindQuery(spec).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row sqlxUser
	err = r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	subscriptions, err := r.findSubscriptions(ctx, []sqlxUser{row})
	if err != nil {
		return nil, err
	}

	user := toDomainUser(&row, subscriptions[row.ID])
	return user, nil
}

func (r userRepository) Delete(ctx context.Context, user *domain.User) error {
	err := r.eventDispatcher.Dispatch(ctx, user.Changes...)
	if err != nil {
		return fmt.Errorf("dispatch events: %w", err)
	}
	user.Changes = nil

	query, args, err := sq.
		Delete("user_subscription").
		Where(sq.Eq{"user_id": user.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	_, err = r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	query, args, err = sq.
		Delete("social_user").
		Where(sq.Eq{"id": user.ID}).
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
		return domain.ErrUserNotFound
	}

	return nil
}

func (r userRepository) buildFindQuery(spec domain.FindUserSpecification) sq.SelectBuilder {
	qb := sq.
		Select("id", "first_name", "last_name", "email").
		From("social_user").
		OrderBy("created_at")
	if len(spec.IDs) > 0 {
		qb = qb.Where(sq.Eq{"id": spec.IDs})
	}
	if spec.SubscribedToUserID != nil {
		qb = qb.Where(
			"id in (select user_id from user_subscription where target_user_id = ?)",
			*spec.SubscribedToUserID,
		)
	}

	return qb
}

func (r userRepository) storeSubscriptions(ctx context.Context, user *domain.User) error {
	query, args, err := sq.
		Delete("user_subscription").
		Where(sq.Eq{"user_id": user.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	_, err = r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	if len(user.SubscribedToUserIDs) == 0 {
		return nil
	}

	qb := sq.
		Insert("user_subscription").
		Columns("user_id", "target_user_id", "position")
	for position, targetID := range user.SubscribedToUserIDs {
		qb = qb.Values(user.ID, targetID, position)
	}

	query, args, err = qb.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

func (r userRepository) findSubscriptions(
	ctx context.Context,
	users []sqlxUser,
) (map[domain.UserID][]domain.UserID, error) {
	ids := make([]domain.UserID, 0, len(users))
	for _, user := range users {
		ids = append(ids, user.ID)
	}

	query, args, err := sq.
		Select("user_id", "target_user_id").
		From("user_subscription").
		Where(sq.Eq{"user_id": ids}).
		OrderBy("user_id", "position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []sqlxUserSubscription
	err = r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, err
	}

	result := make(map[domain.UserID][]domain.UserID, len(users))
	for _, row := range rows {
		result[row.UserID] = append(result[row.UserID], row.TargetUserID)
	}

	return result, nil
}

type sqlxUser struct {
	ID        domain.UserID `db:"id"`
	FirstName string        `db:"first_name"`
	LastName  string        `db:"last_name"`
	Email     string        `db:"email"`
}

type sqlxUserSubscription struct {
	UserID       domain.UserID `db:"user_id"`
	TargetUserID domain.UserID `db:"target_user_id"`
}
