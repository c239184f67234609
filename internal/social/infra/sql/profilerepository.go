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

type profileRepository struct {
	db pkgsql.Client
}

func NewProfileRepository(db pkgsql.Client) domain.ProfileRepository {
	return profileRepository{db: db}
}

func (r profileRepository) NextID() domain.ProfileID {
	return domain.ProfileID{UUID: uuid.New()}
}

func (r profileRepository) Store(ctx context.Context, profile *domain.Profile) error {
	query, args, err := sq.
		Insert("profile").
		Columns("id", "avatar", "sex", "birthday", "country", "street", "city", "member_type_id", "user_id").
		Values(
			profile.ID,
			profile.Avatar,
			profile.Sex,
			profile.Birthday,
			profile.Country,
			profile.Street,
			profile.City,
			profile.MemberTypeID,
			profile.UserID,
		).
		Suffix(`on conflict (id) do update set
			avatar = excluded.avatar,
			sex = excluded.sex,
			birthday = excluded.birthday,
			country = excluded.country,
			street = excluded.street,
			city = excluded.city,
			member_type_id = excluded.member_type_id,
			updated_at = now()
		`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

func (r profileRepository) Find(ctx context.Context, spec domain.FindProfileSpecification) ([]domain.Profile, error) {
	query, args, err := r.buildFindQuery(spec).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []sqlxProfile
	err = r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, err
	}

	return toDomainProfiles(rows), nil
}

func (r profileRepository) FindOne(ctx context.Context, spec domain.FindProfileSpecification) (*domain.Profile, error) {
	query, args, err := r.buildFindQuery(spec).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row sqlxProfile
	err = r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	return toDomainProfile(&row), nil
}

func (r profileRepository) Delete(ctx context.Context, id domain.ProfileID) error {
	query, args, err := sq.
		Delete("profile").
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
		return domain.ErrProfileNotFound
	}

	return nil
}

func (r profileRepository) buildFindQuery(spec domain.FindProfileSpecification) sq.SelectBuilder {
	qb := sq.
		Select("id", "avatar", "sex", "birthday", "country", "street", "city", "member_type_id", "user_id").
		From("profile").
		OrderBy("created_at")
	if len(spec.IDs) > 0 {
		qb = qb.Where(sq.Eq{"id": spec.IDs})
	}
	if len(spec.UserIDs) > 0 {
		qb = qb.Where(sq.Eq{"user_id": spec.UserIDs})
	}

	return qb
}

type sqlxProfile struct {
	ID           domain.ProfileID `db:"id"`
	Avatar       string           `db:"avatar"`
	Sex          string           `db:"sex"`
	Birthday     int64            `db:"birthday"`
	Country      string           `db:"country"`
	Street       string           `db:"street"`
	City         string           `db:"city"`
	MemberTypeID string           `db:"member_type_id"`
	UserID       domain.UserID    `db:"user_id"`
}
