package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"

	"heroapp/internal/adapter/database/sqlite"
	"heroapp/internal/core/domain"
	"heroapp/internal/core/port"
	"heroapp/internal/core/util"
)

var heroColumns = []string{"id", "uuid", "name", "power", "user_id", "created_at", "updated_at"}

type HeroRepository struct {
	db *sqlite.DB
}

func NewHeroRepository(db *sqlite.DB) port.HeroRepository {
	return &HeroRepository{db: db}
}

func (hr *HeroRepository) GetAllWithCursor(ctx context.Context, userId int, limit int, cursor string) ([]domain.Hero, bool, error) {
	// Fetch one extra row to learn whether a next page exists.
	actualLimit := limit + 1

	query := hr.db.QueryBuilder.Select(heroColumns...).
		From("heroes").
		Where(sq.Eq{"user_id": userId}).
		OrderBy("created_at DESC, id DESC").
		Limit(uint64(actualLimit))

	if cursor != "" {
		datetimeStr, id, err := util.DecodeCursor(cursor)

		if err != nil {
			return []domain.Hero{}, false, err
		}

		datetime, err := time.Parse(time.RFC3339, datetimeStr)

		if err != nil {
			return []domain.Hero{}, false, fmt.Errorf("%w: %v", util.ErrInvalidCursor, err)
		}

		query = query.Where(sq.Or{
			sq.Lt{"created_at": datetime},
			sq.And{
				sq.Eq{"created_at": datetime},
				sq.Lt{"id": id},
			},
		})
	}

	stmt, args, err := query.ToSql()

	if err != nil {
		return []domain.Hero{}, false, err
	}

	rows, err := hr.db.QueryContext(ctx, stmt, args...)

	if err != nil {
		return []domain.Hero{}, false, err
	}

	defer rows.Close()

	var heroes []domain.Hero

	for rows.Next() {
		var hero domain.Hero

		err := rows.Scan(
			&hero.ID,
			&hero.UUID,
			&hero.Name,
			&hero.Power,
			&hero.UserId,
			&hero.CreatedAt,
			&hero.UpdatedAt,
		)

		if err != nil {
			return []domain.Hero{}, false, err
		}

		heroes = append(heroes, hero)
	}

	if err := rows.Err(); err != nil {
		return []domain.Hero{}, false, err
	}

	hasNext := len(heroes) == actualLimit

	if hasNext {
		heroes = heroes[:limit]
	}

	return heroes, hasNext, nil
}

func (hr *HeroRepository) GetByUUID(ctx context.Context, uid string) (domain.Hero, error) {
	query := hr.db.QueryBuilder.Select(heroColumns...).
		From("heroes").
		Where(sq.Eq{"uuid": uid}).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Hero{}, err
	}

	var hero domain.Hero

	err = hr.db.QueryRowContext(ctx, stmt, args...).Scan(
		&hero.ID,
		&hero.UUID,
		&hero.Name,
		&hero.Power,
		&hero.UserId,
		&hero.CreatedAt,
		&hero.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Hero{}, domain.ErrNotFound
		}

		slog.Error("Error getting hero by uuid", "error", err)
		return domain.Hero{}, err
	}

	return hero, nil
}

func (hr *HeroRepository) Create(ctx context.Context, hero domain.Hero) (domain.Hero, error) {
	query := hr.db.QueryBuilder.Insert("heroes").
		Columns("uuid", "name", "power", "user_id", "created_at", "updated_at").
		Values(hero.UUID.String(), hero.Name, hero.Power, hero.UserId, hero.CreatedAt, hero.UpdatedAt)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Hero{}, err
	}

	if _, err := hr.db.ExecContext(ctx, stmt, args...); err != nil {
		slog.Error("Error creating hero", "error", err)
		return domain.Hero{}, err
	}

	return hr.GetByUUID(ctx, hero.UUID.String())
}

func (hr *HeroRepository) UpdateByUUID(ctx context.Context, hero domain.Hero) (domain.Hero, error) {
	query := hr.db.QueryBuilder.Update("heroes").
		Set("name", hero.Name).
		Set("power", hero.Power).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"uuid": hero.UUID.String()}).
		Where(sq.Eq{"user_id": hero.UserId})

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Hero{}, err
	}

	result, err := hr.db.ExecContext(ctx, stmt, args...)

	if err != nil {
		return domain.Hero{}, err
	}

	affected, err := result.RowsAffected()

	if err != nil {
		return domain.Hero{}, err
	}

	if affected == 0 {
		return domain.Hero{}, domain.ErrNotFound
	}

	return hr.GetByUUID(ctx, hero.UUID.String())
}

func (hr *HeroRepository) DeleteByUUID(ctx context.Context, uid string, userId int) error {
	stmt, args, err := hr.db.QueryBuilder.Delete("heroes").
		Where(sq.Eq{"uuid": uid}).
		Where(sq.Eq{"user_id": userId}).
		ToSql()

	if err != nil {
		return err
	}

	result, err := hr.db.ExecContext(ctx, stmt, args...)

	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()

	if err != nil {
		return err
	}

	if affected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
