package repository

import (
	"context"
	"errors"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	database "heroapp/internal/adapter/database/postgres"
	"heroapp/internal/core/domain"
	"heroapp/internal/core/port"
)

var userColumns = []string{"id", "uuid", "email", "first_name", "last_name", "language", "encrypted_password", "created_at", "updated_at"}

type UserRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) port.UserRepository {
	return &UserRepository{db: db}
}

func (ur *UserRepository) GetByUUID(ctx context.Context, uid string) (domain.User, error) {
	query := ur.db.QueryBuilder.Select(userColumns...).
		From("users").
		Where(sq.Eq{"uuid": uid}).
		Limit(1)

	return ur.getOne(ctx, query)
}

func (ur *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	query := ur.db.QueryBuilder.Select(userColumns...).
		From("users").
		Where(sq.Eq{"email": email}).
		Limit(1)

	return ur.getOne(ctx, query)
}

func (ur *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	query := ur.db.QueryBuilder.Insert("users").
		Columns("uuid", "email", "first_name", "last_name", "language", "encrypted_password", "created_at", "updated_at").
		Values(user.UUID.String(), user.Email, user.FirstName, user.LastName, user.Language, user.EncryptedPassword, user.CreatedAt, user.UpdatedAt).
		Suffix("RETURNING " + "id, uuid, email, first_name, last_name, language, encrypted_password, created_at, updated_at")

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	var saved domain.User

	err = ur.db.QueryRow(ctx, stmt, args...).Scan(
		&saved.ID,
		&saved.UUID,
		&saved.Email,
		&saved.FirstName,
		&saved.LastName,
		&saved.Language,
		&saved.EncryptedPassword,
		&saved.CreatedAt,
		&saved.UpdatedAt,
	)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.User{}, domain.ErrEmailTaken
		}

		slog.Error("Error creating user", "error", err)
		return domain.User{}, err
	}

	return saved, nil
}

func (ur *UserRepository) DeleteByUUID(ctx context.Context, uid string) error {
	stmt, args, err := ur.db.QueryBuilder.Delete("users").
		Where(sq.Eq{"uuid": uid}).
		ToSql()

	if err != nil {
		return err
	}

	tag, err := ur.db.Exec(ctx, stmt, args...)

	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (ur *UserRepository) getOne(ctx context.Context, query sq.SelectBuilder) (domain.User, error) {
	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	var data domain.User

	err = ur.db.QueryRow(ctx, stmt, args...).Scan(
		&data.ID,
		&data.UUID,
		&data.Email,
		&data.FirstName,
		&data.LastName,
		&data.Language,
		&data.EncryptedPassword,
		&data.CreatedAt,
		&data.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrNotFound
		}

		slog.Error("Error getting user", "error", err)
		return domain.User{}, err
	}

	return data, nil
}
