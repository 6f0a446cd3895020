package port

import (
	"context"

	"heroapp/internal/core/domain"
	"heroapp/internal/core/model/response"
)

// HeroRepository stores heroes per owner. Listing and mutation are scoped by
// user id so one account can never reach another account's rows.
type HeroRepository interface {
	GetAllWithCursor(ctx context.Context, userId int, limit int, cursor string) ([]domain.Hero, bool, error)
	GetByUUID(ctx context.Context, uuid string) (domain.Hero, error)
	Create(ctx context.Context, hero domain.Hero) (domain.Hero, error)
	UpdateByUUID(ctx context.Context, hero domain.Hero) (domain.Hero, error)
	DeleteByUUID(ctx context.Context, uuid string, userId int) error
}

type HeroService interface {
	GetHeroesWithPagination(ctx context.Context, userId int, limit int, cursor string) (*response.CursorResponse, error)
	Create(ctx context.Context, hero domain.Hero) (domain.Hero, error)
	UpdateByUUID(ctx context.Context, hero domain.Hero) (domain.Hero, error)
	DeleteByUUID(ctx context.Context, uuid string, userId int) error
}
