package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"heroapp/internal/core/domain"
	"heroapp/internal/core/model/response"
	"heroapp/internal/core/port"
	"heroapp/internal/core/util"
)

type HeroService struct {
	repo port.HeroRepository
}

func NewHeroService(repo port.HeroRepository) *HeroService {
	return &HeroService{repo}
}

func (hs *HeroService) GetHeroesWithPagination(ctx context.Context, userId int, limit int, cursor string) (*response.CursorResponse, error) {
	rows, hasNext, err := hs.repo.GetAllWithCursor(ctx, userId, limit, cursor)

	data := make([]response.HeroResponse, 0)

	if err != nil {
		dataBytes, _ := util.Serialize(data)

		resp := response.CursorResponse{
			Size: 0,
			Data: dataBytes,
		}

		return &resp, err
	}

	for _, hero := range rows {
		item := response.HeroResponse{
			UUID:      hero.UUID,
			Name:      hero.Name,
			Power:     hero.Power,
			CreatedAt: hero.CreatedAt,
			UpdatedAt: hero.UpdatedAt,
		}

		data = append(data, item)
	}

	var nextCursor string

	if hasNext && len(rows) > 0 {
		lastHero := rows[len(rows)-1]
		// Nano precision so rows created within the same second are not lost
		// between pages.
		nextCursor = util.EncodeCursor(lastHero.CreatedAt.Format(time.RFC3339Nano), lastHero.ID)
	}

	dataBytes, _ := util.Serialize(data)

	responsable := response.CursorResponse{
		Size: len(data),
		Data: dataBytes,
		Pagination: struct {
			HasNext    bool   `json:"has_next"`
			NextCursor string `json:"next_cursor"`
		}{
			HasNext:    hasNext,
			NextCursor: nextCursor,
		},
	}

	return &responsable, nil
}

func (hs *HeroService) Create(ctx context.Context, hero domain.Hero) (domain.Hero, error) {
	now := time.Now()

	newHero := domain.Hero{
		UUID:      uuid.New(),
		Name:      hero.Name,
		Power:     hero.Power,
		UserId:    hero.UserId,
		CreatedAt: now,
		UpdatedAt: now,
	}

	hero, err := hs.repo.Create(ctx, newHero)

	if err != nil {
		slog.Error("Repository create failed", "error", err, "name", newHero.Name)
		return domain.Hero{}, err
	}

	return hero, nil
}

func (hs *HeroService) UpdateByUUID(ctx context.Context, hero domain.Hero) (domain.Hero, error) {
	hero, err := hs.repo.UpdateByUUID(ctx, hero)

	if err != nil {
		return domain.Hero{}, err
	}

	return hero, nil
}

func (hs *HeroService) DeleteByUUID(ctx context.Context, uid string, userId int) error {
	err := hs.repo.DeleteByUUID(ctx, uid, userId)

	if err != nil {
		return err
	}

	return nil
}
