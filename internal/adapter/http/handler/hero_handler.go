package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"heroapp/internal/adapter/http/helper"
	"heroapp/internal/adapter/http/middleware"
	"heroapp/internal/adapter/http/validation"
	"heroapp/internal/core/domain"
	"heroapp/internal/core/model/request"
	"heroapp/internal/core/model/response"
	"heroapp/internal/core/port"
	"heroapp/internal/core/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HeroHandler struct {
	svc port.HeroService
}

func NewHeroHandler(svc port.HeroService) *HeroHandler {
	return &HeroHandler{svc: svc}
}

func (h *HeroHandler) GetAllHeroes(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := middleware.CurrentUser(c)

	if !ok {
		helper.SendUnauthorizedError(c, "Unauthorized request")
		return
	}

	cursor := c.Query("cursor")
	limit, _ := strconv.Atoi(c.Query("limit"))

	if limit <= 0 {
		limit = 10
	}

	data, err := h.svc.GetHeroesWithPagination(ctx, user.ID, limit, cursor)

	if err != nil {
		if errors.Is(err, util.ErrInvalidCursor) {
			helper.SendBadRequestError(c, "cursor", "Invalid pagination cursor")
			return
		}

		slog.Error("Hero#GetAllHeroes", "error", err)
		helper.SendInternalError(c, "Error getting heroes")
		return
	}

	c.JSON(http.StatusOK, data)
}

func (h *HeroHandler) CreateHero(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := middleware.CurrentUser(c)

	if !ok {
		helper.SendUnauthorizedError(c, "Unauthorized request")
		return
	}

	params, err := util.ParamsToMap[request.HeroRequest](c)

	if err != nil {
		helper.SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	hero := domain.Hero{
		Name:   params.Name,
		Power:  params.Power,
		UserId: user.ID,
	}

	if err := validation.Validator.Struct(hero); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	hero, err = h.svc.Create(ctx, hero)

	if err != nil {
		slog.Error("Hero#CreateHero", "error", err)
		helper.SendInternalError(c, "Error creating hero")
		return
	}

	helper.SendSuccess(c, http.StatusCreated, heroResponse(hero))
}

func (h *HeroHandler) UpdateHero(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := middleware.CurrentUser(c)

	if !ok {
		helper.SendUnauthorizedError(c, "Unauthorized request")
		return
	}

	uid, err := uuid.Parse(c.Param("uuid"))

	if err != nil {
		helper.SendBadRequestError(c, "uuid", "Invalid hero identifier")
		return
	}

	params, err := util.ParamsToMap[request.HeroRequest](c)

	if err != nil {
		helper.SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	hero := domain.Hero{
		UUID:   uid,
		Name:   params.Name,
		Power:  params.Power,
		UserId: user.ID,
	}

	if err := validation.Validator.Struct(hero); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	hero, err = h.svc.UpdateByUUID(ctx, hero)

	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helper.SendNotFoundError(c, "Hero not found")
			return
		}

		slog.Error("Hero#UpdateHero", "error", err)
		helper.SendInternalError(c, "Error updating hero")
		return
	}

	helper.SendSuccess(c, http.StatusOK, heroResponse(hero))
}

func (h *HeroHandler) DeleteByUUID(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := middleware.CurrentUser(c)

	if !ok {
		helper.SendUnauthorizedError(c, "Unauthorized request")
		return
	}

	uid, err := uuid.Parse(c.Param("uuid"))

	if err != nil {
		helper.SendBadRequestError(c, "uuid", "Invalid hero identifier")
		return
	}

	if err := h.svc.DeleteByUUID(ctx, uid.String(), user.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helper.SendNotFoundError(c, "Hero not found")
			return
		}

		slog.Error("Hero#DeleteByUUID", "error", err)
		helper.SendInternalError(c, "Error deleting hero")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func heroResponse(hero domain.Hero) response.HeroResponse {
	return response.HeroResponse{
		UUID:      hero.UUID,
		Name:      hero.Name,
		Power:     hero.Power,
		CreatedAt: hero.CreatedAt,
		UpdatedAt: hero.UpdatedAt,
	}
}
