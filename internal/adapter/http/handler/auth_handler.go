package handler

import (
	"log/slog"
	"net/http"

	"heroapp/internal/adapter/http/helper"
	"heroapp/internal/adapter/http/middleware"
	"heroapp/internal/adapter/http/validation"
	"heroapp/internal/core/domain"
	"heroapp/internal/core/model/request"
	"heroapp/internal/core/model/response"
	"heroapp/internal/core/port"
	"heroapp/internal/core/util"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc    port.AuthService
	issuer port.TokenIssuer
}

func NewAuthHandler(svc port.AuthService, issuer port.TokenIssuer) *AuthHandler {
	return &AuthHandler{
		svc:    svc,
		issuer: issuer,
	}
}

func (a *AuthHandler) RegisterByEmailAndPassword(c *gin.Context) {
	ctx := c.Request.Context()

	params, err := util.ParamsToMap[request.SignUpRequest](c)

	if err != nil {
		helper.SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	pair, user, err := a.svc.Signup(ctx, &params)

	if err != nil {
		slog.Error("RegisterByEmailAndPassword", "signup", err)
		helper.SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
		"user":          userResponse(user),
	})
}

func (a *AuthHandler) AuthByEmailAndPassword(c *gin.Context) {
	ctx := c.Request.Context()

	params, err := util.ParamsToMap[request.LoginRequest](c)

	if err != nil {
		helper.SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	pair, user, err := a.svc.Login(ctx, &params)

	if err != nil {
		helper.SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
		"user":          userResponse(user),
	})
}

func (a *AuthHandler) RefreshTokenPair(c *gin.Context) {
	ctx := c.Request.Context()

	params, err := util.ParamsToMap[request.RefreshRequest](c)

	if err != nil {
		helper.SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	pair, err := a.svc.Refresh(ctx, params.RefreshToken)

	if err != nil {
		// Unverified hint only; the refresh has already been rejected.
		slog.Info("RefreshTokenPair rejected", "user_hint", a.issuer.DecodeUnverified(params.RefreshToken))
		helper.SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	})
}

func (a *AuthHandler) DeleteAccount(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := middleware.CurrentUser(c)

	if !ok {
		helper.SendUnauthorizedError(c, "Unauthorized request")
		return
	}

	params, err := util.ParamsToMap[request.DeleteAccountRequest](c)

	if err != nil {
		helper.SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	if err := a.svc.DeleteAccount(ctx, user.UUID.String(), params.Password); err != nil {
		helper.SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (a *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)

	if !ok {
		helper.SendUnauthorizedError(c, "Unauthorized request")
		return
	}

	helper.SendSuccess(c, http.StatusOK, userResponse(&user))
}

func userResponse(user *domain.User) response.UserResponse {
	return response.UserResponse{
		UUID:      user.UUID.String(),
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Language:  string(user.Language),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
