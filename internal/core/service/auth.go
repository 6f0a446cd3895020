package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"heroapp/internal/core/domain"
	"heroapp/internal/core/model/request"
	"heroapp/internal/core/model/response"
	"heroapp/internal/core/port"
)

// AuthService orchestrates signup, login, refresh and account deletion against
// the credential store, password hasher, token issuer and revocation set. It
// keeps no state between calls; the only shared resources are the collaborators
// handed in at construction.
type AuthService struct {
	repo    port.UserRepository
	hasher  port.PasswordHasher
	issuer  port.TokenIssuer
	revoker port.TokenRevoker

	// refreshTTL bounds how long a deleted account's uuid stays in the
	// revocation set; beyond it every outstanding refresh token has expired
	// on its own.
	refreshTTL time.Duration
}

func NewAuthService(repo port.UserRepository, hasher port.PasswordHasher, issuer port.TokenIssuer, revoker port.TokenRevoker, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		repo:       repo,
		hasher:     hasher,
		issuer:     issuer,
		revoker:    revoker,
		refreshTTL: refreshTTL,
	}
}

func (as *AuthService) Signup(ctx context.Context, req *request.SignUpRequest) (*response.TokenPair, *domain.User, error) {
	encrypted, err := as.hasher.Hash(req.Password)

	if err != nil {
		slog.Error("Auth#Signup", "hash", err)
		return nil, nil, domain.Internal(err)
	}

	user := domain.User{
		UUID:              uuid.New(),
		Email:             req.Email,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Language:          domain.LanguageOrFallback(domain.Language(req.Language)),
		EncryptedPassword: encrypted,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}

	// No existence pre-check: concurrent signups with the same email race at
	// the store's uniqueness constraint, and the violation is mapped here.
	saved, err := as.repo.Create(ctx, user)

	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, nil, domain.ErrUserAlreadyExists
		}

		slog.Error("Auth#Signup", "create", err)
		return nil, nil, domain.Internal(err)
	}

	pair, err := as.mintTokenPair(saved.UUID.String())

	if err != nil {
		slog.Error("Auth#Signup", "mint", err)
		return nil, nil, domain.Internal(err)
	}

	return pair, &saved, nil
}

func (as *AuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.TokenPair, *domain.User, error) {
	user, err := as.repo.GetByEmail(ctx, req.Email)

	if err != nil {
		// Unknown email surfaces the same error as a wrong password so the
		// response never reveals which emails are registered.
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, domain.ErrInvalidCredentials
		}

		slog.Error("Auth#Login", "get_by_email", err)
		return nil, nil, domain.Internal(err)
	}

	if !as.hasher.Check(req.Password, user.EncryptedPassword) {
		return nil, nil, domain.ErrInvalidCredentials
	}

	pair, err := as.mintTokenPair(user.UUID.String())

	if err != nil {
		slog.Error("Auth#Login", "mint", err)
		return nil, nil, domain.Internal(err)
	}

	return pair, &user, nil
}

func (as *AuthService) Refresh(ctx context.Context, refreshToken string) (*response.TokenPair, error) {
	userUUID, err := as.issuer.VerifyRefreshToken(refreshToken)

	if err != nil {
		// Expiry, forgery and malformed input all collapse into the same
		// condition so an attacker gets no signal about which one it was.
		return nil, domain.ErrUnauthorized
	}

	revoked, err := as.revoker.IsRevoked(ctx, userUUID)

	if err != nil {
		slog.Error("Auth#Refresh", "revoker", err)
		return nil, domain.Internal(err)
	}

	if revoked {
		return nil, domain.ErrUnauthorized
	}

	if _, err := as.repo.GetByUUID(ctx, userUUID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}

		slog.Error("Auth#Refresh", "get_by_uuid", err)
		return nil, domain.Internal(err)
	}

	pair, err := as.mintTokenPair(userUUID)

	if err != nil {
		slog.Error("Auth#Refresh", "mint", err)
		return nil, domain.Internal(err)
	}

	return pair, nil
}

func (as *AuthService) DeleteAccount(ctx context.Context, userUUID string, password string) error {
	user, err := as.repo.GetByUUID(ctx, userUUID)

	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrInvalidCredentials
		}

		slog.Error("Auth#DeleteAccount", "get_by_uuid", err)
		return domain.Internal(err)
	}

	// Defense-in-depth re-check; the transport layer has already verified the
	// access token for this uuid.
	if !as.hasher.Check(password, user.EncryptedPassword) {
		return domain.ErrInvalidCredentials
	}

	if err := as.repo.DeleteByUUID(ctx, userUUID); err != nil {
		slog.Error("Auth#DeleteAccount", "delete", err)
		return domain.Internal(err)
	}

	// Outstanding refresh tokens stay valid until their natural expiry, so the
	// uuid is parked in the revocation set for exactly that window.
	if err := as.revoker.Revoke(ctx, userUUID, as.refreshTTL); err != nil {
		slog.Error("Auth#DeleteAccount", "revoke", err)
		return domain.Internal(err)
	}

	slog.Info("Auth#DeleteAccount", "user", userUUID)

	return nil
}

// GetUserFromToken resolves a user from a verified access token. The unverified
// decode path lives on the issuer and never reaches this lookup.
func (as *AuthService) GetUserFromToken(ctx context.Context, accessToken string) (domain.User, error) {
	userUUID, err := as.issuer.VerifyAccessToken(accessToken)

	if err != nil {
		return domain.User{}, domain.ErrUnauthorized
	}

	user, err := as.repo.GetByUUID(ctx, userUUID)

	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, domain.ErrUnauthorized
		}

		slog.Error("Auth#GetUserFromToken", "get_by_uuid", err)
		return domain.User{}, domain.Internal(err)
	}

	return user, nil
}

func (as *AuthService) mintTokenPair(userUUID string) (*response.TokenPair, error) {
	access, err := as.issuer.IssueAccessToken(userUUID)

	if err != nil {
		return nil, err
	}

	refresh, err := as.issuer.IssueRefreshToken(userUUID)

	if err != nil {
		return nil, err
	}

	return &response.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
