package port

import (
	"context"
	"time"

	"heroapp/internal/core/domain"
	"heroapp/internal/core/model/request"
	"heroapp/internal/core/model/response"
)

type AuthService interface {
	Signup(ctx context.Context, req *request.SignUpRequest) (*response.TokenPair, *domain.User, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.TokenPair, *domain.User, error)
	Refresh(ctx context.Context, refreshToken string) (*response.TokenPair, error)
	DeleteAccount(ctx context.Context, userUUID string, password string) error
	GetUserFromToken(ctx context.Context, accessToken string) (domain.User, error)
}

// PasswordHasher is a one-way salted hash with a cost factor fixed at
// construction time.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}

// TokenIssuer signs and verifies the access/refresh bearer tokens. The two
// token kinds are signed with independent secrets, so one can never be
// presented in place of the other. DecodeUnverified extracts the user id claim
// without checking signature or expiry; it exists for log annotation and must
// never feed an authorization decision.
type TokenIssuer interface {
	IssueAccessToken(userUUID string) (string, error)
	IssueRefreshToken(userUUID string) (string, error)
	VerifyAccessToken(token string) (string, error)
	VerifyRefreshToken(token string) (string, error)
	DecodeUnverified(token string) string
}

// TokenRevoker is the server-side revocation set. Deleting an account revokes
// the user's uuid for the refresh-token lifetime, which invalidates every
// outstanding refresh token without tracking them individually.
type TokenRevoker interface {
	Revoke(ctx context.Context, userUUID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, userUUID string) (bool, error)
}
