package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims carries the single user identifier claim next to the registered set.
type Claims struct {
	jwt.RegisteredClaims
	UserUUID string `json:"uid"`
}

// Issuer signs short-lived access tokens and longer-lived refresh tokens with
// independent secrets. Secrets and lifetimes are fixed at construction.
type Issuer struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewIssuer(accessSecret, refreshSecret []byte, accessTTL, refreshTTL time.Duration) *Issuer {
	return &Issuer{
		accessSecret:  accessSecret,
		refreshSecret: refreshSecret,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (i *Issuer) RefreshTTL() time.Duration {
	return i.refreshTTL
}

func (i *Issuer) IssueAccessToken(userUUID string) (string, error) {
	return i.sign(userUUID, i.accessSecret, i.accessTTL)
}

func (i *Issuer) IssueRefreshToken(userUUID string) (string, error) {
	return i.sign(userUUID, i.refreshSecret, i.refreshTTL)
}

func (i *Issuer) VerifyAccessToken(token string) (string, error) {
	return i.verify(token, i.accessSecret)
}

func (i *Issuer) VerifyRefreshToken(token string) (string, error) {
	return i.verify(token, i.refreshSecret)
}

// DecodeUnverified extracts the user uuid claim without checking signature or
// expiry. Lookup hint only; authorization always goes through a verify call.
func (i *Issuer) DecodeUnverified(token string) string {
	claims := &Claims{}

	parser := jwt.NewParser()

	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return ""
	}

	return claims.UserUUID
}

func (i *Issuer) sign(userUUID string, secret []byte, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserUUID: userUUID,
	})

	return token.SignedString(secret)
}

func (i *Issuer) verify(tokenString string, secret []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		return "", err
	}

	if !token.Valid {
		return "", ErrInvalidToken
	}

	return claims.UserUUID, nil
}
