package config_test

import (
	"testing"
	"time"

	. "github.com/onsi/gomega"

	"heroapp/pkg/config"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "access-secret")
	t.Setenv("REFRESH_TOKEN_SECRET", "refresh-secret")
}

func TestLoadWithDefaults(t *testing.T) {
	RegisterTestingT(t)
	setRequiredEnv(t)

	cfg, err := config.Load()

	Expect(err).NotTo(HaveOccurred())
	Expect(cfg.Environment).To(Equal("development"))
	Expect(cfg.ServerPort).To(Equal("8080"))
	Expect(cfg.DatabasePath).To(Equal("database.db"))
	Expect(cfg.AccessTokenTTL).To(Equal(15 * time.Minute))
	Expect(cfg.RefreshTokenTTL).To(Equal(168 * time.Hour))
	Expect(cfg.BcryptCost).To(Equal(10))
	Expect(cfg.IsProduction()).To(BeFalse())
}

func TestLoadOverrides(t *testing.T) {
	RegisterTestingT(t)
	setRequiredEnv(t)

	t.Setenv("APP_ENV", "production")
	t.Setenv("ACCESS_TOKEN_TTL", "5m")
	t.Setenv("REFRESH_TOKEN_TTL", "24h")
	t.Setenv("BCRYPT_COST", "12")

	cfg, err := config.Load()

	Expect(err).NotTo(HaveOccurred())
	Expect(cfg.IsProduction()).To(BeTrue())
	Expect(cfg.AccessTokenTTL).To(Equal(5 * time.Minute))
	Expect(cfg.RefreshTokenTTL).To(Equal(24 * time.Hour))
	Expect(cfg.BcryptCost).To(Equal(12))
}

func TestLoadRejectsMissingSecrets(t *testing.T) {
	RegisterTestingT(t)

	t.Setenv("ACCESS_TOKEN_SECRET", "")
	t.Setenv("REFRESH_TOKEN_SECRET", "")

	_, err := config.Load()

	Expect(err).To(HaveOccurred())
}

func TestLoadRejectsEqualSecrets(t *testing.T) {
	RegisterTestingT(t)

	t.Setenv("ACCESS_TOKEN_SECRET", "same-secret")
	t.Setenv("REFRESH_TOKEN_SECRET", "same-secret")

	_, err := config.Load()

	Expect(err).To(HaveOccurred())
}
