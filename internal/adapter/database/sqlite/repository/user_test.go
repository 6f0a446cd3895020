package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"

	"heroapp/internal/adapter/database/sqlite"
	"heroapp/internal/adapter/database/sqlite/repository"
	"heroapp/internal/core/domain"
	"heroapp/internal/core/port"
	"heroapp/pkg/test"
	"heroapp/pkg/test/factory"
)

type UserRepositorySuite struct {
	suite.Suite
	DB     *sqlite.DB
	Repo   port.UserRepository
	Heroes port.HeroRepository
}

func (s *UserRepositorySuite) SetupTest() {
	s.DB = test.InitTestDB()
	s.Repo = repository.NewUserRepository(s.DB)
	s.Heroes = repository.NewHeroRepository(s.DB)
}

func (s *UserRepositorySuite) TearDownTest() {
	test.CleanDB(s.T(), s.DB)
	s.DB.Close()
}

func TestUserRepositorySuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(UserRepositorySuite))
}

func (s *UserRepositorySuite) buildUser(email string) domain.User {
	return factory.NewUser[domain.User](map[string]any{
		"ID":        0,
		"UUID":      uuid.New(),
		"Email":     email,
		"Language":  domain.LanguagePT,
		"CreatedAt": time.Now(),
		"UpdatedAt": time.Now(),
	})
}

func (s *UserRepositorySuite) TestCreateAndGet() {
	user := s.buildUser("diana@test.com")

	created, err := s.Repo.Create(context.Background(), user)

	Expect(err).NotTo(HaveOccurred())
	Expect(created.ID).NotTo(BeZero())
	Expect(created.UUID).To(Equal(user.UUID))
	Expect(created.Language).To(Equal(domain.LanguagePT))

	byEmail, err := s.Repo.GetByEmail(context.Background(), "diana@test.com")

	Expect(err).NotTo(HaveOccurred())
	Expect(byEmail.UUID).To(Equal(user.UUID))

	byUUID, err := s.Repo.GetByUUID(context.Background(), user.UUID.String())

	Expect(err).NotTo(HaveOccurred())
	Expect(byUUID.Email).To(Equal("diana@test.com"))
}

func (s *UserRepositorySuite) TestCreateDuplicateEmail() {
	_, err := s.Repo.Create(context.Background(), s.buildUser("diana@test.com"))

	Expect(err).NotTo(HaveOccurred())

	_, err = s.Repo.Create(context.Background(), s.buildUser("diana@test.com"))

	Expect(err).To(MatchError(domain.ErrEmailTaken))
}

func (s *UserRepositorySuite) TestGetMissing() {
	_, err := s.Repo.GetByEmail(context.Background(), "nobody@test.com")

	Expect(err).To(MatchError(domain.ErrNotFound))

	_, err = s.Repo.GetByUUID(context.Background(), uuid.NewString())

	Expect(err).To(MatchError(domain.ErrNotFound))
}

func (s *UserRepositorySuite) TestDeleteByUUID() {
	user, err := s.Repo.Create(context.Background(), s.buildUser("diana@test.com"))

	Expect(err).NotTo(HaveOccurred())

	Expect(s.Repo.DeleteByUUID(context.Background(), user.UUID.String())).To(Succeed())

	_, err = s.Repo.GetByUUID(context.Background(), user.UUID.String())

	Expect(err).To(MatchError(domain.ErrNotFound))
}

func (s *UserRepositorySuite) TestDeleteMissing() {
	err := s.Repo.DeleteByUUID(context.Background(), uuid.NewString())

	Expect(err).To(MatchError(domain.ErrNotFound))
}

func (s *UserRepositorySuite) TestDeleteCascadesToHeroes() {
	user, err := s.Repo.Create(context.Background(), s.buildUser("diana@test.com"))

	Expect(err).NotTo(HaveOccurred())

	hero, err := s.Heroes.Create(context.Background(), domain.Hero{
		UUID:      uuid.New(),
		Name:      "Wonder Woman",
		Power:     "strength",
		UserId:    user.ID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	})

	Expect(err).NotTo(HaveOccurred())

	Expect(s.Repo.DeleteByUUID(context.Background(), user.UUID.String())).To(Succeed())

	_, err = s.Heroes.GetByUUID(context.Background(), hero.UUID.String())

	Expect(err).To(MatchError(domain.ErrNotFound))
}
