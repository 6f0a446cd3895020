package service_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"

	"heroapp/internal/adapter/database/sqlite"
	"heroapp/internal/adapter/database/sqlite/repository"
	"heroapp/internal/core/domain"
	"heroapp/internal/core/model/response"
	"heroapp/internal/core/port"
	"heroapp/internal/core/service"
	"heroapp/pkg/test"
)

type HeroServiceSuite struct {
	suite.Suite
	DB      *sqlite.DB
	Repo    port.HeroRepository
	Service *service.HeroService
	User    domain.User
}

func (s *HeroServiceSuite) SetupTest() {
	s.DB = test.InitTestDB()
	s.Repo = repository.NewHeroRepository(s.DB)
	s.Service = service.NewHeroService(s.Repo)

	users := repository.NewUserRepository(s.DB)

	user, err := users.Create(context.Background(), domain.User{
		UUID:              uuid.New(),
		Email:             "owner@test.com",
		Language:          domain.LanguageEN,
		EncryptedPassword: "irrelevant",
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	})

	Expect(err).NotTo(HaveOccurred())

	s.User = user
}

func (s *HeroServiceSuite) TearDownTest() {
	test.CleanDB(s.T(), s.DB)
	s.DB.Close()
}

func TestHeroServiceSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(HeroServiceSuite))
}

func (s *HeroServiceSuite) createHeroes(n int) []domain.Hero {
	heroes := make([]domain.Hero, 0, n)

	for i := 0; i < n; i++ {
		hero, err := s.Service.Create(context.Background(), domain.Hero{
			Name:   fmt.Sprintf("Hero %02d", i),
			Power:  "flight",
			UserId: s.User.ID,
		})

		Expect(err).NotTo(HaveOccurred())

		heroes = append(heroes, hero)
	}

	return heroes
}

func (s *HeroServiceSuite) TestCreateAssignsUUIDAndTimestamps() {
	hero, err := s.Service.Create(context.Background(), domain.Hero{
		Name:   "Wonder Woman",
		Power:  "strength",
		UserId: s.User.ID,
	})

	Expect(err).NotTo(HaveOccurred())
	Expect(hero.UUID).NotTo(Equal(uuid.Nil))
	Expect(hero.ID).NotTo(BeZero())
	Expect(hero.CreatedAt).NotTo(BeZero())
}

func (s *HeroServiceSuite) TestPaginationWalksAllPages() {
	s.createHeroes(5)

	first, err := s.Service.GetHeroesWithPagination(context.Background(), s.User.ID, 2, "")

	Expect(err).NotTo(HaveOccurred())
	Expect(first.Size).To(Equal(2))
	Expect(first.Pagination.HasNext).To(BeTrue())
	Expect(first.Pagination.NextCursor).NotTo(BeEmpty())

	second, err := s.Service.GetHeroesWithPagination(context.Background(), s.User.ID, 2, first.Pagination.NextCursor)

	Expect(err).NotTo(HaveOccurred())
	Expect(second.Size).To(Equal(2))
	Expect(second.Pagination.HasNext).To(BeTrue())

	third, err := s.Service.GetHeroesWithPagination(context.Background(), s.User.ID, 2, second.Pagination.NextCursor)

	Expect(err).NotTo(HaveOccurred())
	Expect(third.Size).To(Equal(1))
	Expect(third.Pagination.HasNext).To(BeFalse())
	Expect(third.Pagination.NextCursor).To(BeEmpty())

	// No hero appears twice across pages.
	seen := map[uuid.UUID]bool{}

	for _, page := range []*response.CursorResponse{first, second, third} {
		var items []response.HeroResponse

		Expect(json.Unmarshal(page.Data, &items)).To(Succeed())

		for _, item := range items {
			Expect(seen[item.UUID]).To(BeFalse())
			seen[item.UUID] = true
		}
	}

	Expect(seen).To(HaveLen(5))
}

func (s *HeroServiceSuite) TestPaginationRejectsForgedCursor() {
	s.createHeroes(3)

	_, err := s.Service.GetHeroesWithPagination(context.Background(), s.User.ID, 2, "forged.cursor")

	Expect(err).To(HaveOccurred())
}

func (s *HeroServiceSuite) TestPaginationScopedToOwner() {
	s.createHeroes(3)

	resp, err := s.Service.GetHeroesWithPagination(context.Background(), s.User.ID+1, 10, "")

	Expect(err).NotTo(HaveOccurred())
	Expect(resp.Size).To(Equal(0))
	Expect(resp.Pagination.HasNext).To(BeFalse())
}

func (s *HeroServiceSuite) TestUpdateByUUID() {
	heroes := s.createHeroes(1)

	hero := heroes[0]
	hero.Name = "Renamed"
	hero.Power = "speed"

	updated, err := s.Service.UpdateByUUID(context.Background(), hero)

	Expect(err).NotTo(HaveOccurred())
	Expect(updated.Name).To(Equal("Renamed"))
	Expect(updated.Power).To(Equal("speed"))
}

func (s *HeroServiceSuite) TestUpdateByUUIDWrongOwner() {
	heroes := s.createHeroes(1)

	hero := heroes[0]
	hero.Name = "Renamed"
	hero.UserId = s.User.ID + 1

	_, err := s.Service.UpdateByUUID(context.Background(), hero)

	Expect(err).To(MatchError(domain.ErrNotFound))
}

func (s *HeroServiceSuite) TestDeleteByUUID() {
	heroes := s.createHeroes(1)

	Expect(s.Service.DeleteByUUID(context.Background(), heroes[0].UUID.String(), s.User.ID)).To(Succeed())

	resp, err := s.Service.GetHeroesWithPagination(context.Background(), s.User.ID, 10, "")

	Expect(err).NotTo(HaveOccurred())
	Expect(resp.Size).To(Equal(0))
}

func (s *HeroServiceSuite) TestDeleteByUUIDWrongOwner() {
	heroes := s.createHeroes(1)

	err := s.Service.DeleteByUUID(context.Background(), heroes[0].UUID.String(), s.User.ID+1)

	Expect(err).To(MatchError(domain.ErrNotFound))
}

func (s *HeroServiceSuite) TestDeleteByUUIDMissing() {
	err := s.Service.DeleteByUUID(context.Background(), uuid.NewString(), s.User.ID)

	Expect(err).To(MatchError(domain.ErrNotFound))
}
