package avatarconfig_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/chore-quest/internal/entities"
	"github.com/KirkDiggler/chore-quest/internal/errors"
	"github.com/KirkDiggler/chore-quest/internal/pkg/clock"
	"github.com/KirkDiggler/chore-quest/internal/pkg/idgen"
	"github.com/KirkDiggler/chore-quest/internal/redis"
	avatarconfig "github.com/KirkDiggler/chore-quest/internal/repositories/avatar_config"
	"github.com/KirkDiggler/chore-quest/internal/testutils"
)

const testPlayerID = "kid-1"

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx    context.Context
	client redis.Client
	mr     *miniredis.Miniredis
	now    time.Time
	repo   avatarconfig.Repository
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.client, s.mr = testutils.CreateTestRedisClient(s.T())
	s.now = time.Date(2026, 5, 2, 8, 0, 0, 0, time.UTC)

	repo, err := avatarconfig.NewRedisRepository(&avatarconfig.Config{
		Client:      s.client,
		Clock:       clock.Fixed(s.now),
		IDGenerator: idgen.NewSequential("rev"),
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TestNewRedisRepository() {
	testCases := []struct {
		name   string
		config *avatarconfig.Config
		errMsg string
	}{
		{name: "nil config", config: nil, errMsg: "config cannot be nil"},
		{
			name:   "missing client",
			config: &avatarconfig.Config{Clock: clock.New(), IDGenerator: idgen.NewUUID("")},
			errMsg: "client: is required",
		},
		{
			name:   "missing clock and ids",
			config: &avatarconfig.Config{Client: s.client},
			errMsg: "clock: is required; id_generator: is required",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := avatarconfig.NewRedisRepository(tc.config)
			s.Require().Error(err)
			s.Assert().True(errors.IsInvalidArgument(err))
			s.Assert().Contains(err.Error(), tc.errMsg)
			s.Assert().Nil(repo)
		})
	}
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, avatarconfig.GetInput{PlayerID: testPlayerID})
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestEmptyPlayerID() {
	_, err := s.repo.Get(s.ctx, avatarconfig.GetInput{})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, avatarconfig.SaveInput{})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.repo.AddCompanionXP(s.ctx, avatarconfig.AddCompanionXPInput{Amount: 1})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestSaveThenGet() {
	x := 10.0
	cfg := entities.AvatarConfig{Head: "oval", Hat: "wizard", Pet: "dragon", PetX: &x, PetXP: 40}

	saved, err := s.repo.Save(s.ctx, avatarconfig.SaveInput{PlayerID: testPlayerID, Config: cfg})
	s.Require().NoError(err)
	s.Assert().Equal("rev_1", saved.Avatar.Revision)
	s.Assert().True(s.now.Equal(saved.Avatar.UpdatedAt))
	s.Assert().True(s.mr.Exists("avatar:config:" + testPlayerID))

	got, err := s.repo.Get(s.ctx, avatarconfig.GetInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Assert().Equal(cfg, got.Avatar.Config)
	s.Assert().Equal("rev_1", got.Avatar.Revision)
	s.Assert().Equal(testPlayerID, got.Avatar.PlayerID)

	again, err := s.repo.Save(s.ctx, avatarconfig.SaveInput{PlayerID: testPlayerID, Config: cfg})
	s.Require().NoError(err)
	s.Assert().Equal("rev_2", again.Avatar.Revision)
}

func (s *RedisRepositoryTestSuite) TestGetCorruptValue() {
	s.Require().NoError(s.mr.Set("avatar:config:"+testPlayerID, "{not json"))

	_, err := s.repo.Get(s.ctx, avatarconfig.GetInput{PlayerID: testPlayerID})
	s.Require().Error(err)
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(err))
}

func (s *RedisRepositoryTestSuite) TestAddCompanionXP() {
	_, err := s.repo.Save(s.ctx, avatarconfig.SaveInput{
		PlayerID: testPlayerID,
		Config:   entities.AvatarConfig{Pet: "cat", PetXP: 48, Hat: "crown"},
	})
	s.Require().NoError(err)

	out, err := s.repo.AddCompanionXP(s.ctx, avatarconfig.AddCompanionXPInput{PlayerID: testPlayerID, Amount: 3})
	s.Require().NoError(err)
	s.Assert().Equal(48, out.PreviousXP)
	s.Assert().Equal(51, out.Avatar.Config.PetXP)
	s.Assert().Equal("crown", out.Avatar.Config.Hat)

	got, err := s.repo.Get(s.ctx, avatarconfig.GetInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Assert().Equal(51, got.Avatar.Config.PetXP)
}

func (s *RedisRepositoryTestSuite) TestAddCompanionXPWithoutSavedAvatar() {
	out, err := s.repo.AddCompanionXP(s.ctx, avatarconfig.AddCompanionXPInput{PlayerID: testPlayerID, Amount: 2})
	s.Require().NoError(err)
	s.Assert().Equal(0, out.PreviousXP)
	s.Assert().Equal(2, out.Avatar.Config.PetXP)
	s.Assert().Equal(entities.DefaultHead, out.Avatar.Config.Head)
}

func (s *RedisRepositoryTestSuite) TestAddCompanionXPRejectsNegative() {
	_, err := s.repo.AddCompanionXP(s.ctx, avatarconfig.AddCompanionXPInput{PlayerID: testPlayerID, Amount: -1})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestAddCompanionXPConcurrent() {
	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.repo.AddCompanionXP(s.ctx, avatarconfig.AddCompanionXPInput{PlayerID: testPlayerID, Amount: 1})
			s.Assert().NoError(err)
		}()
	}
	wg.Wait()

	got, err := s.repo.Get(s.ctx, avatarconfig.GetInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Assert().Equal(3, got.Avatar.Config.PetXP)
}
