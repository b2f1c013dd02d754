package companionactivity_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/chore-quest/internal/errors"
	companionactivity "github.com/KirkDiggler/chore-quest/internal/repositories/companion_activity"
	"github.com/KirkDiggler/chore-quest/internal/testutils"
)

const (
	testPlayerID = "kid-1"
	testDay      = "2026-05-02"
	testKey      = "companion:activity:kid-1:2026-05-02"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx  context.Context
	mr   *miniredis.Miniredis
	repo companionactivity.Repository
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr

	repo, err := companionactivity.NewRedisRepository(&companionactivity.Config{Client: client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) record(action string) (*companionactivity.RecordOutput, error) {
	return s.repo.Record(s.ctx, companionactivity.RecordInput{
		PlayerID: testPlayerID,
		Day:      testDay,
		Action:   action,
		Limit:    3,
	})
}

func (s *RedisRepositoryTestSuite) TestNewRedisRepository() {
	_, err := companionactivity.NewRedisRepository(nil)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = companionactivity.NewRedisRepository(&companionactivity.Config{})
	s.Assert().ErrorContains(err, "redis client is required")
}

func (s *RedisRepositoryTestSuite) TestGetUntouchedDay() {
	out, err := s.repo.Get(s.ctx, companionactivity.GetInput{PlayerID: testPlayerID, Day: testDay})
	s.Require().NoError(err)
	s.Assert().Equal(0, out.Log.Count())
	s.Assert().Equal(testDay, out.Log.Day)
}

func (s *RedisRepositoryTestSuite) TestRecordUpToLimit() {
	for i, action := range []string{"feed", "pet", "play"} {
		out, err := s.record(action)
		s.Require().NoError(err)
		s.Assert().Equal(i+1, out.Log.Count())
	}

	_, err := s.record("feed")
	s.Require().Error(err)
	s.Assert().True(errors.IsResourceExhausted(err))
	s.Assert().Equal(3, errors.GetMeta(err)["limit"])

	out, err := s.repo.Get(s.ctx, companionactivity.GetInput{PlayerID: testPlayerID, Day: testDay})
	s.Require().NoError(err)
	s.Assert().Equal([]string{"feed", "pet", "play"}, out.Log.Actions)
}

func (s *RedisRepositoryTestSuite) TestDaysAreIndependent() {
	for i := 0; i < 3; i++ {
		_, err := s.record("pet")
		s.Require().NoError(err)
	}

	out, err := s.repo.Record(s.ctx, companionactivity.RecordInput{
		PlayerID: testPlayerID, Day: "2026-05-03", Action: "pet", Limit: 3,
	})
	s.Require().NoError(err)
	s.Assert().Equal(1, out.Log.Count())
}

func (s *RedisRepositoryTestSuite) TestRetention() {
	_, err := s.record("play")
	s.Require().NoError(err)
	s.Assert().Equal(companionactivity.DefaultRetention, s.mr.TTL(testKey))

	s.mr.FastForward(companionactivity.DefaultRetention + time.Second)
	s.Assert().False(s.mr.Exists(testKey))
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	testCases := []struct {
		name  string
		input companionactivity.RecordInput
	}{
		{"missing player", companionactivity.RecordInput{Day: testDay, Action: "pet", Limit: 3}},
		{"missing day", companionactivity.RecordInput{PlayerID: testPlayerID, Action: "pet", Limit: 3}},
		{"missing action", companionactivity.RecordInput{PlayerID: testPlayerID, Day: testDay, Limit: 3}},
		{"zero limit", companionactivity.RecordInput{PlayerID: testPlayerID, Day: testDay, Action: "pet"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Record(s.ctx, tc.input)
			s.Assert().True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *RedisRepositoryTestSuite) TestRetentionMustCoverWholeSeconds() {
	client, _ := testutils.CreateTestRedisClient(s.T())

	testCases := []struct {
		name      string
		retention time.Duration
		wantErr   bool
	}{
		{"default", 0, false},
		{"one second", time.Second, false},
		{"sub-second", 500 * time.Millisecond, true},
		{"negative", -time.Hour, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := companionactivity.NewRedisRepository(&companionactivity.Config{
				Client:    client,
				Retention: tc.retention,
			})
			if tc.wantErr {
				s.Assert().True(errors.IsInvalidArgument(err))
			} else {
				s.Assert().NoError(err)
			}
		})
	}
}

func (s *RedisRepositoryTestSuite) TestUndoFreesSlot() {
	for _, action := range []string{"feed", "play", "feed"} {
		_, err := s.record(action)
		s.Require().NoError(err)
	}
	_, err := s.record("pet")
	s.Require().True(errors.IsResourceExhausted(err))

	s.Require().NoError(s.repo.Undo(s.ctx, companionactivity.UndoInput{
		PlayerID: testPlayerID,
		Day:      testDay,
		Action:   "feed",
	}))

	got, err := s.repo.Get(s.ctx, companionactivity.GetInput{PlayerID: testPlayerID, Day: testDay})
	s.Require().NoError(err)
	s.Assert().Equal([]string{"feed", "play"}, got.Log.Actions)

	out, err := s.record("pet")
	s.Require().NoError(err)
	s.Assert().Equal([]string{"feed", "play", "pet"}, out.Log.Actions)
}

func (s *RedisRepositoryTestSuite) TestUndoUnknownActionIsNoop() {
	_, err := s.record("play")
	s.Require().NoError(err)

	s.Require().NoError(s.repo.Undo(s.ctx, companionactivity.UndoInput{
		PlayerID: testPlayerID,
		Day:      testDay,
		Action:   "feed",
	}))

	got, err := s.repo.Get(s.ctx, companionactivity.GetInput{PlayerID: testPlayerID, Day: testDay})
	s.Require().NoError(err)
	s.Assert().Equal([]string{"play"}, got.Log.Actions)

	err = s.repo.Undo(s.ctx, companionactivity.UndoInput{PlayerID: testPlayerID, Day: testDay})
	s.Assert().True(errors.IsInvalidArgument(err))
}
