package dbmock

import (
	"context"

	"github.com/danielhkuo/vote321/db"
	"github.com/danielhkuo/vote321/models"
	"github.com/stretchr/testify/mock"
)

type Store struct {
	mock.Mock
}

func (s *Store) ListPlayers(ctx context.Context) ([]models.Player, error) {
	args := s.Called(ctx)

	var r []models.Player
	if args.Get(0) != nil {
		r = args.Get(0).([]models.Player)
	}
	return r, args.Error(1)
}

func (s *Store) EnsurePlayer(ctx context.Context, name string) (models.Player, bool, error) {
	args := s.Called(ctx, name)
	return args.Get(0).(models.Player), args.Bool(1), args.Error(2)
}

func (s *Store) ListVoters(ctx context.Context) ([]models.Voter, error) {
	args := s.Called(ctx)

	var r []models.Voter
	if args.Get(0) != nil {
		r = args.Get(0).([]models.Voter)
	}
	return r, args.Error(1)
}

func (s *Store) GetVoterByToken(ctx context.Context, token string) (*models.Voter, error) {
	args := s.Called(ctx, token)

	var v *models.Voter
	if args.Get(0) != nil {
		v = args.Get(0).(*models.Voter)
	}
	return v, args.Error(1)
}

func (s *Store) EnsureVoter(ctx context.Context, v models.Voter) (models.Voter, bool, error) {
	args := s.Called(ctx, v)
	return args.Get(0).(models.Voter), args.Bool(1), args.Error(2)
}

func (s *Store) CreateMatch(ctx context.Context, name string) (*models.Match, error) {
	args := s.Called(ctx, name)

	var m *models.Match
	if args.Get(0) != nil {
		m = args.Get(0).(*models.Match)
	}
	return m, args.Error(1)
}

func (s *Store) GetMatch(ctx context.Context, id int64) (*models.Match, error) {
	args := s.Called(ctx, id)

	var m *models.Match
	if args.Get(0) != nil {
		m = args.Get(0).(*models.Match)
	}
	return m, args.Error(1)
}

func (s *Store) ListMatches(ctx context.Context) ([]models.Match, error) {
	args := s.Called(ctx)

	var r []models.Match
	if args.Get(0) != nil {
		r = args.Get(0).([]models.Match)
	}
	return r, args.Error(1)
}

func (s *Store) HasVoted(ctx context.Context, matchID, voterID int64) (bool, error) {
	args := s.Called(ctx, matchID, voterID)
	return args.Bool(0), args.Error(1)
}

func (s *Store) InsertVote(ctx context.Context, v *models.Vote) error {
	args := s.Called(ctx, v)
	return args.Error(0)
}

func (s *Store) ListVotes(ctx context.Context, matchID int64) ([]models.Vote, error) {
	args := s.Called(ctx, matchID)

	var r []models.Vote
	if args.Get(0) != nil {
		r = args.Get(0).([]models.Vote)
	}
	return r, args.Error(1)
}

func (s *Store) ListAllVotes(ctx context.Context) ([]models.Vote, error) {
	args := s.Called(ctx)

	var r []models.Vote
	if args.Get(0) != nil {
		r = args.Get(0).([]models.Vote)
	}
	return r, args.Error(1)
}

// WithTx records the call and, unless an error is configured, runs fn
// against the mock itself.
func (s *Store) WithTx(ctx context.Context, fn func(db.Store) error) error {
	args := s.Called(ctx, fn)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(s)
}

func (s *Store) Close() error {
	args := s.Called()
	return args.Error(0)
}
