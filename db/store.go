// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"errors"

	"github.com/danielhkuo/vote321/models"
)

var (
	ErrVoterNotFound = errors.New("voter not found")
	ErrMatchNotFound = errors.New("match not found")
	// ErrAlreadyVoted is returned by InsertVote when the (match, voter) pair already has a vote.
	ErrAlreadyVoted = errors.New("voter already voted for this match")
	// ErrInvalidVote is returned by InsertVote when the store rejects the selections
	// (repeated player or unknown reference).
	ErrInvalidVote = errors.New("invalid vote")
)

type Store interface {
	// Players are ordered by name.
	ListPlayers(ctx context.Context) ([]models.Player, error)
	// EnsurePlayer returns the player with this name, creating it if needed.
	// The bool reports whether a new row was created.
	EnsurePlayer(ctx context.Context, name string) (models.Player, bool, error)

	// Voters are ordered by id.
	ListVoters(ctx context.Context) ([]models.Voter, error)
	GetVoterByToken(ctx context.Context, token string) (*models.Voter, error)
	// EnsureVoter inserts v unless a voter with the same name and email exists,
	// and returns the stored row. An existing voter keeps its original token.
	// Players sharing one email address each get their own voter.
	EnsureVoter(ctx context.Context, v models.Voter) (models.Voter, bool, error)

	CreateMatch(ctx context.Context, name string) (*models.Match, error)
	GetMatch(ctx context.Context, id int64) (*models.Match, error)
	ListMatches(ctx context.Context) ([]models.Match, error)

	HasVoted(ctx context.Context, matchID, voterID int64) (bool, error)
	// InsertVote sets v.ID on success. The (match, voter) unique constraint is the
	// only guard against double voting, so callers must treat ErrAlreadyVoted as success.
	InsertVote(ctx context.Context, v *models.Vote) error
	ListVotes(ctx context.Context, matchID int64) ([]models.Vote, error)
	ListAllVotes(ctx context.Context) ([]models.Vote, error)

	// WithTx runs fn in a single transaction: everything fn writes through the
	// passed Store is committed together or not at all.
	WithTx(ctx context.Context, fn func(Store) error) error

	Close() error
}
