// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/danielhkuo/vote321/cliparse"
	"github.com/danielhkuo/vote321/models"
)

func init() {
	// modernc registers itself as "sqlite", which sqlx does not know by default
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// queryer is satisfied by both *sqlx.DB and *sqlx.Tx
type queryer interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type sqlStore struct {
	db queryer
	// conn is nil for a store bound to a transaction
	conn *sqlx.DB
}

// Open connects to the configured database, verifies the connection and
// creates the schema.
func Open(ctx context.Context, dbType, url string) (Store, error) {
	dsn := url
	if dbType == cliparse.DatabaseSQLite {
		dsn = sqliteDSN(url)
	}

	conn, err := sqlx.Open(dbType, dsn)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	// Each connection to :memory: is its own database
	if dbType == cliparse.DatabaseSQLite && isMemory(url) {
		conn.SetMaxOpenConns(1)
		conn.SetConnMaxLifetime(0)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := CreateSchema(ctx, conn, dbType); err != nil {
		conn.Close()
		return nil, err
	}

	return &sqlStore{db: conn, conn: conn}, nil
}

// sqliteDSN turns on foreign key enforcement, which SQLite leaves off per connection.
func sqliteDSN(url string) string {
	if strings.Contains(url, "foreign_keys") {
		return url
	}
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + "_pragma=foreign_keys(1)"
}

func isMemory(url string) bool {
	return strings.HasPrefix(url, ":memory:") || strings.Contains(url, "mode=memory")
}

// Close releases the connection pool. On a transaction-bound store it is a
// no-op; the owning store closes the pool.
func (s *sqlStore) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// WithTx runs fn against a store bound to one transaction. The transaction
// commits when fn returns nil and rolls back otherwise. Nested calls join the
// outer transaction.
func (s *sqlStore) WithTx(ctx context.Context, fn func(Store) error) error {
	if s.conn == nil {
		return fn(s)
	}

	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	// No-op after a successful commit
	defer tx.Rollback()

	if err := fn(&sqlStore{db: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *sqlStore) ListPlayers(ctx context.Context) ([]models.Player, error) {
	players := []models.Player{}
	err := s.db.SelectContext(ctx, &players, `SELECT id, name FROM players ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}

func (s *sqlStore) EnsurePlayer(ctx context.Context, name string) (models.Player, bool, error) {
	res, err := s.db.ExecContext(ctx, s.db.Rebind(`
		INSERT INTO players (name) VALUES (?)
		ON CONFLICT (name) DO NOTHING
	`), name)
	if err != nil {
		return models.Player{}, false, fmt.Errorf("failed to insert player: %w", err)
	}
	n, err := rowsAffected(res)
	if err != nil {
		return models.Player{}, false, err
	}
	created := n == 1

	var p models.Player
	err = s.db.GetContext(ctx, &p, s.db.Rebind(`SELECT id, name FROM players WHERE name = ?`), name)
	if err != nil {
		return models.Player{}, false, fmt.Errorf("failed to load player %q: %w", name, err)
	}
	return p, created, nil
}

func (s *sqlStore) ListVoters(ctx context.Context) ([]models.Voter, error) {
	voters := []models.Voter{}
	err := s.db.SelectContext(ctx, &voters, `SELECT id, name, email, token FROM voters ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list voters: %w", err)
	}
	return voters, nil
}

func (s *sqlStore) GetVoterByToken(ctx context.Context, token string) (*models.Voter, error) {
	var v models.Voter
	err := s.db.GetContext(ctx, &v, s.db.Rebind(`
		SELECT id, name, email, token FROM voters WHERE token = ?
	`), token)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVoterNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query voter: %w", err)
	}
	return &v, nil
}

func (s *sqlStore) EnsureVoter(ctx context.Context, v models.Voter) (models.Voter, bool, error) {
	res, err := s.db.ExecContext(ctx, s.db.Rebind(`
		INSERT INTO voters (name, email, token) VALUES (?, ?, ?)
		ON CONFLICT (name, email) DO NOTHING
	`), v.Name, v.Email, v.Token)
	if err != nil {
		return models.Voter{}, false, fmt.Errorf("failed to insert voter: %w", err)
	}
	n, err := rowsAffected(res)
	if err != nil {
		return models.Voter{}, false, err
	}
	created := n == 1

	var stored models.Voter
	err = s.db.GetContext(ctx, &stored, s.db.Rebind(`
		SELECT id, name, email, token FROM voters WHERE name = ? AND email = ?
	`), v.Name, v.Email)
	if err != nil {
		return models.Voter{}, false, fmt.Errorf("failed to load voter %q <%s>: %w", v.Name, v.Email, err)
	}
	return stored, created, nil
}

func (s *sqlStore) CreateMatch(ctx context.Context, name string) (*models.Match, error) {
	m := models.Match{Name: name}
	err := s.db.GetContext(ctx, &m.ID, s.db.Rebind(`
		INSERT INTO matches (name) VALUES (?) RETURNING id
	`), name)
	if err != nil {
		return nil, fmt.Errorf("failed to insert match: %w", err)
	}
	return &m, nil
}

func (s *sqlStore) GetMatch(ctx context.Context, id int64) (*models.Match, error) {
	var m models.Match
	err := s.db.GetContext(ctx, &m, s.db.Rebind(`SELECT id, name FROM matches WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMatchNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query match: %w", err)
	}
	return &m, nil
}

func (s *sqlStore) ListMatches(ctx context.Context) ([]models.Match, error) {
	matches := []models.Match{}
	err := s.db.SelectContext(ctx, &matches, `SELECT id, name FROM matches ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return matches, nil
}

func (s *sqlStore) HasVoted(ctx context.Context, matchID, voterID int64) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists, s.db.Rebind(`
		SELECT EXISTS(
			SELECT 1 FROM votes
			WHERE match_id = ? AND voter_id = ?
		)
	`), matchID, voterID)
	if err != nil {
		return false, fmt.Errorf("failed to check existing vote: %w", err)
	}
	return exists, nil
}

func (s *sqlStore) InsertVote(ctx context.Context, v *models.Vote) error {
	err := s.db.GetContext(ctx, &v.ID, s.db.Rebind(`
		INSERT INTO votes (match_id, voter_id, player_3, player_2, player_1)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`), v.MatchID, v.VoterID, v.Player3, v.Player2, v.Player1)

	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return ErrAlreadyVoted
	case isRejectedReference(err):
		log.Debug().Err(err).Int64("match_id", v.MatchID).Msg("vote rejected by constraint")
		return ErrInvalidVote
	default:
		return fmt.Errorf("failed to insert vote: %w", err)
	}
}

func (s *sqlStore) ListVotes(ctx context.Context, matchID int64) ([]models.Vote, error) {
	votes := []models.Vote{}
	err := s.db.SelectContext(ctx, &votes, s.db.Rebind(`
		SELECT id, match_id, voter_id, player_3, player_2, player_1
		FROM votes
		WHERE match_id = ?
		ORDER BY id
	`), matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}
	return votes, nil
}

func (s *sqlStore) ListAllVotes(ctx context.Context) ([]models.Vote, error) {
	votes := []models.Vote{}
	err := s.db.SelectContext(ctx, &votes, `
		SELECT id, match_id, voter_id, player_3, player_2, player_1
		FROM votes
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}
	return votes, nil
}

func rowsAffected(res sql.Result) (int64, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n, nil
}

// Constraint classification for both drivers.
// Postgres codes: https://www.postgresql.org/docs/current/errcodes-appendix.html

func isUniqueViolation(err error) bool {
	return hasConstraintCode(err, []string{"23505"},
		sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY)
}

func isRejectedReference(err error) bool {
	return hasConstraintCode(err, []string{"23503", "23514"},
		sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY, sqlite3.SQLITE_CONSTRAINT_CHECK)
}

func hasConstraintCode(err error, pgCodes []string, sqliteCodes ...int) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		for _, c := range pgCodes {
			if string(pqErr.Code) == c {
				return true
			}
		}
		return false
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		for _, c := range sqliteCodes {
			if liteErr.Code() == c {
				return true
			}
		}
	}
	return false
}
