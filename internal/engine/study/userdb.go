package study

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Package-level singleton, set from main.go when DATABASE_URL is configured.
var userDB *UserDB

// SetUserDB sets the package-level user DB instance.
func SetUserDB(db *UserDB) { userDB = db }

// GetUserDB returns the package-level user DB instance (may be nil).
func GetUserDB() *UserDB { return userDB }

// UserDB holds the pgx connection pool for per-user learning data.
type UserDB struct {
	pool *pgxpool.Pool
}

// ConnectUserDB creates a pgx pool and ensures the users schema exists.
func ConnectUserDB(ctx context.Context, databaseURL string) (*UserDB, error) {
	if databaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	config.MaxConns = 10
	config.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	db := &UserDB{pool: pool}
	if err := db.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	slog.Info("user postgres connected", slog.String("addr", config.ConnConfig.Host))
	return db, nil
}

func (db *UserDB) Close() {
	db.pool.Close()
}

func (db *UserDB) ensureSchema(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS learners (
		email         TEXT PRIMARY KEY,
		profile       JSONB NOT NULL DEFAULT '{}',
		learning_path JSONB,
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`)
	return err
}

// SaveUserData upserts a learner's profile and current learning path,
// keyed by email.
func (db *UserDB) SaveUserData(ctx context.Context, email string, profile LearnerProfile, path *LearningPath) error {
	if email == "" {
		return errors.New("email is required")
	}

	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	var pathJSON []byte
	if path != nil {
		pathJSON, err = json.Marshal(path)
		if err != nil {
			return fmt.Errorf("marshal learning path: %w", err)
		}
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO learners (email, profile, learning_path, updated_at)
		 VALUES ($1, $2, $3, now())
		 ON CONFLICT (email) DO UPDATE
		 SET profile = EXCLUDED.profile,
		     learning_path = COALESCE(EXCLUDED.learning_path, learners.learning_path),
		     updated_at = now()`,
		email, profileJSON, pathJSON)
	if err != nil {
		return fmt.Errorf("upsert learner %s: %w", email, err)
	}
	return nil
}

// LoadUserData fetches a learner's profile and learning path by email.
// A missing learner returns pgx.ErrNoRows wrapped with context.
func (db *UserDB) LoadUserData(ctx context.Context, email string) (*LearnerProfile, *LearningPath, error) {
	if email == "" {
		return nil, nil, errors.New("email is required")
	}

	var profileJSON []byte
	var pathJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT profile, learning_path FROM learners WHERE email = $1`,
		email).Scan(&profileJSON, &pathJSON)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil, fmt.Errorf("learner %s: %w", email, err)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load learner %s: %w", email, err)
	}

	var profile LearnerProfile
	if err := json.Unmarshal(profileJSON, &profile); err != nil {
		return nil, nil, fmt.Errorf("decode profile: %w", err)
	}

	var path *LearningPath
	if len(pathJSON) > 0 {
		path = &LearningPath{}
		if err := json.Unmarshal(pathJSON, path); err != nil {
			return nil, nil, fmt.Errorf("decode learning path: %w", err)
		}
	}
	return &profile, path, nil
}
