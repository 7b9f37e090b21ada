package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"MineRappa/internal/calc/rap"
)

var ErrNotFound = errors.New("repo: not found")

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)
}

// Design is a saved room-and-pillar design and the result it evaluated to
// when saved.
type Design struct {
	ID        uuid.UUID   `json:"id"`
	Owner     int         `json:"-"`
	Name      string      `json:"name"`
	Input     rap.Input   `json:"input"`
	Result    *rap.Result `json:"result,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

type DesignRepository interface {
	SaveDesign(ctx context.Context, d Design) (uuid.UUID, error)
	ListDesigns(ctx context.Context, owner int) ([]Design, error)
	GetDesign(ctx context.Context, owner int, id uuid.UUID) (Design, error)
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id       SERIAL PRIMARY KEY,
	login    TEXT NOT NULL UNIQUE,
	email    TEXT NOT NULL,
	password TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS designs (
	id         UUID PRIMARY KEY,
	owner_id   INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	name       TEXT NOT NULL,
	input      JSONB NOT NULL,
	result     JSONB,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS designs_owner_idx ON designs (owner_id, created_at DESC);
`

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// withSSLMode requires TLS unless the connection string says otherwise.
func withSSLMode(dsn string) string {
	if strings.Contains(dsn, "sslmode=") {
		return dsn
	}
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		if strings.Contains(dsn, "?") {
			return dsn + "&sslmode=require"
		}
		return dsn + "?sslmode=require"
	}
	return dsn + " sslmode=require"
}

// Open connects to Postgres and checks the connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", withSSLMode(dsn))
	if err != nil {
		return nil, fmt.Errorf("repo: open: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("repo: ping: %w", err)
	}
	return db, nil
}

// Migrate creates the tables when they do not exist.
func (r *PostgresRepository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("repo: migrate: %w", err)
	}
	return nil
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

// GetByLogin returns the user id and password hash. An unknown login
// yields id 0 and no error.
func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) SaveDesign(ctx context.Context, d Design) (uuid.UUID, error) {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	input, err := json.Marshal(d.Input)
	if err != nil {
		return uuid.Nil, fmt.Errorf("repo: encode input: %w", err)
	}
	var result []byte
	if d.Result != nil {
		if result, err = json.Marshal(d.Result); err != nil {
			return uuid.Nil, fmt.Errorf("repo: encode result: %w", err)
		}
	}
	query := "INSERT INTO designs (id, owner_id, name, input, result) VALUES ($1, $2, $3, $4, $5)"
	if _, err := r.db.ExecContext(ctx, query, d.ID, d.Owner, d.Name, input, result); err != nil {
		return uuid.Nil, err
	}
	return d.ID, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDesign(s scanner) (Design, error) {
	var (
		d             Design
		input, result []byte
	)
	if err := s.Scan(&d.ID, &d.Owner, &d.Name, &input, &result, &d.CreatedAt); err != nil {
		return Design{}, err
	}
	if err := json.Unmarshal(input, &d.Input); err != nil {
		return Design{}, fmt.Errorf("repo: decode input of %s: %w", d.ID, err)
	}
	if len(result) > 0 {
		d.Result = new(rap.Result)
		if err := json.Unmarshal(result, d.Result); err != nil {
			return Design{}, fmt.Errorf("repo: decode result of %s: %w", d.ID, err)
		}
	}
	return d, nil
}

const designColumns = "id, owner_id, name, input, result, created_at"

func (r *PostgresRepository) ListDesigns(ctx context.Context, owner int) ([]Design, error) {
	query := "SELECT " + designColumns + " FROM designs WHERE owner_id=$1 ORDER BY created_at DESC"
	rows, err := r.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Design
	for rows.Next() {
		d, err := scanDesign(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetDesign(ctx context.Context, owner int, id uuid.UUID) (Design, error) {
	query := "SELECT " + designColumns + " FROM designs WHERE owner_id=$1 AND id=$2"
	d, err := scanDesign(r.db.QueryRowContext(ctx, query, owner, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Design{}, ErrNotFound
	}
	return d, err
}
