package postgres

import (
	"context"
	"fmt"
	"time"

	"portfolio-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// execer is the subset of *pgxpool.Pool the repository needs
type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

const contactSchema = `CREATE TABLE IF NOT EXISTS contact_submissions (
	id          UUID PRIMARY KEY,
	name        TEXT NOT NULL,
	email       TEXT NOT NULL,
	subject     TEXT NOT NULL,
	message     TEXT NOT NULL,
	status      TEXT NOT NULL,
	error       TEXT NOT NULL DEFAULT '',
	request_id  TEXT NOT NULL DEFAULT '',
	remote_ip   TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL
)`

type contactRepo struct {
	db execer
}

func NewContactRepository(db execer) domain.ContactRepository {
	return &contactRepo{db: db}
}

// EnsureContactSchema creates the archive table when it does not exist yet
func EnsureContactSchema(ctx context.Context, db execer) error {
	if _, err := db.Exec(ctx, contactSchema); err != nil {
		return fmt.Errorf("create contact_submissions: %w", err)
	}
	return nil
}

func (r *contactRepo) Create(ctx context.Context, s *domain.ContactSubmission) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO contact_submissions
              (id, name, email, subject, message, status, error, request_id, remote_ip, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		s.ID, s.Name, s.Email, s.Subject, s.Message,
		string(s.Status), s.Error, s.RequestID, s.RemoteIP, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contact submission: %w", err)
	}
	return nil
}
