package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fieldhub/admin-backend/internal/models"
	"github.com/fieldhub/admin-backend/internal/storage"
)

// Ensure Store satisfies the storage.AdminStore interface at compile time.
var _ storage.AdminStore = (*Store)(nil)

const adminColumns = `id, name, email, password_hash, role, permissions, is_active, phone, department, created_by, last_login, created_at, updated_at`

// Store provides Postgres-backed persistence for admin accounts.
type Store struct {
	pool *pgxpool.Pool
}

// NewAdminStore creates a new Store and runs migrations.
func NewAdminStore(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS admins (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'admin',
			permissions JSONB NOT NULL DEFAULT '{}'::jsonb,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			phone TEXT NOT NULL DEFAULT '',
			department TEXT NOT NULL DEFAULT '',
			created_by UUID REFERENCES admins(id) ON DELETE SET NULL,
			last_login TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		// Case-insensitive uniqueness is enforced here; the service's
		// pre-insert check is only a fast path.
		`CREATE UNIQUE INDEX IF NOT EXISTS admins_email_lower_idx ON admins (LOWER(email));`,
		`CREATE INDEX IF NOT EXISTS admins_is_active_idx ON admins (is_active);`,
	}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}
	return nil
}

// Insert stores a new admin row, assigning its id and timestamps.
func (s *Store) Insert(ctx context.Context, admin models.Admin) (models.Admin, error) {
	const query = `
	INSERT INTO admins (id, name, email, password_hash, role, permissions, is_active, phone, department, created_by)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING ` + adminColumns + `;`

	id := uuid.NewString()
	row := s.pool.QueryRow(ctx, query,
		id, admin.Name, admin.Email, admin.PasswordHash, admin.Role,
		admin.Permissions, admin.IsActive, admin.Phone, admin.Department, admin.CreatedBy)
	created, err := scanAdmin(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return models.Admin{}, storage.ErrAlreadyExists
		}
		return models.Admin{}, err
	}
	return created, nil
}

// FindAll returns every admin without password hashes.
func (s *Store) FindAll(ctx context.Context) ([]models.Admin, error) {
	const query = `SELECT ` + adminColumns + ` FROM admins ORDER BY created_at;`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	admins := []models.Admin{}
	for rows.Next() {
		admin, err := scanAdmin(rows)
		if err != nil {
			return nil, err
		}
		admin.PasswordHash = ""
		admins = append(admins, admin)
	}
	return admins, rows.Err()
}

// FindByID fetches a single admin without its password hash.
func (s *Store) FindByID(ctx context.Context, id string) (models.Admin, error) {
	const query = `SELECT ` + adminColumns + ` FROM admins WHERE id = $1;`
	admin, err := scanAdmin(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		return models.Admin{}, err
	}
	admin.PasswordHash = ""
	return admin, nil
}

// FindByEmail fetches an admin by case-insensitive email match.
func (s *Store) FindByEmail(ctx context.Context, email string, includePassword bool) (models.Admin, error) {
	const query = `SELECT ` + adminColumns + ` FROM admins WHERE LOWER(email) = LOWER($1);`
	admin, err := scanAdmin(s.pool.QueryRow(ctx, query, email))
	if err != nil {
		return models.Admin{}, err
	}
	if !includePassword {
		admin.PasswordHash = ""
	}
	return admin, nil
}

// Count returns the number of admin rows.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM admins;`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// UpdateByID applies the non-nil patch fields and returns the updated row.
func (s *Store) UpdateByID(ctx context.Context, id string, patch storage.AdminPatch) (models.Admin, error) {
	sets := []string{"updated_at = NOW()"}
	args := []any{id}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.Role != nil {
		add("role", *patch.Role)
	}
	if patch.IsActive != nil {
		add("is_active", *patch.IsActive)
	}
	if patch.Phone != nil {
		add("phone", *patch.Phone)
	}
	if patch.Department != nil {
		add("department", *patch.Department)
	}

	query := fmt.Sprintf(`UPDATE admins SET %s WHERE id = $1 RETURNING %s;`,
		strings.Join(sets, ", "), adminColumns)
	admin, err := scanAdmin(s.pool.QueryRow(ctx, query, args...))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return models.Admin{}, storage.ErrAlreadyExists
		}
		return models.Admin{}, err
	}
	admin.PasswordHash = ""
	return admin, nil
}

// DeleteByID removes an admin row.
func (s *Store) DeleteByID(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM admins WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// TouchLastLogin records a successful login timestamp.
func (s *Store) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	_, err := s.pool.Exec(ctx, `UPDATE admins SET last_login = $2 WHERE id = $1;`, id, at)
	return err
}

func scanAdmin(row pgx.Row) (models.Admin, error) {
	var admin models.Admin
	err := row.Scan(
		&admin.ID, &admin.Name, &admin.Email, &admin.PasswordHash, &admin.Role,
		&admin.Permissions, &admin.IsActive, &admin.Phone, &admin.Department,
		&admin.CreatedBy, &admin.LastLogin, &admin.CreatedAt, &admin.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Admin{}, storage.ErrNotFound
		}
		return models.Admin{}, err
	}
	return admin, nil
}
