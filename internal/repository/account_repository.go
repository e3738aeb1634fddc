package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/chat-identity/internal/domain"
)

// ErrPhoneTaken reports that the store's uniqueness constraint on phone
// rejected an insert. The constraint is authoritative; the service's
// pre-check only narrows the window.
var ErrPhoneTaken = errors.New("phone already registered")

// AccountRepository defines persistence access for accounts. All queries
// exclude soft-deleted rows.
type AccountRepository interface {
	Insert(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	FindByPhone(ctx context.Context, phone string) (*domain.Account, error)
}

type accountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository returns a Postgres-backed implementation.
func NewAccountRepository(pool *pgxpool.Pool) AccountRepository {
	return &accountRepository{pool: pool}
}

func (r *accountRepository) Insert(ctx context.Context, account *domain.Account) error {
	const query = `
        INSERT INTO accounts (phone, credential_hash, display_name, avatar_ref, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		account.Phone,
		account.CredentialHash,
		account.DisplayName,
		account.AvatarRef,
		account.Status,
	).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrPhoneTaken
		}
		return err
	}
	return nil
}

func (r *accountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	const query = `
        SELECT id, phone, credential_hash, display_name, avatar_ref, status, created_at, updated_at, deleted
        FROM accounts WHERE id=$1 AND deleted = FALSE`

	return r.scanOne(ctx, query, id)
}

func (r *accountRepository) FindByPhone(ctx context.Context, phone string) (*domain.Account, error) {
	const query = `
        SELECT id, phone, credential_hash, display_name, avatar_ref, status, created_at, updated_at, deleted
        FROM accounts WHERE phone=$1 AND deleted = FALSE`

	return r.scanOne(ctx, query, phone)
}

func (r *accountRepository) scanOne(ctx context.Context, query string, arg any) (*domain.Account, error) {
	var account domain.Account
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&account.ID,
		&account.Phone,
		&account.CredentialHash,
		&account.DisplayName,
		&account.AvatarRef,
		&account.Status,
		&account.CreatedAt,
		&account.UpdatedAt,
		&account.Deleted,
	); err != nil {
		return nil, err
	}
	return &account, nil
}
