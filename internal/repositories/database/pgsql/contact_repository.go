package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fintrackio/fintrack_backend/internal/apperrors"
	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackio/fintrack_backend/internal/core/ports/repositories"
	"github.com/fintrackio/fintrack_backend/internal/models"
	"github.com/fintrackio/fintrack_backend/internal/utils/mapping"
)

type PgxContactRepository struct {
	BaseRepository
}

// newPgxContactRepository creates a new repository for contact data.
func newPgxContactRepository(pool *pgxpool.Pool) portsrepo.ContactRepositoryFacade {
	return &PgxContactRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ContactRepositoryFacade = (*PgxContactRepository)(nil)

func (r *PgxContactRepository) SaveContact(ctx context.Context, contact domain.Contact) error {
	m := mapping.ToModelContact(contact)

	query := `
		INSERT INTO contacts (contact_id, name, email, phone, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query, m.ContactID, m.Name, m.Email, m.Phone, m.CreatedAt, m.LastUpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: contact with ID %s already exists", apperrors.ErrDuplicate, m.ContactID)
		}
		return apperrors.NewAppError(500, "failed to save contact "+m.ContactID, err)
	}
	return nil
}

func (r *PgxContactRepository) FindContactByID(ctx context.Context, contactID string) (*domain.Contact, error) {
	query := `SELECT contact_id, name, email, phone, created_at, last_updated_at FROM contacts WHERE contact_id = $1;`

	var m models.Contact
	err := r.Pool.QueryRow(ctx, query, contactID).Scan(&m.ContactID, &m.Name, &m.Email, &m.Phone, &m.CreatedAt, &m.LastUpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find contact by ID "+contactID, err)
	}

	contact := mapping.ToDomainContact(m)
	return &contact, nil
}

func (r *PgxContactRepository) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	query := `SELECT contact_id, name, email, phone, created_at, last_updated_at FROM contacts ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query contacts", err)
	}
	defer rows.Close()

	contacts := []domain.Contact{}
	for rows.Next() {
		var m models.Contact
		if err := rows.Scan(&m.ContactID, &m.Name, &m.Email, &m.Phone, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan contact row", err)
		}
		contacts = append(contacts, mapping.ToDomainContact(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating contact rows", err)
	}
	return contacts, nil
}
