package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/vcrm-app/vcrm-api/internal/domain"
	"github.com/vcrm-app/vcrm-api/internal/domain/entity"
	"github.com/vcrm-app/vcrm-api/internal/domain/repository"
)

var _ repository.ContactRepository = (*ContactRepo)(nil)

const contactColumns = `
	id, name, company, email, phone, value, status, avatar, last_contact,
	notes, user_id, created_at, updated_at`

// ContactRepo implementazione di ContactRepository (usabile con pool o tx).
type ContactRepo struct {
	q Querier
}

// NewContactRepository costruisce l'adapter. Passare pool o tx (Querier).
func NewContactRepository(q Querier) *ContactRepo {
	return &ContactRepo{q: q}
}

// Create persiste un nuovo contatto.
func (r *ContactRepo) Create(ctx context.Context, contact *entity.Contact) error {
	query := `
		INSERT INTO contacts (id, name, company, email, phone, value, status, avatar,
		                      last_contact, notes, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		contact.ID, contact.Name, contact.Company, contact.Email, contact.Phone,
		contact.Value, contact.Status, contact.Avatar, contact.LastContact,
		contact.Notes, contact.UserID, contact.CreatedAt, contact.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

// GetByID legge un contatto visibile all'utente (suo o legacy senza owner).
func (r *ContactRepo) GetByID(ctx context.Context, userID, id string) (*entity.Contact, error) {
	query := `SELECT` + contactColumns + `
		FROM contacts WHERE id = $1 AND (user_id = $2 OR user_id IS NULL)`
	row := r.q.QueryRow(ctx, query, id, userID)
	contact, err := scanContact(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return contact, nil
}

// ListByUser lista i contatti dell'utente in ordine alfabetico.
func (r *ContactRepo) ListByUser(ctx context.Context, userID string) ([]entity.Contact, error) {
	query := `SELECT` + contactColumns + `
		FROM contacts WHERE user_id = $1 OR user_id IS NULL ORDER BY name`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()
	return collectContacts(rows)
}

// ListAll restituisce l'intera collezione (forecast ed export).
func (r *ContactRepo) ListAll(ctx context.Context) ([]entity.Contact, error) {
	query := `SELECT` + contactColumns + ` FROM contacts ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list all contacts: %w", err)
	}
	defer rows.Close()
	return collectContacts(rows)
}

// Update aggiorna un contatto esistente.
func (r *ContactRepo) Update(ctx context.Context, contact *entity.Contact) error {
	query := `
		UPDATE contacts
		SET name = $2, company = $3, email = $4, phone = $5, value = $6,
		    status = $7, avatar = $8, last_contact = $9, notes = $10, updated_at = $11
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		contact.ID, contact.Name, contact.Company, contact.Email, contact.Phone,
		contact.Value, contact.Status, contact.Avatar, contact.LastContact,
		contact.Notes, contact.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un contatto visibile all'utente.
func (r *ContactRepo) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM contacts WHERE id = $1 AND (user_id = $2 OR user_id IS NULL)`
	tag, err := r.q.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Search cerca per nome, azienda o email (pattern ILIKE già composto).
func (r *ContactRepo) Search(ctx context.Context, pattern string, limit int) ([]entity.Contact, error) {
	query := `SELECT` + contactColumns + `
		FROM contacts
		WHERE name ILIKE $1 OR company ILIKE $1 OR email ILIKE $1
		ORDER BY name LIMIT $2`
	rows, err := r.q.Query(ctx, query, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("search contacts: %w", err)
	}
	defer rows.Close()
	return collectContacts(rows)
}

// Count conta tutti i contatti.
func (r *ContactRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count contacts: %w", err)
	}
	return n, nil
}

func scanContact(row pgx.Row) (*entity.Contact, error) {
	var c entity.Contact
	err := row.Scan(
		&c.ID, &c.Name, &c.Company, &c.Email, &c.Phone, &c.Value, &c.Status,
		&c.Avatar, &c.LastContact, &c.Notes, &c.UserID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func collectContacts(rows pgx.Rows) ([]entity.Contact, error) {
	var list []entity.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		list = append(list, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contacts: %w", err)
	}
	return list, nil
}
