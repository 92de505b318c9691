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

var _ repository.OpportunityRepository = (*OpportunityRepo)(nil)

const opportunityColumns = `
	id, title, company, value, stage, probability, open_date, close_date,
	owner, contact_id, user_id, original_stage, notes, created_at, updated_at`

// OpportunityRepo implementazione di OpportunityRepository (usabile con pool o tx).
type OpportunityRepo struct {
	q Querier
}

// NewOpportunityRepository costruisce l'adapter. Passare pool o tx (Querier).
func NewOpportunityRepository(q Querier) *OpportunityRepo {
	return &OpportunityRepo{q: q}
}

// Create persiste una nuova opportunità.
func (r *OpportunityRepo) Create(ctx context.Context, opp *entity.Opportunity) error {
	query := `
		INSERT INTO opportunities (id, title, company, value, stage, probability, open_date, close_date,
		                           owner, contact_id, user_id, original_stage, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		opp.ID, opp.Title, opp.Company, opp.Value, opp.Stage, opp.Probability,
		opp.OpenDate, opp.CloseDate, opp.Owner, opp.ContactID, opp.UserID,
		opp.OriginalStage, opp.Notes, opp.CreatedAt, opp.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert opportunity: %w", err)
	}
	return nil
}

// GetByID legge un'opportunità visibile all'utente (sua o legacy senza owner).
func (r *OpportunityRepo) GetByID(ctx context.Context, userID, id string) (*entity.Opportunity, error) {
	query := `SELECT` + opportunityColumns + `
		FROM opportunities WHERE id = $1 AND (user_id = $2 OR user_id IS NULL)`
	row := r.q.QueryRow(ctx, query, id, userID)
	opp, err := scanOpportunity(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get opportunity: %w", err)
	}
	return opp, nil
}

// ListByUser lista le opportunità dell'utente; year > 0 filtra per anno
// della closeDate.
func (r *OpportunityRepo) ListByUser(ctx context.Context, userID string, year int) ([]entity.Opportunity, error) {
	query := `SELECT` + opportunityColumns + `
		FROM opportunities WHERE (user_id = $1 OR user_id IS NULL)`
	args := []any{userID}
	if year > 0 {
		query += ` AND EXTRACT(YEAR FROM close_date) = $2`
		args = append(args, year)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list opportunities: %w", err)
	}
	defer rows.Close()
	return collectOpportunities(rows)
}

// ListAll restituisce l'intera collezione (forecast ed export).
func (r *OpportunityRepo) ListAll(ctx context.Context) ([]entity.Opportunity, error) {
	query := `SELECT` + opportunityColumns + ` FROM opportunities ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list all opportunities: %w", err)
	}
	defer rows.Close()
	return collectOpportunities(rows)
}

// Update aggiorna un'opportunità esistente.
func (r *OpportunityRepo) Update(ctx context.Context, opp *entity.Opportunity) error {
	query := `
		UPDATE opportunities
		SET title = $2, company = $3, value = $4, stage = $5, probability = $6,
		    open_date = $7, close_date = $8, owner = $9, contact_id = $10,
		    original_stage = $11, notes = $12, updated_at = $13
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		opp.ID, opp.Title, opp.Company, opp.Value, opp.Stage, opp.Probability,
		opp.OpenDate, opp.CloseDate, opp.Owner, opp.ContactID,
		opp.OriginalStage, opp.Notes, opp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update opportunity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un'opportunità visibile all'utente.
func (r *OpportunityRepo) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM opportunities WHERE id = $1 AND (user_id = $2 OR user_id IS NULL)`
	tag, err := r.q.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete opportunity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Search cerca per titolo, azienda o owner (pattern ILIKE già composto).
func (r *OpportunityRepo) Search(ctx context.Context, pattern string, limit int) ([]entity.Opportunity, error) {
	query := `SELECT` + opportunityColumns + `
		FROM opportunities
		WHERE title ILIKE $1 OR company ILIKE $1 OR owner ILIKE $1
		ORDER BY updated_at DESC LIMIT $2`
	rows, err := r.q.Query(ctx, query, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("search opportunities: %w", err)
	}
	defer rows.Close()
	return collectOpportunities(rows)
}

func scanOpportunity(row pgx.Row) (*entity.Opportunity, error) {
	var o entity.Opportunity
	err := row.Scan(
		&o.ID, &o.Title, &o.Company, &o.Value, &o.Stage, &o.Probability,
		&o.OpenDate, &o.CloseDate, &o.Owner, &o.ContactID, &o.UserID,
		&o.OriginalStage, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func collectOpportunities(rows pgx.Rows) ([]entity.Opportunity, error) {
	var list []entity.Opportunity
	for rows.Next() {
		o, err := scanOpportunity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan opportunity: %w", err)
		}
		list = append(list, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate opportunities: %w", err)
	}
	return list, nil
}
