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

var _ repository.TaskRepository = (*TaskRepo)(nil)

const taskColumns = `
	id, title, type, priority, status, due_date, contact_id, opportunity_id,
	user_id, description, completed_at, created_at, updated_at`

// TaskRepo implementazione di TaskRepository (usabile con pool o tx).
type TaskRepo struct {
	q Querier
}

// NewTaskRepository costruisce l'adapter. Passare pool o tx (Querier).
func NewTaskRepository(q Querier) *TaskRepo {
	return &TaskRepo{q: q}
}

// Create persiste una nuova attività.
func (r *TaskRepo) Create(ctx context.Context, task *entity.Task) error {
	query := `
		INSERT INTO tasks (id, title, type, priority, status, due_date, contact_id,
		                   opportunity_id, user_id, description, completed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		task.ID, task.Title, task.Type, task.Priority, task.Status, task.DueDate,
		task.ContactID, task.OpportunityID, task.UserID, task.Description,
		task.CompletedAt, task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// GetByID legge un'attività visibile all'utente (sua o legacy senza owner).
func (r *TaskRepo) GetByID(ctx context.Context, userID, id string) (*entity.Task, error) {
	query := `SELECT` + taskColumns + `
		FROM tasks WHERE id = $1 AND (user_id = $2 OR user_id IS NULL)`
	row := r.q.QueryRow(ctx, query, id, userID)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return task, nil
}

// ListByUser ordina per scadenza crescente (NULL in fondo), poi per
// creazione decrescente.
func (r *TaskRepo) ListByUser(ctx context.Context, userID string) ([]entity.Task, error) {
	query := `SELECT` + taskColumns + `
		FROM tasks WHERE user_id = $1 OR user_id IS NULL
		ORDER BY due_date ASC NULLS LAST, created_at DESC`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()
	return collectTasks(rows)
}

// ListAll restituisce l'intera collezione (forecast ed export).
func (r *TaskRepo) ListAll(ctx context.Context) ([]entity.Task, error) {
	query := `SELECT` + taskColumns + `
		FROM tasks ORDER BY due_date ASC NULLS LAST, created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list all tasks: %w", err)
	}
	defer rows.Close()
	return collectTasks(rows)
}

// Update aggiorna un'attività esistente.
func (r *TaskRepo) Update(ctx context.Context, task *entity.Task) error {
	query := `
		UPDATE tasks
		SET title = $2, type = $3, priority = $4, status = $5, due_date = $6,
		    contact_id = $7, opportunity_id = $8, description = $9,
		    completed_at = $10, updated_at = $11
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		task.ID, task.Title, task.Type, task.Priority, task.Status, task.DueDate,
		task.ContactID, task.OpportunityID, task.Description,
		task.CompletedAt, task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un'attività visibile all'utente.
func (r *TaskRepo) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM tasks WHERE id = $1 AND (user_id = $2 OR user_id IS NULL)`
	tag, err := r.q.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Search cerca per titolo o descrizione (pattern ILIKE già composto).
func (r *TaskRepo) Search(ctx context.Context, pattern string, limit int) ([]entity.Task, error) {
	query := `SELECT` + taskColumns + `
		FROM tasks
		WHERE title ILIKE $1 OR description ILIKE $1
		ORDER BY due_date ASC NULLS LAST LIMIT $2`
	rows, err := r.q.Query(ctx, query, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("search tasks: %w", err)
	}
	defer rows.Close()
	return collectTasks(rows)
}

// CountOpen conta le attività non completate (KPI del dashboard).
func (r *TaskRepo) CountOpen(ctx context.Context) (int, error) {
	var n int
	query := `SELECT COUNT(*) FROM tasks WHERE status <> $1`
	if err := r.q.QueryRow(ctx, query, entity.TaskStatusCompletata).Scan(&n); err != nil {
		return 0, fmt.Errorf("count open tasks: %w", err)
	}
	return n, nil
}

// Count conta tutte le attività.
func (r *TaskRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return n, nil
}

func scanTask(row pgx.Row) (*entity.Task, error) {
	var t entity.Task
	err := row.Scan(
		&t.ID, &t.Title, &t.Type, &t.Priority, &t.Status, &t.DueDate,
		&t.ContactID, &t.OpportunityID, &t.UserID, &t.Description,
		&t.CompletedAt, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func collectTasks(rows pgx.Rows) ([]entity.Task, error) {
	var list []entity.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		list = append(list, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return list, nil
}
