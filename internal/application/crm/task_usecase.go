package crm

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vcrm-app/vcrm-api/internal/application/dto"
	"github.com/vcrm-app/vcrm-api/internal/domain"
	"github.com/vcrm-app/vcrm-api/internal/domain/entity"
	"github.com/vcrm-app/vcrm-api/internal/domain/repository"
	"github.com/vcrm-app/vcrm-api/pkg/ics"
)

// TaskUseCase casi d'uso CRUD + toggle + esportazione calendario delle attività.
type TaskUseCase struct {
	taskRepo repository.TaskRepository
}

// NewTaskUseCase costruisce il caso d'uso delle attività.
func NewTaskUseCase(taskRepo repository.TaskRepository) *TaskUseCase {
	return &TaskUseCase{taskRepo: taskRepo}
}

// Create crea un'attività con i default del planner (Chiamata, Media, Da fare).
func (uc *TaskUseCase) Create(ctx context.Context, userID string, in dto.TaskRequest) (*dto.TaskResponse, error) {
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	typ := in.Type
	if typ == "" {
		typ = entity.TaskTypeChiamata
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.TaskPriorityMedia
	}
	status := in.Status
	if status == "" {
		status = entity.TaskStatusDaFare
	}
	now := time.Now()
	task := &entity.Task{
		ID:            uuid.New().String(),
		Title:         in.Title,
		Type:          typ,
		Priority:      priority,
		Status:        status,
		DueDate:       dto.ParseDate(in.DueDate),
		ContactID:     in.ContactID,
		OpportunityID: in.OpportunityID,
		UserID:        &userID,
		Description:   in.Description,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return dto.ToTaskResponse(task), nil
}

// GetByID restituisce un'attività visibile all'utente.
func (uc *TaskUseCase) GetByID(ctx context.Context, userID, id string) (*dto.TaskResponse, error) {
	task, err := uc.taskRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToTaskResponse(task), nil
}

// List restituisce le attività dell'utente ordinate per scadenza.
func (uc *TaskUseCase) List(ctx context.Context, userID string) ([]*dto.TaskResponse, error) {
	tasks, err := uc.taskRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, dto.ToTaskResponse(&tasks[i]))
	}
	return out, nil
}

// Update aggiorna i campi modificabili di un'attività.
func (uc *TaskUseCase) Update(ctx context.Context, userID, id string, in dto.TaskRequest) (*dto.TaskResponse, error) {
	task, err := uc.taskRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	task.Title = in.Title
	if in.Type != "" {
		task.Type = in.Type
	}
	if in.Priority != "" {
		task.Priority = in.Priority
	}
	if in.Status != "" {
		task.Status = in.Status
	}
	task.DueDate = dto.ParseDate(in.DueDate)
	task.ContactID = in.ContactID
	task.OpportunityID = in.OpportunityID
	task.Description = in.Description
	task.UpdatedAt = time.Now()
	if err := uc.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return dto.ToTaskResponse(task), nil
}

// Toggle inverte lo stato dell'attività tra Da fare e Completata,
// registrando o azzerando CompletedAt.
func (uc *TaskUseCase) Toggle(ctx context.Context, userID, id string) (*dto.TaskResponse, error) {
	task, err := uc.taskRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	if task.Status == entity.TaskStatusCompletata {
		task.Status = entity.TaskStatusDaFare
		task.CompletedAt = nil
	} else {
		task.Status = entity.TaskStatusCompletata
		task.CompletedAt = &now
	}
	task.UpdatedAt = now
	if err := uc.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return dto.ToTaskResponse(task), nil
}

// Calendar genera il documento iCalendar (evento giornaliero) per l'attività.
// Le attività senza scadenza non sono esportabili.
func (uc *TaskUseCase) Calendar(ctx context.Context, userID, id string) (string, error) {
	task, err := uc.taskRepo.GetByID(ctx, userID, id)
	if err != nil {
		return "", err
	}
	if task == nil {
		return "", domain.ErrNotFound
	}
	if task.DueDate == nil {
		return "", domain.ErrInvalidInput
	}
	ev := ics.Event{
		UID:         task.ID + "@vcrm.app",
		Summary:     task.Title,
		Description: task.Description,
		Date:        *task.DueDate,
		Confirmed:   task.Status == entity.TaskStatusCompletata,
	}
	return ics.Calendar(ev), nil
}

// Delete elimina un'attività visibile all'utente.
func (uc *TaskUseCase) Delete(ctx context.Context, userID, id string) error {
	return uc.taskRepo.Delete(ctx, userID, id)
}
