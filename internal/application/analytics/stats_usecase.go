package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vcrm-app/vcrm-api/internal/application/dto"
	"github.com/vcrm-app/vcrm-api/internal/domain/forecast"
	"github.com/vcrm-app/vcrm-api/internal/domain/repository"
)

// StatsUseCase calcola i contatori globali e le cifre di pipeline derivate
// dalla classificazione degli stage.
type StatsUseCase struct {
	contactRepo repository.ContactRepository
	oppRepo     repository.OpportunityRepository
	taskRepo    repository.TaskRepository
}

// NewStatsUseCase costruisce il caso d'uso delle statistiche.
func NewStatsUseCase(
	contactRepo repository.ContactRepository,
	oppRepo repository.OpportunityRepository,
	taskRepo repository.TaskRepository,
) *StatsUseCase {
	return &StatsUseCase{contactRepo: contactRepo, oppRepo: oppRepo, taskRepo: taskRepo}
}

// Compute costruisce lo StatsDTO. Le cifre vinto/perso/pipeline usano lo
// stesso classificatore di stage del forecast: le due viste non possono
// divergere sulla stessa istantanea.
func (uc *StatsUseCase) Compute(ctx context.Context) (*dto.StatsDTO, error) {
	contacts, err := uc.contactRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: contatti: %w", err)
	}
	tasks, err := uc.taskRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: attività: %w", err)
	}
	openTasks, err := uc.taskRepo.CountOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: attività aperte: %w", err)
	}
	opps, err := uc.oppRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: opportunità: %w", err)
	}

	out := &dto.StatsDTO{
		Contacts:      contacts,
		Opportunities: len(opps),
		Tasks:         tasks,
		OpenTasks:     openTasks,
		PipelineValue: decimal.Zero,
		WonValue:      decimal.Zero,
	}
	for _, o := range opps {
		switch forecast.Classify(o.Stage) {
		case forecast.StageWon:
			out.WonDeals++
			out.WonValue = out.WonValue.Add(o.Value)
		case forecast.StageLost:
			out.LostDeals++
		default:
			out.PipelineValue = out.PipelineValue.Add(o.Value)
		}
	}
	return out, nil
}
