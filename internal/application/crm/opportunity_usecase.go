package crm

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vcrm-app/vcrm-api/internal/application/dto"
	"github.com/vcrm-app/vcrm-api/internal/domain"
	"github.com/vcrm-app/vcrm-api/internal/domain/entity"
	"github.com/vcrm-app/vcrm-api/internal/domain/forecast"
	"github.com/vcrm-app/vcrm-api/internal/domain/repository"
)

// OpportunityUseCase casi d'uso CRUD + movimento Kanban delle opportunità.
type OpportunityUseCase struct {
	oppRepo repository.OpportunityRepository
	tx      TxRunner
}

// NewOpportunityUseCase costruisce il caso d'uso delle opportunità.
func NewOpportunityUseCase(oppRepo repository.OpportunityRepository, tx TxRunner) *OpportunityUseCase {
	return &OpportunityUseCase{oppRepo: oppRepo, tx: tx}
}

// Create crea un'opportunità con i default del Kanban (stage Lead).
func (uc *OpportunityUseCase) Create(ctx context.Context, userID string, in dto.OpportunityRequest) (*dto.OpportunityResponse, error) {
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	stage := in.Stage
	if stage == "" {
		stage = entity.StageLead
	}
	now := time.Now()
	opp := &entity.Opportunity{
		ID:            uuid.New().String(),
		Title:         in.Title,
		Company:       in.Company,
		Value:         in.Value,
		Stage:         stage,
		Probability:   in.Probability,
		OpenDate:      dto.ParseDate(in.OpenDate),
		CloseDate:     dto.ParseDate(in.CloseDate),
		Owner:         in.Owner,
		ContactID:     in.ContactID,
		UserID:        &userID,
		OriginalStage: in.OriginalStage,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.oppRepo.Create(ctx, opp); err != nil {
		return nil, err
	}
	return dto.ToOpportunityResponse(opp), nil
}

// GetByID restituisce un'opportunità visibile all'utente.
func (uc *OpportunityUseCase) GetByID(ctx context.Context, userID, id string) (*dto.OpportunityResponse, error) {
	opp, err := uc.oppRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if opp == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToOpportunityResponse(opp), nil
}

// List restituisce le opportunità dell'utente; year > 0 filtra per anno
// della closeDate.
func (uc *OpportunityUseCase) List(ctx context.Context, userID string, year int) ([]*dto.OpportunityResponse, error) {
	opps, err := uc.oppRepo.ListByUser(ctx, userID, year)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OpportunityResponse, 0, len(opps))
	for i := range opps {
		out = append(out, dto.ToOpportunityResponse(&opps[i]))
	}
	return out, nil
}

// Update aggiorna tutti i campi modificabili di un'opportunità.
func (uc *OpportunityUseCase) Update(ctx context.Context, userID, id string, in dto.OpportunityRequest) (*dto.OpportunityResponse, error) {
	opp, err := uc.oppRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if opp == nil {
		return nil, domain.ErrNotFound
	}
	opp.Title = in.Title
	opp.Company = in.Company
	opp.Value = in.Value
	if in.Stage != "" {
		opp.Stage = in.Stage
	}
	opp.Probability = in.Probability
	opp.OpenDate = dto.ParseDate(in.OpenDate)
	opp.CloseDate = dto.ParseDate(in.CloseDate)
	opp.Owner = in.Owner
	opp.ContactID = in.ContactID
	if in.OriginalStage != "" {
		opp.OriginalStage = in.OriginalStage
	}
	opp.Notes = in.Notes
	opp.UpdatedAt = time.Now()
	if err := uc.oppRepo.Update(ctx, opp); err != nil {
		return nil, err
	}
	return dto.ToOpportunityResponse(opp), nil
}

// MoveStage sposta un'opportunità in un altro stage (drag & drop del Kanban).
// Se l'opportunità esce da uno stage vinto verso uno non vinto, lo stage di
// provenienza viene conservato in OriginalStage (solo la prima volta): il
// valore resta ordinato nel mese della chiusura originale. Lettura e
// scrittura avvengono nella stessa transazione per evitare che due
// spostamenti concorrenti sovrascrivano OriginalStage.
func (uc *OpportunityUseCase) MoveStage(ctx context.Context, userID, id string, in dto.MoveStageRequest) (*dto.OpportunityResponse, error) {
	if in.Stage == "" {
		return nil, domain.ErrInvalidInput
	}
	var moved *entity.Opportunity
	err := uc.tx.Run(ctx, func(oppRepo repository.OpportunityRepository) error {
		opp, err := oppRepo.GetByID(ctx, userID, id)
		if err != nil {
			return err
		}
		if opp == nil {
			return domain.ErrNotFound
		}
		wasWon := forecast.Classify(opp.Stage) == forecast.StageWon
		willBeWon := forecast.Classify(in.Stage) == forecast.StageWon
		if wasWon && !willBeWon && opp.OriginalStage == "" {
			opp.OriginalStage = opp.Stage
		}
		opp.Stage = in.Stage
		if in.Probability != nil {
			opp.Probability = in.Probability
		}
		opp.UpdatedAt = time.Now()
		if err := oppRepo.Update(ctx, opp); err != nil {
			return err
		}
		moved = opp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.ToOpportunityResponse(moved), nil
}

// Delete elimina un'opportunità visibile all'utente.
func (uc *OpportunityUseCase) Delete(ctx context.Context, userID, id string) error {
	return uc.oppRepo.Delete(ctx, userID, id)
}
