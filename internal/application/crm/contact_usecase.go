package crm

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vcrm-app/vcrm-api/internal/application/dto"
	"github.com/vcrm-app/vcrm-api/internal/domain"
	"github.com/vcrm-app/vcrm-api/internal/domain/entity"
	"github.com/vcrm-app/vcrm-api/internal/domain/repository"
)

// ContactUseCase casi d'uso CRUD dei contatti.
type ContactUseCase struct {
	contactRepo repository.ContactRepository
}

// NewContactUseCase costruisce il caso d'uso dei contatti.
func NewContactUseCase(contactRepo repository.ContactRepository) *ContactUseCase {
	return &ContactUseCase{contactRepo: contactRepo}
}

// Create crea un contatto; se l'avatar manca usa le iniziali del nome.
func (uc *ContactUseCase) Create(ctx context.Context, userID string, in dto.ContactRequest) (*dto.ContactResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = "Lead"
	}
	avatar := in.Avatar
	if avatar == "" {
		avatar = initials(in.Name)
	}
	now := time.Now()
	contact := &entity.Contact{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Company:     in.Company,
		Email:       in.Email,
		Phone:       in.Phone,
		Value:       in.Value,
		Status:      status,
		Avatar:      avatar,
		LastContact: dto.ParseDate(in.LastContact),
		Notes:       in.Notes,
		UserID:      &userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}
	return dto.ToContactResponse(contact), nil
}

// GetByID restituisce un contatto visibile all'utente.
func (uc *ContactUseCase) GetByID(ctx context.Context, userID, id string) (*dto.ContactResponse, error) {
	contact, err := uc.contactRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToContactResponse(contact), nil
}

// List restituisce i contatti dell'utente.
func (uc *ContactUseCase) List(ctx context.Context, userID string) ([]*dto.ContactResponse, error) {
	contacts, err := uc.contactRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ContactResponse, 0, len(contacts))
	for i := range contacts {
		out = append(out, dto.ToContactResponse(&contacts[i]))
	}
	return out, nil
}

// Update aggiorna i campi modificabili di un contatto.
func (uc *ContactUseCase) Update(ctx context.Context, userID, id string, in dto.ContactRequest) (*dto.ContactResponse, error) {
	contact, err := uc.contactRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, domain.ErrNotFound
	}
	contact.Name = in.Name
	contact.Company = in.Company
	contact.Email = in.Email
	contact.Phone = in.Phone
	contact.Value = in.Value
	if in.Status != "" {
		contact.Status = in.Status
	}
	if in.Avatar != "" {
		contact.Avatar = in.Avatar
	}
	contact.LastContact = dto.ParseDate(in.LastContact)
	contact.Notes = in.Notes
	contact.UpdatedAt = time.Now()
	if err := uc.contactRepo.Update(ctx, contact); err != nil {
		return nil, err
	}
	return dto.ToContactResponse(contact), nil
}

// Delete elimina un contatto visibile all'utente.
func (uc *ContactUseCase) Delete(ctx context.Context, userID, id string) error {
	return uc.contactRepo.Delete(ctx, userID, id)
}

// initials estrae le iniziali maiuscole dalle prime due parole del nome.
func initials(name string) string {
	parts := strings.Fields(name)
	var b strings.Builder
	for i, p := range parts {
		if i >= 2 {
			break
		}
		r := []rune(p)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}
