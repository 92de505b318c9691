package analytics

import (
	"context"
	"fmt"
	"strings"

	"github.com/vcrm-app/vcrm-api/internal/application/dto"
	"github.com/vcrm-app/vcrm-api/internal/domain"
	"github.com/vcrm-app/vcrm-api/internal/domain/repository"
)

const (
	searchMinLength      = 2  // query più corte non interrogano la DB
	searchMaxResultsPerT = 10 // risultati massimi per tipo
)

// SearchUseCase ricerca globale su contatti, opportunità e attività.
type SearchUseCase struct {
	contactRepo repository.ContactRepository
	oppRepo     repository.OpportunityRepository
	taskRepo    repository.TaskRepository
}

// NewSearchUseCase costruisce il caso d'uso della ricerca.
func NewSearchUseCase(
	contactRepo repository.ContactRepository,
	oppRepo repository.OpportunityRepository,
	taskRepo repository.TaskRepository,
) *SearchUseCase {
	return &SearchUseCase{contactRepo: contactRepo, oppRepo: oppRepo, taskRepo: taskRepo}
}

// Search esegue la ricerca case-insensitive (ILIKE lato DB) sui tre tipi in
// parallelo. Query sotto i 2 caratteri: ErrInvalidInput.
func (uc *SearchUseCase) Search(ctx context.Context, query string) (*dto.SearchResultsDTO, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < searchMinLength {
		return nil, domain.ErrInvalidInput
	}
	pattern := "%" + escapeLike(query) + "%"

	type result struct {
		contacts []*dto.ContactResponse
		opps     []*dto.OpportunityResponse
		tasks    []*dto.TaskResponse
		err      error
	}
	contactCh := make(chan result, 1)
	oppCh := make(chan result, 1)
	taskCh := make(chan result, 1)

	go func() {
		contacts, err := uc.contactRepo.Search(ctx, pattern, searchMaxResultsPerT)
		r := result{err: err}
		for i := range contacts {
			r.contacts = append(r.contacts, dto.ToContactResponse(&contacts[i]))
		}
		contactCh <- r
	}()
	go func() {
		opps, err := uc.oppRepo.Search(ctx, pattern, searchMaxResultsPerT)
		r := result{err: err}
		for i := range opps {
			r.opps = append(r.opps, dto.ToOpportunityResponse(&opps[i]))
		}
		oppCh <- r
	}()
	go func() {
		tasks, err := uc.taskRepo.Search(ctx, pattern, searchMaxResultsPerT)
		r := result{err: err}
		for i := range tasks {
			r.tasks = append(r.tasks, dto.ToTaskResponse(&tasks[i]))
		}
		taskCh <- r
	}()

	contacts := <-contactCh
	opps := <-oppCh
	tasks := <-taskCh

	if contacts.err != nil {
		return nil, fmt.Errorf("search: contatti: %w", contacts.err)
	}
	if opps.err != nil {
		return nil, fmt.Errorf("search: opportunità: %w", opps.err)
	}
	if tasks.err != nil {
		return nil, fmt.Errorf("search: attività: %w", tasks.err)
	}

	out := &dto.SearchResultsDTO{
		Contacts:      contacts.contacts,
		Opportunities: opps.opps,
		Tasks:         tasks.tasks,
	}
	if out.Contacts == nil {
		out.Contacts = []*dto.ContactResponse{}
	}
	if out.Opportunities == nil {
		out.Opportunities = []*dto.OpportunityResponse{}
	}
	if out.Tasks == nil {
		out.Tasks = []*dto.TaskResponse{}
	}
	return out, nil
}

// escapeLike neutralizza i metacaratteri di LIKE nella query dell'utente.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
