package unitofwork

import (
	"context"

	"medisearch-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	TrialRepository() contract.TrialRepository
	PublicationRepository() contract.PublicationRepository
	ResearcherRepository() contract.ResearcherRepository
	ConnectionRepository() contract.ConnectionRepository
	SearchLogRepository() contract.SearchLogRepository
}
