package service

import (
	"context"
	"errors"

	"medisearch-be/internal/dto"
	"medisearch-be/internal/entity"
	"medisearch-be/internal/pkg/logger"
	"medisearch-be/internal/repository/specification"
	"medisearch-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

var ErrResearcherNotFound = errors.New("researcher not found")

var ErrConnectionExists = errors.New("a connection with this researcher already exists")

type IConnectionService interface {
	RequestConnection(ctx context.Context, requesterId uuid.UUID, req *dto.CreateConnectionRequest) (*dto.ConnectionResponse, error)
	ListConnections(ctx context.Context, requesterId uuid.UUID) ([]dto.ConnectionResponse, error)
}

// connectionService manages connection requests from authenticated users
// toward internal researcher profiles. Search decoration reads the same
// table through ConnectionRepository.StatusBetween.
type connectionService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewConnectionService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IConnectionService {
	return &connectionService{uowFactory: uowFactory, logger: log}
}

func (s *connectionService) RequestConnection(ctx context.Context, requesterId uuid.UUID, req *dto.CreateConnectionRequest) (*dto.ConnectionResponse, error) {
	researcherId, err := uuid.Parse(req.ResearcherId)
	if err != nil {
		return nil, ErrResearcherNotFound
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	researcher, err := uow.ResearcherRepository().FindOne(ctx, specification.ByID{ID: researcherId})
	if err != nil {
		return nil, err
	}
	if researcher == nil {
		return nil, ErrResearcherNotFound
	}

	// One pending or accepted request per pair, in either direction.
	status, err := uow.ConnectionRepository().StatusBetween(ctx, requesterId, researcherId)
	if err != nil {
		return nil, err
	}
	if status != entity.ConnectionNone {
		return nil, ErrConnectionExists
	}

	conn := &entity.Connection{
		Id:           uuid.New(),
		RequesterId:  requesterId,
		ResearcherId: researcherId,
		Status:       entity.ConnectionPending,
	}
	if err := uow.ConnectionRepository().Create(ctx, conn); err != nil {
		return nil, err
	}

	s.logger.Info("connection", "connection requested", map[string]interface{}{
		"requester_id":  requesterId,
		"researcher_id": researcherId,
	})
	return toConnectionResponse(conn), nil
}

func (s *connectionService) ListConnections(ctx context.Context, requesterId uuid.UUID) ([]dto.ConnectionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	connections, err := uow.ConnectionRepository().FindByRequester(ctx, requesterId)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ConnectionResponse, 0, len(connections))
	for _, c := range connections {
		out = append(out, *toConnectionResponse(c))
	}
	return out, nil
}

func toConnectionResponse(c *entity.Connection) *dto.ConnectionResponse {
	return &dto.ConnectionResponse{
		Id:           c.Id,
		ResearcherId: c.ResearcherId,
		Status:       c.Status,
		CreatedAt:    c.CreatedAt,
	}
}
