package service

import (
	"context"
	"testing"

	"medisearch-be/internal/dto"
	"medisearch-be/internal/entity"
	"medisearch-be/internal/repository/contract"
	"medisearch-be/internal/repository/specification"
	"medisearch-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConnectionRepo struct {
	status  string
	list    []*entity.Connection
	created []*entity.Connection
}

func (r *fakeConnectionRepo) Create(ctx context.Context, c *entity.Connection) error {
	r.created = append(r.created, c)
	return nil
}

func (r *fakeConnectionRepo) StatusBetween(ctx context.Context, requesterId, researcherId uuid.UUID) (string, error) {
	return r.status, nil
}

func (r *fakeConnectionRepo) FindByRequester(ctx context.Context, requesterId uuid.UUID) ([]*entity.Connection, error) {
	return r.list, nil
}

type fakeResearcherRepo struct {
	researcher *entity.Researcher
}

func (r *fakeResearcherRepo) Create(ctx context.Context, researcher *entity.Researcher) error {
	return nil
}

func (r *fakeResearcherRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Researcher, error) {
	return r.researcher, nil
}

func (r *fakeResearcherRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Researcher, error) {
	return nil, nil
}

type fakeUnitOfWork struct {
	connections contract.ConnectionRepository
	researchers contract.ResearcherRepository
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) TrialRepository() contract.TrialRepository             { return nil }
func (u *fakeUnitOfWork) PublicationRepository() contract.PublicationRepository { return nil }
func (u *fakeUnitOfWork) ResearcherRepository() contract.ResearcherRepository   { return u.researchers }
func (u *fakeUnitOfWork) ConnectionRepository() contract.ConnectionRepository   { return u.connections }
func (u *fakeUnitOfWork) SearchLogRepository() contract.SearchLogRepository     { return nil }

type fakeUowFactory struct {
	uow unitofwork.UnitOfWork
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

func newConnectionFixture(status string, researcher *entity.Researcher) (IConnectionService, *fakeConnectionRepo) {
	connections := &fakeConnectionRepo{status: status}
	factory := &fakeUowFactory{uow: &fakeUnitOfWork{
		connections: connections,
		researchers: &fakeResearcherRepo{researcher: researcher},
	}}
	return NewConnectionService(factory, noopLogger{}), connections
}

func TestRequestConnectionCreatesPending(t *testing.T) {
	researcherId := uuid.New()
	svc, connections := newConnectionFixture(entity.ConnectionNone, &entity.Researcher{Id: researcherId})
	requesterId := uuid.New()

	res, err := svc.RequestConnection(context.Background(), requesterId, &dto.CreateConnectionRequest{
		ResearcherId: researcherId.String(),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.ConnectionPending, res.Status)
	assert.Equal(t, researcherId, res.ResearcherId)
	require.Len(t, connections.created, 1)
	assert.Equal(t, requesterId, connections.created[0].RequesterId)
}

func TestRequestConnectionRejectsDuplicate(t *testing.T) {
	researcherId := uuid.New()
	svc, connections := newConnectionFixture(entity.ConnectionPending, &entity.Researcher{Id: researcherId})

	_, err := svc.RequestConnection(context.Background(), uuid.New(), &dto.CreateConnectionRequest{
		ResearcherId: researcherId.String(),
	})

	assert.ErrorIs(t, err, ErrConnectionExists)
	assert.Empty(t, connections.created)
}

func TestRequestConnectionUnknownResearcher(t *testing.T) {
	svc, connections := newConnectionFixture(entity.ConnectionNone, nil)

	_, err := svc.RequestConnection(context.Background(), uuid.New(), &dto.CreateConnectionRequest{
		ResearcherId: uuid.New().String(),
	})

	assert.ErrorIs(t, err, ErrResearcherNotFound)
	assert.Empty(t, connections.created)
}

func TestListConnections(t *testing.T) {
	requesterId := uuid.New()
	svc, connections := newConnectionFixture(entity.ConnectionNone, nil)
	connections.list = []*entity.Connection{
		{Id: uuid.New(), RequesterId: requesterId, ResearcherId: uuid.New(), Status: entity.ConnectionConnected},
		{Id: uuid.New(), RequesterId: requesterId, ResearcherId: uuid.New(), Status: entity.ConnectionPending},
	}

	res, err := svc.ListConnections(context.Background(), requesterId)
	require.NoError(t, err)

	require.Len(t, res, 2)
	assert.Equal(t, entity.ConnectionConnected, res[0].Status)
	assert.Equal(t, entity.ConnectionPending, res[1].Status)
}
