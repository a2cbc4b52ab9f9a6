package driverrepo_test

import (
	"context"
	"testing"

	"distributor/internal/adapters/out/postgres/driverrepo"
	"distributor/internal/adapters/out/postgres/pgtest"
	"distributor/internal/core/domain/model/driver"
	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type DriverRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *driverrepo.GormDriverRepository
	tracker    *MockAggregateTracker
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.tracker = new(MockAggregateTracker)
	suite.repository = driverrepo.NewGormDriverRepository(suite.database.DB, suite.tracker)
}

func (suite *DriverRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *DriverRepositoryIntegrationTestSuite) TestLifecycle() {
	ctx := context.Background()
	d, err := driver.NewDriver(kernel.NewUUID(), "Carlos Moto", "11988887777", "Moto Honda CG")
	suite.Require().NoError(err)
	suite.tracker.On("TrackAggregate", d.ID(), d).Once()

	suite.Require().NoError(suite.repository.Add(ctx, d))

	got, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Equal("Carlos Moto", got.Name())
	suite.Equal("11988887777", got.Phone())
	suite.Equal("Moto Honda CG", got.Vehicle())

	byName, err := suite.repository.GetByName(ctx, "Carlos Moto")
	suite.Require().NoError(err)
	suite.Equal(d.ID(), byName.ID())

	suite.Require().NoError(suite.repository.Delete(ctx, d.ID()))
	_, err = suite.repository.Get(ctx, d.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.GetByName(ctx, "Ninguém")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.Require().ErrorIs(suite.repository.Delete(ctx, kernel.NewUUID()), errs.ErrObjectNotFound)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestUpdate() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	d, err := driver.NewDriver(kernel.NewUUID(), "Carlos Moto", "11988887777", "Moto Honda CG")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, d))

	suite.Require().NoError(d.Edit("Carlos Souza", "11988880002", "Fiorino 003"))
	suite.Require().NoError(suite.repository.Update(ctx, d))

	got, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Equal("Carlos Souza", got.Name())
	suite.Equal("11988880002", got.Phone())
	suite.Equal("Fiorino 003", got.Vehicle())

	other, err := driver.NewDriver(kernel.NewUUID(), "Ana", "11988880004", "Moto")
	suite.Require().NoError(err)
	suite.Require().ErrorIs(suite.repository.Update(ctx, other), errs.ErrObjectNotFound)
}

func TestDriverRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DriverRepositoryIntegrationTestSuite))
}
