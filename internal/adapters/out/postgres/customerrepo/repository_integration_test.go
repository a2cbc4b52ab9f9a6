package customerrepo_test

import (
	"context"
	"testing"
	"time"

	"distributor/internal/adapters/out/postgres/customerrepo"
	"distributor/internal/adapters/out/postgres/pgtest"
	"distributor/internal/core/domain/model/customer"
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

type CustomerRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *customerrepo.GormCustomerRepository
	tracker    *MockAggregateTracker
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.tracker = new(MockAggregateTracker)
	suite.repository = customerrepo.NewGormCustomerRepository(suite.database.DB, suite.tracker)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *CustomerRepositoryIntegrationTestSuite) newCustomer(email string) *customer.Customer {
	registeredAt := time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)
	c, err := customer.NewCustomer(kernel.NewUUID(), "Maria Silva", "Rua das Flores, 123", "11999990001",
		email, registeredAt)
	suite.Require().NoError(err)
	return c
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestAdd_Get_RoundTrip() {
	ctx := context.Background()
	c := suite.newCustomer("maria@example.com")
	suite.tracker.On("TrackAggregate", c.ID(), c).Once()

	suite.Require().NoError(suite.repository.Add(ctx, c))

	got, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal(c.ID(), got.ID())
	suite.Equal("Maria Silva", got.Name())
	suite.Equal("Rua das Flores, 123", got.Address())
	suite.Equal("11999990001", got.Phone())
	suite.Equal("maria@example.com", got.Email())
	suite.True(c.RegisteredAt().Equal(got.RegisteredAt()))
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestAdd_DuplicateEmail() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Once()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newCustomer("maria@example.com")))

	err := suite.repository.Add(ctx, suite.newCustomer("maria@example.com"))

	suite.Require().ErrorIs(err, customer.ErrEmailIsAlreadyRegistered)
	suite.tracker.AssertNumberOfCalls(suite.T(), "TrackAggregate", 1)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestAdd_NotConstructed() {
	err := suite.repository.Add(context.Background(), &customer.Customer{})

	suite.Require().ErrorIs(err, customer.ErrCustomerIsNotConstructed)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGetByEmail() {
	ctx := context.Background()
	c := suite.newCustomer("maria@example.com")
	suite.tracker.On("TrackAggregate", c.ID(), c).Once()
	suite.Require().NoError(suite.repository.Add(ctx, c))

	got, err := suite.repository.GetByEmail(ctx, "  Maria@Example.com ")
	suite.Require().NoError(err)
	suite.Equal(c.ID(), got.ID())

	_, err = suite.repository.GetByEmail(ctx, "joao@example.com")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	c := suite.newCustomer("maria@example.com")
	suite.tracker.On("TrackAggregate", c.ID(), c).Once()
	suite.Require().NoError(suite.repository.Add(ctx, c))

	suite.Require().NoError(suite.repository.Delete(ctx, c.ID()))

	_, err := suite.repository.Get(ctx, c.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Require().ErrorIs(suite.repository.Delete(ctx, c.ID()), errs.ErrObjectNotFound)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestUpdate() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	maria := suite.newCustomer("maria@example.com")
	suite.Require().NoError(suite.repository.Add(ctx, maria))
	joao := suite.newCustomer("joao@example.com")
	suite.Require().NoError(suite.repository.Add(ctx, joao))

	suite.Run("writes contact fields", func() {
		suite.Require().NoError(maria.Edit("Maria Souza", "Av. Paulista, 1000", "11999990009", "maria.souza@example.com"))

		suite.Require().NoError(suite.repository.Update(ctx, maria))

		got, err := suite.repository.Get(ctx, maria.ID())
		suite.Require().NoError(err)
		suite.Equal("Maria Souza", got.Name())
		suite.Equal("Av. Paulista, 1000", got.Address())
		suite.Equal("11999990009", got.Phone())
		suite.Equal("maria.souza@example.com", got.Email())
		suite.True(maria.RegisteredAt().Equal(got.RegisteredAt()))
	})

	suite.Run("rejects an email of another customer", func() {
		suite.Require().NoError(joao.Edit(joao.Name(), joao.Address(), joao.Phone(), "maria.souza@example.com"))

		err := suite.repository.Update(ctx, joao)

		suite.Require().ErrorIs(err, customer.ErrEmailIsAlreadyRegistered)
		got, getErr := suite.repository.Get(ctx, joao.ID())
		suite.Require().NoError(getErr)
		suite.Equal("joao@example.com", got.Email())
	})

	suite.Run("reports an unknown customer", func() {
		err := suite.repository.Update(ctx, suite.newCustomer("ana@example.com"))

		suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	})
}

func TestCustomerRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerRepositoryIntegrationTestSuite))
}
