package queries_test

import (
	"context"
	"time"

	"distributor/internal/core/application/usecases/queries"
)

func (suite *QueryHandlersTestSuite) TestGetOverdueDeliveries() {
	handler := queries.NewGetOverdueDeliveriesQueryHandler(suite.database.DB)
	run := func(now time.Time) []queries.GetOverdueDeliveriesQueryResponse {
		query, err := queries.NewGetOverdueDeliveriesQuery(now)
		suite.Require().NoError(err)
		rows, err := handler.Handle(context.Background(), query)
		suite.Require().NoError(err)
		return rows
	}

	suite.Empty(run(suite.pending.ExpectedDeliveryAt()), "expected exactly now is not overdue")

	now := suite.pending.ExpectedDeliveryAt().Add(90 * time.Minute)
	overdue := run(now)
	suite.Require().Len(overdue, 1, "delivered deliveries are never overdue")
	suite.Equal(suite.pending.ID(), overdue[0].ID)
	suite.Equal("João Souza", overdue[0].CustomerName)
	suite.Equal("PENDING", overdue[0].Status)
	suite.Equal(90*time.Minute, overdue[0].Overdue)
}
