package queries_test

import (
	"context"

	"distributor/internal/core/application/usecases/queries"
	"distributor/internal/core/domain/model/delivery"
)

func (suite *QueryHandlersTestSuite) TestListDeliveries() {
	ctx := context.Background()
	handler := queries.NewListDeliveriesQueryHandler(suite.database.DB)

	suite.Run("newest first with payment columns", func() {
		query, err := queries.NewListDeliveriesQuery(nil)
		suite.Require().NoError(err)

		rows, err := handler.Handle(ctx, query)

		suite.Require().NoError(err)
		suite.Require().Len(rows, 2)

		pending := rows[0]
		suite.Equal(suite.pending.ID(), pending.ID)
		suite.Equal("João Souza", pending.CustomerName)
		suite.Equal("-", pending.DriverName)
		suite.Equal("Gás P13", pending.Products)
		suite.Equal("1", pending.Quantities)
		suite.Equal("-", pending.PaymentAmount)
		suite.Equal("-", pending.PaymentMethod)
		suite.Equal("-", pending.PaymentStatus)
		suite.Equal("PENDING", pending.StatusCode)
		suite.Equal("Pendente", pending.StatusLabel)
		suite.False(pending.Delivered)

		delivered := rows[1]
		suite.Equal(suite.delivered.ID(), delivered.ID)
		suite.Equal("Carlos Moto", delivered.DriverName)
		suite.Equal("Água Mineral 20L, Gás P13", delivered.Products)
		suite.Equal("2, 1", delivered.Quantities)
		suite.Equal("R$ 140.00", delivered.PaymentAmount)
		suite.Equal("PIX", delivered.PaymentMethod)
		suite.Equal("Pago", delivered.PaymentStatus)
		suite.Equal("Entregue", delivered.StatusLabel)
		suite.True(delivered.Delivered)
	})

	suite.Run("status filter", func() {
		status := delivery.Delivered
		query, err := queries.NewListDeliveriesQuery(&status)
		suite.Require().NoError(err)

		rows, err := handler.Handle(ctx, query)

		suite.Require().NoError(err)
		suite.Require().Len(rows, 1)
		suite.Equal(suite.delivered.ID(), rows[0].ID)
	})
}
