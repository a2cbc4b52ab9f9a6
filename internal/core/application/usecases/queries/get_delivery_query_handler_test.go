package queries_test

import (
	"context"
	"time"

	"distributor/internal/core/application/usecases/queries"
	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/pkg/errs"
)

func (suite *QueryHandlersTestSuite) TestGetDelivery() {
	ctx := context.Background()
	handler := queries.NewGetDeliveryQueryHandler(suite.database.DB)

	suite.Run("delivered with payment", func() {
		query, err := queries.NewGetDeliveryQuery(suite.delivered.ID())
		suite.Require().NoError(err)

		resp, err := handler.Handle(ctx, query)

		suite.Require().NoError(err)
		suite.Equal("Maria Silva", resp.CustomerName)
		suite.Require().NotNil(resp.DriverID)
		suite.Equal(suite.carlos.ID(), *resp.DriverID)
		suite.Equal("DELIVERED", resp.Status)
		suite.Require().Len(resp.LineItems, 2)
		suite.Equal("20.00", resp.LineItems[0].Subtotal.String())
		suite.Equal("140.00", resp.Total.String())
		suite.Require().NotNil(resp.Payment)
		suite.Equal(suite.paid.ID(), resp.Payment.ID)
		suite.Equal("PIX", resp.Payment.Method)
		suite.Equal("Pago", resp.Payment.StatusLabel)
		suite.Require().NotNil(resp.Payment.PaidAt)
		suite.True(baseTime.Add(3 * time.Hour).Equal(*resp.Payment.PaidAt))
	})

	suite.Run("pending without payment or driver", func() {
		query, err := queries.NewGetDeliveryQuery(suite.pending.ID())
		suite.Require().NoError(err)

		resp, err := handler.Handle(ctx, query)

		suite.Require().NoError(err)
		suite.Nil(resp.DriverID)
		suite.Equal("-", resp.DriverName)
		suite.Nil(resp.Payment)
		suite.Equal("120.00", resp.Total.String())
	})

	suite.Run("unknown delivery", func() {
		query, err := queries.NewGetDeliveryQuery(kernel.NewUUID())
		suite.Require().NoError(err)

		_, err = handler.Handle(ctx, query)

		suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	})
}
