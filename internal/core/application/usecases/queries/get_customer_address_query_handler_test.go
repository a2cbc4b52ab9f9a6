package queries_test

import (
	"context"

	"distributor/internal/core/application/usecases/queries"
	"distributor/internal/core/domain/model/kernel"
)

func (suite *QueryHandlersTestSuite) TestGetCustomerAddress() {
	handler := queries.NewGetCustomerAddressQueryHandler(suite.database.DB)

	suite.Run("known customer", func() {
		query, err := queries.NewGetCustomerAddressQuery(suite.joao.ID())
		suite.Require().NoError(err)

		resp, err := handler.Handle(context.Background(), query)

		suite.Require().NoError(err)
		suite.Equal("Av. Brasil, 500", resp.Address)
	})

	suite.Run("unknown customer yields empty address", func() {
		query, err := queries.NewGetCustomerAddressQuery(kernel.NewUUID())
		suite.Require().NoError(err)

		resp, err := handler.Handle(context.Background(), query)

		suite.Require().NoError(err)
		suite.Empty(resp.Address)
	})

	suite.Run("rejects zero query", func() {
		_, err := handler.Handle(context.Background(), queries.GetCustomerAddressQuery{})

		suite.Require().ErrorIs(err, queries.ErrGetCustomerAddressQueryIsNotConstructed)
	})
}
