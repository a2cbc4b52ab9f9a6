package queries_test

import (
	"context"

	"distributor/internal/core/application/usecases/queries"
)

func (suite *QueryHandlersTestSuite) TestListProducts() {
	ctx := context.Background()
	handler := queries.NewListProductsQueryHandler(suite.database.DB)

	rows, err := handler.Handle(ctx, queries.NewListProductsQuery("", "price"))
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	suite.Equal("Água Mineral 20L", rows[0].Name)
	suite.Equal("R$ 10.00", rows[0].PriceLabel)
	suite.Equal("Galão de água mineral de 20 litros, reto...", rows[0].DescriptionSummary)
	suite.Equal("Botijão 13kg", rows[1].DescriptionSummary)

	byPrice, err := handler.Handle(ctx, queries.NewListProductsQuery("", "-price"))
	suite.Require().NoError(err)
	suite.Equal(suite.gas.ID(), byPrice[0].ID)

	searched, err := handler.Handle(ctx, queries.NewListProductsQuery("botijão", ""))
	suite.Require().NoError(err)
	suite.Require().Len(searched, 1)
	suite.Equal("120.00", searched[0].Price.String())
}
