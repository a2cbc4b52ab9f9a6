package queries_test

import (
	"context"

	"distributor/internal/core/application/usecases/queries"
)

func (suite *QueryHandlersTestSuite) TestListDrivers() {
	handler := queries.NewListDriversQueryHandler(suite.database.DB)

	all, err := handler.Handle(context.Background(), queries.NewListDriversQuery(""))
	suite.Require().NoError(err)
	suite.Require().Len(all, 1)
	suite.Equal("Moto Honda CG", all[0].Vehicle)

	byVehicle, err := handler.Handle(context.Background(), queries.NewListDriversQuery("honda"))
	suite.Require().NoError(err)
	suite.Len(byVehicle, 1)

	none, err := handler.Handle(context.Background(), queries.NewListDriversQuery("caminhão"))
	suite.Require().NoError(err)
	suite.Empty(none)
}
