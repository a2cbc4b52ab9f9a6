package queries_test

import (
	"context"
	"time"

	"distributor/internal/core/application/usecases/queries"
)

func (suite *QueryHandlersTestSuite) listCustomers(filter queries.CustomerFilter) []queries.ListCustomersQueryResponse {
	query, err := queries.NewListCustomersQuery(filter)
	suite.Require().NoError(err)

	rows, err := queries.NewListCustomersQueryHandler(suite.database.DB).Handle(context.Background(), query)
	suite.Require().NoError(err)
	return rows
}

func (suite *QueryHandlersTestSuite) TestListCustomers() {
	suite.Run("ordered by name with address summary", func() {
		rows := suite.listCustomers(queries.CustomerFilter{})

		suite.Require().Len(rows, 3)
		suite.Equal([]string{"Ana Lima", "João Souza", "Maria Silva"},
			[]string{rows[0].Name, rows[1].Name, rows[2].Name})
		suite.Equal("Rua das Flores, 123 - Centro, São Paulo ...", rows[2].AddressSummary)
		suite.Equal("Av. Brasil, 500", rows[1].AddressSummary)
	})

	suite.Run("search matches email and address case-insensitively", func() {
		byEmail := suite.listCustomers(queries.CustomerFilter{Search: "JOAO@"})
		suite.Require().Len(byEmail, 1)
		suite.Equal(suite.joao.ID(), byEmail[0].ID)

		byAddress := suite.listCustomers(queries.CustomerFilter{Search: "augusta"})
		suite.Require().Len(byAddress, 1)
		suite.Equal(suite.ana.ID(), byAddress[0].ID)
	})

	suite.Run("wildcards in search are literal", func() {
		suite.Empty(suite.listCustomers(queries.CustomerFilter{Search: "%"}))
	})

	suite.Run("descending registration order", func() {
		rows := suite.listCustomers(queries.CustomerFilter{Sort: "-registered_at"})

		suite.Require().Len(rows, 3)
		suite.Equal(suite.ana.ID(), rows[0].ID)
		suite.Equal(suite.maria.ID(), rows[2].ID)
	})

	suite.Run("unknown sort key falls back to name", func() {
		rows := suite.listCustomers(queries.CustomerFilter{Sort: "phone; DROP TABLE customers"})

		suite.Require().Len(rows, 3)
		suite.Equal("Ana Lima", rows[0].Name)
	})

	suite.Run("registration range is inclusive", func() {
		from := baseTime.Add(time.Hour)
		rows := suite.listCustomers(queries.CustomerFilter{RegisteredFrom: &from, Sort: "registered_at"})
		suite.Require().Len(rows, 2)
		suite.Equal(suite.joao.ID(), rows[0].ID)
		suite.Equal(suite.ana.ID(), rows[1].ID)

		to := baseTime.Add(time.Hour)
		rows = suite.listCustomers(queries.CustomerFilter{RegisteredTo: &to, Sort: "registered_at"})
		suite.Require().Len(rows, 2)
		suite.Equal(suite.maria.ID(), rows[0].ID)
		suite.Equal(suite.joao.ID(), rows[1].ID)

		rows = suite.listCustomers(queries.CustomerFilter{RegisteredFrom: &from, RegisteredTo: &to, Search: "souza"})
		suite.Require().Len(rows, 1)
		suite.Equal(suite.joao.ID(), rows[0].ID)
	})
}
