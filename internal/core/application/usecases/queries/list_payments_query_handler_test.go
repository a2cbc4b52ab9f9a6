package queries_test

import (
	"context"
	"time"

	"distributor/internal/core/application/usecases/queries"
	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/core/domain/model/payment"
)

func (suite *QueryHandlersTestSuite) TestListPayments() {
	ctx := context.Background()
	handler := queries.NewListPaymentsQueryHandler(suite.database.DB)
	list := func(filter queries.PaymentFilter) []queries.ListPaymentsQueryResponse {
		query, err := queries.NewListPaymentsQuery(filter)
		suite.Require().NoError(err)
		rows, err := handler.Handle(ctx, query)
		suite.Require().NoError(err)
		return rows
	}

	all := list(queries.PaymentFilter{})
	suite.Require().Len(all, 1)
	suite.Equal(suite.delivered.ID(), all[0].DeliveryID)
	suite.Equal("Maria Silva", all[0].CustomerName)
	suite.Equal("R$ 140.00", all[0].AmountLabel)
	suite.Equal("PIX", all[0].MethodLabel)
	suite.Equal("PAID", all[0].Status)

	suite.Len(list(queries.PaymentFilter{Search: "maria"}), 1)
	suite.Len(list(queries.PaymentFilter{Search: suite.delivered.ID().String()[:8]}), 1)
	suite.Empty(list(queries.PaymentFilter{Search: "joão"}))

	pending := payment.Pending
	suite.Empty(list(queries.PaymentFilter{Status: &pending}))
	paid := payment.Paid
	suite.Len(list(queries.PaymentFilter{Status: &paid}), 1)

	expected := suite.delivered.ExpectedDeliveryAt()
	before, after := expected.Add(-time.Minute), expected.Add(time.Minute)
	suite.Len(list(queries.PaymentFilter{ExpectedFrom: &before, ExpectedTo: &after}), 1)
	suite.Len(list(queries.PaymentFilter{ExpectedFrom: &expected, ExpectedTo: &expected}), 1)
	suite.Empty(list(queries.PaymentFilter{ExpectedFrom: &after}))
	suite.Empty(list(queries.PaymentFilter{ExpectedTo: &before}))

	suite.Run("unpaid payments come first", func() {
		amount, err := kernel.MoneyFromString("120.00")
		suite.Require().NoError(err)
		invoiced, err := payment.NewPayment(kernel.NewUUID(), suite.pending.ID(), amount, payment.Invoice,
			baseTime.Add(4*time.Hour))
		suite.Require().NoError(err)

		uow := suite.factory.Create()
		suite.Require().NoError(uow.Begin(ctx))
		suite.Require().NoError(uow.PaymentRepository().Add(ctx, invoiced))
		suite.Require().NoError(uow.Commit(ctx))

		rows := list(queries.PaymentFilter{})
		suite.Require().Len(rows, 2)
		suite.Equal(invoiced.ID(), rows[0].ID)
		suite.Nil(rows[0].PaidAt)
		suite.Equal(suite.paid.ID(), rows[1].ID)
	})
}
