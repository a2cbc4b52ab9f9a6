package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

type GetCustomerAddressQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomerAddressQueryHandler(db *gorm.DB) GetCustomerAddressQueryHandler {
	return GetCustomerAddressQueryHandler{db: db}
}

// Handle never reports a missing customer as an error.
func (h GetCustomerAddressQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerAddressQuery,
) (GetCustomerAddressQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCustomerAddressQueryResponse{}, err
	}

	var address string
	err := h.db.WithContext(ctx).
		Raw(`SELECT address FROM customers WHERE id = ?`, query.CustomerID().Value()).
		Row().
		Scan(&address)
	if errors.Is(err, sql.ErrNoRows) {
		return GetCustomerAddressQueryResponse{Address: ""}, nil
	}
	if err != nil {
		return GetCustomerAddressQueryResponse{}, err
	}

	return GetCustomerAddressQueryResponse{Address: address}, nil
}
