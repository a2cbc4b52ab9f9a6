package delivery_test

import (
	"testing"

	"distributor/internal/core/domain/model/delivery"
	"distributor/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		code string
		want delivery.Status
	}{
		{"PENDING", delivery.Pending},
		{"in_transit", delivery.InTransit},
		{"DELIVERED", delivery.Delivered},
		{" CANCELLED ", delivery.Cancelled},
		{"PENDENTE", delivery.Pending},
		{"EM_TRANSITO", delivery.InTransit},
		{"entregue", delivery.Delivered},
		{"CANCELADA", delivery.Cancelled},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := delivery.ParseStatus(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown code", func(t *testing.T) {
		got, err := delivery.ParseStatus("UNKNOWN")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, delivery.Unknown, got)
	})
}

func TestStatus_Label(t *testing.T) {
	assert.Equal(t, "Pendente", delivery.Pending.Label())
	assert.Equal(t, "Em Trânsito", delivery.InTransit.Label())
	assert.Equal(t, "Entregue", delivery.Delivered.Label())
	assert.Equal(t, "Cancelada", delivery.Cancelled.Label())
	assert.Equal(t, "-", delivery.Unknown.Label())
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range delivery.Statuses() {
		require.NoError(t, s.Validate(), s.String())
	}
	require.ErrorIs(t, delivery.Unknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, delivery.Status(42).Validate(), errs.ErrValueIsInvalid)
	assert.Equal(t, "UNKNOWN", delivery.Status(42).String())
}

func TestStatus_IsOpen(t *testing.T) {
	assert.True(t, delivery.Pending.IsOpen())
	assert.True(t, delivery.InTransit.IsOpen())
	assert.False(t, delivery.Delivered.IsOpen())
	assert.False(t, delivery.Cancelled.IsOpen())
}
