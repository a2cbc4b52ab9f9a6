package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"distributor/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	cause := errors.New("connection reset")

	tests := []struct {
		name     string
		err      error
		sentinel error
		want     string
	}{
		{
			name:     "object not found",
			err:      errs.NewObjectNotFoundError("delivery", "d-1"),
			sentinel: errs.ErrObjectNotFound,
			want:     "object not found: d-1",
		},
		{
			name:     "object not found with cause",
			err:      errs.NewObjectNotFoundErrorWithCause("delivery", "d-1", cause),
			sentinel: errs.ErrObjectNotFound,
			want:     "object not found: param is: delivery, ID is: d-1 (cause: connection reset)",
		},
		{
			name:     "object not found with a numeric id",
			err:      errs.NewObjectNotFoundError("line", 7),
			sentinel: errs.ErrObjectNotFound,
			want:     "object not found: %!s(int=7)",
		},
		{
			name:     "invalid value",
			err:      errs.NewValueIsInvalidError("email"),
			sentinel: errs.ErrValueIsInvalid,
			want:     "value is invalid: email",
		},
		{
			name:     "invalid value with cause",
			err:      errs.NewValueIsInvalidErrorWithCause("price", cause),
			sentinel: errs.ErrValueIsInvalid,
			want:     "value is invalid: price (cause: connection reset)",
		},
		{
			name:     "out of range",
			err:      errs.NewValueIsOutOfRangeError("quantity", 0, 1, 1000),
			sentinel: errs.ErrValueIsOutOfRange,
			want:     "value is invalid: 0 is quantity, min value is 1, max value is 1000",
		},
		{
			name:     "out of range with cause",
			err:      errs.NewValueIsOutOfRangeErrorWithCause("stock", -1, 0, 10, cause),
			sentinel: errs.ErrValueIsOutOfRange,
			want:     "value is invalid: -1 is stock, min value is 0, max value is 10 (cause: connection reset)",
		},
		{
			name:     "required value",
			err:      errs.NewValueIsRequiredError("address"),
			sentinel: errs.ErrValueIsRequired,
			want:     "value is required: address",
		},
		{
			name:     "required value with cause",
			err:      errs.NewValueIsRequiredErrorWithCause("name", cause),
			sentinel: errs.ErrValueIsRequired,
			want:     "value is required: name (cause: connection reset)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			require.ErrorIs(t, tt.err, tt.sentinel)
			assert.Equal(t, tt.sentinel, errors.Unwrap(tt.err))
		})
	}
}

func TestValueIsOutOfRangeErrorKeepsBounds(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("stock", 12, 0, 10)

	assert.Equal(t, "stock", err.ParamName)
	assert.Equal(t, 12, err.Value)
	assert.Equal(t, 0, err.Min)
	assert.Equal(t, 10, err.Max)
	assert.NoError(t, err.Cause)
}

func TestValueIsOutOfRangeErrorFlattensNewlines(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("name", "Gás\r\n13kg", 1, 255)

	assert.Contains(t, err.Error(), "Gás 13kg")
	assert.NotContains(t, err.Error(), "\n")
	assert.NotContains(t, err.Error(), "\r")
}

func TestWrappedErrorsKeepTheirType(t *testing.T) {
	wrapped := fmt.Errorf("load product: %w", errs.NewObjectNotFoundError("product", "p-42"))

	require.ErrorIs(t, wrapped, errs.ErrObjectNotFound)
	assert.NotErrorIs(t, wrapped, errs.ErrValueIsInvalid)

	var target *errs.ObjectNotFoundError
	require.ErrorAs(t, wrapped, &target)
	assert.Equal(t, "product", target.ParamName)
	assert.Equal(t, "p-42", target.ID)
}

func TestSentinelMessages(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
}
