package kernel_test

import (
	"encoding/json"
	"testing"

	"distributor/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("should create a valid random UUID", func(t *testing.T) {
		id := kernel.NewUUID()

		require.NoError(t, id.Validate())
		assert.NotEqual(t, uuid.Nil.String(), id.String())
	})

	t.Run("should create unique UUIDs", func(t *testing.T) {
		id1 := kernel.NewUUID()
		id2 := kernel.NewUUID()

		assert.False(t, id1.IsEqual(id2))
	})
}

func TestUUIDFromString(t *testing.T) {
	canonical := "550e8400-e29b-41d4-a716-446655440000"

	t.Run("should accept supported formats", func(t *testing.T) {
		for _, input := range []string{
			canonical,
			"{550e8400-e29b-41d4-a716-446655440000}",
			"urn:uuid:550e8400-e29b-41d4-a716-446655440000",
			"550e8400e29b41d4a716446655440000",
		} {
			t.Run(input, func(t *testing.T) {
				id, err := kernel.UUIDFromString(input)

				require.NoError(t, err)
				assert.Equal(t, canonical, id.String())
			})
		}
	})

	t.Run("should reject malformed strings", func(t *testing.T) {
		for _, input := range []string{"", "not-a-uuid", "550e8400-e29b-41d4-a716", "zzze8400-e29b-41d4-a716-446655440000"} {
			t.Run(input, func(t *testing.T) {
				_, err := kernel.UUIDFromString(input)

				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid UUID format")
			})
		}
	})

	t.Run("should reject the nil UUID", func(t *testing.T) {
		_, err := kernel.UUIDFromString(uuid.Nil.String())

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestUUIDFrom(t *testing.T) {
	t.Run("should wrap a non-nil UUID", func(t *testing.T) {
		raw := uuid.New()

		id, err := kernel.UUIDFrom(raw)

		require.NoError(t, err)
		assert.Equal(t, raw, id.Value())
	})

	t.Run("should reject uuid.Nil", func(t *testing.T) {
		_, err := kernel.UUIDFrom(uuid.Nil)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestUUID_Validate(t *testing.T) {
	var zero kernel.UUID

	require.ErrorIs(t, zero.Validate(), kernel.ErrUUIDIsNotConstructed)
	require.NoError(t, kernel.NewUUID().Validate())
}

func TestUUID_Compare(t *testing.T) {
	low, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000001")
	require.NoError(t, err)
	high, err := kernel.UUIDFromString("ffffffff-0000-0000-0000-000000000000")
	require.NoError(t, err)

	assert.Negative(t, low.Compare(high))
	assert.Positive(t, high.Compare(low))
	assert.Zero(t, low.Compare(low))
}

func TestUUID_AsMapKey(t *testing.T) {
	id := kernel.NewUUID()
	copyOfID, err := kernel.UUIDFromString(id.String())
	require.NoError(t, err)

	stock := map[kernel.UUID]int{id: 5}

	assert.Equal(t, 5, stock[copyOfID])
}

func TestUUID_MarshalJSON(t *testing.T) {
	id, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
	require.NoError(t, err)

	data, err := json.Marshal(struct {
		ID kernel.UUID `json:"id"`
	}{ID: id})

	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"550e8400-e29b-41d4-a716-446655440000"}`, string(data))
}
