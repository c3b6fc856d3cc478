package partner

import (
	"strings"
	"testing"

	"github.com/shop/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("creates customer with all required fields", func(t *testing.T) {
		c, err := NewCustomer("Ann", "ann@x.com", "555", "1 St")
		require.NoError(t, err)
		assert.Equal(t, "Ann", c.Name)
		assert.Equal(t, "ann@x.com", c.Email)
		assert.Equal(t, "555", c.Phone)
		assert.Equal(t, "1 St", c.Address)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		cases := []struct {
			name, email, phone, address string
			wantCode                    string
		}{
			{"", "a@x.com", "555", "1 St", "INVALID_NAME"},
			{"Ann", "", "555", "1 St", "INVALID_EMAIL"},
			{"Ann", "a@x.com", "", "1 St", "INVALID_PHONE"},
			{"Ann", "a@x.com", "555", "", "INVALID_ADDRESS"},
		}
		for _, tc := range cases {
			_, err := NewCustomer(tc.name, tc.email, tc.phone, tc.address)
			require.Error(t, err)
			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, tc.wantCode, domainErr.Code)
		}
	})

	t.Run("rejects phone longer than 15 characters", func(t *testing.T) {
		_, err := NewCustomer("Ann", "a@x.com", strings.Repeat("5", 16), "1 St")
		assert.Error(t, err)
	})
}

func TestNewSupplier(t *testing.T) {
	t.Run("creates supplier", func(t *testing.T) {
		s, err := NewSupplier("Acme Corp", "sales@acme.example")
		require.NoError(t, err)
		assert.Equal(t, "Acme Corp", s.Name)
		assert.Equal(t, "sales@acme.example", s.ContactInfo)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewSupplier("", "sales@acme.example")
		assert.Error(t, err)
	})

	t.Run("rejects empty contact info", func(t *testing.T) {
		_, err := NewSupplier("Acme Corp", "")
		assert.Error(t, err)
	})
}
