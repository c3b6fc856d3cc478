package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shop/backend/internal/domain/partner"
	"github.com/shop/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCustomerHandler_Create(t *testing.T) {
	t.Run("creates customer and returns the stored record", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*partner.Customer")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*partner.Customer).ID = 1
			}).
			Return(nil)

		w := serve(t, NewCustomerHandler(repo), http.MethodPost, "/api/customers",
			`{"name":"Ann","email":"ann@x.com","phone":"555","address":"1 St"}`)

		assert.Equal(t, http.StatusCreated, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.EqualValues(t, 1, body["customer_id"])
		assert.Equal(t, "Ann", body["name"])
		assert.Equal(t, "ann@x.com", body["email"])
		repo.AssertExpectations(t)
	})

	t.Run("missing required field returns 400", func(t *testing.T) {
		repo := new(MockCustomerRepository)

		w := serve(t, NewCustomerHandler(repo), http.MethodPost, "/api/customers",
			`{"name":"Ann","email":"ann@x.com"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Contains(t, body, "error")
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("invalid email returns 400", func(t *testing.T) {
		repo := new(MockCustomerRepository)

		w := serve(t, NewCustomerHandler(repo), http.MethodPost, "/api/customers",
			`{"name":"Ann","email":"not-an-email","phone":"555","address":"1 St"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("duplicate email returns 400", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		repo.On("Create", mock.Anything, mock.Anything).Return(shared.ErrAlreadyExists)

		w := serve(t, NewCustomerHandler(repo), http.MethodPost, "/api/customers",
			`{"name":"Ann","email":"ann@x.com","phone":"555","address":"1 St"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCustomerHandler_List(t *testing.T) {
	t.Run("returns all customers", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		repo.On("FindAll", mock.Anything).Return([]partner.Customer{
			{ID: 1, Name: "Ann", Email: "ann@x.com", Phone: "555", Address: "1 St"},
			{ID: 2, Name: "Bob", Email: "bob@x.com", Phone: "556", Address: "2 St"},
		}, nil)

		w := serve(t, NewCustomerHandler(repo), http.MethodGet, "/api/customers", "")

		assert.Equal(t, http.StatusOK, w.Code)

		var body []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body, 2)
	})

	t.Run("storage failure returns 500 with generic message", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		repo.On("FindAll", mock.Anything).Return(nil, assert.AnError)

		w := serve(t, NewCustomerHandler(repo), http.MethodGet, "/api/customers", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
	})
}

func TestCustomerHandler_GetByID(t *testing.T) {
	t.Run("returns the record", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		repo.On("FindByID", mock.Anything, uint(1)).Return(
			&partner.Customer{ID: 1, Name: "Ann", Email: "ann@x.com", Phone: "555", Address: "1 St"}, nil)

		w := serve(t, NewCustomerHandler(repo), http.MethodGet, "/api/customers/1", "")

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.EqualValues(t, 1, body["customer_id"])
	})

	t.Run("missing record returns 404", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		repo.On("FindByID", mock.Anything, uint(42)).Return(nil, shared.ErrNotFound)

		w := serve(t, NewCustomerHandler(repo), http.MethodGet, "/api/customers/42", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric id returns 400", func(t *testing.T) {
		repo := new(MockCustomerRepository)

		w := serve(t, NewCustomerHandler(repo), http.MethodGet, "/api/customers/abc", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		repo.AssertNotCalled(t, "FindByID")
	})
}

func TestCustomerHandler_Update(t *testing.T) {
	t.Run("passes only supplied fields to storage", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		repo.On("Update", mock.Anything, uint(1), map[string]any{"phone": "557"}).Return(
			&partner.Customer{ID: 1, Name: "Ann", Email: "ann@x.com", Phone: "557", Address: "1 St"}, nil)

		w := serve(t, NewCustomerHandler(repo), http.MethodPut, "/api/customers/1",
			`{"phone":"557"}`)

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "557", body["phone"])
		repo.AssertExpectations(t)
	})

	t.Run("missing record returns 404", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		repo.On("Update", mock.Anything, uint(42), mock.Anything).Return(nil, shared.ErrNotFound)

		w := serve(t, NewCustomerHandler(repo), http.MethodPut, "/api/customers/42",
			`{"phone":"557"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCustomerHandler_Delete(t *testing.T) {
	t.Run("returns 204 with empty body", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		repo.On("Delete", mock.Anything, uint(1)).Return(nil)

		w := serve(t, NewCustomerHandler(repo), http.MethodDelete, "/api/customers/1", "")

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("missing record returns 404", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		repo.On("Delete", mock.Anything, uint(42)).Return(shared.ErrNotFound)

		w := serve(t, NewCustomerHandler(repo), http.MethodDelete, "/api/customers/42", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
