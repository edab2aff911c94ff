package dashclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProductsQuerySerialization(t *testing.T) {
	var gotQuery map[string][]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/products", r.URL.Path)
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode(map[string]any{
			"success":    true,
			"data":       []Product{{ID: "p1", Name: "Lamp"}},
			"pagination": Pagination{Page: 2, Limit: 5, Total: 12, Pages: 3},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	products, pagination, err := c.ListProducts(context.Background(), ProductListOptions{
		ListOptions: ListOptions{Page: 2, Limit: 5, Search: "lamp"},
		Status:      "active",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"2"}, gotQuery["page"])
	assert.Equal(t, []string{"5"}, gotQuery["limit"])
	assert.Equal(t, []string{"lamp"}, gotQuery["search"])
	assert.Equal(t, []string{"active"}, gotQuery["status"])
	assert.NotContains(t, gotQuery, "sortBy", "zero-valued params are omitted")
	assert.NotContains(t, gotQuery, "sortOrder")
	assert.NotContains(t, gotQuery, "category_id")

	require.Len(t, products, 1)
	assert.Equal(t, "Lamp", products[0].Name)
	require.NotNil(t, pagination)
	assert.Equal(t, 3, pagination.Pages)
}

func TestDefaultOptionsSendNoQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": []Category{}})
	}))
	defer srv.Close()

	_, _, err := New(srv.URL).ListCategories(context.Background(), ListOptions{})
	require.NoError(t, err)
}

func TestErrorCarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "category not found"})
	}))
	defer srv.Close()

	_, err := New(srv.URL).GetCategory(context.Background(), "missing")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "category not found", apiErr.Error())
}

func TestErrorWithoutBodyFallsBackToStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Stats(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "unexpected status 502", apiErr.Error())
}

func TestLoginStoresToken(t *testing.T) {
	var sawAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			require.Equal(t, http.MethodPost, r.Method)

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "admin@example.com", body["email"])

			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data":    LoginResult{Token: "jwt-token", Staff: Staff{Email: "admin@example.com"}},
			})
		case "/api/auth/me":
			sawAuth = r.Header.Get("Authorization")
			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data":    map[string]any{"staff": Staff{Email: "admin@example.com"}},
			})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	result, err := c.Login(context.Background(), "admin@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", result.Token)

	me, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", me.Email)
	assert.Equal(t, "Bearer jwt-token", sawAuth, "subsequent calls carry the login token")
}

func TestCreateOrderPostsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/orders", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body CreateOrderParams
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Ada", body.CustomerName)
		require.Len(t, body.Items, 1)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    Order{ID: "o1", Number: "ORD-AAAA1111", Status: "pending"},
		})
	}))
	defer srv.Close()

	o, err := New(srv.URL).CreateOrder(context.Background(), CreateOrderParams{
		CustomerName:  "Ada",
		CustomerEmail: "ada@example.com",
		Items:         []CreateOrderItemParams{{ProductID: "p1", Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, "ORD-AAAA1111", o.Number)
}

func TestUpdateOrderStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/api/orders/o1/status", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "paid", body["status"])

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    Order{ID: "o1", Status: "paid"},
		})
	}))
	defer srv.Close()

	o, err := New(srv.URL).UpdateOrderStatus(context.Background(), "o1", "paid")
	require.NoError(t, err)
	assert.Equal(t, "paid", o.Status)
}
