package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"logisa-be/internal/address"
	"logisa-be/internal/cart"
	"logisa-be/internal/catalog"
	"logisa-be/internal/checkout"
	"logisa-be/internal/collection"
	"logisa-be/internal/delivery"
	"logisa-be/internal/order"
	"logisa-be/internal/report"
	"logisa-be/internal/shipment"
	"logisa-be/internal/store"
	"logisa-be/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) List(ctx context.Context, opts catalog.ListOptions) ([]*catalog.Material, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Material), args.Error(1)
}

func (m *MockCatalog) Get(ctx context.Context, id string) (*catalog.Material, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Material), args.Error(1)
}

func (m *MockCatalog) Groups(ctx context.Context) ([]*catalog.MaterialGroup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.MaterialGroup), args.Error(1)
}

type MockUsers struct {
	mock.Mock
}

func (m *MockUsers) Login(ctx context.Context, email, password string) (*user.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*user.User), args.String(1), args.Error(2)
}

func (m *MockUsers) Get(ctx context.Context, id string) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUsers) Company(ctx context.Context, id string) (*user.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Company), args.Error(1)
}

type MockAddresses struct {
	mock.Mock
}

func (m *MockAddresses) List(ctx context.Context) ([]*address.Address, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*address.Address), args.Error(1)
}

func (m *MockAddresses) Get(ctx context.Context, id string) (*address.Address, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*address.Address), args.Error(1)
}

func (m *MockAddresses) Create(ctx context.Context, input address.CreateAddressInput) (*address.Address, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*address.Address), args.Error(1)
}

// approvingGateway always succeeds without delay.
type approvingGateway struct{}

func (approvingGateway) Charge(ctx context.Context, userID string, amount float64) (string, error) {
	return "pay_1741600000_7", nil
}

var (
	boots     = catalog.Material{ID: "m3", Name: "Safety Boots", Price: 29.99, Quantity: 50}
	testBuyer = user.User{ID: "2", FirstName: "Jane", LastName: "Buyer", Email: "jane@acme.example", Role: user.RoleUser, CompanyID: "c1"}
	testAdmin = user.User{ID: "1", FirstName: "Alan", LastName: "Admin", Email: "alan@acme.example", Role: user.RoleAdmin, CompanyID: "c1"}
)

type testServer struct {
	router *gin.Engine
	cat    *MockCatalog
	users  *MockUsers
	orders order.Service
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	mem := store.NewMemory()
	cat := new(MockCatalog)
	users := new(MockUsers)
	addresses := new(MockAddresses)

	cartSvc := cart.NewService(mem, cat)
	orderSvc := order.NewService(order.NewRepository(mem))
	checkoutSvc := checkout.NewService(mem, cartSvc, orderSvc, cat, approvingGateway{})
	shipmentSvc := shipment.NewService(shipment.NewRepository(mem), cat)
	collectionSvc := collection.NewService(collection.NewRepository(mem))
	reportSvc := report.NewService(orderSvc, cat)

	handlers := NewHandlers(Services{
		User:       users,
		Catalog:    cat,
		Cart:       cartSvc,
		Checkout:   checkoutSvc,
		Order:      orderSvc,
		Address:    addresses,
		Shipment:   shipmentSvc,
		Collection: collectionSvc,
		Report:     reportSvc,
	})

	return &testServer{
		router: NewRouter("test", handlers),
		cat:    cat,
		users:  users,
		orders: orderSvc,
	}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func tokenFor(t *testing.T, u *user.User) string {
	t.Helper()
	token, err := user.GenerateJWT(u)
	require.NoError(t, err)
	return token
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, "GET", "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.Contains(t, w.Body.String(), "decode_failures")
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)

	t.Run("Success", func(t *testing.T) {
		s.users.On("Login", mock.Anything, "jane@acme.example", "pass123").
			Return(&testBuyer, "signed-token", nil)

		w := s.do(t, "POST", "/api/auth/login", "", gin.H{"email": "jane@acme.example", "password": "pass123"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "signed-token")
	})

	t.Run("BadCredentials", func(t *testing.T) {
		s.users.On("Login", mock.Anything, "jane@acme.example", "wrong").
			Return(nil, "", user.ErrInvalidCredentials)

		w := s.do(t, "POST", "/api/auth/login", "", gin.H{"email": "jane@acme.example", "password": "wrong"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("MissingFields", func(t *testing.T) {
		w := s.do(t, "POST", "/api/auth/login", "", gin.H{"email": "jane@acme.example"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCartRequiresAuth(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, "GET", "/api/cart", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCheckoutFlow(t *testing.T) {
	s := newTestServer(t)
	token := tokenFor(t, &testBuyer)

	s.cat.On("Get", mock.Anything, "m3").Return(&boots, nil)
	s.cat.On("Get", mock.Anything, "m8").Return(nil, catalog.ErrMaterialNotFound)

	t.Run("ReviewBeforeCartRedirects", func(t *testing.T) {
		w := s.do(t, "GET", "/api/checkout/review", token, nil)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), `"redirect":"cart"`)
	})

	t.Run("AddToCart", func(t *testing.T) {
		w := s.do(t, "POST", "/api/cart/items", token, gin.H{"material_id": "m3", "quantity": 2})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"subtotal":59.98`)
	})

	t.Run("StockExceeded", func(t *testing.T) {
		w := s.do(t, "POST", "/api/cart/items", token, gin.H{"material_id": "m3", "quantity": 100})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "in stock")
	})

	t.Run("ReviewWithoutAddressRedirects", func(t *testing.T) {
		w := s.do(t, "GET", "/api/checkout/review", token, nil)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), `"redirect":"address"`)
	})

	t.Run("SubmitAddressAndDelivery", func(t *testing.T) {
		w := s.do(t, "PUT", "/api/checkout/address", token, gin.H{
			"address_line1": "1 Market Street",
			"city":          "London",
			"postal_code":   "EC1A 1AA",
			"country":       "United Kingdom",
		})
		assert.Equal(t, http.StatusOK, w.Code)

		w = s.do(t, "PUT", "/api/cart/delivery", token, gin.H{"method": string(delivery.MethodStandard)})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("PayAndConfirm", func(t *testing.T) {
		w := s.do(t, "POST", "/api/checkout/payment", token, nil)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"payment_id":"pay_1741600000_7"`)
		assert.Contains(t, w.Body.String(), `"id":"ORD-1000"`)

		w = s.do(t, "GET", "/api/checkout/confirmation?order=ORD-1000", token, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		// cart is cleared by the confirmation
		w = s.do(t, "GET", "/api/cart", token, nil)
		assert.Contains(t, w.Body.String(), `"subtotal":0`)
	})
}

func TestAdminGuards(t *testing.T) {
	s := newTestServer(t)

	t.Run("UserForbidden", func(t *testing.T) {
		w := s.do(t, "GET", "/api/admin/orders", tokenFor(t, &testBuyer), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("AdminAllowed", func(t *testing.T) {
		w := s.do(t, "GET", "/api/admin/orders", tokenFor(t, &testAdmin), nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestAdminOrderApproval(t *testing.T) {
	s := newTestServer(t)
	adminToken := tokenFor(t, &testAdmin)

	o, err := s.orders.Create(context.Background(), order.CreateOrderParams{
		User:           &testBuyer,
		Items:          []cart.CartItem{{MaterialID: "m3", Material: boots, Quantity: 1}},
		Address:        address.Address{AddressLine1: "1 Market Street", City: "London"},
		DeliveryMethod: delivery.MethodStandard,
		Total:          34.98,
	})
	require.NoError(t, err)

	w := s.do(t, "POST", "/api/admin/orders/"+o.ID+"/approve", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"approved"`)
	assert.Contains(t, w.Body.String(), `"approved_by_id":"1"`)

	// decisions are single-shot
	w = s.do(t, "POST", "/api/admin/orders/"+o.ID+"/reject", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminShipNotifications(t *testing.T) {
	s := newTestServer(t)
	adminToken := tokenFor(t, &testAdmin)
	s.cat.On("Get", mock.Anything, "m3").Return(&boots, nil)

	w := s.do(t, "POST", "/api/admin/ship-notifications", adminToken, gin.H{
		"items": []gin.H{{
			"material_id":   "m3",
			"quantity":      6,
			"batch_number":  "B-2025-031",
			"delivery_date": "2025-03-14T00:00:00Z",
		}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"PO1234"`)

	w = s.do(t, "POST", "/api/admin/ship-notifications", adminToken, gin.H{
		"items": []gin.H{{"material_id": "m3", "quantity": 0}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrdersGroupedView(t *testing.T) {
	s := newTestServer(t)
	token := tokenFor(t, &testBuyer)

	_, err := s.orders.Create(context.Background(), order.CreateOrderParams{
		User:           &testBuyer,
		Items:          []cart.CartItem{{MaterialID: "m3", Material: boots, Quantity: 1}},
		Address:        address.Address{AddressLine1: "1 Market Street"},
		DeliveryMethod: delivery.MethodStandard,
		Total:          34.98,
	})
	require.NoError(t, err)

	w := s.do(t, "GET", "/api/orders?grouped=true", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"pending"`)
}
