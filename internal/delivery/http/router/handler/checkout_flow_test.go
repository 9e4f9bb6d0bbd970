package handler_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"shop/config"
	httpmiddleware "shop/internal/delivery/http/middleware"
	"shop/internal/delivery/http/router"
	"shop/internal/delivery/http/router/handler"
	"shop/internal/delivery/http/validator"
	"shop/internal/domain/entity"
	"shop/internal/domain/repository"
	"shop/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memCartStore is an in-memory stand-in for the redis cart store.
type memCartStore struct {
	mu    sync.Mutex
	carts map[string]map[string]entity.CartEntry
}

func newMemCartStore() *memCartStore {
	return &memCartStore{carts: make(map[string]map[string]entity.CartEntry)}
}

func (s *memCartStore) AddItem(_ context.Context, sessionID, productID string, price decimal.Decimal) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[sessionID]
	if !ok {
		cart = make(map[string]entity.CartEntry)
		s.carts[sessionID] = cart
	}

	entry, ok := cart[productID]
	if !ok {
		entry = entity.CartEntry{ProductID: productID, Price: price}
	}
	entry.Quantity++
	cart[productID] = entry

	total := 0
	for _, e := range cart {
		total += e.Quantity
	}

	return total, nil
}

func (s *memCartStore) RemoveItem(_ context.Context, sessionID, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts[sessionID], productID)

	return nil
}

func (s *memCartStore) Entries(_ context.Context, sessionID string) ([]entity.CartEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]entity.CartEntry, 0, len(s.carts[sessionID]))
	for _, entry := range s.carts[sessionID] {
		entries = append(entries, entry)
	}

	return entries, nil
}

func (s *memCartStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)

	return nil
}

// memProductRepo serves a fixed catalog.
type memProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func (r *memProductRepo) CreateProduct(_ context.Context, product *entity.Product) error {
	r.products[product.ID] = product

	return nil
}

func (r *memProductRepo) FindProductByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}

	return product, nil
}

func (r *memProductRepo) FindVisibleProducts(_ context.Context, _, _ int) ([]*entity.Product, error) {
	visible := make([]*entity.Product, 0, len(r.products))
	for _, product := range r.products {
		if !product.IsDeleted {
			visible = append(visible, product)
		}
	}

	return visible, nil
}

func (r *memProductRepo) FindVisibleProductsByCategory(_ context.Context, _ uuid.UUID) ([]*entity.Product, error) {
	return nil, nil
}

func (r *memProductRepo) FindVisibleProductsByTag(_ context.Context, _ uuid.UUID) ([]*entity.Product, error) {
	return nil, nil
}

func (r *memProductRepo) SoftDeleteProduct(_ context.Context, id uuid.UUID) error {
	product, ok := r.products[id]
	if !ok {
		return repository.ErrProductNotFound
	}
	product.IsDeleted = true

	return nil
}

// memOrderRepo enforces the unique order number constraint in memory.
type memOrderRepo struct {
	mu     sync.Mutex
	orders map[uuid.UUID]*entity.Order
	byNum  map[string]uuid.UUID
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{
		orders: make(map[uuid.UUID]*entity.Order),
		byNum:  make(map[string]uuid.UUID),
	}
}

func (r *memOrderRepo) CreateOrder(_ context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byNum[order.Number]; exists {
		return repository.ErrDuplicateOrderNumber
	}
	r.orders[order.ID] = order
	r.byNum[order.Number] = order.ID

	return nil
}

func (r *memOrderRepo) FindOrderByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}

	return order, nil
}

// memTxManager runs the callback directly against the in-memory repositories.
type memTxManager struct {
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
}

func (m *memTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m)
}

func (m *memTxManager) NewProductRepository() repository.ProductRepository {
	return m.productRepo
}

func (m *memTxManager) NewOrderRepository() repository.OrderRepository {
	return m.orderRepo
}

type checkoutEnv struct {
	echo      *echo.Echo
	cartStore *memCartStore
	orderRepo *memOrderRepo
	productA  *entity.Product
	productB  *entity.Product
}

func newCheckoutEnv(t *testing.T) *checkoutEnv {
	t.Helper()

	cfg := &config.Config{
		Cart:    &config.CartConfig{CookieName: "shop_session", TTL: 24 * time.Hour},
		Catalog: &config.CatalogConfig{PageSize: 20},
	}
	logger := slog.Default()

	productA := &entity.Product{ID: uuid.New(), Name: "Americano", Price: decimal.RequireFromString("10.00")}
	productB := &entity.Product{ID: uuid.New(), Name: "Bagel", Price: decimal.RequireFromString("5.00")}

	cartStore := newMemCartStore()
	productRepo := &memProductRepo{products: map[uuid.UUID]*entity.Product{
		productA.ID: productA,
		productB.ID: productB,
	}}
	orderRepo := newMemOrderRepo()
	txManager := &memTxManager{productRepo: productRepo, orderRepo: orderRepo}

	cartService := impl.NewCartService(cartStore, productRepo)
	orderService := impl.NewOrderService(cartStore, orderRepo, txManager, logger)
	catalogService := impl.NewCatalogService(productRepo, nil, nil, cfg)

	e := echo.New()
	e.Validator = validator.New()
	errorMiddleware := httpmiddleware.NewErrorMiddleware(logger)
	e.HTTPErrorHandler = errorMiddleware.HandleHTTPError

	r := router.NewRouter(router.RouterParams{
		CatalogHandler: handler.NewCatalogHandler(handler.CatalogHandlerParams{
			CatalogUC: catalogService,
			Logger:    logger,
		}),
		CartHandler: handler.NewCartHandler(handler.CartHandlerParams{
			CartUC: cartService,
			Logger: logger,
		}),
		OrderHandler: handler.NewOrderHandler(handler.OrderHandlerParams{
			OrderUC: orderService,
			Logger:  logger,
		}),
		SessionMiddleware: httpmiddleware.NewSessionMiddleware(httpmiddleware.SessionMiddlewareParams{
			Config: cfg,
		}),
	})
	r.RegisterRoutes(e)

	return &checkoutEnv{
		echo:      e,
		cartStore: cartStore,
		orderRepo: orderRepo,
		productA:  productA,
		productB:  productB,
	}
}

func (env *checkoutEnv) do(req *http.Request, sessionCookie *http.Cookie) (*httptest.ResponseRecorder, *http.Cookie) {
	if sessionCookie != nil {
		req.AddCookie(sessionCookie)
	}

	rec := httptest.NewRecorder()
	env.echo.ServeHTTP(rec, req)

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "shop_session" {
			return rec, cookie
		}
	}

	return rec, sessionCookie
}

func TestCheckoutFlow_CartToOrder(t *testing.T) {
	env := newCheckoutEnv(t)

	// First add mints the session cookie.
	req := httptest.NewRequest(http.MethodPost, "/cart/add/"+env.productA.ID.String(), nil)
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	rec, cookie := env.do(req, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, cookie)

	var addResp struct {
		Success   bool   `json:"success"`
		CartTotal int    `json:"cart_total"`
		Message   string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &addResp))
	assert.True(t, addResp.Success)
	assert.Equal(t, 1, addResp.CartTotal)
	assert.Contains(t, addResp.Message, "Americano")

	// Second add of the same product and one of another.
	req = httptest.NewRequest(http.MethodPost, "/cart/add/"+env.productA.ID.String(), nil)
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	rec, _ = env.do(req, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/cart/add/"+env.productB.ID.String(), nil)
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	rec, _ = env.do(req, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &addResp))
	assert.Equal(t, 3, addResp.CartTotal)

	// Cart view shows live-price totals.
	req = httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec, _ = env.do(req, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "25")

	// Submit the order form.
	form := url.Values{}
	form.Set("delivery_address", "台北市信義區市府路45號")
	form.Set("customer_phone", "0912345678")
	form.Set("customer_name", "王小明")
	req = httptest.NewRequest(http.MethodPost, "/order/create", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec, _ = env.do(req, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)

	var createResp struct {
		Success bool `json:"success"`
		Data    struct {
			ID     uuid.UUID `json:"id"`
			Number string    `json:"number"`
			Items  []struct {
				ProductID uuid.UUID `json:"product_id"`
				Quantity  int       `json:"quantity"`
			} `json:"items"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &createResp))
	assert.True(t, createResp.Success)
	assert.Regexp(t, `^ORD-\d{8}-\d{6}$`, createResp.Data.Number)

	require.Len(t, createResp.Data.Items, 2)
	quantities := map[uuid.UUID]int{}
	for _, item := range createResp.Data.Items {
		quantities[item.ProductID] = item.Quantity
	}
	assert.Equal(t, 2, quantities[env.productA.ID])
	assert.Equal(t, 1, quantities[env.productB.ID])

	// Location header points at the confirmation page.
	location := rec.Header().Get(echo.HeaderLocation)
	assert.Equal(t, "/order/success/"+createResp.Data.ID.String(), location)

	// Cart is empty after checkout.
	entries, err := env.cartStore.Entries(context.Background(), cookieSessionID(cookie))
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Confirmation page resolves the order.
	req = httptest.NewRequest(http.MethodGet, location, nil)
	rec, _ = env.do(req, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), createResp.Data.Number)
}

func TestCheckoutFlow_EmptyCartRejected(t *testing.T) {
	env := newCheckoutEnv(t)

	form := url.Values{}
	form.Set("delivery_address", "台北市信義區市府路45號")
	form.Set("customer_phone", "0912345678")
	form.Set("customer_name", "王小明")
	req := httptest.NewRequest(http.MethodPost, "/order/create", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec, _ := env.do(req, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "CART_EMPTY")
	assert.Len(t, env.orderRepo.orders, 0)
}

func TestCheckoutFlow_InvalidFormKeepsCart(t *testing.T) {
	env := newCheckoutEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/cart/add/"+env.productA.ID.String(), nil)
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	rec, cookie := env.do(req, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Missing phone and name.
	form := url.Values{}
	form.Set("delivery_address", "台北市信義區市府路45號")
	req = httptest.NewRequest(http.MethodPost, "/order/create", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec, _ = env.do(req, cookie)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, env.orderRepo.orders, 0)

	entries, err := env.cartStore.Entries(context.Background(), cookieSessionID(cookie))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCheckoutFlow_BrowserAddRedirectsBack(t *testing.T) {
	env := newCheckoutEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/cart/add/"+env.productA.ID.String(), nil)
	req.Header.Set("Referer", "/products")
	rec, _ := env.do(req, nil)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/products", rec.Header().Get(echo.HeaderLocation))
}

func cookieSessionID(cookie *http.Cookie) string {
	if cookie == nil {
		return ""
	}

	return cookie.Value
}
