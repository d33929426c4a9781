package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	httpadapter "hubfleet/internal/adapters/in/http"
	"hubfleet/internal/core/application/usecases/commands"
	"hubfleet/internal/core/application/usecases/queries"
	"hubfleet/internal/core/domain/model/kernel"
	"hubfleet/internal/core/domain/model/order"
	"hubfleet/internal/core/ports"
	"hubfleet/internal/generated/servers"
	"hubfleet/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryOrderStore backs the command handlers without a database so the
// adapter's status-code mapping can be exercised end to end through echo.
type memoryOrderStore struct {
	mu     sync.Mutex
	orders map[string]*order.Order
}

func newMemoryOrderStore() *memoryOrderStore {
	return &memoryOrderStore{orders: make(map[string]*order.Order)}
}

func (s *memoryOrderStore) Add(_ context.Context, aggregate *order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[aggregate.ID().String()] = aggregate
	return nil
}

func (s *memoryOrderStore) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return order.RestoreOrder(o.ID(), o.HubID(), o.CustomerID(), o.Items(), o.Total(), o.OrderDate(), o.Status())
}

func (s *memoryOrderStore) GetActiveByHub(
	_ context.Context, _ kernel.HubID, _, _ int,
) ([]*order.Order, error) {
	return []*order.Order{}, nil
}

func (s *memoryOrderStore) UpdateStatus(
	_ context.Context, id kernel.UUID, expected, next order.Status,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id.String()]
	if !ok || o.Status() != expected {
		return errs.NewConcurrentModificationError("order status", id.String())
	}
	return o.TransitionTo(next)
}

type memoryUoW struct {
	store *memoryOrderStore
}

func (u *memoryUoW) Begin(context.Context) error            { return nil }
func (u *memoryUoW) Commit(context.Context) error           { return nil }
func (u *memoryUoW) Rollback(context.Context) error         { return nil }
func (u *memoryUoW) OrderRepository() ports.OrderRepository { return u.store }

type memoryUoWFactory struct {
	store *memoryOrderStore
}

func (f *memoryUoWFactory) Create() commands.OrderUoW {
	return &memoryUoW{store: f.store}
}

func newTestApp(t *testing.T, store *memoryOrderStore) *echo.Echo {
	t.Helper()

	factory := &memoryUoWFactory{store: store}
	server := httpadapter.NewServer(
		commands.NewCreateOrderCommandHandler(factory),
		commands.NewTransitionOrderCommandHandler(factory),
		queries.GetActiveOrdersQueryHandler{},
		queries.GetOrderByIDQueryHandler{},
	)

	e := echo.New()
	e.Use(httpadapter.HubScopeMiddleware())
	servers.RegisterHandlers(e, server)
	return e
}

func seedActiveOrder(t *testing.T, store *memoryOrderStore, hub string) *order.Order {
	t.Helper()

	hubID, err := kernel.NewHubID(hub)
	require.NoError(t, err)

	item, err := order.NewItem(kernel.NewUUID(), "desk lamp", 1, 32000)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), hubID, kernel.NewUUID(), []order.Item{item}, time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, store.Add(context.Background(), o))
	return o
}

func patchStatus(e *echo.Echo, orderID, hub, status string) *httptest.ResponseRecorder {
	body := fmt.Sprintf(`{"status":%q}`, status)
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/orders/"+orderID+"/status", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if hub != "" {
		req.Header.Set(httpadapter.HubHeader, hub)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestUpdateOrderStatus_Success(t *testing.T) {
	store := newMemoryOrderStore()
	e := newTestApp(t, store)
	existing := seedActiveOrder(t, store, "hub_hcm")

	rec := patchStatus(e, existing.ID().String(), "hub_hcm", "delivered")

	require.Equal(t, http.StatusOK, rec.Code)

	var response servers.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, servers.Delivered, response.Status)
	assert.Equal(t, existing.ID().String(), response.Id.String())

	persisted, err := store.Get(context.Background(), existing.ID())
	require.NoError(t, err)
	assert.Equal(t, order.Delivered, persisted.Status())
}

func TestUpdateOrderStatus_UnknownOrder_Returns404(t *testing.T) {
	e := newTestApp(t, newMemoryOrderStore())

	rec := patchStatus(e, kernel.NewUUID().String(), "hub_hcm", "canceled")

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateOrderStatus_WrongHub_Returns403(t *testing.T) {
	store := newMemoryOrderStore()
	e := newTestApp(t, store)
	existing := seedActiveOrder(t, store, "hub_hn")

	rec := patchStatus(e, existing.ID().String(), "hub_hcm", "delivered")

	require.Equal(t, http.StatusForbidden, rec.Code)

	// The error body must not reveal the order's status.
	var response servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.NotContains(t, response.Message, "active")
}

func TestUpdateOrderStatus_AlreadyFinalized_Returns409(t *testing.T) {
	store := newMemoryOrderStore()
	e := newTestApp(t, store)
	existing := seedActiveOrder(t, store, "hub_hcm")

	rec := patchStatus(e, existing.ID().String(), "hub_hcm", "delivered")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = patchStatus(e, existing.ID().String(), "hub_hcm", "canceled")
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestUpdateOrderStatus_UnknownTargetStatus_Returns400(t *testing.T) {
	store := newMemoryOrderStore()
	e := newTestApp(t, store)
	existing := seedActiveOrder(t, store, "hub_hcm")

	rec := patchStatus(e, existing.ID().String(), "hub_hcm", "shipped")

	require.Equal(t, http.StatusBadRequest, rec.Code)

	// The invalid request must not have touched the order.
	persisted, err := store.Get(context.Background(), existing.ID())
	require.NoError(t, err)
	assert.Equal(t, order.Active, persisted.Status())
}

func TestUpdateOrderStatus_ActiveTarget_Returns400(t *testing.T) {
	store := newMemoryOrderStore()
	e := newTestApp(t, store)
	existing := seedActiveOrder(t, store, "hub_hcm")

	rec := patchStatus(e, existing.ID().String(), "hub_hcm", "active")

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateOrderStatus_MissingHubHeader_Returns400(t *testing.T) {
	store := newMemoryOrderStore()
	e := newTestApp(t, store)
	existing := seedActiveOrder(t, store, "hub_hcm")

	rec := patchStatus(e, existing.ID().String(), "", "delivered")

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHubScopeMiddleware_MalformedHeader_Returns400(t *testing.T) {
	e := newTestApp(t, newMemoryOrderStore())

	rec := patchStatus(e, kernel.NewUUID().String(), "  hub_hcm  ", "delivered")

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrder_Success(t *testing.T) {
	store := newMemoryOrderStore()
	e := newTestApp(t, store)

	body := fmt.Sprintf(
		`{"customerId":%q,"items":[{"productId":%q,"name":"desk lamp","quantity":2,"unitPrice":32000}]}`,
		kernel.NewUUID().String(), kernel.NewUUID().String(),
	)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(httpadapter.HubHeader, "hub_hcm")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var response servers.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, servers.Active, response.Status)
	assert.Equal(t, "hub_hcm", response.HubId)
	assert.Equal(t, int64(64000), response.Total)
}

func TestCreateOrder_EmptyItems_Returns400(t *testing.T) {
	e := newTestApp(t, newMemoryOrderStore())

	body := fmt.Sprintf(`{"customerId":%q,"items":[]}`, kernel.NewUUID().String())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(httpadapter.HubHeader, "hub_hcm")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
