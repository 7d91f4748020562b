package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Bandhan203/Practicum-RMS-sub000/internal/api"
	"github.com/Bandhan203/Practicum-RMS-sub000/internal/domain"
	"github.com/Bandhan203/Practicum-RMS-sub000/internal/ports/mocks"
	rest "github.com/Bandhan203/Practicum-RMS-sub000/internal/transport/http"
	"github.com/golang/mock/gomock"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

// envelope — конверт ответов шлюза.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func newTestRouter(t *testing.T) (*mocks.MockMenuService, *mocks.MockOrderService, *mocks.MockSettingsStore, http.Handler) {
	t.Helper()
	ctrl := gomock.NewController(t)

	menu := mocks.NewMockMenuService(ctrl)
	orders := mocks.NewMockOrderService(ctrl)
	settings := mocks.NewMockSettingsStore(ctrl)

	h := rest.NewHandler(menu, orders, settings, noopLogger{})
	return menu, orders, settings, rest.NewRouter(h, "")
}

func doRequest(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, http.NoBody)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid json: %v, body=%s", err, w.Body.String())
	}
	return env
}

func TestListMenu_OK(t *testing.T) {
	menu, _, _, r := newTestRouter(t)

	menu.EXPECT().EnsureLoaded(gomock.Any()).Return(nil)
	menu.EXPECT().FilterByCategory("").Return([]domain.MenuItem{{ID: "1", Name: "soup"}})

	w := doRequest(r, http.MethodGet, "/api/menu", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	if !env.Success {
		t.Fatalf("want success envelope, got %s", w.Body.String())
	}
	var items []domain.MenuItem
	if err := json.Unmarshal(env.Data, &items); err != nil {
		t.Fatalf("invalid data: %v", err)
	}
	if len(items) != 1 || items[0].ID != "1" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestListMenu_SearchCombinesWithCategory(t *testing.T) {
	menu, _, _, r := newTestRouter(t)

	menu.EXPECT().EnsureLoaded(gomock.Any()).Return(nil)
	menu.EXPECT().Search("soup").Return([]domain.MenuItem{
		{ID: "1", Name: "tomato soup", Category: "main"},
		{ID: "2", Name: "soup sampler", Category: "appetizer"},
	})

	w := doRequest(r, http.MethodGet, "/api/menu?q=soup&category=main", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var items []domain.MenuItem
	env := decodeEnvelope(t, w)
	if err := json.Unmarshal(env.Data, &items); err != nil {
		t.Fatalf("invalid data: %v", err)
	}
	if len(items) != 1 || items[0].ID != "1" {
		t.Fatalf("category filter not applied to search results: %+v", items)
	}
}

func TestListMenu_AvailableOnly(t *testing.T) {
	menu, _, _, r := newTestRouter(t)

	menu.EXPECT().EnsureLoaded(gomock.Any()).Return(nil)
	menu.EXPECT().FilterByCategory("").Return([]domain.MenuItem{
		{ID: "1", Available: true},
		{ID: "2", Available: false},
	})

	w := doRequest(r, http.MethodGet, "/api/menu?available=true", "")
	var items []domain.MenuItem
	env := decodeEnvelope(t, w)
	if err := json.Unmarshal(env.Data, &items); err != nil {
		t.Fatalf("invalid data: %v", err)
	}
	if len(items) != 1 || items[0].ID != "1" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestListMenu_LoadFailureMapsUpstreamStatus(t *testing.T) {
	menu, _, _, r := newTestRouter(t)

	menu.EXPECT().EnsureLoaded(gomock.Any()).
		Return(&api.APIError{StatusCode: http.StatusServiceUnavailable, Message: "maintenance"})

	w := doRequest(r, http.MethodGet, "/api/menu", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("want 503, got %d, body=%s", w.Code, w.Body.String())
	}
	if env := decodeEnvelope(t, w); env.Success || env.Message != "maintenance" {
		t.Fatalf("unexpected envelope: %s", w.Body.String())
	}
}

func TestListMenu_TransportFailureIs502(t *testing.T) {
	menu, _, _, r := newTestRouter(t)

	menu.EXPECT().EnsureLoaded(gomock.Any()).Return(errors.New("request failed: dial tcp"))

	w := doRequest(r, http.MethodGet, "/api/menu", "")
	if w.Code != http.StatusBadGateway {
		t.Fatalf("want 502, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestCreateMenuItem_Created(t *testing.T) {
	menu, _, _, r := newTestRouter(t)

	menu.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(domain.MenuItem{ID: "7", Name: "cake"}, nil)

	w := doRequest(r, http.MethodPost, "/api/menu", `{"name":"cake","price":5}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("want 201, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestCreateMenuItem_InvalidBody(t *testing.T) {
	_, _, _, r := newTestRouter(t)

	w := doRequest(r, http.MethodPost, "/api/menu", `{not json`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestListOrders_Paging(t *testing.T) {
	_, orders, _, r := newTestRouter(t)

	orders.EXPECT().EnsureLoaded(gomock.Any()).Return(nil)
	orders.EXPECT().ByStatus("").Return([]domain.Order{{ID: "1"}, {ID: "2"}, {ID: "3"}})

	w := doRequest(r, http.MethodGet, "/api/orders?limit=2&offset=1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var page struct {
		Orders []domain.Order `json:"orders"`
		Total  int            `json:"total"`
	}
	env := decodeEnvelope(t, w)
	if err := json.Unmarshal(env.Data, &page); err != nil {
		t.Fatalf("invalid data: %v", err)
	}
	if page.Total != 3 || len(page.Orders) != 2 || page.Orders[0].ID != "2" {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestGetOrder_NotFound(t *testing.T) {
	_, orders, _, r := newTestRouter(t)

	orders.EXPECT().EnsureLoaded(gomock.Any()).Return(nil)
	orders.EXPECT().GetByID("missing").Return(domain.Order{}, false)

	w := doRequest(r, http.MethodGet, "/api/orders/missing", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestChangeOrderStatus_OK(t *testing.T) {
	_, orders, _, r := newTestRouter(t)

	orders.EXPECT().GetByID("1").Return(domain.Order{ID: "1", Status: domain.StatusPending}, true)
	orders.EXPECT().ChangeStatus(gomock.Any(), "1", domain.StatusPreparing).
		Return(domain.Order{ID: "1", Status: domain.StatusPreparing}, nil)

	w := doRequest(r, http.MethodPatch, "/api/orders/1/status", `{"status":"preparing"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestChangeOrderStatus_UnknownStatus(t *testing.T) {
	_, _, _, r := newTestRouter(t)

	w := doRequest(r, http.MethodPatch, "/api/orders/1/status", `{"status":"vaporized"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestChangeOrderStatus_MissingStatus(t *testing.T) {
	_, _, _, r := newTestRouter(t)

	w := doRequest(r, http.MethodPatch, "/api/orders/1/status", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestChangeOrderStatus_IllegalTransition(t *testing.T) {
	_, orders, _, r := newTestRouter(t)

	// заказ в терминальном статусе — переход запрещён, сеть не трогаем
	orders.EXPECT().GetByID("1").Return(domain.Order{ID: "1", Status: domain.StatusCompleted}, true)

	w := doRequest(r, http.MethodPatch, "/api/orders/1/status", `{"status":"preparing"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("want 422, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestChangeOrderStatus_UnknownLocalIDStillProxied(t *testing.T) {
	_, orders, _, r := newTestRouter(t)

	// локально заказа нет — решение за сервером
	orders.EXPECT().GetByID("remote-only").Return(domain.Order{}, false)
	orders.EXPECT().ChangeStatus(gomock.Any(), "remote-only", domain.StatusReady).
		Return(domain.Order{ID: "remote-only", Status: domain.StatusReady}, nil)

	w := doRequest(r, http.MethodPatch, "/api/orders/remote-only/status", `{"status":"ready"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestDeleteOrder_UpstreamErrorMapped(t *testing.T) {
	_, orders, _, r := newTestRouter(t)

	orders.EXPECT().Delete(gomock.Any(), "1").
		Return(&api.APIError{StatusCode: http.StatusForbidden, Message: "not allowed"})

	w := doRequest(r, http.MethodDelete, "/api/orders/1", "")
	if w.Code != http.StatusForbidden {
		t.Fatalf("want 403, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestSettings_GetAndPut(t *testing.T) {
	_, _, settings, r := newTestRouter(t)

	settings.EXPECT().EnsureLoaded(gomock.Any()).Return(nil)
	settings.EXPECT().Current().Return(domain.Settings{RestaurantName: "Bistro"})

	w := doRequest(r, http.MethodGet, "/api/settings", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}

	settings.EXPECT().Save(gomock.Any(), domain.Settings{RestaurantName: "Bistro 2", Currency: "USD"}).
		Return(domain.Settings{RestaurantName: "Bistro 2", Currency: "USD"}, nil)

	w = doRequest(r, http.MethodPut, "/api/settings", `{"restaurantName":"Bistro 2","currency":"USD"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestHealthz_200(t *testing.T) {
	_, _, _, r := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/healthz", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
}

func TestMetrics_200(t *testing.T) {
	_, _, _, r := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/metrics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	// Содержимое может меняться — достаточно проверить, что не пусто.
	if w.Body.Len() == 0 {
		t.Fatal("metrics body is empty")
	}
}
