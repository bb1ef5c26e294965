package server

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/Stockpile_Go/internal/domain"
	"github.com/osse101/Stockpile_Go/internal/item"
	"github.com/osse101/Stockpile_Go/mocks"
)

type stubPool struct{ err error }

func (p stubPool) Ping(ctx context.Context) error { return p.err }
func (p stubPool) Close() {}

const testAPIKey = "test-key"

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockItemService, *mocks.MockInventoryService) {
	itemSvc := mocks.NewMockItemService(t)
	invSvc := mocks.NewMockInventoryService(t)
	router := NewRouter(Options{APIKey: testAPIKey, Version: "test"}, stubPool{}, itemSvc, invSvc)
	return router, itemSvc, invSvc
}

func TestRouter_Routes(t *testing.T) {
	router, itemSvc, invSvc := newTestRouter(t)

	invSvc.On("ListInventories", mock.Anything).Return([]domain.Inventory{}, nil)
	invSvc.On("GetInventory", mock.Anything, "inv-1").Return(&domain.Inventory{ID: "inv-1"}, nil)
	itemSvc.On("CreateItem", mock.Anything, mock.MatchedBy(func(in item.CreateItemInput) bool {
		return in.InventoryID == "inv-1" && in.IdempotencyKey == "k1"
	})).Return(&domain.Item{ID: "item-1", CustomID: "LAP-001"}, nil)
	itemSvc.On("GetItem", mock.Anything, "item-1").Return(&domain.Item{ID: "item-1"}, nil)
	itemSvc.On("DeleteItem", mock.Anything, "item-1").Return(nil)
	itemSvc.On("PreviewID", mock.Anything, mock.Anything).Return(item.Preview{ID: "1", Pattern: "#"})

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/api/v1/inventories", "", http.StatusOK},
		{http.MethodGet, "/api/v1/inventories/inv-1", "", http.StatusOK},
		{http.MethodPost, "/api/v1/inventories/inv-1/items", `{"fields":{}}`, http.StatusCreated},
		{http.MethodGet, "/api/v1/items/item-1", "", http.StatusOK},
		{http.MethodDelete, "/api/v1/items/item-1", "", http.StatusNoContent},
		{http.MethodPost, "/api/v1/id-format/preview", `{"segments":[{"id":"s","type":"sequence"}]}`, http.StatusOK},
		{http.MethodPut, "/api/v1/items/item-1", "", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
			req.Header.Set(HeaderAPIKey, testAPIKey)
			req.Header.Set("Idempotency-Key", "k1")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestRouter_OpsEndpoints(t *testing.T) {
	router, _, _ := newTestRouter(t)

	for _, path := range []string{"/healthz", "/readyz", "/version", "/metrics"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))
		})
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/inventories", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
