package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/Stockpile_Go/internal/domain"
	"github.com/osse101/Stockpile_Go/internal/inventory"
	"github.com/osse101/Stockpile_Go/mocks"
)

func newInventoryRouter(h *InventoryHandler) chi.Router {
	r := chi.NewRouter()
	r.Post("/inventories", h.HandleCreate)
	r.Get("/inventories", h.HandleList)
	r.Get("/inventories/{inventoryID}", h.HandleGet)
	r.Put("/inventories/{inventoryID}/id-format", h.HandleUpdateIDFormat)
	r.Post("/inventories/{inventoryID}/fields", h.HandleAddField)
	return r
}

func TestInventoryHandler_HandleCreate(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*mocks.MockInventoryService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			requestBody: CreateInventoryRequest{
				Title:  "Laptops",
				Fields: []FieldRequest{{Title: "Model", Type: "text"}},
			},
			setupMock: func(m *mocks.MockInventoryService) {
				m.On("CreateInventory", mock.Anything, inventory.CreateInventoryInput{
					Title:  "Laptops",
					Fields: []inventory.FieldInput{{Title: "Model", Type: domain.FieldText}},
				}).Return(&domain.Inventory{ID: testInventoryID, Title: "Laptops"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   testInventoryID,
		},
		{
			name: "Unknown field type",
			requestBody: CreateInventoryRequest{
				Title:  "Laptops",
				Fields: []FieldRequest{{Title: "Colour", Type: "colour"}},
			},
			setupMock:      func(m *mocks.MockInventoryService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Unknown field type",
		},
		{
			name:        "Title taken",
			requestBody: CreateInventoryRequest{Title: "Laptops"},
			setupMock: func(m *mocks.MockInventoryService) {
				m.On("CreateInventory", mock.Anything, mock.Anything).
					Return(nil, domain.ErrInventoryTitleTaken)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgTitleTakenError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := mocks.NewMockInventoryService(t)
			tt.setupMock(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/inventories", jsonBody(t, tt.requestBody))
			rec := httptest.NewRecorder()
			newInventoryRouter(NewInventoryHandler(mockSvc)).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestInventoryHandler_HandleUpdateIDFormat(t *testing.T) {
	segments := []domain.IDSegment{
		{ID: "prefix", Type: domain.SegmentFixed},
		{ID: "rnd", Type: domain.SegmentRandom20Bit, Format: "X9"},
	}

	t.Run("Issues are returned per segment", func(t *testing.T) {
		mockSvc := mocks.NewMockInventoryService(t)
		mockSvc.On("UpdateIDFormat", mock.Anything, testInventoryID, segments).
			Return(nil, &domain.TemplateError{Issues: []domain.SegmentIssue{
				{Index: 0, SegmentID: "prefix", Type: domain.SegmentFixed, Message: "fixed text is required"},
				{Index: 1, SegmentID: "rnd", Type: domain.SegmentRandom20Bit, Message: "unknown format"},
			}})

		req := httptest.NewRequest(http.MethodPut, "/inventories/"+testInventoryID+"/id-format",
			jsonBody(t, UpdateIDFormatRequest{Segments: segments}))
		rec := httptest.NewRecorder()
		newInventoryRouter(NewInventoryHandler(mockSvc)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), `"segment_id":"rnd"`)
		assert.Contains(t, rec.Body.String(), ErrMsgFormatInvalidError)
	})

	t.Run("Two sequences", func(t *testing.T) {
		mockSvc := mocks.NewMockInventoryService(t)
		mockSvc.On("UpdateIDFormat", mock.Anything, testInventoryID, mock.Anything).
			Return(nil, domain.ErrMultipleSequenceSegments)

		req := httptest.NewRequest(http.MethodPut, "/inventories/"+testInventoryID+"/id-format",
			jsonBody(t, UpdateIDFormatRequest{Segments: segments}))
		rec := httptest.NewRecorder()
		newInventoryRouter(NewInventoryHandler(mockSvc)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgMultipleSequenceError)
	})
}

func TestInventoryHandler_ListGetAndAddField(t *testing.T) {
	mockSvc := mocks.NewMockInventoryService(t)
	mockSvc.On("ListInventories", mock.Anything).Return([]domain.Inventory{{ID: testInventoryID, Title: "Laptops"}}, nil)
	mockSvc.On("GetInventory", mock.Anything, "missing").Return(nil, domain.ErrInventoryNotFound)
	mockSvc.On("AddField", mock.Anything, testInventoryID, inventory.FieldInput{Title: "Manual", Type: domain.FieldLink}).
		Return(&domain.FieldDefinition{ID: 7, Title: "Manual", Type: domain.FieldLink}, nil)

	router := newInventoryRouter(NewInventoryHandler(mockSvc))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/inventories", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Laptops")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/inventories/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/inventories/"+testInventoryID+"/fields",
		jsonBody(t, FieldRequest{Title: "Manual", Type: "link"})))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":7`)
}
