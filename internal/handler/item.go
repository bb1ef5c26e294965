package handler

import (
	"net/http"

	"github.com/osse101/Stockpile_Go/internal/domain"
	"github.com/osse101/Stockpile_Go/internal/item"
)

// ItemHandler handles item lifecycle endpoints
type ItemHandler struct {
	service item.Service
}

// NewItemHandler creates a new item handler
func NewItemHandler(service item.Service) *ItemHandler {
	return &ItemHandler{service: service}
}

// CreateItemRequest is the request body for creating an item.
// Fields is keyed by field definition ID.
type CreateItemRequest struct {
	Fields    map[int]string `json:"fields"`
	CreatedBy string         `json:"created_by" validate:"max=100,excludesall=\x00\n\r\t"`
}

// UpdateItemRequest is the request body for editing an item.
// Omitting custom_id keeps the current one.
type UpdateItemRequest struct {
	Version  int            `json:"version" validate:"required,min=1"`
	Fields   map[int]string `json:"fields"`
	CustomID *string        `json:"custom_id,omitempty" validate:"omitempty,max=255"`
}

// ValidateCustomIDRequest is the request body for a custom ID pre-check
type ValidateCustomIDRequest struct {
	CustomID string `json:"custom_id" validate:"required,max=255"`
	ItemID   string `json:"item_id,omitempty" validate:"omitempty,uuid"`
}

// PreviewIDRequest is the request body for previewing an ID format
type PreviewIDRequest struct {
	Segments []domain.IDSegment `json:"segments" validate:"required,min=1,max=20"`
}

// HandleCreate creates an item with a generated custom ID
// @Summary Create item
// @Description Create an item; its custom ID is generated from the inventory's ID format
// @Tags items
// @Accept json
// @Produce json
// @Param inventoryID path string true "Inventory ID"
// @Param Idempotency-Key header string false "Replays return the item created by the first request"
// @Param request body CreateItemRequest true "Field values"
// @Success 201 {object} domain.Item
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "retryable sequence conflict or request in progress"
// @Failure 500 {object} ErrorResponse
// @Router /inventories/{inventoryID}/items [post]
func (h *ItemHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	inventoryID, ok := GetPathParam(r, w, "inventoryID")
	if !ok {
		return
	}

	key := r.Header.Get(HeaderIdempotencyKey)
	if len(key) > MaxIdempotencyKeyLength {
		respondError(w, http.StatusBadRequest, ErrMsgIdempotencyKeyTooLong)
		return
	}

	var req CreateItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create item"); err != nil {
		return
	}

	created, err := h.service.CreateItem(r.Context(), item.CreateItemInput{
		InventoryID:    inventoryID,
		Fields:         req.Fields,
		IdempotencyKey: key,
		CreatedBy:      req.CreatedBy,
	})
	if err != nil {
		respondServiceError(w, r, "Create item", err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// HandleGet returns a single item
// @Summary Get item
// @Tags items
// @Produce json
// @Param itemID path string true "Item ID"
// @Success 200 {object} domain.Item
// @Failure 404 {object} ErrorResponse
// @Router /items/{itemID} [get]
func (h *ItemHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	itemID, ok := GetPathParam(r, w, "itemID")
	if !ok {
		return
	}

	found, err := h.service.GetItem(r.Context(), itemID)
	if err != nil {
		respondServiceError(w, r, "Get item", err)
		return
	}

	respondJSON(w, http.StatusOK, found)
}

// HandleUpdate edits field values and optionally the custom ID
// @Summary Update item
// @Description Optimistically locked by version; an edited custom ID must keep the inventory's ID format
// @Tags items
// @Accept json
// @Produce json
// @Param itemID path string true "Item ID"
// @Param request body UpdateItemRequest true "Edit"
// @Success 200 {object} domain.Item
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "stale version or custom ID taken"
// @Failure 422 {object} ErrorResponse "custom ID edit rejected"
// @Router /items/{itemID} [patch]
func (h *ItemHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	itemID, ok := GetPathParam(r, w, "itemID")
	if !ok {
		return
	}

	var req UpdateItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update item"); err != nil {
		return
	}

	updated, err := h.service.UpdateItem(r.Context(), itemID, item.UpdateItemInput{
		Version:  req.Version,
		Fields:   req.Fields,
		CustomID: req.CustomID,
	})
	if err != nil {
		respondServiceError(w, r, "Update item", err)
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

// HandleDelete deletes an item. Its sequence number is never handed out again.
// @Summary Delete item
// @Tags items
// @Param itemID path string true "Item ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /items/{itemID} [delete]
func (h *ItemHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	itemID, ok := GetPathParam(r, w, "itemID")
	if !ok {
		return
	}

	if err := h.service.DeleteItem(r.Context(), itemID); err != nil {
		respondServiceError(w, r, "Delete item", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleValidateCustomID checks a candidate custom ID before it is saved
// @Summary Validate custom ID
// @Description Checks format and uniqueness; with item_id the edit rules for that item apply
// @Tags items
// @Accept json
// @Produce json
// @Param inventoryID path string true "Inventory ID"
// @Param request body ValidateCustomIDRequest true "Candidate"
// @Success 200 {object} item.ValidationResult
// @Failure 404 {object} ErrorResponse
// @Router /inventories/{inventoryID}/custom-id/validate [post]
func (h *ItemHandler) HandleValidateCustomID(w http.ResponseWriter, r *http.Request) {
	inventoryID, ok := GetPathParam(r, w, "inventoryID")
	if !ok {
		return
	}

	var req ValidateCustomIDRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Validate custom ID"); err != nil {
		return
	}

	result, err := h.service.ValidateCustomID(r.Context(), inventoryID, req.CustomID, req.ItemID)
	if err != nil {
		respondServiceError(w, r, "Validate custom ID", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandlePreview renders a sample ID for a format that is being edited
// @Summary Preview ID format
// @Description Renders the format with sequence 1; invalid segments are listed as issues
// @Tags id-format
// @Accept json
// @Produce json
// @Param request body PreviewIDRequest true "Segments"
// @Success 200 {object} item.Preview
// @Failure 400 {object} ErrorResponse
// @Router /id-format/preview [post]
func (h *ItemHandler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	var req PreviewIDRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Preview ID"); err != nil {
		return
	}

	respondJSON(w, http.StatusOK, h.service.PreviewID(r.Context(), req.Segments))
}
