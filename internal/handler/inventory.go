package handler

import (
	"net/http"

	"github.com/osse101/Stockpile_Go/internal/domain"
	"github.com/osse101/Stockpile_Go/internal/inventory"
)

// InventoryHandler handles inventory and ID format endpoints
type InventoryHandler struct {
	service inventory.Service
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(service inventory.Service) *InventoryHandler {
	return &InventoryHandler{service: service}
}

// FieldRequest describes a custom field
type FieldRequest struct {
	Title string `json:"title" validate:"required,max=100"`
	Type  string `json:"type" validate:"required,field_type"`
}

// CreateInventoryRequest is the request body for creating an inventory.
// An empty id_format numbers items 1, 2, 3...
type CreateInventoryRequest struct {
	Title    string             `json:"title" validate:"required,max=200"`
	IDFormat []domain.IDSegment `json:"id_format"`
	Fields   []FieldRequest     `json:"fields" validate:"max=50,dive"`
}

// UpdateIDFormatRequest is the request body for saving an inventory's ID format
type UpdateIDFormatRequest struct {
	Segments []domain.IDSegment `json:"segments" validate:"required"`
}

// HandleCreate creates an inventory
// @Summary Create inventory
// @Tags inventories
// @Accept json
// @Produce json
// @Param request body CreateInventoryRequest true "Inventory"
// @Success 201 {object} domain.Inventory
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "title taken"
// @Failure 422 {object} ErrorResponse "invalid ID format"
// @Router /inventories [post]
func (h *InventoryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateInventoryRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create inventory"); err != nil {
		return
	}

	fields := make([]inventory.FieldInput, len(req.Fields))
	for i, f := range req.Fields {
		fields[i] = inventory.FieldInput{Title: f.Title, Type: domain.FieldType(f.Type)}
	}

	created, err := h.service.CreateInventory(r.Context(), inventory.CreateInventoryInput{
		Title:    req.Title,
		IDFormat: req.IDFormat,
		Fields:   fields,
	})
	if err != nil {
		respondServiceError(w, r, "Create inventory", err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// HandleList lists all inventories
// @Summary List inventories
// @Tags inventories
// @Produce json
// @Success 200 {array} domain.Inventory
// @Router /inventories [get]
func (h *InventoryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListInventories(r.Context())
	if err != nil {
		respondServiceError(w, r, "List inventories", err)
		return
	}

	respondJSON(w, http.StatusOK, list)
}

// HandleGet returns an inventory with its ID format and fields
// @Summary Get inventory
// @Tags inventories
// @Produce json
// @Param inventoryID path string true "Inventory ID"
// @Success 200 {object} domain.Inventory
// @Failure 404 {object} ErrorResponse
// @Router /inventories/{inventoryID} [get]
func (h *InventoryHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	inventoryID, ok := GetPathParam(r, w, "inventoryID")
	if !ok {
		return
	}

	inv, err := h.service.GetInventory(r.Context(), inventoryID)
	if err != nil {
		respondServiceError(w, r, "Get inventory", err)
		return
	}

	respondJSON(w, http.StatusOK, inv)
}

// HandleUpdateIDFormat saves a new ID format. Existing custom IDs are not rewritten.
// @Summary Save ID format
// @Tags id-format
// @Accept json
// @Produce json
// @Param inventoryID path string true "Inventory ID"
// @Param request body UpdateIDFormatRequest true "Segments"
// @Success 200 {object} domain.Inventory
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "per-segment issues"
// @Router /inventories/{inventoryID}/id-format [put]
func (h *InventoryHandler) HandleUpdateIDFormat(w http.ResponseWriter, r *http.Request) {
	inventoryID, ok := GetPathParam(r, w, "inventoryID")
	if !ok {
		return
	}

	var req UpdateIDFormatRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update ID format"); err != nil {
		return
	}

	inv, err := h.service.UpdateIDFormat(r.Context(), inventoryID, req.Segments)
	if err != nil {
		respondServiceError(w, r, "Update ID format", err)
		return
	}

	respondJSON(w, http.StatusOK, inv)
}

// HandleAddField appends a custom field to an inventory
// @Summary Add field
// @Tags inventories
// @Accept json
// @Produce json
// @Param inventoryID path string true "Inventory ID"
// @Param request body FieldRequest true "Field"
// @Success 201 {object} domain.FieldDefinition
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /inventories/{inventoryID}/fields [post]
func (h *InventoryHandler) HandleAddField(w http.ResponseWriter, r *http.Request) {
	inventoryID, ok := GetPathParam(r, w, "inventoryID")
	if !ok {
		return
	}

	var req FieldRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Add field"); err != nil {
		return
	}

	field, err := h.service.AddField(r.Context(), inventoryID, inventory.FieldInput{
		Title: req.Title,
		Type:  domain.FieldType(req.Type),
	})
	if err != nil {
		respondServiceError(w, r, "Add field", err)
		return
	}

	respondJSON(w, http.StatusCreated, field)
}
