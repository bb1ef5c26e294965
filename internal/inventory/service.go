package inventory

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/osse101/Stockpile_Go/internal/customid"
	"github.com/osse101/Stockpile_Go/internal/domain"
	"github.com/osse101/Stockpile_Go/internal/event"
	"github.com/osse101/Stockpile_Go/internal/logger"
	"github.com/osse101/Stockpile_Go/internal/repository"
)

// Service manages inventories and their custom ID templates
type Service interface {
	CreateInventory(ctx context.Context, input CreateInventoryInput) (*domain.Inventory, error)
	GetInventory(ctx context.Context, inventoryID string) (*domain.Inventory, error)
	ListInventories(ctx context.Context) ([]domain.Inventory, error)
	UpdateIDFormat(ctx context.Context, inventoryID string, segments []domain.IDSegment) (*domain.Inventory, error)
	AddField(ctx context.Context, inventoryID string, field FieldInput) (*domain.FieldDefinition, error)
}

// CreateInventoryInput holds a new inventory.
// An empty IDFormat means domain.DefaultIDFormat.
type CreateInventoryInput struct {
	Title    string
	IDFormat domain.IDFormat
	Fields   []FieldInput
}

// FieldInput describes a custom field to add
type FieldInput struct {
	Title string           `json:"title"`
	Type  domain.FieldType `json:"type"`
}

type service struct {
	repo      repository.Inventory
	publisher event.Publisher
}

// NewService creates a new inventory service; publisher may be nil
func NewService(repo repository.Inventory, publisher event.Publisher) Service {
	return &service{repo: repo, publisher: publisher}
}

func (s *service) CreateInventory(ctx context.Context, input CreateInventoryInput) (*domain.Inventory, error) {
	title := strings.TrimSpace(input.Title)
	if err := checkTitle(title); err != nil {
		return nil, err
	}

	format := input.IDFormat
	if len(format) == 0 {
		format = domain.DefaultIDFormat()
	}
	if err := customid.CheckFormat(format); err != nil {
		return nil, err
	}

	fields, err := buildFields(nil, input.Fields)
	if err != nil {
		return nil, err
	}

	inv := &domain.Inventory{Title: title, IDFormat: format, Fields: fields}
	if err := s.repo.CreateInventory(ctx, inv); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgInventoryCreated, "inventory_id", inv.ID, "title", inv.Title)
	return inv, nil
}

func (s *service) GetInventory(ctx context.Context, inventoryID string) (*domain.Inventory, error) {
	return s.repo.GetInventory(ctx, inventoryID)
}

func (s *service) ListInventories(ctx context.Context) ([]domain.Inventory, error) {
	return s.repo.ListInventories(ctx)
}

// UpdateIDFormat replaces the template used for items created from now on.
// Custom IDs of existing items are never rewritten.
func (s *service) UpdateIDFormat(ctx context.Context, inventoryID string, segments []domain.IDSegment) (*domain.Inventory, error) {
	if err := customid.CheckFormat(segments); err != nil {
		return nil, err
	}

	format := domain.IDFormat(segments)
	if err := s.repo.UpdateIDFormat(ctx, inventoryID, format); err != nil {
		return nil, err
	}

	inv, err := s.repo.GetInventory(ctx, inventoryID)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgIDFormatUpdated, "inventory_id", inventoryID, "segments", len(format))
	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewIDFormatChangedEvent(inventoryID, len(format), format.SequenceCount() > 0))
	}
	return inv, nil
}

func (s *service) AddField(ctx context.Context, inventoryID string, input FieldInput) (*domain.FieldDefinition, error) {
	inv, err := s.repo.GetInventory(ctx, inventoryID)
	if err != nil {
		return nil, err
	}

	fields, err := buildFields(inv.Fields, []FieldInput{input})
	if err != nil {
		return nil, err
	}
	field := fields[0]

	if err := s.repo.AddField(ctx, inventoryID, &field); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgFieldAdded, "inventory_id", inventoryID, "field_id", field.ID, "title", field.Title)
	return &field, nil
}

func checkTitle(title string) error {
	if title == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgTitleRequired)
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgTitleTooLong)
	}
	return nil
}

// buildFields validates inputs against the fields an inventory already has
// and positions them after those
func buildFields(existing []domain.FieldDefinition, inputs []FieldInput) ([]domain.FieldDefinition, error) {
	seen := make(map[string]bool, len(existing)+len(inputs))
	for _, f := range existing {
		seen[strings.ToLower(f.Title)] = true
	}

	fields := make([]domain.FieldDefinition, 0, len(inputs))
	for i, in := range inputs {
		title := strings.TrimSpace(in.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgFieldTitleRequired)
		}
		if utf8.RuneCountInString(title) > MaxFieldTitleLength {
			return nil, fmt.Errorf(ErrFmtFieldTitleTooLong, domain.ErrInvalidInput, title)
		}
		if !in.Type.IsValid() {
			return nil, fmt.Errorf(ErrFmtFieldTypeInvalid, domain.ErrInvalidInput, title, in.Type)
		}
		key := strings.ToLower(title)
		if seen[key] {
			return nil, fmt.Errorf(ErrFmtFieldDuplicate, domain.ErrInvalidInput, title)
		}
		seen[key] = true

		fields = append(fields, domain.FieldDefinition{
			Title:    title,
			Type:     in.Type,
			Position: len(existing) + i,
		})
	}
	return fields, nil
}
