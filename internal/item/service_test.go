package item

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Stockpile_Go/internal/customid"
	"github.com/osse101/Stockpile_Go/internal/domain"
	"github.com/osse101/Stockpile_Go/internal/event"
	"github.com/osse101/Stockpile_Go/internal/idempotency"
	"github.com/osse101/Stockpile_Go/internal/logger"
)

// recordingPublisher collects published events
type recordingPublisher struct {
	mu     sync.Mutex
	events []event.Event
}

func (p *recordingPublisher) PublishWithRetry(ctx context.Context, evt event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
}

func (p *recordingPublisher) Types() []event.Type {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]event.Type, 0, len(p.events))
	for _, evt := range p.events {
		types = append(types, evt.Type)
	}
	return types
}

var fixedNow = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, idem idempotency.Store) (*service, *FakeRepository, *recordingPublisher) {
	t.Helper()
	repo := NewFakeRepository()
	pub := &recordingPublisher{}
	svc := NewService(repo, pub, idem, 16).(*service)
	svc.generator = customid.Generator{
		Now:  func() time.Time { return fixedNow },
		Rand: strings.NewReader(strings.Repeat("\x01\x02\x03\x04\x05\x06\x07\x08", 64)),
	}
	return svc, repo, pub
}

// laptopFormat is "LAP-" followed by a three digit sequence
func laptopFormat() domain.IDFormat {
	return domain.IDFormat{
		{ID: "prefix", Type: domain.SegmentFixed, Value: "LAP-"},
		{ID: "seq", Type: domain.SegmentSequence, Format: "D3"},
	}
}

func seedInventory(t *testing.T, repo *FakeRepository, format domain.IDFormat) *domain.Inventory {
	t.Helper()
	inv := &domain.Inventory{
		Title:    "Laptops",
		IDFormat: format,
		Fields: []domain.FieldDefinition{
			{Title: "Model", Type: domain.FieldText, Position: 0},
			{Title: "Weight", Type: domain.FieldNumber, Position: 1},
			{Title: "In service", Type: domain.FieldBoolean, Position: 2},
			{Title: "Manual", Type: domain.FieldLink, Position: 3},
			{Title: "Notes", Type: domain.FieldMultiline, Position: 4},
		},
	}
	require.NoError(t, repo.CreateInventory(context.Background(), inv))
	return inv
}

func TestCreateItem_AllocatesSequentialIDs(t *testing.T) {
	svc, repo, pub := newTestService(t, nil)
	inv := seedInventory(t, repo, laptopFormat())
	ctx := context.Background()

	first, err := svc.CreateItem(ctx, CreateItemInput{InventoryID: inv.ID, CreatedBy: "alice"})
	require.NoError(t, err)
	assert.Equal(t, "LAP-001", first.CustomID)
	assert.Equal(t, int64(1), first.SequenceNumber)
	assert.Equal(t, domain.InitialItemVersion, first.Version)
	assert.NotEmpty(t, first.ID)

	second, err := svc.CreateItem(ctx, CreateItemInput{InventoryID: inv.ID})
	require.NoError(t, err)
	assert.Equal(t, "LAP-002", second.CustomID)
	assert.Equal(t, int64(2), second.SequenceNumber)

	assert.Equal(t, []event.Type{event.ItemCreated, event.ItemCreated}, pub.Types())
}

func TestCreateItem_EmptyFormatFallsBackToSequence(t *testing.T) {
	svc, repo, _ := newTestService(t, nil)
	inv := seedInventory(t, repo, nil)

	item, err := svc.CreateItem(context.Background(), CreateItemInput{InventoryID: inv.ID})
	require.NoError(t, err)
	assert.Equal(t, "1", item.CustomID)
}

func TestCreateItem_DateAndSequence(t *testing.T) {
	svc, repo, _ := newTestService(t, nil)
	inv := seedInventory(t, repo, domain.IDFormat{
		{Type: domain.SegmentDate, Format: "yyyy-"},
		{Type: domain.SegmentSequence, Format: "D4"},
	})

	item, err := svc.CreateItem(context.Background(), CreateItemInput{InventoryID: inv.ID})
	require.NoError(t, err)
	assert.Equal(t, "2026-0001", item.CustomID)
}

func TestCreateItem_InventoryNotFound(t *testing.T) {
	svc, _, pub := newTestService(t, nil)

	_, err := svc.CreateItem(context.Background(), CreateItemInput{InventoryID: "missing"})
	assert.ErrorIs(t, err, domain.ErrInventoryNotFound)

	_, err = svc.CreateItem(context.Background(), CreateItemInput{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, pub.Types())
}

func TestCreateItem_StoresTypedFieldValues(t *testing.T) {
	svc, repo, _ := newTestService(t, nil)
	inv := seedInventory(t, repo, laptopFormat())
	model, weight, inService, manual := inv.Fields[0].ID, inv.Fields[1].ID, inv.Fields[2].ID, inv.Fields[3].ID

	item, err := svc.CreateItem(context.Background(), CreateItemInput{
		InventoryID: inv.ID,
		Fields: map[int]string{
			model:     "ThinkPad X1",
			weight:    " 1.50 ",
			inService: "TRUE",
			manual:    "https://example.com/x1.pdf",
		},
	})
	require.NoError(t, err)

	stored, err := svc.GetItem(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, map[int]string{
		model:     "ThinkPad X1",
		weight:    "1.5",
		inService: "true",
		manual:    "https://example.com/x1.pdf",
	}, stored.Fields)
	assert.Equal(t, stored.Fields, item.Fields)
}

func TestCreateItem_RejectsInvalidFieldValues(t *testing.T) {
	svc, repo, pub := newTestService(t, nil)
	inv := seedInventory(t, repo, laptopFormat())

	tests := []struct {
		name   string
		fields map[int]string
	}{
		{"unknown field", map[int]string{9999: "x"}},
		{"not a number", map[int]string{inv.Fields[1].ID: "heavy"}},
		{"NaN", map[int]string{inv.Fields[1].ID: "NaN"}},
		{"infinite", map[int]string{inv.Fields[1].ID: "+Inf"}},
		{"not a boolean", map[int]string{inv.Fields[2].ID: "maybe"}},
		{"relative link", map[int]string{inv.Fields[3].ID: "docs/manual.pdf"}},
		{"text too long", map[int]string{inv.Fields[0].ID: strings.Repeat("x", MaxTextLength+1)}},
		{"multiline too long", map[int]string{inv.Fields[4].ID: strings.Repeat("x", MaxMultilineLength+1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateItem(context.Background(), CreateItemInput{InventoryID: inv.ID, Fields: tt.fields})
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	assert.Empty(t, repo.Items(inv.ID))
	assert.Empty(t, pub.Types())
}

func TestCreateItem_LostRaceIsRetryableSequenceConflict(t *testing.T) {
	svc, repo, pub := newTestService(t, nil)
	inv := seedInventory(t, repo, laptopFormat())
	ctx := context.Background()

	// Another request commits between our MAX read and our commit
	var raced bool
	repo.BeforeCommit = func(ctx context.Context) {
		if raced {
			return
		}
		raced = true
		_, err := svc.CreateItem(ctx, CreateItemInput{InventoryID: inv.ID})
		require.NoError(t, err)
	}

	_, err := svc.CreateItem(ctx, CreateItemInput{InventoryID: inv.ID})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSequenceConflict)
	assert.True(t, domain.IsRetryable(err))

	items := repo.Items(inv.ID)
	require.Len(t, items, 1)
	assert.Equal(t, "LAP-001", items[0].CustomID)
	assert.Equal(t, []event.Type{event.ItemCreated}, pub.Types())

	// Resubmitting the same request succeeds with the next number
	repo.BeforeCommit = nil
	item, err := svc.CreateItem(ctx, CreateItemInput{InventoryID: inv.ID})
	require.NoError(t, err)
	assert.Equal(t, "LAP-002", item.CustomID)
}

func TestCreateItem_CustomIDCollisionIsSequenceConflict(t *testing.T) {
	svc, repo, _ := newTestService(t, nil)
	inv := seedInventory(t, repo, domain.IDFormat{{Type: domain.SegmentFixed, Value: "SINGLETON"}})
	ctx := context.Background()

	_, err := svc.CreateItem(ctx, CreateItemInput{InventoryID: inv.ID})
	require.NoError(t, err)

	_, err = svc.CreateItem(ctx, CreateItemInput{InventoryID: inv.ID})
	assert.ErrorIs(t, err, domain.ErrSequenceConflict)
}

func TestCreateItem_BeginFailure(t *testing.T) {
	svc, repo, _ := newTestService(t, nil)
	inv := seedInventory(t, repo, laptopFormat())
	repo.BeginErr = errors.New("connection refused")

	_, err := svc.CreateItem(context.Background(), CreateItemInput{InventoryID: inv.ID})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgBeginTxFailed)
	assert.False(t, domain.IsRetryable(err))
}

func TestCreateItem_Idempotency(t *testing.T) {
	store := idempotency.NewMemoryStore(100, time.Hour)
	svc, repo, pub := newTestService(t, store)
	inv := seedInventory(t, repo, laptopFormat())
	ctx := context.Background()

	input := CreateItemInput{InventoryID: inv.ID, IdempotencyKey: "req-1"}
	first, err := svc.CreateItem(ctx, input)
	require.NoError(t, err)

	t.Run("replay returns the original item", func(t *testing.T) {
		replay, err := svc.CreateItem(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, first.ID, replay.ID)
		assert.Equal(t, "LAP-001", replay.CustomID)
		assert.Len(t, repo.Items(inv.ID), 1)
		assert.Equal(t, []event.Type{event.ItemCreated}, pub.Types())
	})

	t.Run("in-flight key is a duplicate request", func(t *testing.T) {
		_, err := store.Begin(ctx, inv.ID+IdempotencyKeySeparator+"req-2")
		require.NoError(t, err)

		_, err = svc.CreateItem(ctx, CreateItemInput{InventoryID: inv.ID, IdempotencyKey: "req-2"})
		assert.ErrorIs(t, err, domain.ErrDuplicateRequest)
	})

	t.Run("failed create releases the key", func(t *testing.T) {
		bad := CreateItemInput{InventoryID: inv.ID, IdempotencyKey: "req-3", Fields: map[int]string{inv.Fields[1].ID: "heavy"}}
		_, err := svc.CreateItem(ctx, bad)
		require.ErrorIs(t, err, domain.ErrInvalidInput)

		bad.Fields = nil
		item, err := svc.CreateItem(ctx, bad)
		require.NoError(t, err)
		assert.Equal(t, "LAP-002", item.CustomID)
	})

	t.Run("keys are scoped per inventory", func(t *testing.T) {
		other := &domain.Inventory{Title: "Monitors", IDFormat: laptopFormat()}
		require.NoError(t, repo.CreateInventory(ctx, other))

		item, err := svc.CreateItem(ctx, CreateItemInput{InventoryID: other.ID, IdempotencyKey: "req-1"})
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, item.ID)
	})
}

func TestUpdateItem_FieldsAndVersion(t *testing.T) {
	svc, repo, pub := newTestService(t, nil)
	inv := seedInventory(t, repo, laptopFormat())
	ctx := context.Background()
	model := inv.Fields[0].ID

	item, err := svc.CreateItem(ctx, CreateItemInput{InventoryID: inv.ID, Fields: map[int]string{model: "X1"}})
	require.NoError(t, err)

	updated, err := svc.UpdateItem(ctx, item.ID, UpdateItemInput{Version: 1, Fields: map[int]string{model: "X1 Carbon"}})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Version)
	assert.Equal(t, "X1 Carbon", updated.Fields[model])
	assert.Equal(t, "LAP-001", updated.CustomID)

	t.Run("stale version is rejected without changes", func(t *testing.T) {
		_, err := svc.UpdateItem(ctx, item.ID, UpdateItemInput{Version: 1, Fields: map[int]string{model: "lost"}})
		assert.ErrorIs(t, err, domain.ErrVersionConflict)

		stored, err := svc.GetItem(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, stored.Version)
		assert.Equal(t, "X1 Carbon", stored.Fields[model])
	})

	t.Run("empty value clears the field", func(t *testing.T) {
		cleared, err := svc.UpdateItem(ctx, item.ID, UpdateItemInput{Version: 2, Fields: map[int]string{model: ""}})
		require.NoError(t, err)
		assert.NotContains(t, cleared.Fields, model)
	})

	t.Run("version below one is invalid input", func(t *testing.T) {
		_, err := svc.UpdateItem(ctx, item.ID, UpdateItemInput{Version: 0})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("missing item", func(t *testing.T) {
		_, err := svc.UpdateItem(ctx, "missing", UpdateItemInput{Version: 1})
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})

	assert.Equal(t, []event.Type{event.ItemCreated, event.ItemUpdated, event.ItemUpdated}, pub.Types())
}

func TestUpdateItem_EditSequenceMovesCounter(t *testing.T) {
	svc, repo, pub := newTestService(t, nil)
	inv := seedInventory(t, repo, laptopFormat())
	ctx := context.Background()

	item, err := svc.CreateItem(ctx, CreateItemInput{InventoryID: inv.ID})
	require.NoError(t, err)

	edited := "LAP-999"
	updated, err := svc.UpdateItem(ctx, item.ID, UpdateItemInput{Version: 1, CustomID: &edited})
	require.NoError(t, err)
	assert.Equal(t, "LAP-999", updated.CustomID)
	assert.Equal(t, int64(999), updated.SequenceNumber)
	assert.Equal(t, 2, updated.Version)

	next, err := svc.CreateItem(ctx, CreateItemInput{InventoryID: inv.ID})
	require.NoError(t, err)
	assert.Equal(t, "LAP-1000", next.CustomID)
	assert.Equal(t, int64(1000), next.SequenceNumber)

	assert.Contains(t, pub.Types(), event.ItemCustomIDEdited)
}

func TestUpdateItem_EditWithinTemplate(t *testing.T) {
	svc, repo, _ := newTestService(t, nil)
	inv := seedInventory(t, repo, domain.IDFormat{
		{Type: domain.SegmentFixed, Value: "ITEM-"},
		{Type: domain.SegmentSequence, Format: "D3"},
	})
	ctx := context.Background()

	var item *domain.Item
	for i := 0; i < 7; i++ {
		var err error
		item, err = svc.CreateItem(ctx, CreateItemInput{InventoryID: inv.ID})
		require.NoError(t, err)
	}
	require.Equal(t, "ITEM-007", item.CustomID)

	tests := []struct {
		name    string
		edit    string
		wantErr error
		wantSeq int64
		wantID  string
	}{
		{name: "fixed part changed", edit: "ITEX-007", wantErr: domain.ErrEditRejected},
		{name: "length changed", edit: "ITEM-07", wantErr: domain.ErrEditRejected},
		{name: "letters in sequence", edit: "ITEM-0A7", wantErr: domain.ErrEditRejected},
		{name: "taken by another item", edit: "ITEM-003", wantErr: domain.ErrCustomIDConflict},
		{name: "sequence edit", edit: "ITEM-042", wantSeq: 42, wantID: "ITEM-042"},
	}
	version := item.Version
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edit := tt.edit
			got, err := svc.UpdateItem(ctx, item.ID, UpdateItemInput{Version: version, CustomID: &edit})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				stored, getErr := svc.GetItem(ctx, item.ID)
				require.NoError(t, getErr)
				assert.Equal(t, version, stored.Version)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got.CustomID)
			assert.Equal(t, tt.wantSeq, got.SequenceNumber)
			version = got.Version
		})
	}

	var rejected *domain.EditRejectedError
	edit := "ITEX-042"
	_, err := svc.UpdateItem(ctx, item.ID, UpdateItemInput{Version: version, CustomID: &edit})
	require.ErrorAs(t, err, &rejected)
	assert.NotEmpty(t, rejected.Reason)
}

func TestUpdateItem_UnchangedCustomIDIsNotAnEdit(t *testing.T) {
	svc, repo, pub := newTestService(t, nil)
	inv := seedInventory(t, repo, laptopFormat())
	ctx := context.Background()

	item, err := svc.CreateItem(ctx, CreateItemInput{InventoryID: inv.ID})
	require.NoError(t, err)

	same := item.CustomID
	updated, err := svc.UpdateItem(ctx, item.ID, UpdateItemInput{Version: 1, CustomID: &same})
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.SequenceNumber)
	assert.NotContains(t, pub.Types(), event.ItemCustomIDEdited)
}

func TestUpdateItem_ConcurrentCommitIsVersionConflict(t *testing.T) {
	svc, repo, _ := newTestService(t, nil)
	inv := seedInventory(t, repo, laptopFormat())
	ctx := context.Background()
	model := inv.Fields[0].ID

	item, err := svc.CreateItem(ctx, CreateItemInput{InventoryID: inv.ID})
	require.NoError(t, err)

	var raced bool
	repo.BeforeCommit = func(ctx context.Context) {
		if raced {
			return
		}
		raced = true
		_, err := svc.UpdateItem(ctx, item.ID, UpdateItemInput{Version: 1, Fields: map[int]string{model: "winner"}})
		require.NoError(t, err)
	}

	_, err = svc.UpdateItem(ctx, item.ID, UpdateItemInput{Version: 1, Fields: map[int]string{model: "loser"}})
	assert.ErrorIs(t, err, domain.ErrVersionConflict)

	stored, err := svc.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Version)
	assert.Equal(t, "winner", stored.Fields[model])
}

func TestDeleteItem_NeverReusesSequence(t *testing.T) {
	svc, repo, pub := newTestService(t, nil)
	inv := seedInventory(t, repo, laptopFormat())
	ctx := context.Background()

	_, err := svc.CreateItem(ctx, CreateItemInput{InventoryID: inv.ID})
	require.NoError(t, err)
	last, err := svc.CreateItem(ctx, CreateItemInput{InventoryID: inv.ID})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteItem(ctx, last.ID))
	assert.ErrorIs(t, svc.DeleteItem(ctx, last.ID), domain.ErrItemNotFound)

	_, err = svc.GetItem(ctx, last.ID)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	next, err := svc.CreateItem(ctx, CreateItemInput{InventoryID: inv.ID})
	require.NoError(t, err)
	assert.Equal(t, "LAP-003", next.CustomID)
	assert.Contains(t, pub.Types(), event.ItemDeleted)
}

func TestValidateCustomID(t *testing.T) {
	svc, repo, _ := newTestService(t, nil)
	inv := seedInventory(t, repo, laptopFormat())
	ctx := context.Background()

	first, err := svc.CreateItem(ctx, CreateItemInput{InventoryID: inv.ID})
	require.NoError(t, err)
	_, err = svc.CreateItem(ctx, CreateItemInput{InventoryID: inv.ID})
	require.NoError(t, err)

	tests := []struct {
		name      string
		candidate string
		itemID    string
		wantValid bool
		wantSeq   int64
	}{
		{name: "fits and free", candidate: "LAP-123", wantValid: true},
		{name: "wrong prefix", candidate: "PC-1234", wantValid: false},
		{name: "taken", candidate: "LAP-002", wantValid: false},
		{name: "own id", candidate: "LAP-001", itemID: first.ID, wantValid: true},
		{name: "edit of item", candidate: "LAP-050", itemID: first.ID, wantValid: true, wantSeq: 50},
		{name: "edit breaks fixed text", candidate: "LAB-001", itemID: first.ID, wantValid: false},
		{name: "edit collides", candidate: "LAP-002", itemID: first.ID, wantValid: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.ValidateCustomID(ctx, inv.ID, tt.candidate, tt.itemID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, result.Valid, result.Message)
			assert.NotEmpty(t, result.Message)
			assert.Equal(t, tt.wantSeq, result.NewSequence)
		})
	}

	_, err = svc.ValidateCustomID(ctx, "missing", "LAP-001", "")
	assert.ErrorIs(t, err, domain.ErrInventoryNotFound)
}

func TestPreviewID(t *testing.T) {
	svc, _, _ := newTestService(t, nil)
	ctx := context.Background()

	preview := svc.PreviewID(ctx, laptopFormat())
	assert.Equal(t, "LAP-001", preview.ID)
	assert.Equal(t, "LAP-###", preview.Pattern)
	assert.Empty(t, preview.Issues)

	broken := svc.PreviewID(ctx, domain.IDFormat{
		{Type: domain.SegmentFixed, Value: "X-"},
		{Type: domain.SegmentSequence, Format: "Q9"},
	})
	assert.Equal(t, "X-[Q9]", broken.ID)
	require.Len(t, broken.Issues, 1)
	assert.Equal(t, 1, broken.Issues[0].Index)
}

func TestPreviewID_LogsWithRequestID(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	var buf bytes.Buffer
	logger.InitLoggerWithWriter(logger.NewConfig("debug", "text", "test", "dev", "test", false), &buf)

	svc, _, _ := newTestService(t, nil)
	svc.generator.Rand = strings.NewReader("")
	ctx := logger.WithRequestID(context.Background(), "req-preview-1")

	preview := svc.PreviewID(ctx, domain.IDFormat{{Type: domain.SegmentRandom6Digit}})
	assert.Empty(t, preview.ID)

	out := buf.String()
	assert.Contains(t, out, ErrMsgGenerateIDFailed)
	assert.Contains(t, out, "request_id=req-preview-1")
}
