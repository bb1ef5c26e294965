package item

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/Stockpile_Go/internal/domain"
	"github.com/osse101/Stockpile_Go/internal/repository"
)

// FakeRepository is a stateful in-memory implementation of repository.Item and
// repository.Inventory for tests.
//
// Transactions behave like serializable snapshots: writes are buffered until
// Commit, and a commit fails with domain.ErrSerializationFailure when another
// transaction committed a write to an inventory or item this one read.
// The (inventory, custom ID) pair is unique, as in the real schema.
type FakeRepository struct {
	mu          sync.Mutex
	inventories map[string]*domain.Inventory
	items       map[string]*domain.Item
	values      map[string]map[int]domain.FieldValue
	floors      map[string]int64
	generations map[string]uint64
	syncMeta    map[string]*domain.SyncMetadata
	nextFieldID int

	// BeforeCommit, when set, runs at the start of every Commit
	BeforeCommit func(ctx context.Context)
	// BeginErr, when set, is returned by BeginTx
	BeginErr error
}

// NewFakeRepository creates an empty fake
func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		inventories: make(map[string]*domain.Inventory),
		items:       make(map[string]*domain.Item),
		values:      make(map[string]map[int]domain.FieldValue),
		floors:      make(map[string]int64),
		generations: make(map[string]uint64),
		syncMeta:    make(map[string]*domain.SyncMetadata),
		nextFieldID: 1,
	}
}

// ==================== repository.Item ====================

// BeginTx opens a buffered transaction
func (f *FakeRepository) BeginTx(ctx context.Context) (repository.ItemTx, error) {
	if f.BeginErr != nil {
		return nil, f.BeginErr
	}
	return &fakeTx{
		repo:      f,
		invReads:  make(map[string]uint64),
		itemReads: make(map[string]int),
		values:    make(map[string][]domain.FieldValue),
	}, nil
}

func (f *FakeRepository) GetItem(ctx context.Context, itemID string) (*domain.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.itemLocked(itemID)
}

func (f *FakeRepository) GetInventory(ctx context.Context, inventoryID string) (*domain.Inventory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inventoryLocked(inventoryID)
}

func (f *FakeRepository) CustomIDExists(ctx context.Context, inventoryID, customID, excludeItemID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.customIDTakenLocked(inventoryID, customID, excludeItemID), nil
}

func (f *FakeRepository) DeleteItem(ctx context.Context, itemID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	item, ok := f.items[itemID]
	if !ok {
		return domain.ErrItemNotFound
	}
	if item.SequenceNumber > f.floors[item.InventoryID] {
		f.floors[item.InventoryID] = item.SequenceNumber
	}
	delete(f.items, itemID)
	delete(f.values, itemID)
	f.generations[item.InventoryID]++
	return nil
}

// ==================== repository.Inventory ====================

func (f *FakeRepository) CreateInventory(ctx context.Context, inventory *domain.Inventory) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.inventories {
		if existing.Title == inventory.Title {
			return domain.ErrInventoryTitleTaken
		}
	}
	if inventory.ID == "" {
		inventory.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	inventory.CreatedAt, inventory.UpdatedAt = now, now
	for i := range inventory.Fields {
		inventory.Fields[i].ID = f.nextFieldID
		inventory.Fields[i].InventoryID = inventory.ID
		f.nextFieldID++
	}
	f.inventories[inventory.ID] = cloneInventory(inventory)
	return nil
}

func (f *FakeRepository) GetInventoryByTitle(ctx context.Context, title string) (*domain.Inventory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, inv := range f.inventories {
		if inv.Title == title {
			return cloneInventory(inv), nil
		}
	}
	return nil, domain.ErrInventoryNotFound
}

func (f *FakeRepository) ListInventories(ctx context.Context) ([]domain.Inventory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Inventory, 0, len(f.inventories))
	for _, inv := range f.inventories {
		out = append(out, *cloneInventory(inv))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (f *FakeRepository) UpdateIDFormat(ctx context.Context, inventoryID string, format domain.IDFormat) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	inv, ok := f.inventories[inventoryID]
	if !ok {
		return domain.ErrInventoryNotFound
	}
	inv.IDFormat = append(domain.IDFormat(nil), format...)
	inv.UpdatedAt = time.Now().UTC()
	f.generations[inventoryID]++
	return nil
}

func (f *FakeRepository) AddField(ctx context.Context, inventoryID string, field *domain.FieldDefinition) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	inv, ok := f.inventories[inventoryID]
	if !ok {
		return domain.ErrInventoryNotFound
	}
	for _, existing := range inv.Fields {
		if existing.Title == field.Title {
			return domain.ErrInvalidInput
		}
	}
	field.ID = f.nextFieldID
	field.InventoryID = inventoryID
	f.nextFieldID++
	inv.Fields = append(inv.Fields, *field)
	f.generations[inventoryID]++
	return nil
}

func (f *FakeRepository) GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	meta, ok := f.syncMeta[configName]
	if !ok {
		return nil, nil
	}
	cp := *meta
	return &cp, nil
}

func (f *FakeRepository) UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *metadata
	f.syncMeta[metadata.ConfigName] = &cp
	return nil
}

// ==================== Test helpers ====================

// Items returns the committed items of an inventory ordered by sequence number
func (f *FakeRepository) Items(inventoryID string) []domain.Item {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Item
	for id, item := range f.items {
		if item.InventoryID != inventoryID {
			continue
		}
		cp, _ := f.itemLocked(id)
		out = append(out, *cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SequenceNumber < out[j].SequenceNumber })
	return out
}

func (f *FakeRepository) itemLocked(itemID string) (*domain.Item, error) {
	item, ok := f.items[itemID]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	cp := *item
	cp.Fields = nil
	stored := f.values[itemID]
	ids := make([]int, 0, len(stored))
	for id := range stored {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	values := make([]domain.FieldValue, 0, len(ids))
	for _, id := range ids {
		values = append(values, stored[id])
	}
	applyFieldValues(&cp, values)
	return &cp, nil
}

func (f *FakeRepository) inventoryLocked(inventoryID string) (*domain.Inventory, error) {
	inv, ok := f.inventories[inventoryID]
	if !ok {
		return nil, domain.ErrInventoryNotFound
	}
	return cloneInventory(inv), nil
}

func (f *FakeRepository) customIDTakenLocked(inventoryID, customID, excludeItemID string) bool {
	for id, item := range f.items {
		if id != excludeItemID && item.InventoryID == inventoryID && item.CustomID == customID {
			return true
		}
	}
	return false
}

func cloneInventory(inv *domain.Inventory) *domain.Inventory {
	cp := *inv
	cp.IDFormat = append(domain.IDFormat(nil), inv.IDFormat...)
	cp.Fields = append([]domain.FieldDefinition(nil), inv.Fields...)
	return &cp
}

// ==================== Transaction ====================

type fakeTx struct {
	repo      *FakeRepository
	invReads  map[string]uint64
	itemReads map[string]int
	inserts   []*domain.Item
	saves     []*domain.Item
	values    map[string][]domain.FieldValue
	done      bool
}

func (t *fakeTx) Commit(ctx context.Context) error {
	if t.done {
		return repository.ErrTxClosed
	}
	if hook := t.repo.BeforeCommit; hook != nil {
		hook(ctx)
	}

	f := t.repo
	f.mu.Lock()
	defer f.mu.Unlock()
	t.done = true

	for invID, gen := range t.invReads {
		if f.generations[invID] != gen {
			return domain.ErrSerializationFailure
		}
	}
	for itemID, version := range t.itemReads {
		current, ok := f.items[itemID]
		if !ok || current.Version != version {
			return domain.ErrSerializationFailure
		}
	}
	for _, item := range append(append([]*domain.Item(nil), t.inserts...), t.saves...) {
		if f.customIDTakenLocked(item.InventoryID, item.CustomID, item.ID) {
			return domain.ErrCustomIDTaken
		}
	}

	for _, item := range t.inserts {
		cp := *item
		cp.Fields = nil
		f.items[item.ID] = &cp
		f.generations[item.InventoryID]++
	}
	for _, item := range t.saves {
		cp := *item
		cp.Fields = nil
		f.items[item.ID] = &cp
		f.generations[item.InventoryID]++
	}
	for itemID, values := range t.values {
		stored, ok := f.values[itemID]
		if !ok {
			stored = make(map[int]domain.FieldValue)
			f.values[itemID] = stored
		}
		for _, v := range values {
			stored[v.FieldID] = v
		}
	}
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if t.done {
		return repository.ErrTxClosed
	}
	t.done = true
	return nil
}

func (t *fakeTx) GetInventory(ctx context.Context, inventoryID string) (*domain.Inventory, error) {
	f := t.repo
	f.mu.Lock()
	defer f.mu.Unlock()
	t.readInventoryLocked(inventoryID)
	return f.inventoryLocked(inventoryID)
}

func (t *fakeTx) MaxSequence(ctx context.Context, inventoryID string) (int64, bool, error) {
	f := t.repo
	f.mu.Lock()
	defer f.mu.Unlock()
	t.readInventoryLocked(inventoryID)

	maxSeq, found := f.floors[inventoryID], f.floors[inventoryID] > 0
	for _, item := range f.items {
		if item.InventoryID != inventoryID {
			continue
		}
		found = true
		if item.SequenceNumber > maxSeq {
			maxSeq = item.SequenceNumber
		}
	}
	return maxSeq, found, nil
}

func (t *fakeTx) InsertItem(ctx context.Context, item *domain.Item) error {
	f := t.repo
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.inventories[item.InventoryID]; !ok {
		return domain.ErrInventoryNotFound
	}
	if f.customIDTakenLocked(item.InventoryID, item.CustomID, item.ID) {
		return domain.ErrCustomIDTaken
	}
	if item.Version == 0 {
		item.Version = domain.InitialItemVersion
	}
	now := time.Now().UTC()
	item.CreatedAt, item.UpdatedAt = now, now

	cp := *item
	t.inserts = append(t.inserts, &cp)
	return nil
}

func (t *fakeTx) FindItemForUpdate(ctx context.Context, itemID string) (*domain.Item, error) {
	f := t.repo
	f.mu.Lock()
	defer f.mu.Unlock()

	item, err := f.itemLocked(itemID)
	if err != nil {
		return nil, err
	}
	t.itemReads[itemID] = item.Version
	return item, nil
}

func (t *fakeTx) SaveItem(ctx context.Context, item *domain.Item, expectedVersion int) error {
	f := t.repo
	f.mu.Lock()
	defer f.mu.Unlock()

	current, ok := f.items[item.ID]
	if !ok || current.Version != expectedVersion {
		return domain.ErrVersionConflict
	}
	if f.customIDTakenLocked(item.InventoryID, item.CustomID, item.ID) {
		return domain.ErrCustomIDTaken
	}
	item.Version = expectedVersion + 1
	item.UpdatedAt = time.Now().UTC()

	cp := *item
	t.saves = append(t.saves, &cp)
	return nil
}

func (t *fakeTx) UpsertFieldValues(ctx context.Context, itemID string, values []domain.FieldValue) error {
	t.values[itemID] = append(t.values[itemID], values...)
	return nil
}

// readInventoryLocked remembers the first generation of inventoryID this tx saw
func (t *fakeTx) readInventoryLocked(inventoryID string) {
	if _, seen := t.invReads[inventoryID]; !seen {
		t.invReads[inventoryID] = t.repo.generations[inventoryID]
	}
}
