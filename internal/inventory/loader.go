package inventory

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/osse101/Stockpile_Go/internal/customid"
	"github.com/osse101/Stockpile_Go/internal/domain"
	"github.com/osse101/Stockpile_Go/internal/logger"
	"github.com/osse101/Stockpile_Go/internal/repository"
	"github.com/osse101/Stockpile_Go/internal/validation"
)

// ErrInvalidConfig is returned when a seed file is structurally valid JSON but unusable
var ErrInvalidConfig = errors.New("invalid configuration")

// SeedConfig represents the JSON seed file for inventories
type SeedConfig struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Inventories []SeedInventory `json:"inventories"`
}

// SeedInventory is a single inventory definition in the seed file
type SeedInventory struct {
	Title    string          `json:"title"`
	IDFormat domain.IDFormat `json:"id_format"`
	Fields   []FieldInput    `json:"fields"`
}

// Loader handles loading, validating and syncing the inventory seed file
type Loader interface {
	Load(path string) (*SeedConfig, error)
	Validate(config *SeedConfig) error
	SyncToDatabase(ctx context.Context, config *SeedConfig, repo repository.Inventory, configPath string) (*SyncResult, error)
}

// SyncResult contains the result of syncing the seed file
type SyncResult struct {
	InventoriesCreated int
	InventoriesSkipped int
	FieldsAdded        int
}

type loader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &loader{
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// Load reads and parses an inventories JSON file
func (l *loader) Load(path string) (*SeedConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgReadConfigFileFailed, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, validation.InventoriesSchema); err != nil {
		return nil, fmt.Errorf("%s for %s: %w", ErrMsgSchemaFailed, path, err)
	}

	var config SeedConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgParseConfigFailed, err)
	}

	return &config, nil
}

// Validate checks what the schema cannot: template rules and duplicate titles
func (l *loader) Validate(config *SeedConfig) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}
	if len(config.Inventories) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoInventoriesDefined)
	}

	titles := make(map[string]bool, len(config.Inventories))
	for _, def := range config.Inventories {
		title := strings.TrimSpace(def.Title)
		if err := checkTitle(title); err != nil {
			return fmt.Errorf(ErrFmtInventoryInvalid+": %w", ErrInvalidConfig, def.Title, err)
		}
		if titles[title] {
			return fmt.Errorf(ErrFmtDuplicateTitle, ErrInvalidConfig, title)
		}
		titles[title] = true

		if len(def.IDFormat) > 0 {
			if err := customid.CheckFormat(def.IDFormat); err != nil {
				return fmt.Errorf(ErrFmtInventoryInvalid+": %w", ErrInvalidConfig, title, err)
			}
		}
		if _, err := buildFields(nil, def.Fields); err != nil {
			return fmt.Errorf(ErrFmtInventoryInvalid+": %w", ErrInvalidConfig, title, err)
		}
	}
	return nil
}

// SyncToDatabase creates missing inventories and adds missing fields.
// Templates of inventories that already exist are left alone so edits made
// through the API survive a restart.
func (l *loader) SyncToDatabase(ctx context.Context, config *SeedConfig, repo repository.Inventory, configPath string) (*SyncResult, error) {
	log := logger.FromContext(ctx)

	hasChanged, err := hasFileChanged(ctx, repo, configPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCheckFileChanged, err)
	}
	if !hasChanged {
		log.Info(LogMsgConfigUnchanged, "path", configPath)
		return &SyncResult{}, nil
	}

	result := &SyncResult{}
	for _, def := range config.Inventories {
		if err := syncOneInventory(ctx, repo, def, result); err != nil {
			return nil, err
		}
	}

	if err := updateSyncMetadata(ctx, repo, configPath); err != nil {
		log.Warn(LogMsgUpdateMetadataFailed, "error", err)
	}

	log.Info(LogMsgSyncCompleted,
		"created", result.InventoriesCreated,
		"skipped", result.InventoriesSkipped,
		"fields_added", result.FieldsAdded)

	return result, nil
}

func syncOneInventory(ctx context.Context, repo repository.Inventory, def SeedInventory, result *SyncResult) error {
	log := logger.FromContext(ctx)
	title := strings.TrimSpace(def.Title)

	existing, err := repo.GetInventoryByTitle(ctx, title)
	if errors.Is(err, domain.ErrInventoryNotFound) {
		format := def.IDFormat
		if len(format) == 0 {
			format = domain.DefaultIDFormat()
		}
		fields, err := buildFields(nil, def.Fields)
		if err != nil {
			return fmt.Errorf(ErrFmtCreateFailed, title, err)
		}
		inv := &domain.Inventory{Title: title, IDFormat: format, Fields: fields}
		if err := repo.CreateInventory(ctx, inv); err != nil {
			return fmt.Errorf(ErrFmtCreateFailed, title, err)
		}
		result.InventoriesCreated++
		log.Info(LogMsgSeededInventory, "title", title, "id", inv.ID)
		return nil
	}
	if err != nil {
		return fmt.Errorf(ErrFmtLookupFailed, title, err)
	}

	known := make(map[string]bool, len(existing.Fields))
	for _, f := range existing.Fields {
		known[strings.ToLower(f.Title)] = true
	}
	var missing []FieldInput
	for _, f := range def.Fields {
		if !known[strings.ToLower(strings.TrimSpace(f.Title))] {
			missing = append(missing, f)
		}
	}
	if len(missing) == 0 {
		result.InventoriesSkipped++
		return nil
	}

	fields, err := buildFields(existing.Fields, missing)
	if err != nil {
		return fmt.Errorf(ErrFmtCreateFailed, title, err)
	}
	for i := range fields {
		if err := repo.AddField(ctx, existing.ID, &fields[i]); err != nil {
			return fmt.Errorf(ErrFmtAddFieldFailed, fields[i].Title, title, err)
		}
		result.FieldsAdded++
		log.Info(LogMsgSeededField, "inventory", title, "field", fields[i].Title)
	}
	return nil
}

// hasFileChanged compares the file's hash and mod time with the last recorded sync
func hasFileChanged(ctx context.Context, repo repository.Inventory, configPath string) (bool, error) {
	fileHash, modTime, err := fingerprint(configPath)
	if err != nil {
		return false, err
	}

	syncMeta, err := repo.GetSyncMetadata(ctx, filepath.Base(configPath))
	if err != nil {
		return false, err
	}
	if syncMeta == nil {
		return true, nil
	}

	return syncMeta.FileHash != fileHash || !syncMeta.FileModTime.Equal(modTime), nil
}

func updateSyncMetadata(ctx context.Context, repo repository.Inventory, configPath string) error {
	fileHash, modTime, err := fingerprint(configPath)
	if err != nil {
		return err
	}

	return repo.UpsertSyncMetadata(ctx, &domain.SyncMetadata{
		ConfigName:   filepath.Base(configPath),
		LastSyncTime: time.Now().UTC(),
		FileHash:     fileHash,
		FileModTime:  modTime,
	})
}

func fingerprint(configPath string) (string, time.Time, error) {
	fileInfo, err := os.Stat(configPath)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%s: %w", ErrMsgStatConfigFileFailed, err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%s: %w", ErrMsgReadConfigFileFailed, err)
	}

	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:]), fileInfo.ModTime().UTC().Truncate(time.Second), nil
}
