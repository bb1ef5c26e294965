package domain

import "time"

// SyncMetadata tracks the last sync of a JSON config file
type SyncMetadata struct {
	ConfigName   string    `json:"config_name"`
	LastSyncTime time.Time `json:"last_sync_time"`
	FileHash     string    `json:"file_hash"`
	FileModTime  time.Time `json:"file_mod_time"`
}
