// Package configs ships the JSON schemas the service validates its input files with
package configs

import "embed"

// Schemas holds every file under schemas/
//
//go:embed schemas/*.json
var Schemas embed.FS
