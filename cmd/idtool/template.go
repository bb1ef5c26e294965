package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/osse101/Stockpile_Go/internal/customid"
	"github.com/osse101/Stockpile_Go/internal/domain"
	"github.com/osse101/Stockpile_Go/internal/validation"
)

// loadTemplate reads a segment list from a YAML or JSON file, checks it
// against the ID format schema and compiles it. Files ending in .json are
// parsed as JSON, everything else as YAML.
func loadTemplate(path string) ([]domain.IDSegment, *customid.Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read template %s: %w", path, err)
	}

	var segments []domain.IDSegment
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &segments)
	} else {
		err = yaml.Unmarshal(data, &segments)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse template %s: %w", path, err)
	}

	if err := validation.NewSchemaValidator().ValidateValue(segments, validation.IDFormatSchema); err != nil {
		return nil, nil, err
	}

	return segments, customid.Compile(segments), nil
}
