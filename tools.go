//go:build tools

package tools

// Build and codegen tools pinned through go.mod:
//   golangci-lint  lint
//   goose          migrations/ outside the service (idtool covers up/status)
//   sqlc           internal/database/generated from internal/database/queries
//   swag           docs/ from the handler annotations
//   mockery        mocks/ per .mockery.yaml
//   benchstat      comparing customid benchmark runs

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/pressly/goose/v3/cmd/goose"
	_ "github.com/sqlc-dev/sqlc/cmd/sqlc"
	_ "github.com/swaggo/swag/cmd/swag"
	_ "github.com/vektra/mockery/v2"
	_ "golang.org/x/perf/cmd/benchstat"
)
