package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Stockpile_Go/internal/domain"
)

const laptopsTemplate = "../../configs/templates/laptops.yaml"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeTemplate(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestPreview(t *testing.T) {
	out, err := execute(t, "preview", laptopsTemplate, "-n", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "pattern: LAP-###")
	assert.Contains(t, out, "LAP-001\nLAP-002\nLAP-003\n")
}

func TestPreview_JSONTemplate(t *testing.T) {
	path := writeTemplate(t, "asset.json", `[{"type":"fixed","value":"AS"},{"type":"sequence","format":"D4"}]`)

	out, err := execute(t, "preview", path)
	require.NoError(t, err)
	assert.Contains(t, out, "AS0001")
}

func TestLoadTemplate_SchemaViolation(t *testing.T) {
	path := writeTemplate(t, "bad.yaml", "- type: emoji\n")

	_, _, err := loadTemplate(path)
	require.Error(t, err)
}

func TestCheck(t *testing.T) {
	t.Run("ids fit", func(t *testing.T) {
		out, err := execute(t, "check", laptopsTemplate, "LAP-001", "LAP-1000")
		require.NoError(t, err)
		assert.Contains(t, out, "template ok")
		assert.Contains(t, out, "LAP-1000: ok")
	})

	t.Run("id does not fit", func(t *testing.T) {
		out, err := execute(t, "check", laptopsTemplate, "LAP-001", "PC-001")
		require.Error(t, err)
		assert.Contains(t, out, "PC-001:")
		assert.Contains(t, err.Error(), "1 of 2")
	})

	t.Run("two sequences cannot be saved", func(t *testing.T) {
		path := writeTemplate(t, "double.yaml", "- type: sequence\n- type: fixed\n  value: \"-\"\n- type: sequence\n")
		_, err := execute(t, "check", path)
		assert.ErrorIs(t, err, domain.ErrMultipleSequenceSegments)
	})
}

func TestEdit(t *testing.T) {
	t.Run("sequence edit accepted", func(t *testing.T) {
		out, err := execute(t, "edit", laptopsTemplate, "--original", "LAP-001", "--edited", "LAP-042")
		require.NoError(t, err)
		assert.Contains(t, out, `"valid": true`)
		assert.Contains(t, out, `"new_sequence": 42`)
	})

	t.Run("fixed text change rejected", func(t *testing.T) {
		_, err := execute(t, "edit", laptopsTemplate, "--original", "LAP-001", "--edited", "LAB-001")
		assert.ErrorIs(t, err, domain.ErrEditRejected)
	})

	t.Run("flags required", func(t *testing.T) {
		_, err := execute(t, "edit", laptopsTemplate)
		assert.Error(t, err)
	})
}

func TestMigrate_RequiresDSN(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	_, err := execute(t, "migrate", "up", "--dsn", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--dsn")
}

func TestMigrate_UnknownDriver(t *testing.T) {
	_, err := execute(t, "migrate", "status", "--driver", "sqlite", "--dsn", "file:test.db")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sqlite")
}
