package db

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	t.Parallel()

	files, err := fs.Glob(embedMigrations, migrationsDir+"/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		content, err := fs.ReadFile(embedMigrations, file)
		require.NoError(t, err)
		require.Contains(t, string(content), "-- +goose Up")
		require.Contains(t, string(content), "-- +goose Down")
	}
}

func TestSchemaCascadesBooks(t *testing.T) {
	t.Parallel()

	content, err := fs.ReadFile(embedMigrations, migrationsDir+"/00001_catalog.sql")
	require.NoError(t, err)
	require.Contains(t, string(content), "REFERENCES authors (id) ON DELETE CASCADE")
	require.Contains(t, string(content), "isbn       TEXT UNIQUE")
}
