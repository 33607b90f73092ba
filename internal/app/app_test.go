package app

import (
	"testing"

	"github.com/project/catalog/config"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRunFailsWithoutDatabase(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	cfg.PG.MigrationURL = "postgres://catalog@127.0.0.1:1/catalog?sslmode=disable&connect_timeout=1"

	err := Run(zap.NewNop(), cfg)
	require.ErrorContains(t, err, "can not migrate database")
}
