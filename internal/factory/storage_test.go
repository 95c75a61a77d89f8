package factory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/homebrain/homebrain/internal/config"
	"github.com/homebrain/homebrain/internal/model"
)

func TestNewStoreSQLite(t *testing.T) {
	cfg := &config.Config{DBDriver: "sqlite", SQLitePath: filepath.Join(t.TempDir(), "test.db")}
	st, err := NewStore(cfg, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, st.HealthPing(context.Background()))
}

func TestNewStoreNone(t *testing.T) {
	st, err := NewStore(&config.Config{DBDriver: "none"}, zerolog.Nop())
	require.NoError(t, err)

	families, err := st.Families().List(context.Background())
	require.NoError(t, err)
	require.Empty(t, families)

	_, err = st.Families().Create(context.Background(), &model.Family{Name: "x", OwnerID: "a"})
	require.ErrorIs(t, err, model.ErrUnavailable)
}

func TestNewStoreUnknownDriver(t *testing.T) {
	_, err := NewStore(&config.Config{DBDriver: "oracle"}, zerolog.Nop())
	require.Error(t, err)
}
