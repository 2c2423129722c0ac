package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolConfig(t *testing.T) {
	t.Run("Sets application name", func(t *testing.T) {
		cfg, err := poolConfig("postgres://dash:secret@db:5432/dashboard?pool_max_conns=7")
		require.NoError(t, err)

		assert.Equal(t, "db", cfg.ConnConfig.Host)
		assert.Equal(t, "dashboard", cfg.ConnConfig.Database)
		assert.Equal(t, int32(7), cfg.MaxConns)
		assert.Equal(t, applicationName, cfg.ConnConfig.RuntimeParams["application_name"])
	})

	t.Run("Keeps application name from URI", func(t *testing.T) {
		cfg, err := poolConfig("postgres://dash@db/dashboard?application_name=reports")
		require.NoError(t, err)

		assert.Equal(t, "reports", cfg.ConnConfig.RuntimeParams["application_name"])
	})

	t.Run("Invalid URI", func(t *testing.T) {
		_, err := poolConfig("postgres://dash@db:notaport/dashboard")
		assert.Error(t, err)
	})
}
