package app

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/abgdnv/gocatalog/internal/config"
	"github.com/abgdnv/gocatalog/internal/product"
	"github.com/abgdnv/gocatalog/internal/store/memory"
	"github.com/abgdnv/gocatalog/internal/store/simdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(backend string) *config.Config {
	cfg := &config.Config{}
	cfg.Store.Backend = backend
	cfg.SimDB.Latency = time.Millisecond
	cfg.Log.Level = "info"
	return cfg
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func Test_NewStore(t *testing.T) {
	testCases := []struct {
		name      string
		backend   string
		expectErr bool
		wantType  any
	}{
		{name: "memory backend", backend: "memory", wantType: &memory.Store[*product.Product]{}},
		{name: "simdb backend", backend: "simdb", wantType: &simdb.Store[*product.Product]{}},
		{name: "unknown backend", backend: "bolt", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			cfg := testConfig(tc.backend)
			// when
			repo, closeStore, err := NewStore(cfg, testLogger())
			// then
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tc.wantType, repo)
			require.NoError(t, closeStore())
		})
	}
}

func Test_RunDemo(t *testing.T) {
	// given
	var out bytes.Buffer

	// when
	err := RunDemo(context.Background(), testConfig("memory"), testLogger(), &out)

	// then: both store implementations served the same service code
	require.NoError(t, err)
	assert.Contains(t, out.String(), "memory store: created {ID:1 Name:Laptop Price:1200}")
	assert.Contains(t, out.String(), "memory store: found   {ID:1 Name:Laptop Price:1200}")
	assert.Contains(t, out.String(), "simulated database: created {ID:1 Name:Mouse Price:25}")
}

func Test_RunCheck_AllBackends(t *testing.T) {
	for _, backend := range []string{"memory", "simdb"} {
		t.Run(backend, func(t *testing.T) {
			// given
			var out bytes.Buffer
			// when
			err := RunCheck(context.Background(), testConfig(backend), testLogger(), &out)
			// then
			require.NoError(t, err)
			assert.Contains(t, out.String(), "check passed")
		})
	}
}
