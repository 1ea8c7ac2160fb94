package server

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophdocs/internal/logging"
	"github.com/dmitrijs2005/gophdocs/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.Address = "127.0.0.1:0"
	c.SecretKey = "k"
	return c
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig(), logging.Discard())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
}

func TestNewApp_RejectsTooLongPassword(t *testing.T) {
	c := testConfig()
	c.Password = string(make([]byte, 100))

	_, err := NewApp(context.Background(), c, logging.Discard())
	assert.Error(t, err)
}

func TestApp_RunBadAddress(t *testing.T) {
	c := testConfig()
	c.Address = "bad-address"

	app, err := NewApp(context.Background(), c, logging.Discard())
	require.NoError(t, err)
	assert.Error(t, app.Run(context.Background()))
}

func TestNewApp_DefaultsToMemoryStorage(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig(), logging.Discard())
	require.NoError(t, err)
	assert.Nil(t, app.db)
	assert.Equal(t, "memory", app.storage())
}

func TestNewApp_UnreachableDatabase(t *testing.T) {
	c := testConfig()
	c.DatabaseDSN = "postgres://user:pw@127.0.0.1:1/docs?sslmode=disable"

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewApp(ctx, c, logging.Discard())
	require.ErrorContains(t, err, "storage init error")
}
