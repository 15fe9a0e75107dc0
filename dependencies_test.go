package users_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-arrower/users"
	"github.com/go-arrower/users/alog"
)

func TestInitialiseDefaultDependencies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("missing config", func(t *testing.T) {
		t.Parallel()

		di, err := users.InitialiseDefaultDependencies(ctx, nil)
		assert.ErrorIs(t, err, users.ErrMissingDependency)
		assert.Nil(t, di)
	})

	t.Run("default config", func(t *testing.T) {
		t.Parallel()

		conf, err := users.DefaultViper().Load("")
		require.NoError(t, err)

		di, err := users.InitialiseDefaultDependencies(ctx, conf)
		require.NoError(t, err)
		assert.NoError(t, di.EnsureAllDependenciesPresent())

		assert.NotNil(t, di.TraceProvider)
		assert.NotNil(t, di.MeterProvider)
		assert.NotNil(t, di.Registry)
		assert.Equal(t, "users", di.RootCmd.Name())
		assert.Equal(t, slog.LevelInfo, alog.Unwrap(di.Logger).Level())

		assert.NoError(t, di.Shutdown(ctx))
	})

	t.Run("log level from config", func(t *testing.T) {
		t.Parallel()

		di, err := users.InitialiseDefaultDependencies(ctx, &users.Config{
			ApplicationName: "users",
			Environment:     users.TestEnv,
			Log:             users.Log{Level: "error"},
		})
		require.NoError(t, err)
		assert.Equal(t, slog.LevelError, alog.Unwrap(di.Logger).Level())

		assert.NoError(t, di.Shutdown(ctx))
	})

	t.Run("otel exporter", func(t *testing.T) {
		t.Parallel()

		// the grpc client connects lazily, so no collector has to run
		di, err := users.InitialiseDefaultDependencies(ctx, &users.Config{
			ApplicationName: "users",
			Environment:     users.TestEnv,
			OTEL:            users.OTEL{Enabled: true, Host: "localhost", Port: 4317},
		})
		require.NoError(t, err)

		_ = di.Shutdown(ctx)
	})
}

func TestContainer_EnsureAllDependenciesPresent(t *testing.T) {
	t.Parallel()

	di := &users.Container{}
	assert.ErrorIs(t, di.EnsureAllDependenciesPresent(), users.ErrMissingDependency)

	di.Config = &users.Config{}
	assert.ErrorIs(t, di.EnsureAllDependenciesPresent(), users.ErrMissingDependency)
}

func TestContainer_Status(t *testing.T) {
	t.Parallel()

	di, err := users.InitialiseDefaultDependencies(context.Background(), &users.Config{
		ApplicationName: "users",
		Environment:     users.TestEnv,
		Users:           users.Users{Seed: true},
	})
	require.NoError(t, err)

	status := di.Status()
	assert.Equal(t, "online", status.Status)
	assert.Equal(t, "users", status.ApplicationName)
	assert.Equal(t, users.TestEnv, status.Environment)
	assert.True(t, status.Seeded)
	assert.NotEmpty(t, status.Uptime)
}
