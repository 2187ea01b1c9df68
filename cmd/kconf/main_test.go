package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/kconf/internal/app"
	"go.trai.ch/kconf/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func newTestProvider(t *testing.T, setup func(*mocks.MockConfigStore, *mocks.MockArchDetector, *mocks.MockLogger)) ComponentProvider {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockConfigStore(ctrl)
	detector := mocks.NewMockArchDetector(ctrl)
	log := mocks.NewMockLogger(ctrl)
	if setup != nil {
		setup(store, detector, log)
	}

	return func(context.Context) (*app.Components, error) {
		return &app.Components{
			App:      app.New(store, detector),
			Logger:   log,
			Store:    store,
			Detector: detector,
		}, nil
	}
}

func TestRun_Success(t *testing.T) {
	provider := newTestProvider(t, func(store *mocks.MockConfigStore, _ *mocks.MockArchDetector, _ *mocks.MockLogger) {
		store.EXPECT().Value("/kernel", "CONFIG_SMP").Return("y", true)
	})

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"get", "/kernel", "CONFIG_SMP"}, &stdout, &stderr, provider)

	assert.Equal(t, 0, code)
	assert.Equal(t, "y\n", stdout.String())
}

func TestRun_OptionAbsent(t *testing.T) {
	// Absence exits non-zero without going through the error logger.
	provider := newTestProvider(t, func(store *mocks.MockConfigStore, _ *mocks.MockArchDetector, _ *mocks.MockLogger) {
		store.EXPECT().Value("/kernel", "CONFIG_MISSING").Return("", false)
	})

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"get", "/kernel", "CONFIG_MISSING"}, &stdout, &stderr, provider)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
}

func TestRun_ArchUnknown(t *testing.T) {
	provider := newTestProvider(t, func(_ *mocks.MockConfigStore, detector *mocks.MockArchDetector, _ *mocks.MockLogger) {
		detector.EXPECT().Arch("/kernel").Return("", false)
	})

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"arch", "/kernel"}, &stdout, &stderr, provider)

	assert.Equal(t, 1, code)
}

func TestRun_ProviderError(t *testing.T) {
	provider := func(context.Context) (*app.Components, error) {
		return nil, zerr.New("wiring failed")
	}

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"version"}, &stdout, &stderr, provider)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "wiring failed")
}
