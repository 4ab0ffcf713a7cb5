package telemetry

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitOpenTelemetry_Initialize_Close(t *testing.T) {
	init := &InitOpenTelemetry{
		Logger:          log.New(&strings.Builder{}, "", 0),
		ServiceName:     "querycontext-test",
		TracesEndpoint:  "-",
		MetricsEndpoint: "-",
	}
	ctx := context.Background()
	ctx, err := init.Initialize(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, ctx)
	init.Close()
}

func TestInitHttpClient_Initialize(t *testing.T) {
	init := InitHttpClient{Logger: log.New(&strings.Builder{}, "", 0), RetryMax: 1}
	ctx := context.Background()
	ctx, err := init.Initialize(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, ctx)
}

func TestDontRetry500StatusPolicy(t *testing.T) {
	policy := dontRetry500StatusPolicy(func(context.Context, *http.Response, error) (bool, error) {
		return true, nil
	})

	retry, err := policy(context.Background(), &http.Response{StatusCode: http.StatusInternalServerError}, nil)
	assert.False(t, retry)
	assert.NoError(t, err)

	retry, _ = policy(context.Background(), &http.Response{StatusCode: http.StatusServiceUnavailable}, nil)
	assert.True(t, retry)

	retry, _ = policy(context.Background(), nil, errors.New("connection refused"))
	assert.True(t, retry)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	retry, err = policy(cancelled, nil, nil)
	assert.False(t, retry)
	assert.ErrorIs(t, err, context.Canceled)
}
