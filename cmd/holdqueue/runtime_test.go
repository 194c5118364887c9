package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/log"
	sdklog "go.opentelemetry.io/otel/sdk/log"

	"github.com/AntonStoeckl/holdqueue/config"
	"github.com/AntonStoeckl/holdqueue/holdstore/oteladapters"
	"github.com/AntonStoeckl/holdqueue/testutil/observability"
)

func Test_newContextualLogger(t *testing.T) {
	testCases := []struct {
		kind         string
		expectedType any
	}{
		{kind: config.OTelLoggerBridge, expectedType: &oteladapters.SlogBridgeLogger{}},
		{kind: config.OTelLoggerDirect, expectedType: &oteladapters.OTelLogger{}},
	}

	for _, tc := range testCases {
		t.Run(tc.kind, func(t *testing.T) {
			// arrange
			processor := observability.NewLogRecordProcessorSpy()
			provider := sdklog.NewLoggerProvider(sdklog.WithProcessor(processor))

			// act
			logger := newContextualLogger(tc.kind, provider)
			logger.InfoContext(context.Background(), "snapshot loaded", "item_count", "2")

			// assert
			assert.IsType(t, tc.expectedType, logger)

			record, ok := processor.Find(log.SeverityInfo, "snapshot loaded")
			require.True(t, ok)
			itemCount, ok := observability.AttrValue(record, "item_count")
			assert.True(t, ok)
			assert.Equal(t, "2", itemCount)
		})
	}
}
