package observability

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/log"
	sdklog "go.opentelemetry.io/otel/sdk/log"
)

// LogRecordProcessorSpy is an sdk/log Processor that keeps every emitted record in memory.
type LogRecordProcessorSpy struct {
	mu      sync.Mutex
	records []sdklog.Record
}

// NewLogRecordProcessorSpy creates an empty LogRecordProcessorSpy.
func NewLogRecordProcessorSpy() *LogRecordProcessorSpy {
	return &LogRecordProcessorSpy{}
}

func (p *LogRecordProcessorSpy) OnEmit(_ context.Context, record *sdklog.Record) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.records = append(p.records, record.Clone())

	return nil
}

func (p *LogRecordProcessorSpy) Shutdown(context.Context) error {
	return nil
}

func (p *LogRecordProcessorSpy) ForceFlush(context.Context) error {
	return nil
}

// Records returns a copy of all captured records in emit order.
func (p *LogRecordProcessorSpy) Records() []sdklog.Record {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]sdklog.Record(nil), p.records...)
}

// Find returns the first record with the given severity and body.
func (p *LogRecordProcessorSpy) Find(severity log.Severity, body string) (sdklog.Record, bool) {
	for _, record := range p.Records() {
		if record.Severity() == severity && record.Body().AsString() == body {
			return record, true
		}
	}

	return sdklog.Record{}, false
}

// AttrValue returns the string form of the attribute key of record.
func AttrValue(record sdklog.Record, key string) (string, bool) {
	var (
		value string
		found bool
	)

	record.WalkAttributes(func(kv log.KeyValue) bool {
		if kv.Key != key {
			return true
		}

		value, found = kv.Value.String(), true

		return false
	})

	return value, found
}

var _ sdklog.Processor = (*LogRecordProcessorSpy)(nil)
