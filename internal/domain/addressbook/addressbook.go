package addressbook

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/Tania526-sudo/goit-algo-hw-06/internal/domain/contact"
	"github.com/Tania526-sudo/goit-algo-hw-06/internal/metrics"
)

// EmptyBook is the rendering of a book with no records
const EmptyBook = "AddressBook is empty."

// AddressBook maps contact names to records. Keys are only ever set by
// AddRecord, from the record's name at that moment.
//
// An AddressBook is not safe for concurrent use.
type AddressBook struct {
	records map[string]*contact.Record
	logger  *slog.Logger
	metrics *metrics.Registry
}

// Option configures an AddressBook
type Option func(*AddressBook)

// WithLogger logs mutations at debug level
func WithLogger(logger *slog.Logger) Option {
	return func(b *AddressBook) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithMetrics records mutations on the given registry
func WithMetrics(registry *metrics.Registry) Option {
	return func(b *AddressBook) {
		b.metrics = registry
	}
}

// New creates an empty address book
func New(opts ...Option) *AddressBook {
	b := &AddressBook{
		records: make(map[string]*contact.Record),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddRecord stores record under its current name, replacing any record
// already stored under that name.
func (b *AddressBook) AddRecord(record *contact.Record) {
	ctx := context.Background()
	name := record.Name().Text()

	if prev, ok := b.records[name]; ok {
		b.metrics.RecordReplaced(ctx)
		b.logger.DebugContext(ctx, "record replaced",
			"name", name,
			"record_id", record.ID(),
			"previous_id", prev.ID())
	} else {
		b.metrics.RecordAdded(ctx)
		b.logger.DebugContext(ctx, "record added",
			"name", name,
			"record_id", record.ID())
	}

	b.records[name] = record
}

// Find returns the record stored under name
func (b *AddressBook) Find(name string) (*contact.Record, bool) {
	record, ok := b.records[name]
	return record, ok
}

// Delete removes the record stored under name and reports whether there was one
func (b *AddressBook) Delete(name string) bool {
	record, ok := b.records[name]
	if !ok {
		return false
	}

	delete(b.records, name)

	ctx := context.Background()
	b.metrics.RecordDeleted(ctx)
	b.logger.DebugContext(ctx, "record deleted",
		"name", name,
		"record_id", record.ID())

	return true
}

// Len returns the number of records
func (b *AddressBook) Len() int {
	return len(b.records)
}

// Names returns the keys in ascending order
func (b *AddressBook) Names() []string {
	names := make([]string, 0, len(b.records))
	for name := range b.records {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// String renders one record per line ordered by name, or EmptyBook
func (b *AddressBook) String() string {
	if len(b.records) == 0 {
		return EmptyBook
	}

	names := b.Names()
	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = b.records[name].String()
	}
	return strings.Join(lines, "\n")
}
