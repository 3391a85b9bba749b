package metrics

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Registry holds the address book instruments
type Registry struct {
	meter metric.Meter

	RecordsAdded    metric.Int64Counter
	RecordsReplaced metric.Int64Counter
	RecordsDeleted  metric.Int64Counter
	RecordsSize     metric.Int64UpDownCounter

	attrs metric.MeasurementOption
}

// NewRegistry creates a registry on the global meter provider
func NewRegistry(meterName string) (*Registry, error) {
	return NewRegistryFromMeter(otel.Meter(meterName))
}

// NewRegistryFromMeter creates a registry on the given meter
func NewRegistryFromMeter(meter metric.Meter, attrs ...attribute.KeyValue) (*Registry, error) {
	r := &Registry{
		meter: meter,
		attrs: metric.WithAttributes(attrs...),
	}

	var err error

	r.RecordsAdded, err = r.meter.Int64Counter(
		"addressbook.records.added_total",
		metric.WithDescription("Records inserted under a new name"),
	)
	if err != nil {
		return nil, err
	}

	r.RecordsReplaced, err = r.meter.Int64Counter(
		"addressbook.records.replaced_total",
		metric.WithDescription("Records that overwrote an existing entry with the same name"),
	)
	if err != nil {
		return nil, err
	}

	r.RecordsDeleted, err = r.meter.Int64Counter(
		"addressbook.records.deleted_total",
		metric.WithDescription("Records removed from the book"),
	)
	if err != nil {
		return nil, err
	}

	r.RecordsSize, err = r.meter.Int64UpDownCounter(
		"addressbook.records.size",
		metric.WithDescription("Number of records currently held"),
	)
	if err != nil {
		return nil, err
	}

	return r, nil
}

// RecordAdded counts a new entry. A nil registry records nothing.
func (r *Registry) RecordAdded(ctx context.Context) {
	if r == nil {
		return
	}
	r.RecordsAdded.Add(ctx, 1, r.attrs)
	r.RecordsSize.Add(ctx, 1, r.attrs)
}

// RecordReplaced counts an overwrite; the size stays the same
func (r *Registry) RecordReplaced(ctx context.Context) {
	if r == nil {
		return
	}
	r.RecordsReplaced.Add(ctx, 1, r.attrs)
}

// RecordDeleted counts a removal
func (r *Registry) RecordDeleted(ctx context.Context) {
	if r == nil {
		return
	}
	r.RecordsDeleted.Add(ctx, 1, r.attrs)
	r.RecordsSize.Add(ctx, -1, r.attrs)
}
