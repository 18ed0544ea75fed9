package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// RegistryMetrics holds the instruments the service registry records against.
type RegistryMetrics struct {
	registrationsTotal  metric.Int64Counter
	registrationsActive metric.Int64UpDownCounter
	lookupsTotal        metric.Int64Counter
	lookupMisses        metric.Int64Counter
}

// NewRegistryMetrics creates the registry instrument set on the given meter.
func NewRegistryMetrics(meter metric.Meter) (*RegistryMetrics, error) {
	registrationsTotal, err := meter.Int64Counter("registry.registrations.total",
		metric.WithDescription("Total number of service registrations published"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating registry.registrations.total counter: %w", err)
	}

	registrationsActive, err := meter.Int64UpDownCounter("registry.registrations.active",
		metric.WithDescription("Number of currently live registrations"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating registry.registrations.active counter: %w", err)
	}

	lookupsTotal, err := meter.Int64Counter("registry.lookups.total",
		metric.WithDescription("Total number of reference lookups"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating registry.lookups.total counter: %w", err)
	}

	lookupMisses, err := meter.Int64Counter("registry.lookups.misses",
		metric.WithDescription("Reference lookups that matched no registration"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating registry.lookups.misses counter: %w", err)
	}

	return &RegistryMetrics{
		registrationsTotal:  registrationsTotal,
		registrationsActive: registrationsActive,
		lookupsTotal:        lookupsTotal,
		lookupMisses:        lookupMisses,
	}, nil
}

// RecordRegistration records a published registration. Safe on a nil receiver.
func (m *RegistryMetrics) RecordRegistration(ctx context.Context, interfaceID string) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("interface_id", interfaceID))
	m.registrationsTotal.Add(ctx, 1, attrs)
	m.registrationsActive.Add(ctx, 1)
}

// RecordUnregistration records a withdrawn registration. Safe on a nil receiver.
func (m *RegistryMetrics) RecordUnregistration(ctx context.Context) {
	if m == nil {
		return
	}
	m.registrationsActive.Add(ctx, -1)
}

// RecordLookup records a reference lookup and whether it matched anything.
// Safe on a nil receiver.
func (m *RegistryMetrics) RecordLookup(ctx context.Context, interfaceID string, hit bool) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("interface_id", interfaceID))
	m.lookupsTotal.Add(ctx, 1, attrs)
	if !hit {
		m.lookupMisses.Add(ctx, 1, attrs)
	}
}
