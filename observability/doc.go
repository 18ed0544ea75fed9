// Package observability bootstraps OpenTelemetry metrics and tracing for
// svckit and defines the instrument set the registry records against.
//
// Init functions configure OTLP HTTP exporters and install global providers;
// both are optional. The registry accepts a *RegistryMetrics and records
// nothing when it is nil, so embedding applications that do not run a
// collector pay nothing.
package observability
