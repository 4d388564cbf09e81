// Package analytics implements [ports.AnalyticsSink] adapters for the
// registration flow's analytics markers: a structured log sink, an
// OpenTelemetry counter sink and an HTTP collector sink. The collector side
// doubles as an anti-corruption layer, translating collector responses into
// domain errors.
package analytics
