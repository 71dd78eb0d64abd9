// Package driven defines the interfaces the core depends on:
// text extraction, the extraction cache, record loading, report
// writing and configuration. Adapters implement these ports.
package driven
