// Package sqlite provides the durable extraction cache backed by
// SQLite, with an explicit versioned schema managed through embedded
// migrations.
package sqlite
