// Package services implements the core reconciliation logic: fuzzy
// scoring of records against extracted PDF text and the two-phase
// orchestration of extraction and matching over a worker pool.
package services
