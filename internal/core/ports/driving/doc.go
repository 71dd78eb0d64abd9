// Package driving defines the interfaces through which the CLI drives
// the core reconciliation services.
package driving
