// Package domain contains the core entities of the reconciler:
// extracted PDF documents, structured records and match results.
// It has no dependencies on adapters or external libraries.
package domain
