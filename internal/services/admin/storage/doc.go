// Package storage defines persistence contracts for the admin console
// listings and the object metadata that async row actions mutate.
//
// Admin code uses these interfaces to keep listing handlers testable and
// avoid depending on a concrete SQLite schema from presentation logic.
package storage
