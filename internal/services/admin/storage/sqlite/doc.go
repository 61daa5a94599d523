// Package sqlite provides SQLite-backed admin persistence.
//
// It stores the demo listing rows and the object metadata mutated by async
// row actions; schema changes ship as embedded migrations.
package sqlite
