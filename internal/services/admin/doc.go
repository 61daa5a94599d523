// Package admin implements the operator listing surface for the platform.
//
// It renders tabular listings for every managed object kind and hosts the
// row action hook points: listing hooks augment each row's inline actions and
// the async endpoints execute callback-backed actions against storage.
package admin
