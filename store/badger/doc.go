// Package badger persists a local cache of knowledge-base entries in
// BadgerDB so searches keep working offline and syncs can report how many
// rows actually changed.
package badger
