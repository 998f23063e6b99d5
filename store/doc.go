// Package store defines the storage abstractions for knowledge-base
// entries: a remote repository interface backed by the Feishu Bitable API
// and binary serialization for the local cache.
//
// Concrete implementations live in subpackages: feishu talks to the
// Bitable REST API, badger persists a local entry cache.
package store
