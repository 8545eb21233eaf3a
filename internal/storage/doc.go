// Package storage defines the persistence interfaces for campaign saves and
// the campaign journal.
//
// Saves are full loop snapshots keyed by (campaign, name); the journal is an
// append-only record of what happened each day. The sqlite subpackage holds
// the only implementation.
package storage
