// Package jsonldb provides a generic, concurrent-safe, in-memory row table
// and the JSONL codec used to load and dump it.
//
// # Overview
//
// [Table] keeps rows in insertion order. Every row crossing the table
// boundary is cloned through [Cloner], so callers can freely mutate what
// they pass in and what they get back.
//
// # Concurrency
//
// Table uses a single RWMutex. Each mutation, including the existence check
// done by [Table.Insert] and [Table.Update], runs under the write lock, so a
// check and the write that depends on it cannot interleave with another
// writer.
//
// # File Format
//
// [ReadJSONL] and [WriteJSONL] handle JSON Lines: one JSON value per line,
// blank lines ignored.
package jsonldb
