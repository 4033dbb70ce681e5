// Package progress owns lesson completion state.
//
// Store is a pure in-memory state container: every mutation updates the
// completion map synchronously and publishes a ChangeEvent to subscribers.
// Persister is one such subscriber; it writes the encoded map to an Adapter
// on a background goroutine so that callers never wait on storage.
package progress
