package model

// Package model defines domain data structures used across the app: recording
// modes, previously produced items (recordings and screenshots) and their
// thumbnails. Values are plain data; ownership and locking live with callers.
