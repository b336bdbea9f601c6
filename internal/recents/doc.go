// Package recents discovers previously produced recordings and screenshots on
// disk and keeps the most recent few in memory for the tray menu.
//
// Loading is tolerant: a directory that cannot be classified is skipped and
// logged, never reported as an error.
package recents
