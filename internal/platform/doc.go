package platform

// Package platform contains OS integration glue: open/reveal through the
// desktop shell, filesystem creation times, default directories, and a
// watcher that reports newly written capture projects.
