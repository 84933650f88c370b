package changes

// Package changes owns the ordered sequence of pending setting changes. It
// assigns IDs, keeps arrival order, notifies the UI of every mutation and
// applies or reverts changes on request from the restart advisory.
