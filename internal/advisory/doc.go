package advisory

// Package advisory derives the restart advisory for a settings group from the
// pending changes: which applications (or the operating system) need a
// restart, the banner text and the action label. It also forwards undo and
// restart requests for the changes that belong to the group.
