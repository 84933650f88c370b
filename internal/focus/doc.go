package focus

// Package focus arbitrates window focus loss across a logical window group.
// Focus moving to a window that shares a linked tag is not a blur; anything
// else is. It also provides the cancellable delayed-close timer owned by a
// window's lifecycle.
