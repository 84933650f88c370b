package model

// Package model defines domain data structures shared across the panel: the
// settings tree, pending changes with their restart liveness, the derived
// advisory view state, and window handles carrying focus-group tags.
