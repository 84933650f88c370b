package catalog

// Package catalog provides the message catalog: per-language key to template
// lookups loaded from TOML, closest-language selection, and %name template
// substitution.
