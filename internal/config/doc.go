// Package config loads, normalizes, and validates txt2epub configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts),
// reads TOML files, and honours environment fallbacks such as
// TXT2EPUB_AUTHOR. The Config type gathers the book defaults, encoding
// candidates, marker rules and logging settings the CLI needs.
//
// Always obtain settings through this package so the CLI receives trimmed
// values, canonical log formats, and clear validation errors.
package config
