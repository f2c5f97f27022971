// Package config loads, normalizes, and validates levain configuration data.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours the LEVAIN_STORE environment fallback for the recipe
// file location. Classifier hints are lowercased and deduplicated here so the
// ingredient matcher can compare them directly.
package config
