// Package config loads, normalizes, and validates tableau tool settings.
//
// Settings live in a TOML file. Load looks for an explicit path first, then
// ~/.config/tableau/config.toml, then ./tableau.toml in the working
// directory, and falls back to Default when none exists. The engine itself
// takes no configuration; these knobs only shape the CLI and preview: log
// output, keyframe sampling, and how results are printed.
package config
