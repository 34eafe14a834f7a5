// Package logging builds the slog loggers used by the tableau CLI and
// preview.
//
// Two formats are supported: a single-line console format for terminals and
// a JSON format with ts/level/msg keys for machines. The animation engine
// itself never logs; only the outer tools do.
package logging
