// Package project reads and writes tableau project files.
//
// A project file describes one artboard: its states, the transitions
// between them and any auto-playing chains. Files are YAML by default;
// a .json extension switches to JSON. Loading assigns ids to entities that
// lack one, fills timestamps, and validates every cross reference so the
// engine only ever sees consistent input.
package project
