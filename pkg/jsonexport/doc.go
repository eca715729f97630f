// Package jsonexport serializes a generated or solved puzzle artifact to
// JSON for cmd/puzzlegen's --json output flag: json.MarshalIndent for
// human-readable output, json.Marshal for compact storage.
package jsonexport
