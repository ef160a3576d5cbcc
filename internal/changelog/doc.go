// Package changelog renders release fragments as markdown and merges them
// into an existing changelog file.
//
// This package implements:
//   - Release descriptors covering one commit range per changelog entry
//   - Markdown rendering with commits grouped into sections by semantic type
//   - Three merge strategies (Replace, Prepend, Append) anchored on the
//     literal "- - -" separator line
//
// Rendering is a pure function of the release and the injected type table;
// all file I/O lives in the Writer.
package changelog
