// Package dashpage provides the artifact engine behind a prompt-to-website
// generator. It parses streamed model output into structured multi-file
// artifacts or edit instructions before the stream has finished, applies
// edits against existing files with layered fallback matching, and
// deduplicates repeated page components into shared files.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or concern (e.g., sqlite/, goquery/,
// stream/, patch/).
package dashpage
