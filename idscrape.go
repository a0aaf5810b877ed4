// Package idscrape extracts the text of DOM elements, located by their id
// attribute, from an HTML document fetched over HTTP or read from a file.
// Results are ordered identifier → text mappings with null-like values
// removed. Identifier lists can be supplied directly or derived from a YAML
// category file, and scraped results can be recorded in memory or persisted
// as snapshots.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, yaml/, sqlite/).
package idscrape
