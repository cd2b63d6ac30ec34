// Package language turns the language codes given on the command line into
// human-readable names for logs.
//
// Codes are never rewritten: mkvmerge receives them exactly as configured.
// Common languages resolve through a small table that also knows ISO 639-2/B
// variants and English names; other tags go through the CLDR display names
// from golang.org/x/text.
package language
