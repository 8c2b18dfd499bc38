// Package catalog holds the reference data for Cosmic Converter.
//
// # Overview
//
// The catalog is a fixed, in-memory list of songs. There is no backing
// store and no network: Default returns the five built-in tracks and
// Search filters them by case-insensitive substring over title, artist,
// and album.
//
// # Core Types
//
//   - Song: immutable reference data (id, title, artist, album, "M:SS"
//     duration, opaque artwork URL, initial liked flag)
//   - Format: the three download encodings (MP3, FLAC, WAV)
//   - Catalog: ordered songs plus an id index
//
// # Pricing
//
// Each format maps to a fixed tier, stored in minor units:
//
//	MP3   0.99
//	FLAC  1.99
//	WAV   2.99
//
// Format.Price returns a *money.Money in the requested currency.
//
// # Search Semantics
//
//	catalog.Default().Search("spectre")  // [The Spectre]
//	catalog.Default().Search("zzz")      // []
//	catalog.Default().Search("   ")      // [] (whitespace counts as empty)
//
// Whitespace-only queries return nothing rather than the whole catalog.
package catalog
