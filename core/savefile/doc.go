// Package savefile reads and writes Heroes of Might and Magic III savefiles.
//
// A savefile is a gzip stream. Its unpacked bytes start with the magic "H3SVG"
// (single scenario) or "H3SVC" (campaign), followed within the first hundred bytes
// by the map name and description as little-endian 16-bit length-prefixed texts.
//
// # Store Interface
//
// All file access goes through Store, so loading and saving can be tested against
// the mock in core/savefile/mocks. OSStore is the filesystem implementation.
//
// # Version Detection
//
// Load matches the unpacked bytes against the candidates of the loaded version
// plugins using core/detect. A savefile of no known version still loads, with
// Detected left false; callers that need a version return ErrUnsupportedVersion.
//
// # Editing
//
// Patch replaces a span of the unpacked bytes. Save writes the whole buffer back,
// SaveRanges writes only the given spans on top of the last saved contents.
//
//	sf, err := savefile.Load(store, "game.GM1", manager.Candidates(), log)
//	err = sf.Patch([]byte{0x05}, 0x1F0, 0x1F1)
//	err = sf.Save("")
package savefile
