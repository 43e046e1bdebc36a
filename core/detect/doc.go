// Package detect identifies the game version that produced a savefile.
//
// Each candidate version declares a Signature: inclusive byte value ranges expected at
// labelled offsets of the decompressed savefile. The caller supplies the offset of each
// label through Positions, so the package knows nothing about the savefile layout.
//
// Detect tries candidates in ascending Priority order, keeping declaration order for
// equal priorities, and returns the first one whose signature matches every labelled
// byte. A buffer too short for a labelled offset does not match and never panics.
package detect
