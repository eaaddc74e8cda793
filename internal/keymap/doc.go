// Package keymap provides the coordinate-to-action lookup table.
//
// A Table is built once at startup (see Default for the reference
// layout) and read-only afterwards. Resolve is total over the full
// coordinate space; positions without a wired switch resolve to the
// empty action.
package keymap
