// Package key defines the value types shared across the scanning
// pipeline:
//
//   - Code: an opaque key code for the output sink (ASCII or extended)
//   - Modifier: a bitmask of modifier keys (Ctrl, Alt, Shift, Meta)
//   - Action: what a matrix position does when pressed — nothing, a
//     base key with chorded modifiers, or a pure modifier
//
// All types are immutable values; the keymap table and the dispatch
// layer are built on them.
package key
