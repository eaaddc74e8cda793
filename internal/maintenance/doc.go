// Package maintenance implements the line-oriented command channel
// used by flashing tooling: IDENTIFY answers with name, version, and
// a per-boot session id so multi-device setups can target one board;
// the REBOOT commands hand off to a platform Rebooter after asking
// the scanner to release everything. The channel coexists with the
// scan loop but never mutates its state.
package maintenance
