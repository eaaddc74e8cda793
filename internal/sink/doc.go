// Package sink defines the output boundary of the scanner and its
// implementations: a virtual uinput keyboard for real HID output and
// a Null sink for dry runs. The interactive simulator wraps a Sink
// with its own event log.
package sink
