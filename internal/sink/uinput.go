package sink

import (
	"fmt"
	"sync"

	"github.com/bendahl/uinput"

	"github.com/dshills/wingkey/internal/key"
	"github.com/dshills/wingkey/internal/logging"
)

// Keyboard emits the key stream through a virtual uinput keyboard
// device. Held linux key codes are tracked so ReleaseAll can clear
// the device even when the scanner's own accounting has drifted.
type Keyboard struct {
	mu   sync.Mutex
	kb   uinput.Keyboard
	held map[int]struct{}
	log  *logging.Logger
}

// NewKeyboard creates a virtual keyboard device named name.
func NewKeyboard(name string, log *logging.Logger) (*Keyboard, error) {
	if log == nil {
		log = logging.NullLogger
	}
	kb, err := uinput.CreateKeyboard("/dev/uinput", []byte(name))
	if err != nil {
		return nil, fmt.Errorf("creating uinput keyboard: %w", err)
	}
	return &Keyboard{
		kb:   kb,
		held: make(map[int]struct{}),
		log:  log.WithComponent("uinput"),
	}, nil
}

// Close destroys the virtual device.
func (k *Keyboard) Close() error {
	return k.kb.Close()
}

// Press implements Sink.
func (k *Keyboard) Press(code key.Code) {
	kc, ok := linuxKeycode(code)
	if !ok {
		k.log.Warn("no keycode for %s, dropping press", code)
		return
	}
	k.down(kc)
}

// Release implements Sink.
func (k *Keyboard) Release(code key.Code) {
	kc, ok := linuxKeycode(code)
	if !ok {
		return
	}
	k.up(kc)
}

// PressModifier implements Sink.
func (k *Keyboard) PressModifier(mod key.Modifier) {
	if kc, ok := modifierKeycode(mod); ok {
		k.down(kc)
	}
}

// ReleaseModifier implements Sink.
func (k *Keyboard) ReleaseModifier(mod key.Modifier) {
	if kc, ok := modifierKeycode(mod); ok {
		k.up(kc)
	}
}

// ReleaseAll implements Sink.
func (k *Keyboard) ReleaseAll() {
	k.mu.Lock()
	defer k.mu.Unlock()
	for kc := range k.held {
		if err := k.kb.KeyUp(kc); err != nil {
			k.log.Error("key up %d: %v", kc, err)
		}
		delete(k.held, kc)
	}
}

func (k *Keyboard) down(kc int) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if err := k.kb.KeyDown(kc); err != nil {
		k.log.Error("key down %d: %v", kc, err)
		return
	}
	k.held[kc] = struct{}{}
}

func (k *Keyboard) up(kc int) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if err := k.kb.KeyUp(kc); err != nil {
		k.log.Error("key up %d: %v", kc, err)
	}
	delete(k.held, kc)
}
