package x11

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgb/xtest"
	"github.com/BurntSushi/xgbutil/keybind"
)

var modifierKeysyms = map[string]string{
	"super":   "Super_L",
	"mod4":    "Super_L",
	"ctrl":    "Control_L",
	"control": "Control_L",
	"alt":     "Alt_L",
	"mod1":    "Alt_L",
	"shift":   "Shift_L",
}

// SplitCombo turns "super+Left" into the keysyms to press in order.
func SplitCombo(combo string) ([]string, error) {
	parts := strings.Split(strings.TrimSpace(combo), "+")
	keysyms := make([]string, 0, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("invalid key combination %q", combo)
		}
		if i < len(parts)-1 {
			sym, ok := modifierKeysyms[strings.ToLower(part)]
			if !ok {
				return nil, fmt.Errorf("unknown modifier %q in %q", part, combo)
			}
			keysyms = append(keysyms, sym)
			continue
		}
		keysyms = append(keysyms, part)
	}
	return keysyms, nil
}

// SendKeyCombo synthesizes a key combination through the XTEST extension:
// every key is pressed in order, then released in reverse.
func (c *Connection) SendKeyCombo(combo string) error {
	keysyms, err := SplitCombo(combo)
	if err != nil {
		return err
	}
	if err := xtest.Init(c.XUtil.Conn()); err != nil {
		return fmt.Errorf("xtest init failed: %w", err)
	}

	keycodes := make([]xproto.Keycode, 0, len(keysyms))
	for _, sym := range keysyms {
		codes := keybind.StrToKeycodes(c.XUtil, sym)
		if len(codes) == 0 {
			return fmt.Errorf("no keycode for keysym %q", sym)
		}
		keycodes = append(keycodes, codes[0])
	}

	for _, kc := range keycodes {
		if err := c.fakeKey(xproto.KeyPress, kc); err != nil {
			return err
		}
	}
	for i := len(keycodes) - 1; i >= 0; i-- {
		if err := c.fakeKey(xproto.KeyRelease, keycodes[i]); err != nil {
			return err
		}
	}
	c.XUtil.Sync()
	return nil
}

func (c *Connection) fakeKey(eventType byte, kc xproto.Keycode) error {
	err := xtest.FakeInputChecked(c.XUtil.Conn(), eventType, byte(kc), xproto.TimeCurrentTime, c.Root, 0, 0, 0).Check()
	if err != nil {
		return fmt.Errorf("fake input for keycode %d failed: %w", kc, err)
	}
	return nil
}
