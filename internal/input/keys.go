package input

import "fmt"

// Key is the name of a physical key, e.g. "W" or "Escape". The platform
// layer translates its key codes into these names.
type Key string

const (
	KeyUnknown Key = ""
	KeyEscape  Key = "Escape"
	KeySpace   Key = "Space"
	KeyEnter   Key = "Enter"
	KeyTab     Key = "Tab"
	KeyUp      Key = "Up"
	KeyDown    Key = "Down"
	KeyLeft    Key = "Left"
	KeyRight   Key = "Right"
)

var knownKeys = func() map[Key]bool {
	m := map[Key]bool{
		KeyEscape: true, KeySpace: true, KeyEnter: true, KeyTab: true,
		KeyUp: true, KeyDown: true, KeyLeft: true, KeyRight: true,
	}
	for c := 'A'; c <= 'Z'; c++ {
		m[Key(string(c))] = true
	}
	for c := '0'; c <= '9'; c++ {
		m[Key(string(c))] = true
	}
	for i := 1; i <= 12; i++ {
		m[Key(fmt.Sprintf("F%d", i))] = true
	}
	return m
}()

// ParseKey validates a key name.
func ParseKey(name string) (Key, error) {
	k := Key(name)
	if !knownKeys[k] {
		return KeyUnknown, fmt.Errorf("unknown key %q", name)
	}
	return k, nil
}
