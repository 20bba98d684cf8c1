package input

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// specialKeyNames maps configuration names to non-rune tcell keys, lookup is case-insensitive
var specialKeyNames = map[string]tcell.Key{
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"enter":     tcell.KeyEnter,
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
	"ctrl-c":    tcell.KeyCtrlC,
	"ctrl-q":    tcell.KeyCtrlQ,
	"ctrl-s":    tcell.KeyCtrlS,
	"f1":        tcell.KeyF1,
}

// Rune aliases for keys awkward to write bare in YAML
var runeAliases = map[string]rune{
	"space": ' ',
}

// KeyTable maps keys to actions
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]Action

	// Printable keys, letters are matched case-insensitively
	Runes map[rune]Action
}

// ParseKey resolves a key name to either a special key or a rune
func ParseKey(name string) (tcell.Key, rune, error) {
	if name == "" {
		return tcell.KeyNUL, 0, fmt.Errorf("empty key name")
	}
	lower := strings.ToLower(name)
	if k, ok := specialKeyNames[lower]; ok {
		return k, 0, nil
	}
	if r, ok := runeAliases[lower]; ok {
		return tcell.KeyRune, r, nil
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return tcell.KeyRune, r, nil
	}
	return tcell.KeyNUL, 0, fmt.Errorf("unknown key %q", name)
}

// BuildKeyTable compiles action to key-name bindings
// Returns error on unknown action names, invalid key names, or a key bound twice
func BuildKeyTable(bindings map[string][]string) (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]Action),
		Runes:       make(map[rune]Action),
	}

	// Sorted for deterministic conflict errors
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		action, err := ParseAction(name)
		if err != nil {
			return nil, err
		}
		for _, keyName := range bindings[name] {
			key, r, err := ParseKey(keyName)
			if err != nil {
				return nil, fmt.Errorf("action %s: %w", name, err)
			}
			if key == tcell.KeyRune {
				r = normalizeRune(r)
				if prev, dup := kt.Runes[r]; dup && prev != action {
					return nil, fmt.Errorf("key %q bound to both %s and %s", keyName, prev, action)
				}
				kt.Runes[r] = action
				continue
			}
			if prev, dup := kt.SpecialKeys[key]; dup && prev != action {
				return nil, fmt.Errorf("key %q bound to both %s and %s", keyName, prev, action)
			}
			kt.SpecialKeys[key] = action
		}
	}
	return kt, nil
}

// Lookup returns the action bound to a key event
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[normalizeRune(ev.Rune())]
	}
	return kt.SpecialKeys[ev.Key()]
}

func normalizeRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
