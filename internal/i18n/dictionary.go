package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

//go:embed locales/*.json
var localeFS embed.FS

// ErrUnsupportedLocale is returned for codes outside Supported
var ErrUnsupportedLocale = errors.New("unsupported locale")

// Dictionary maps message keys to translated text
type Dictionary map[string]string

// T returns the translation for key, or key itself when missing.
func (d Dictionary) T(key string) string {
	if v, ok := d[key]; ok {
		return v
	}
	return key
}

var (
	loadOnce     sync.Once
	dictionaries map[string]Dictionary
	loadErr      error
)

func loadDictionaries() {
	dictionaries = make(map[string]Dictionary, len(Supported))
	for _, code := range Supported {
		raw, err := localeFS.ReadFile("locales/" + code + ".json")
		if err != nil {
			loadErr = fmt.Errorf("failed to read %s dictionary: %w", code, err)
			return
		}
		var d Dictionary
		if err := json.Unmarshal(raw, &d); err != nil {
			loadErr = fmt.Errorf("failed to parse %s dictionary: %w", code, err)
			return
		}
		dictionaries[code] = d
	}
}

// Load returns the dictionary for code. Dictionaries are parsed once and
// shared; callers must not modify the returned map.
func Load(code string) (Dictionary, error) {
	if !IsSupported(code) {
		return nil, ErrUnsupportedLocale
	}
	loadOnce.Do(loadDictionaries)
	if loadErr != nil {
		return nil, loadErr
	}
	return dictionaries[code], nil
}
