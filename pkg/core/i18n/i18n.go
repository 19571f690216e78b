// File: i18n.go
// Title: Message Catalogs
// Description: Loads the embedded YAML message catalogs and resolves
//              dotted keys with template interpolation, pluralization and
//              fallback to the default locale.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation with embedded en/ru catalogs

// Package i18n provides display names and labels in the supported locales.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"text/template"

	"gopkg.in/yaml.v3"
)

// DefaultLocale is used for keys missing from the current locale
const DefaultLocale = "en"

//go:embed locales/*.yaml
var catalogs embed.FS

// Options configures a Manager
type Options struct {
	// Locale selected initially (default: DefaultLocale)
	Locale string

	// Catalogs overrides the embedded catalogs; files named <locale>.yaml
	// at the root are loaded
	Catalogs fs.FS
}

// Manager resolves message keys for one current locale. It is safe for
// concurrent use.
type Manager struct {
	mu            sync.RWMutex
	currentLocale string
	translations  map[string]map[string]interface{} // locale -> catalog

	tmplMu    sync.Mutex
	templates map[string]*template.Template
}

// New loads all catalogs and selects opts.Locale
func New(opts Options) (*Manager, error) {
	fsys := opts.Catalogs
	if fsys == nil {
		sub, err := fs.Sub(catalogs, "locales")
		if err != nil {
			return nil, fmt.Errorf("embedded catalogs: %w", err)
		}
		fsys = sub
	}

	m := &Manager{
		currentLocale: DefaultLocale,
		translations:  make(map[string]map[string]interface{}),
		templates:     make(map[string]*template.Template),
	}
	if err := m.loadAll(fsys); err != nil {
		return nil, err
	}

	if opts.Locale != "" {
		if err := m.SetLocale(opts.Locale); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// MustNew is New for the embedded catalogs, panicking on failure
func MustNew(locale string) *Manager {
	m, err := New(Options{Locale: locale})
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Manager) loadAll(fsys fs.FS) error {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("failed to read catalogs: %w", err)
	}

	for _, entry := range entries {
		ext := path.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		locale := strings.ToLower(strings.TrimSuffix(entry.Name(), ext))

		content, err := fs.ReadFile(fsys, entry.Name())
		if err != nil {
			return fmt.Errorf("failed to read catalog %s: %w", entry.Name(), err)
		}
		var data map[string]interface{}
		if err := yaml.Unmarshal(content, &data); err != nil {
			return fmt.Errorf("failed to parse catalog %s: %w", entry.Name(), err)
		}
		m.translations[locale] = data
	}

	if _, ok := m.translations[DefaultLocale]; !ok {
		return fmt.Errorf("default locale %q not found", DefaultLocale)
	}
	return nil
}

// SetLocale changes the current locale
func (m *Manager) SetLocale(locale string) error {
	locale = strings.ToLower(strings.TrimSpace(locale))

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.translations[locale]; !ok {
		return fmt.Errorf("locale %q not available", locale)
	}
	m.currentLocale = locale
	return nil
}

// Locale returns the current locale
func (m *Manager) Locale() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentLocale
}

// Locales returns the available locales, sorted
func (m *Manager) Locales() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	locales := make([]string, 0, len(m.translations))
	for locale := range m.translations {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// T translates a dotted key. Missing keys render as "[key]".
func (m *Manager) T(key string, data ...map[string]interface{}) string {
	s, err := m.TryT(key, data...)
	if err != nil {
		return "[" + key + "]"
	}
	return s
}

// TryT translates a dotted key, reporting missing keys
func (m *Manager) TryT(key string, data ...map[string]interface{}) (string, error) {
	raw, locale := m.lookup(key)
	if raw == nil {
		return "", fmt.Errorf("translation not found: %s", key)
	}

	text := firstForm(raw)
	if len(data) == 0 || data[0] == nil {
		return text, nil
	}
	return m.render(locale+":"+key, text, data[0])
}

// Plural selects the form of key matching count. The template data gets
// Count set to count.
func (m *Manager) Plural(key string, count int, data map[string]interface{}) string {
	raw, locale := m.lookup(key)
	if raw == nil {
		return "[" + key + "]"
	}

	forms := pluralForms(raw)
	if len(forms) == 0 {
		return "[" + key + "]"
	}
	idx := pluralIndex(locale, count)
	if idx >= len(forms) {
		idx = len(forms) - 1
	}

	values := map[string]interface{}{"Count": count}
	for k, v := range data {
		values[k] = v
	}
	s, err := m.render(fmt.Sprintf("%s:%s#%d", locale, key, idx), forms[idx], values)
	if err != nil {
		return forms[idx]
	}
	return s
}

// lookup finds the raw value of key in the current locale, falling back to
// the default locale
func (m *Manager) lookup(key string) (interface{}, string) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if v := nested(m.translations[m.currentLocale], key); v != nil {
		return v, m.currentLocale
	}
	if m.currentLocale != DefaultLocale {
		if v := nested(m.translations[DefaultLocale], key); v != nil {
			return v, DefaultLocale
		}
	}
	return nil, ""
}

func (m *Manager) render(name, text string, data map[string]interface{}) (string, error) {
	m.tmplMu.Lock()
	tmpl, ok := m.templates[name]
	if !ok {
		var err error
		tmpl, err = template.New(name).Parse(text)
		if err != nil {
			m.tmplMu.Unlock()
			return text, fmt.Errorf("template compilation failed: %w", err)
		}
		m.templates[name] = tmpl
	}
	m.tmplMu.Unlock()

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return text, fmt.Errorf("template execution failed: %w", err)
	}
	return b.String(), nil
}

// nested walks a dotted key; maps are not valid leaves
func nested(data map[string]interface{}, key string) interface{} {
	current := data
	parts := strings.Split(key, ".")
	for i, k := range parts {
		value, ok := current[k]
		if !ok {
			return nil
		}
		if i == len(parts)-1 {
			if _, isMap := value.(map[string]interface{}); isMap {
				return nil
			}
			return value
		}
		next, ok := value.(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}
	return nil
}

func firstForm(raw interface{}) string {
	forms := pluralForms(raw)
	if len(forms) == 0 {
		return ""
	}
	return forms[0]
}

func pluralForms(raw interface{}) []string {
	if arr, ok := raw.([]interface{}); ok {
		forms := make([]string, len(arr))
		for i, v := range arr {
			forms[i] = fmt.Sprintf("%v", v)
		}
		return forms
	}
	return []string{fmt.Sprintf("%v", raw)}
}

// pluralIndex returns the form index for count: English has one/other,
// Russian one/few/many
func pluralIndex(locale string, count int) int {
	if count < 0 {
		count = -count
	}
	switch locale {
	case "ru":
		mod10, mod100 := count%10, count%100
		switch {
		case mod10 == 1 && mod100 != 11:
			return 0
		case mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14):
			return 1
		default:
			return 2
		}
	default:
		if count == 1 {
			return 0
		}
		return 1
	}
}
