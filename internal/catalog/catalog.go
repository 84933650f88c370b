package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Message keys
const (
	KeyOSName        = "osName"
	KeyOSRestartText = "osRestartText"
	KeyRestartText   = "restartText"
	KeyUndo          = "undo"
	KeyApplyNow      = "applyNow"
	KeyRestartNow    = "restartNow"

	KeyPanelTitle = "panelTitle"
	KeyLanguage   = "language"
	KeyClose      = "close"
)

// Template placeholders
const (
	PlaceholderSolutions = "solutions"
)

const (
	FallbackLanguage = "en"
	SystemLanguage   = "system"
)

// Catalog manages message templates per language
type Catalog struct {
	currentLanguage string
	texts           map[string]map[string]string
	systemLocale    func() string
}

// New creates a catalog from per-language tables
func New(texts map[string]map[string]string) *Catalog {
	c := &Catalog{
		currentLanguage: FallbackLanguage,
		texts:           make(map[string]map[string]string, len(texts)),
		systemLocale:    systemLocale,
	}
	for lang, table := range texts {
		copied := make(map[string]string, len(table))
		for k, v := range table {
			copied[k] = v
		}
		c.texts[lang] = copied
	}
	return c
}

// SetLanguage selects the closest available language for tag. "system" uses
// the OS locale. Returns the language actually selected.
func (c *Catalog) SetLanguage(tag string) string {
	if tag == SystemLanguage || tag == "" {
		tag = c.systemLocale()
	}
	c.currentLanguage = c.match(tag)
	return c.currentLanguage
}

func (c *Catalog) match(tag string) string {
	if _, ok := c.texts[tag]; ok {
		return tag
	}

	langs := c.Languages()
	if len(langs) == 0 {
		return FallbackLanguage
	}

	// The fallback goes first so that no-confidence matches resolve to it.
	supported := []language.Tag{language.Make(FallbackLanguage)}
	codes := []string{FallbackLanguage}
	for _, code := range langs {
		if code == FallbackLanguage {
			continue
		}
		supported = append(supported, language.Make(code))
		codes = append(codes, code)
	}

	desired, err := language.Parse(tag)
	if err != nil {
		return FallbackLanguage
	}
	_, index, confidence := language.NewMatcher(supported).Match(desired)
	if confidence == language.No {
		return FallbackLanguage
	}
	return codes[index]
}

// Lookup returns the template for key in the current language, falling back to
// English. The second result is false when the key is absent.
func (c *Catalog) Lookup(key string) (string, bool) {
	if c == nil {
		return "", false
	}
	if texts, exists := c.texts[c.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text, true
		}
	}

	if texts, exists := c.texts[FallbackLanguage]; exists {
		if text, found := texts[key]; found {
			return text, true
		}
	}

	return "", false
}

// Text returns the template for key, or the key itself when absent
func (c *Catalog) Text(key string) string {
	if text, ok := c.Lookup(key); ok {
		return text
	}
	return key
}

// CurrentLanguage returns the current language code
func (c *Catalog) CurrentLanguage() string {
	return c.currentLanguage
}

// Languages returns the available language codes, sorted
func (c *Catalog) Languages() []string {
	langs := make([]string, 0, len(c.texts))
	for lang := range c.texts {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// LanguageNames returns display names for the available languages
func (c *Catalog) LanguageNames() map[string]string {
	names := make(map[string]string, len(c.texts))
	for _, code := range c.Languages() {
		names[code] = displayName(code)
	}
	return names
}

func displayName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	base, _ := tag.Base()
	switch base.String() {
	case "en":
		return "English"
	case "ru":
		return "Русский"
	case "pt":
		return "Português"
	}
	return code
}

// Format substitutes %name placeholders in template. Longer names are
// replaced first so that %solution does not eat %solutions.
func Format(template string, values map[string]string) string {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})

	pairs := make([]string, 0, len(names)*2)
	for _, name := range names {
		pairs = append(pairs, "%"+name, values[name])
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
