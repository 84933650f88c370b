package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"fyne.io/fyne/v2/lang"
	"github.com/BurntSushi/toml"
)

//go:embed messages.toml
var defaultMessages []byte

// Default returns the catalog built from the embedded messages
func Default() *Catalog {
	c, err := Load(bytes.NewReader(defaultMessages))
	if err != nil {
		panic(fmt.Sprintf("embedded messages are invalid: %v", err))
	}
	return c
}

// Load decodes a TOML document of [language] tables
func Load(r io.Reader) (*Catalog, error) {
	var texts map[string]map[string]string
	if _, err := toml.NewDecoder(r).Decode(&texts); err != nil {
		return nil, fmt.Errorf("decode message catalog: %w", err)
	}
	if len(texts) == 0 {
		return nil, fmt.Errorf("message catalog has no languages")
	}
	return New(texts), nil
}

// LoadFile reads a catalog from path
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open message catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func systemLocale() string {
	return lang.SystemLocale().LanguageString()
}
