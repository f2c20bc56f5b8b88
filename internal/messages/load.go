package messages

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalog []byte

// Default returns the bundle compiled into the binary.
func Default() (*Bundle, error) {
	raw, err := decode(defaultCatalog, ".yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to parse built-in message catalog: %w", err)
	}
	return NewBundle(raw)
}

// Load reads a message catalog file. The format is chosen by extension:
// .yaml/.yml, .json or .toml.
func Load(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read message catalog: %w", err)
	}

	raw, err := decode(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse message catalog %s: %w", path, err)
	}
	return NewBundle(raw)
}

func decode(data []byte, ext string) (map[string]map[string]string, error) {
	raw := make(map[string]map[string]string)

	var err error
	switch ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	case ".json":
		err = json.Unmarshal(data, &raw)
	case ".toml":
		_, err = toml.Decode(string(data), &raw)
	default:
		return nil, fmt.Errorf("unsupported message catalog format %q", ext)
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}
