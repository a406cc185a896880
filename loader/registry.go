package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Decoder unmarshals a document into v.
type Decoder func(data []byte, v any) error

// registry stores decoders by lower-case file extension, including the dot.
var (
	registryMu sync.RWMutex
	registry   = make(map[string]Decoder)
)

func init() {
	Register(".yaml", yaml.Unmarshal)
	Register(".yml", yaml.Unmarshal)
	Register(".toml", toml.Unmarshal)
	Register(".json", json.Unmarshal)
}

// Register adds a decoder for files with the given extension (e.g. ".yaml").
// Panics if a decoder for the extension is already registered.
func Register(ext string, dec Decoder) {
	ext = normalizeExt(ext)

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[ext]; exists {
		panic(fmt.Sprintf("decoder for %q already registered", ext))
	}
	registry[ext] = dec
}

// Unregister removes the decoder for ext.
// This is primarily useful for testing.
func Unregister(ext string) {
	registryMu.Lock()
	defer registryMu.Unlock()

	delete(registry, normalizeExt(ext))
}

// Extensions returns the registered extensions, sorted alphabetically.
func Extensions() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	exts := make([]string, 0, len(registry))
	for ext := range registry {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// DecoderFor returns the decoder registered for path's extension.
// Returns ErrUnsupportedFormat if there is none.
func DecoderFor(path string) (Decoder, error) {
	ext := normalizeExt(filepath.Ext(path))

	registryMu.RLock()
	dec, ok := registry[ext]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Base(path))
	}
	return dec, nil
}

// Decode unmarshals data into v using the decoder for path's extension.
func Decode(path string, data []byte, v any) error {
	dec, err := DecoderFor(path)
	if err != nil {
		return err
	}
	if err := dec(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return nil
}

// DecodeFile reads path and unmarshals it into v.
func DecodeFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return Decode(path, data, v)
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
