// Package gamedata holds the monster definitions compiled into the binary.
package gamedata

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed monsters.json
var dataFS embed.FS

// Load decodes one embedded data file into T.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("read embedded %s: %w", filename, err)
	}
	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("parse %s: %w", filename, err)
	}
	return result, nil
}
