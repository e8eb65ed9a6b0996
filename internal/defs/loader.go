// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"slices"
)

var (
	ErrUnknownEnemy = errors.New("unknown enemy id")
	ErrInvalidSheet = errors.New("invalid sprite sheet")
	ErrInvalidSpeed = errors.New("invalid speed range")
)

// LoadEnemyDefinitions reads the enemy configuration file and overlays it on
// the built-in definitions. Entries absent from the file keep their defaults.
func LoadEnemyDefinitions(path string) (Library, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy definitions file: %w", err)
	}
	lib, err := ParseEnemyDefinitions(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("Loaded %d enemy definitions from %s", len(lib), path)
	return lib, nil
}

// ParseEnemyDefinitions decodes a JSON array of definitions over the defaults.
func ParseEnemyDefinitions(data []byte) (Library, error) {
	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(data, &enemyDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	lib := DefaultEnemies()
	for _, def := range enemyDefs {
		if err := def.Validate(); err != nil {
			return nil, err
		}
		lib[def.ID] = def
	}
	return lib, nil
}

// Validate checks that a definition can be spawned and drawn.
func (d EnemyDefinition) Validate() error {
	if !slices.Contains(KnownEnemies, d.ID) {
		return fmt.Errorf("%w: %q", ErrUnknownEnemy, d.ID)
	}
	s := d.Sheet
	if s.Frames <= 0 || s.Width <= 0 || s.Height <= 0 || s.Width < s.Frames {
		return fmt.Errorf("%s: %w: %dx%d with %d frames", d.ID, ErrInvalidSheet, s.Width, s.Height, s.Frames)
	}
	if d.Scale <= 0 {
		return fmt.Errorf("%s: %w: scale %v", d.ID, ErrInvalidSheet, d.Scale)
	}
	if d.Speed.Min < 0 || d.Speed.Min > d.Speed.Max {
		return fmt.Errorf("%s: %w: [%v, %v)", d.ID, ErrInvalidSpeed, d.Speed.Min, d.Speed.Max)
	}
	return nil
}
