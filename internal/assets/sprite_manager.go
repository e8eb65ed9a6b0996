// internal/assets/sprite_manager.go
package assets

import (
	"enemy-variety/internal/defs"
	"fmt"
	"image"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
)

// SpriteManager загружает листы спрайтов врагов с диска.
type SpriteManager struct {
	dir    string
	sheets map[string]image.Image
}

// NewSpriteManager создает менеджер, читающий листы из dir.
func NewSpriteManager(dir string) *SpriteManager {
	return &SpriteManager{
		dir:    dir,
		sheets: make(map[string]image.Image),
	}
}

// Load загружает листы для всех определений. Отсутствующий или битый файл
// заменяется сгенерированной заглушкой, игра при этом не падает.
func (m *SpriteManager) Load(lib defs.Library) map[string]image.Image {
	for id, def := range lib {
		m.sheets[id] = m.loadSingleSheet(def)
	}
	log.Printf("Loaded %d sprite sheets", len(m.sheets))
	return m.sheets
}

func (m *SpriteManager) loadSingleSheet(def defs.EnemyDefinition) image.Image {
	path := filepath.Join(m.dir, def.Sheet.Path)
	img, err := decodeSheet(path)
	if err != nil {
		log.Printf("WARNING: sprite sheet for %s not loaded (%v), using placeholder", def.ID, err)
		return Placeholder(def)
	}
	if b := img.Bounds(); b.Dx() != def.Sheet.Width || b.Dy() != def.Sheet.Height {
		log.Printf("WARNING: %s is %dx%d, expected %dx%d, rescaling", path, b.Dx(), b.Dy(), def.Sheet.Width, def.Sheet.Height)
		return NormalizeSheet(img, def.Sheet)
	}
	return img
}

func decodeSheet(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// Sheet возвращает загруженный лист по ID.
func (m *SpriteManager) Sheet(id string) (image.Image, bool) {
	img, ok := m.sheets[id]
	return img, ok
}
