package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go-fps-factory/internal/defs"
	"go-fps-factory/pkg/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ModelManager loads, caches and unloads the 3D models of robots and bosses.
// A robot without a model file on disk gets a generated placeholder mesh.
type ModelManager struct {
	dir    string
	models map[string]rl.Model
	log    *logger.Logger
}

// NewModelManager looks for <id>.obj under dir/models and <id>.png under
// dir/textures.
func NewModelManager(dir string, log *logger.Logger) *ModelManager {
	return &ModelManager{
		dir:    dir,
		models: make(map[string]rl.Model),
		log:    log,
	}
}

// loadSingleModel loads one model and its texture, falling back to mesh.
func (m *ModelManager) loadSingleModel(id string, fallback func() rl.Mesh) {
	defer func() {
		if r := recover(); r != nil {
			m.log.Error("raylib panicked while loading model for '%s', skipping: %v", id, r)
		}
	}()

	if _, ok := m.models[id]; ok {
		return
	}

	var model rl.Model
	modelPath := filepath.Join(m.dir, "models", fmt.Sprintf("%s.obj", id))
	if _, err := os.Stat(modelPath); err == nil {
		model = rl.LoadModel(modelPath)
	}
	if model.MeshCount == 0 {
		m.log.Debug("no model for %s at %s, using a generated mesh", id, modelPath)
		model = rl.LoadModelFromMesh(fallback())
	}

	texturePath := filepath.Join(m.dir, "textures", fmt.Sprintf("%s.png", id))
	if _, err := os.Stat(texturePath); err == nil {
		texture := rl.LoadTexture(texturePath)
		if texture.ID > 0 {
			rl.SetMaterialTexture(model.Materials, rl.MapDiffuse, texture)
		} else {
			m.log.Warn("failed to load texture for model %s from %s", id, texturePath)
		}
	}

	m.models[id] = model
}

// LoadRobotModels loads a model for every enemy and boss in lib.
func (m *ModelManager) LoadRobotModels(lib *defs.Library) {
	for _, id := range sortedIDs(lib.Enemies) {
		def := lib.Enemies[id]
		r := float32(def.Radius)
		m.loadSingleModel(id, func() rl.Mesh { return rl.GenMeshCube(r*1.4, r*2, r*1.4) })
	}
	for _, id := range sortedIDs(lib.Bosses) {
		def := lib.Bosses[id]
		r := float32(def.Radius)
		m.loadSingleModel(id, func() rl.Mesh { return rl.GenMeshSphere(r, 16, 16) })
	}
	m.log.Info("loaded %d robot models", len(m.models))
}

// Cleanup unloads every model.
func (m *ModelManager) Cleanup() {
	for id, model := range m.models {
		rl.UnloadModel(model)
		delete(m.models, id)
	}
}

// GetModel returns the model for an enemy or boss id.
func (m *ModelManager) GetModel(id string) (rl.Model, bool) {
	model, ok := m.models[id]
	return model, ok
}

func sortedIDs[V any](in map[string]V) []string {
	out := make([]string, 0, len(in))
	for id := range in {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
