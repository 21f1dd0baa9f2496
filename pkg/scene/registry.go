package scene

import (
	"sort"

	"golang.org/x/xerrors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// ErrUnknownScene is returned when looking up a scene that is not registered
var ErrUnknownScene = xerrors.New("scene: unknown scene")

// Definition is a scene together with the camera it is meant to be viewed from
type Definition struct {
	Scene  *Scene
	Camera renderer.CameraConfig
}

// Builder constructs an unbuilt scene definition
type Builder func() (*Definition, error)

// Entry describes a registered scene
type Entry struct {
	Name        string
	Description string
	Build       Builder
}

var registry = map[string]Entry{
	"spheres":   {"spheres", "Phong spheres and a triangle under two point lights", NewSpheresScene},
	"materials": {"materials", "One sphere per material on a checkered floor", NewMaterialsScene},
	"occlusion": {"occlusion", "Matte objects lit only by an ambient occluder", NewOcclusionScene},
	"triangles": {"triangles", "1000 random triangles in a cube", NewTrianglesScene},
	"mesh":      {"mesh", "A procedural torus mesh instanced with transforms", NewMeshScene},
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the registry entry for name
func Lookup(name string) (Entry, error) {
	entry, ok := registry[name]
	if !ok {
		return Entry{}, xerrors.Errorf("%q: %w", name, ErrUnknownScene)
	}
	return entry, nil
}

// Load constructs the named scene and builds its index
func Load(name string, config core.KDTreeConfig, logger core.Logger) (*Definition, error) {
	entry, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	def, err := entry.Build()
	if err != nil {
		return nil, xerrors.Errorf("while constructing scene %q: %w", name, err)
	}
	if err := def.Scene.Build(config, logger); err != nil {
		return nil, xerrors.Errorf("scene %q: %w", name, err)
	}
	return def, nil
}
