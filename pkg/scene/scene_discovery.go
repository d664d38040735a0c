package scene

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownScene is returned by Lookup for a name with no registered constructor
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Mode        string `json:"mode"`
}

type builtin struct {
	description string
	create      func() *Scene
}

var builtins = map[string]builtin{
	"normals":    {"Two spheres shaded by surface normal", NewNormalsScene},
	"shadows":    {"Diffuse spheres with point lights and hard shadows", NewShadowsScene},
	"whitted":    {"Diffuse, mirror and glass spheres with recursive reflection and refraction", NewWhittedScene},
	"spheregrid": {"Rows of plastic, mirror and glass spheres in a sweep of hues", NewSphereGridScene},
}

// Names returns the built-in scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns metadata for every built-in scene, sorted by name
func List() []SceneInfo {
	infos := make([]SceneInfo, 0, len(builtins))
	for _, name := range Names() {
		b := builtins[name]
		infos = append(infos, SceneInfo{
			Name:        name,
			Description: b.description,
			Mode:        b.create().Defaults.Mode,
		})
	}
	return infos
}

// Lookup creates a fresh instance of the named built-in scene
func Lookup(name string) (*Scene, error) {
	b, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return b.create(), nil
}
