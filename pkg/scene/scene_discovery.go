package scene

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/PistachioCake/raytracing/pkg/core"
	"github.com/PistachioCake/raytracing/pkg/geometry"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Name used to select the scene
	DisplayName string `json:"displayName"` // Human readable name
	Description string `json:"description"`
}

// builder constructs a scene. random is seeded by the caller so that any
// randomized layout or texture is reproducible.
type builder func(random *rand.Rand, logger core.Logger, overrides []geometry.CameraConfig) *Scene

type registration struct {
	description string
	build       builder
}

var builtinScenes = map[string]registration{
	"random-spheres": {
		description: "Field of random diffuse, metal and glass spheres with motion blur",
		build: func(random *rand.Rand, _ core.Logger, overrides []geometry.CameraConfig) *Scene {
			return NewRandomSpheresScene(random, overrides...)
		},
	},
	"two-spheres": {
		description: "Two large spheres with a 3D checker texture",
		build: func(_ *rand.Rand, _ core.Logger, overrides []geometry.CameraConfig) *Scene {
			return NewTwoSpheresScene(overrides...)
		},
	},
	"earth": {
		description: "Image textured globe",
		build: func(_ *rand.Rand, logger core.Logger, overrides []geometry.CameraConfig) *Scene {
			return NewEarthScene(DefaultEarthTexture, logger, overrides...)
		},
	},
	"two-perlin-spheres": {
		description: "Ground and sphere with Perlin marble texture",
		build: func(random *rand.Rand, _ core.Logger, overrides []geometry.CameraConfig) *Scene {
			return NewTwoPerlinSpheresScene(random, overrides...)
		},
	},
	"quads": {
		description: "Five colored quads",
		build: func(_ *rand.Rand, _ core.Logger, overrides []geometry.CameraConfig) *Scene {
			return NewQuadsScene(overrides...)
		},
	},
	"simple-light": {
		description: "Marble spheres lit by emissive sphere and quad",
		build: func(random *rand.Rand, _ core.Logger, overrides []geometry.CameraConfig) *Scene {
			return NewSimpleLightScene(random, overrides...)
		},
	},
	"cornell-box": {
		description: "Cornell box with two rotated boxes",
		build: func(_ *rand.Rand, _ core.Logger, overrides []geometry.CameraConfig) *Scene {
			return NewCornellScene(overrides...)
		},
	},
}

// ListScenes returns all built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for id, reg := range builtinScenes {
		scenes = append(scenes, SceneInfo{
			ID:          id,
			DisplayName: titleCase(id),
			Description: reg.description,
		})
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Names returns the IDs of all built-in scenes in sorted order
func Names() []string {
	scenes := ListScenes()
	names := make([]string, len(scenes))
	for i, info := range scenes {
		names[i] = info.ID
	}
	return names
}

// Build constructs the named scene. The same name and seed always produce
// the same scene.
func Build(name string, seed int64, logger core.Logger, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	reg, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	if logger == nil {
		logger = core.NopLogger{}
	}
	return reg.build(rand.New(rand.NewSource(seed)), logger, cameraOverrides), nil
}

// titleCase converts "kebab-case" or "snake_case" to "Title Case"
func titleCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_'
	})
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
