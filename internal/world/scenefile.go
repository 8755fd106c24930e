package world

import (
	"encoding/json"
	"fmt"
	"os"

	"farmdrive/internal/components"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
)

// --- JSON types ---

type SceneFile struct {
	Name    string      `json:"name"`
	Objects []ObjectDef `json:"objects"`
}

type ObjectDef struct {
	Name     string     `json:"name"`
	Tags     []string   `json:"tags,omitempty"`
	Shape    string     `json:"shape,omitempty"` // box or cylinder
	Position [3]float32 `json:"position"`
	Rotation [3]float32 `json:"rotation,omitempty"` // Euler degrees
	Size     [3]float32 `json:"size"`
	Color    string     `json:"color,omitempty"`

	Mass       float32 `json:"mass,omitempty"` // 0 is static
	Vehicle    bool    `json:"vehicle,omitempty"`
	Toppleable bool    `json:"toppleable,omitempty"`
	// Decorative objects are drawn but have no body.
	Decorative bool `json:"decorative,omitempty"`
	// Parent names an object defined earlier in the file. A child's
	// position is an offset in metres in the parent's frame. Only decorative
	// objects may have a parent.
	Parent string `json:"parent,omitempty"`

	Scripts []ScriptDef `json:"scripts,omitempty"`
}

type ScriptDef struct {
	Name  string         `json:"name"`
	Props map[string]any `json:"props,omitempty"`
}

// --- Color mapping ---

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"DarkGreen": rl.DarkGreen,
	"Yellow":    rl.Yellow,
	"Orange":    rl.Orange,
	"Magenta":   rl.Magenta,
	"SkyBlue":   rl.SkyBlue,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Brown":     rl.Brown,
	"DarkBrown": rl.DarkBrown,
	"Beige":     rl.Beige,
	"Maroon":    rl.Maroon,
	"Gold":      rl.Gold,
}

func lookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	return rl.White
}

// --- Loading ---

// ParseScene decodes and checks a scene document.
func ParseScene(data []byte) (*SceneFile, error) {
	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, errors.Wrap(err, "parse scene")
	}
	if err := sf.Validate(); err != nil {
		return nil, err
	}
	return &sf, nil
}

// LoadSceneFile reads a scene from disk.
func LoadSceneFile(path string) (*SceneFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read scene")
	}
	sf, err := ParseScene(data)
	if err != nil {
		return nil, errors.Wrapf(err, "scene %s", path)
	}
	return sf, nil
}

// Validate catches mistakes that would otherwise surface as odd physics.
func (sf *SceneFile) Validate() error {
	vehicles := 0
	names := make(map[string]bool, len(sf.Objects))
	for i, o := range sf.Objects {
		where := fmt.Sprintf("object %d (%q)", i, o.Name)
		if o.Name == "" {
			return errors.Errorf("%s: missing name", where)
		}
		if o.Parent != "" {
			if !o.Decorative {
				return errors.Errorf("%s: only decorative objects can have a parent", where)
			}
			if !names[o.Parent] {
				return errors.Errorf("%s: parent %q must be defined earlier", where, o.Parent)
			}
		}
		names[o.Name] = true
		if o.Shape != "" && o.Shape != components.ShapeBox.String() && o.Shape != components.ShapeCylinder.String() {
			return errors.Errorf("%s: unknown shape %q", where, o.Shape)
		}
		if o.Size[0] <= 0 || o.Size[1] <= 0 || o.Size[2] <= 0 {
			return errors.Errorf("%s: size must be positive, got %v", where, o.Size)
		}
		if o.Mass < 0 {
			return errors.Errorf("%s: negative mass %v", where, o.Mass)
		}
		if o.Decorative && (o.Vehicle || o.Toppleable) {
			return errors.Errorf("%s: decorative objects cannot be vehicles or toppleable", where)
		}
		if o.Vehicle {
			if o.Mass == 0 {
				return errors.Errorf("%s: vehicle needs a mass", where)
			}
			vehicles++
		}
		if o.Toppleable && o.Mass == 0 {
			return errors.Errorf("%s: toppleable object needs a mass", where)
		}
	}
	if vehicles > 1 {
		return errors.Errorf("scene has %d vehicles, at most one is supported", vehicles)
	}
	return nil
}

func vec3(a [3]float32) rl.Vector3 {
	return rl.Vector3{X: a[0], Y: a[1], Z: a[2]}
}

// orientation converts Euler degrees (pitch, yaw, roll) to a quaternion.
func (o ObjectDef) orientation() rl.Quaternion {
	if o.Rotation == [3]float32{} {
		return rl.QuaternionIdentity()
	}
	return rl.QuaternionFromEuler(o.Rotation[0]*rl.Deg2rad, o.Rotation[1]*rl.Deg2rad, o.Rotation[2]*rl.Deg2rad)
}
