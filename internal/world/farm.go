package world

import "fmt"

// FarmScene is the layout used when no scene file is configured.
func FarmScene() *SceneFile {
	sf := &SceneFile{
		Name: "Farm",
		Objects: []ObjectDef{
			{
				Name: "car", Tags: []string{"vehicle"},
				Position: [3]float32{0, 0.5, -8},
				Size:     [3]float32{2, 1, 4},
				Color:    "Red",
				Mass:     10, Vehicle: true,
			},
			{
				Name: "tree", Tags: []string{"prop"},
				Position: [3]float32{-6, 5, 2},
				Size:     [3]float32{1, 10, 1},
				Color:    "DarkGreen",
				Mass:     10, Toppleable: true,
			},
			{
				Name: "post", Tags: []string{"prop"},
				Position: [3]float32{5, 0.5, -5},
				Size:     [3]float32{1, 1, 1},
				Color:    "Brown",
				Mass:     10, Toppleable: true,
			},
			{
				Name: "light-box", Tags: []string{"prop"},
				Position: [3]float32{4, 2, -3},
				Size:     [3]float32{1, 1, 1},
				Color:    "Red",
				Mass:     2,
			},
			{
				Name: "heavy-box", Tags: []string{"prop"},
				Position: [3]float32{4, 2, -1.5},
				Size:     [3]float32{1, 1, 1},
				Color:    "Maroon",
				Mass:     500,
			},
			{
				Name: "barrel", Tags: []string{"prop"},
				Shape:    "cylinder",
				Position: [3]float32{4, 1, 4},
				Size:     [3]float32{2, 2, 2},
				Color:    "Orange",
				Mass:     1,
			},

			// Static scenery.
			{
				Name: "barn", Tags: []string{"scenery"},
				Position: [3]float32{-14, 3, 12},
				Size:     [3]float32{8, 6, 10},
				Color:    "Maroon",
			},
			{
				Name: "fence-north", Tags: []string{"scenery"},
				Position: [3]float32{0, 0.5, 20},
				Size:     [3]float32{40, 1, 0.3},
				Color:    "Beige",
			},
			{
				Name: "fence-south", Tags: []string{"scenery"},
				Position: [3]float32{0, 0.5, -20},
				Size:     [3]float32{40, 1, 0.3},
				Color:    "Beige",
			},
			{
				Name: "fence-east", Tags: []string{"scenery"},
				Position: [3]float32{20, 0.5, 0},
				Size:     [3]float32{0.3, 1, 40},
				Color:    "Beige",
			},
			{
				Name: "fence-west", Tags: []string{"scenery"},
				Position: [3]float32{-20, 0.5, 0},
				Size:     [3]float32{0.3, 1, 40},
				Color:    "Beige",
			},

			// The windmill has no body; it is only there to look at.
			{
				Name: "windmill", Tags: []string{"decor"},
				Shape:    "cylinder",
				Position: [3]float32{14, 4, 14},
				Size:     [3]float32{1.5, 8, 1.5},
				Color:    "LightGray",
				Decorative: true,
			},
			{
				Name: "windmill-blades", Tags: []string{"decor"},
				Parent:   "windmill",
				Position: [3]float32{0, 4, -1},
				Size:     [3]float32{7, 0.6, 0.2},
				Color:    "White",
				Decorative: true,
				Scripts: []ScriptDef{
					{Name: "Rotator", Props: map[string]any{"speed": 45.0, "axis": "z"}},
				},
			},
		},
	}

	sf.Objects = append(sf.Objects, crateStack("yellow", "Yellow", 4, 0)...)
	sf.Objects = append(sf.Objects, crateStack("magenta", "Magenta", 4, 2)...)
	return sf
}

// crateStack is four unit crates stacked on the ground at (x, z).
func crateStack(prefix, color string, x, z float32) []ObjectDef {
	out := make([]ObjectDef, 0, 4)
	for i := 0; i < 4; i++ {
		out = append(out, crateDef(
			fmt.Sprintf("%s-crate-%d", prefix, i),
			color,
			[3]float32{x, 0.5 + float32(i), z + 8},
		))
	}
	return out
}

func crateDef(name, color string, pos [3]float32) ObjectDef {
	return ObjectDef{
		Name:     name,
		Tags:     []string{"crate"},
		Position: pos,
		Size:     [3]float32{1, 1, 1},
		Color:    color,
		Mass:     2,
		Scripts:  []ScriptDef{{Name: "ImpactFlash"}},
	}
}
