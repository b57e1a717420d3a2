package scenario

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlScenario mirrors the on-disk YAML shape. Sections and entity arrays
// are pointers so that a missing key can be distinguished from an empty one
// and reported as a configuration error.
type yamlScenario struct {
	Name         string             `yaml:"name"`
	Theme        string             `yaml:"theme"`
	Arena        *yamlArena         `yaml:"arena"`
	Player       *yamlPlayer        `yaml:"player"`
	Enemies      *[]yamlEnemy       `yaml:"enemies"`
	Collectibles *[]yamlCollectible `yaml:"collectibles"`
	Obstacles    *[]yamlObstacle    `yaml:"obstacles"`
}

type yamlArena struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type yamlPlayer struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Size  float64 `yaml:"size"`
	Color string  `yaml:"color"`
	Speed float64 `yaml:"speed"`
}

type yamlEnemy struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Size   float64 `yaml:"size"`
	Color  string  `yaml:"color"`
	SpeedX float64 `yaml:"speed_x"`
	SpeedY float64 `yaml:"speed_y"`
}

type yamlCollectible struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Size   float64 `yaml:"size"`
	Color  string  `yaml:"color"`
	Points int     `yaml:"points"`
}

type yamlObstacle struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Color  string  `yaml:"color"`
}

// ParseYAML decodes and validates a scenario document. Any shape or value
// problem is returned as a ValidationError wrapped with context.
func ParseYAML(data []byte) (Scenario, error) {
	var ys yamlScenario
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return Scenario{}, fmt.Errorf("scenario: yaml unmarshal: %w", err)
	}

	if ys.Arena == nil {
		return Scenario{}, ValidationError{Code: "MISSING_ARENA", Message: "scenario has no arena section"}
	}
	if ys.Player == nil {
		return Scenario{}, ValidationError{Code: "MISSING_PLAYER", Message: "scenario has no player section"}
	}
	if ys.Enemies == nil {
		return Scenario{}, ValidationError{Code: "MISSING_ENEMIES", Message: "scenario has no enemies array (use [] for none)"}
	}
	if ys.Collectibles == nil {
		return Scenario{}, ValidationError{Code: "MISSING_COLLECTIBLES", Message: "scenario has no collectibles array (use [] for none)"}
	}
	if ys.Obstacles == nil {
		return Scenario{}, ValidationError{Code: "MISSING_OBSTACLES", Message: "scenario has no obstacles array (use [] for none)"}
	}

	sc := Scenario{
		Name:  ys.Name,
		Theme: ys.Theme,
		Arena: Arena{Width: ys.Arena.Width, Height: ys.Arena.Height},
		Player: Player{
			X:     ys.Player.X,
			Y:     ys.Player.Y,
			Size:  ys.Player.Size,
			Color: ys.Player.Color,
			Speed: ys.Player.Speed,
		},
		Enemies:      make([]Enemy, 0, len(*ys.Enemies)),
		Collectibles: make([]Collectible, 0, len(*ys.Collectibles)),
		Obstacles:    make([]Obstacle, 0, len(*ys.Obstacles)),
	}

	for _, e := range *ys.Enemies {
		sc.Enemies = append(sc.Enemies, Enemy{
			X: e.X, Y: e.Y, Size: e.Size, Color: e.Color,
			SpeedX: e.SpeedX, SpeedY: e.SpeedY,
		})
	}
	for _, c := range *ys.Collectibles {
		sc.Collectibles = append(sc.Collectibles, Collectible{
			X: c.X, Y: c.Y, Size: c.Size, Color: c.Color, Points: c.Points,
		})
	}
	for _, o := range *ys.Obstacles {
		sc.Obstacles = append(sc.Obstacles, Obstacle{
			X: o.X, Y: o.Y, Width: o.Width, Height: o.Height, Color: o.Color,
		})
	}

	if err := Validate(sc); err != nil {
		return Scenario{}, err
	}
	return sc, nil
}

// MarshalYAML encodes a scenario back to its document form, e.g. for
// exporting a stored scenario to a file.
func MarshalYAML(sc Scenario) ([]byte, error) {
	enemies := make([]yamlEnemy, 0, len(sc.Enemies))
	for _, e := range sc.Enemies {
		enemies = append(enemies, yamlEnemy{
			X: e.X, Y: e.Y, Size: e.Size, Color: e.Color,
			SpeedX: e.SpeedX, SpeedY: e.SpeedY,
		})
	}
	collectibles := make([]yamlCollectible, 0, len(sc.Collectibles))
	for _, c := range sc.Collectibles {
		collectibles = append(collectibles, yamlCollectible{
			X: c.X, Y: c.Y, Size: c.Size, Color: c.Color, Points: c.Points,
		})
	}
	obstacles := make([]yamlObstacle, 0, len(sc.Obstacles))
	for _, o := range sc.Obstacles {
		obstacles = append(obstacles, yamlObstacle{
			X: o.X, Y: o.Y, Width: o.Width, Height: o.Height, Color: o.Color,
		})
	}

	ys := yamlScenario{
		Name:  sc.Name,
		Theme: sc.Theme,
		Arena: &yamlArena{Width: sc.Arena.Width, Height: sc.Arena.Height},
		Player: &yamlPlayer{
			X: sc.Player.X, Y: sc.Player.Y, Size: sc.Player.Size,
			Color: sc.Player.Color, Speed: sc.Player.Speed,
		},
		Enemies:      &enemies,
		Collectibles: &collectibles,
		Obstacles:    &obstacles,
	}

	data, err := yaml.Marshal(&ys)
	if err != nil {
		return nil, fmt.Errorf("scenario: yaml marshal: %w", err)
	}
	return data, nil
}
