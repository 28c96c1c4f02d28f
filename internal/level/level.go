// Package level loads YAML level descriptions for the headless driver:
// static geometry, moving platforms, spawn points and a scripted input
// timeline.
package level

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/libsm64-go/internal/surface"
)

// Level is one parsed level file.
type Level struct {
	Name string `yaml:"name"`

	// Surfaces are raw static triangles; Floors are axis-aligned rectangles
	// expanded into two upward-facing triangles each.
	Surfaces []surface.Def `yaml:"surfaces"`
	Floors   []Rect        `yaml:"floors"`

	Platforms []Platform `yaml:"platforms"`
	Spawns    []Spawn    `yaml:"spawns"`
	Script    []Step     `yaml:"script"`

	Navigation *Navigation `yaml:"navigation"`
}

// Rect is a horizontal rectangle at height Y.
type Rect struct {
	Y       int32  `yaml:"y"`
	MinX    int32  `yaml:"min_x"`
	MinZ    int32  `yaml:"min_z"`
	MaxX    int32  `yaml:"max_x"`
	MaxZ    int32  `yaml:"max_z"`
	Type    int16  `yaml:"type"`
	Terrain uint16 `yaml:"terrain"`
}

// Triangles expands the rectangle. The winding makes the normal point up.
func (r Rect) Triangles() []surface.Def {
	a := [3]int32{r.MinX, r.Y, r.MinZ}
	b := [3]int32{r.MinX, r.Y, r.MaxZ}
	c := [3]int32{r.MaxX, r.Y, r.MaxZ}
	d := [3]int32{r.MaxX, r.Y, r.MinZ}
	return []surface.Def{
		{Type: r.Type, Terrain: r.Terrain, Vertices: [3][3]int32{a, b, c}},
		{Type: r.Type, Terrain: r.Terrain, Vertices: [3][3]int32{a, c, d}},
	}
}

// Platform is a surface object, optionally animated.
type Platform struct {
	Name     string        `yaml:"name"`
	Position [3]float32    `yaml:"position"`
	Rotation [3]float32    `yaml:"rotation"` // degrees
	Surfaces []surface.Def `yaml:"surfaces"`
	Floors   []Rect        `yaml:"floors"` // relative to Position
	Motion   *Motion       `yaml:"motion"`
}

// Geometry returns every triangle of the platform in object space.
func (p Platform) Geometry() []surface.Def {
	out := append([]surface.Def(nil), p.Surfaces...)
	for _, r := range p.Floors {
		out = append(out, r.Triangles()...)
	}
	return out
}

// Motion moves a platform every tick. With a Period the translation swings
// back and forth, reversing every Period ticks.
type Motion struct {
	Velocity [3]float32 `yaml:"velocity"` // units per tick
	Spin     [3]float32 `yaml:"spin"`     // degrees per tick
	Period   int        `yaml:"period"`
}

// At returns the platform offset and extra rotation after tick ticks.
func (m *Motion) At(tick int) (offset, rotation [3]float32) {
	k := float32(tick)
	if m.Period > 0 {
		phase := tick % (2 * m.Period)
		if phase > m.Period {
			phase = 2*m.Period - phase
		}
		k = float32(phase)
	}
	for i := range offset {
		offset[i] = m.Velocity[i] * k
		rotation[i] = m.Spin[i] * float32(tick)
	}
	return offset, rotation
}

// Spawn places one character.
type Spawn struct {
	Name       string     `yaml:"name"`
	Position   [3]float32 `yaml:"position"`
	Yaw        float32    `yaml:"yaw"` // degrees
	Fake       bool       `yaml:"fake"`
	WaterLevel *int32     `yaml:"water_level"`
}

// Step holds one input for Ticks ticks. Goto replaces the stick with
// steering toward an XZ target.
type Step struct {
	Ticks  int         `yaml:"ticks"`
	Stick  [2]float32  `yaml:"stick"`
	Camera *[2]float32 `yaml:"camera"`
	A      bool        `yaml:"a"`
	B      bool        `yaml:"b"`
	Z      bool        `yaml:"z"`
	Goto   *[2]float32 `yaml:"goto"`
}

// Navigation describes the walkability grid used by Goto steps.
type Navigation struct {
	Origin [2]float32 `yaml:"origin"` // XZ corner of tile (0, 0)
	Width  int        `yaml:"width"`
	Height int        `yaml:"height"`
	Tile   float32    `yaml:"tile"`
	ProbeY float32    `yaml:"probe_y"`
}

// Validation errors.
var (
	ErrNoSpawns = errors.New("level: no spawns")
	ErrBadStep  = errors.New("level: script step without ticks")
)

// Load reads and parses the level at path.
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading level %s: %w", path, err)
	}
	lv, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading level %s: %w", path, err)
	}
	return lv, nil
}

// Parse decodes and validates a level document.
func Parse(data []byte) (*Level, error) {
	var lv Level
	if err := yaml.Unmarshal(data, &lv); err != nil {
		return nil, err
	}
	if err := lv.Validate(); err != nil {
		return nil, err
	}
	return &lv, nil
}

// Validate checks that the level can be run.
func (lv *Level) Validate() error {
	if len(lv.Spawns) == 0 {
		return ErrNoSpawns
	}
	for i, s := range lv.Script {
		if s.Ticks <= 0 {
			return fmt.Errorf("step %d: %w", i, ErrBadStep)
		}
	}
	if n := lv.Navigation; n != nil && (n.Width <= 0 || n.Height <= 0 || n.Tile <= 0) {
		return fmt.Errorf("level: navigation grid %dx%d tile %v", n.Width, n.Height, n.Tile)
	}
	return nil
}

// StaticGeometry returns every static triangle.
func (lv *Level) StaticGeometry() []surface.Def {
	out := append([]surface.Def(nil), lv.Surfaces...)
	for _, r := range lv.Floors {
		out = append(out, r.Triangles()...)
	}
	return out
}

// Duration returns the length of the script in ticks.
func (lv *Level) Duration() int {
	n := 0
	for _, s := range lv.Script {
		n += s.Ticks
	}
	return n
}

// StepAt returns the script step active at tick, and false once the script
// has run out.
func (lv *Level) StepAt(tick int) (Step, bool) {
	for _, s := range lv.Script {
		if tick < s.Ticks {
			return s, true
		}
		tick -= s.Ticks
	}
	return Step{}, false
}
