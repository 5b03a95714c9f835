package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"sort"
	"strings"

	"github.com/CaptainDreamcast/EyeOfTheMedusa3/script"
	"github.com/yohamta/donburi/features/math"
	"gopkg.in/ini.v1"
)

// Group names of the definition file.
const (
	groupShot    = "shot"
	groupSubShot = "subshot"
)

var (
	ErrSubShotWithoutShot = errors.New("sub-shot group before any shot group")
	ErrDuplicateShotID    = errors.New("duplicate shot id")
	ErrUnknownHomingMode  = errors.New("unrecognized homing type")
	ErrUnknownGimmick     = errors.New("unrecognized gimmick")
	ErrUnknownColor       = errors.New("unrecognized color")
	ErrMissingField       = errors.New("missing field")
)

var subShotKeys = map[string]bool{
	"type": true, "amount": true, "offset": true, "position": true,
	"velocity": true, "angle": true, "speed": true, "rotation": true,
	"rotationadd": true, "color": true, "gimmick": true, "health": true,
	"center": true, "radius": true, "anim": true, "hitanim": true,
}

// Catalog maps shot-type ids to their definitions. It is never mutated after
// Load returns.
type Catalog struct {
	types map[int]*ShotType
}

// LoadFile reads and parses a definition file from fsys. It takes an fs.FS so
// callers can pass embed.FS or os.DirFS.
func LoadFile(fsys fs.FS, path string) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read definitions %s: %w", path, err)
	}
	c, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("load definitions %s: %w", path, err)
	}
	return c, nil
}

// Load parses definition source: a sequence of [Shot] groups, each followed by
// one or more [SubShot] groups that belong to it. Other groups are ignored.
func Load(data []byte) (*Catalog, error) {
	file, err := ini.LoadSources(ini.LoadOptions{
		AllowNonUniqueSections: true,
		Insensitive:            true,
	}, data)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	c := &Catalog{types: make(map[int]*ShotType)}
	var current *ShotType

	for i, section := range file.Sections() {
		switch strings.ToLower(section.Name()) {
		case groupShot:
			id, err := section.Key("id").Int()
			if err != nil {
				return nil, fmt.Errorf("group %d: shot id: %w", i, err)
			}
			if _, exists := c.types[id]; exists {
				return nil, fmt.Errorf("group %d: shot %d: %w", i, id, ErrDuplicateShotID)
			}
			current = &ShotType{ID: id}
			c.types[id] = current

		case groupSubShot:
			if current == nil {
				return nil, fmt.Errorf("group %d: %w", i, ErrSubShotWithoutShot)
			}
			t, err := parseSubShot(section)
			if err != nil {
				return nil, fmt.Errorf("group %d: shot %d sub-shot %d: %w", i, current.ID, len(current.SubShots), err)
			}
			current.SubShots = append(current.SubShots, t)
		}
	}

	log.Printf("Loaded %d shot types", len(c.types))
	return c, nil
}

func parseSubShot(section *ini.Section) (*SubShotTemplate, error) {
	for _, key := range section.Keys() {
		if !subShotKeys[key.Name()] {
			log.Printf("Warning: ignoring unknown sub-shot field %q", key.Name())
		}
	}

	t := &SubShotTemplate{}

	mode := strings.ToLower(strings.TrimSpace(section.Key("type").MustString("normal")))
	homing, ok := ParseHomingMode(mode)
	if !ok {
		return nil, fmt.Errorf("%q: %w", mode, ErrUnknownHomingMode)
	}
	t.Homing = homing

	exprs := []struct {
		key string
		dst **script.Expr
	}{
		{"amount", &t.Amount},
		{"offset", &t.Offset},
		{"position", &t.Position},
		{"velocity", &t.Velocity},
		{"angle", &t.Angle},
		{"speed", &t.Speed},
		{"rotation", &t.Rotation},
		{"rotationadd", &t.RotationAdd},
		{"color", &t.Color},
		{"health", &t.Health},
	}
	for _, f := range exprs {
		e, err := script.Compile(section.Key(f.key).String())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = e
	}

	// Constant colour selectors are checked here; computed ones at spawn.
	if word, ok := t.Color.Word(); ok && !IsColor(word) {
		return nil, fmt.Errorf("%q: %w", word, ErrUnknownColor)
	}

	gimmick, err := parseGimmick(section.Key("gimmick").String())
	if err != nil {
		return nil, err
	}
	t.Gimmick = gimmick

	if !section.HasKey("radius") {
		return nil, fmt.Errorf("radius: %w", ErrMissingField)
	}
	radius, err := section.Key("radius").Float64()
	if err != nil {
		return nil, fmt.Errorf("radius: %w", err)
	}
	center, err := constantVector(section.Key("center").String())
	if err != nil {
		return nil, fmt.Errorf("center: %w", err)
	}
	t.Collider = Circle{Center: center, Radius: radius}

	t.IdleAnimation = section.Key("anim").MustInt(0)
	t.HitAnimation = section.Key("hitanim").MustInt(0)

	return t, nil
}

// parseGimmick resolves the gimmick name once so the runtime dispatches on
// the kind instead of a string.
func parseGimmick(src string) (GimmickKind, error) {
	e, err := script.Compile(src)
	if err != nil {
		return GimmickNone, fmt.Errorf("gimmick: %w", err)
	}
	if e.Empty() {
		return GimmickNone, nil
	}
	name, err := e.String(nil)
	if err != nil {
		return GimmickNone, fmt.Errorf("gimmick: %w", err)
	}
	kind, ok := ParseGimmick(strings.ToLower(name))
	if !ok {
		return GimmickNone, fmt.Errorf("%q: %w", name, ErrUnknownGimmick)
	}
	return kind, nil
}

func constantVector(src string) (math.Vec2, error) {
	e, err := script.Compile(src)
	if err != nil || e.Empty() {
		return math.Vec2{}, err
	}
	return e.Vector(nil)
}

// Get returns the shot type registered under id.
func (c *Catalog) Get(id int) (*ShotType, bool) {
	t, ok := c.types[id]
	return t, ok
}

// MustGet returns the shot type registered under id and panics when it is
// unknown. Spawn sites use statically known ids.
func (c *Catalog) MustGet(id int) *ShotType {
	t, ok := c.types[id]
	if !ok {
		panic(fmt.Sprintf("catalog: unknown shot type %d", id))
	}
	return t
}

// Template resolves a template reference. It panics on a dangling reference.
func (c *Catalog) Template(ref TemplateRef) *SubShotTemplate {
	t := c.MustGet(ref.TypeID)
	if ref.Index < 0 || ref.Index >= len(t.SubShots) {
		panic(fmt.Sprintf("catalog: shot type %d has no sub-shot %d", ref.TypeID, ref.Index))
	}
	return t.SubShots[ref.Index]
}

// IDs returns every registered id in ascending order.
func (c *Catalog) IDs() []int {
	ids := make([]int, 0, len(c.types))
	for id := range c.types {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Len returns the number of shot types.
func (c *Catalog) Len() int {
	return len(c.types)
}
