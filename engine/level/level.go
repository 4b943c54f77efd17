package level

import (
	"compress/gzip"
	"fmt"
	"os"

	"github.com/Tnze/go-mc/nbt"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/prototype/engine/util"
	"github.com/pkg/errors"
)

/*
	TAG_Compound("level", {
	    "name": TAG_String(),
	    "player_start": TAG_Compound({"x", "y", "z": TAG_Float()}),
	    "player_yaw": TAG_Float(),
	    "kill_z": TAG_Float(),
	    "statics": TAG_List([TAG_Compound({"name", "center", "extents"})]),
	    "props": TAG_List([TAG_Compound({"name", "model", "location", "extents", "mass", "simulate"})]),
	    "pickups": TAG_List([TAG_Compound({"class", "location"})])
	})
	The file is gzip compressed.
*/

type Vector struct {
	X float32 `nbt:"x"`
	Y float32 `nbt:"y"`
	Z float32 `nbt:"z"`
}

func V(v mgl32.Vec3) Vector {
	return Vector{X: v.X(), Y: v.Y(), Z: v.Z()}
}

func (v Vector) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// Box is static world geometry.
type Box struct {
	Name    string `nbt:"name"`
	Center  Vector `nbt:"center"`
	Extents Vector `nbt:"extents"`
}

// Prop is a dynamic object. Model names a glTF file whose bounds replace Extents when it can be loaded.
type Prop struct {
	Name     string  `nbt:"name"`
	Model    string  `nbt:"model"`
	Location Vector  `nbt:"location"`
	Extents  Vector  `nbt:"extents"`
	Mass     float32 `nbt:"mass"`
	Simulate byte    `nbt:"simulate"`
}

func (p Prop) IsSimulated() bool {
	return p.Simulate != 0
}

type Pickup struct {
	Class    string `nbt:"class"`
	Location Vector `nbt:"location"`
}

type Level struct {
	Name        string   `nbt:"name"`
	PlayerStart Vector   `nbt:"player_start"`
	PlayerYaw   float32  `nbt:"player_yaw"`
	KillZ       float32  `nbt:"kill_z"`
	Statics     []Box    `nbt:"statics"`
	Props       []Prop   `nbt:"props"`
	Pickups     []Pickup `nbt:"pickups"`
}

func Load(filename string) (*Level, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "could not open level")
	}
	defer file.Close()
	gzipReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, errors.Wrapf(err, "level %s is not gzip compressed", filename)
	}
	defer gzipReader.Close()

	var lvl Level
	if _, err = nbt.NewDecoder(gzipReader).Decode(&lvl); err != nil {
		return nil, errors.Wrapf(err, "could not decode level %s", filename)
	}
	util.LogIOInfo(fmt.Sprintf("[Level] loaded '%s' from %s: %d statics, %d props, %d pickups", lvl.Name, filename, len(lvl.Statics), len(lvl.Props), len(lvl.Pickups)))
	return &lvl, nil
}

func Save(filename string, lvl *Level) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "could not create level file")
	}
	defer file.Close()
	gzipWriter := gzip.NewWriter(file)
	if err = nbt.NewEncoder(gzipWriter).Encode(lvl, "level"); err != nil {
		return errors.Wrapf(err, "could not encode level %s", lvl.Name)
	}
	if err = gzipWriter.Close(); err != nil {
		return errors.Wrap(err, "could not finish level file")
	}
	util.LogIOInfo(fmt.Sprintf("[Level] saved '%s' to %s", lvl.Name, filename))
	return nil
}

// Default is the built-in test arena used when no level file is configured.
func Default() *Level {
	return &Level{
		Name:        "FirstPersonMap",
		PlayerStart: Vector{X: -600, Y: 0, Z: 120},
		KillZ:       -2000,
		Statics: []Box{
			{Name: "Floor", Center: Vector{Z: -10}, Extents: Vector{X: 4000, Y: 4000, Z: 20}},
			{Name: "WallNorth", Center: Vector{X: 2000, Z: 200}, Extents: Vector{X: 40, Y: 4000, Z: 400}},
			{Name: "WallSouth", Center: Vector{X: -2000, Z: 200}, Extents: Vector{X: 40, Y: 4000, Z: 400}},
			{Name: "WallEast", Center: Vector{Y: 2000, Z: 200}, Extents: Vector{X: 4000, Y: 40, Z: 400}},
			{Name: "WallWest", Center: Vector{Y: -2000, Z: 200}, Extents: Vector{X: 4000, Y: 40, Z: 400}},
			{Name: "Ramp", Center: Vector{X: 800, Y: 800, Z: 50}, Extents: Vector{X: 400, Y: 400, Z: 100}},
		},
		Props: []Prop{
			{Name: "CubeA", Location: Vector{X: 400, Y: -100, Z: 50}, Extents: Vector{X: 100, Y: 100, Z: 100}, Mass: 100, Simulate: 1},
			{Name: "CubeB", Location: Vector{X: 400, Y: 100, Z: 50}, Extents: Vector{X: 100, Y: 100, Z: 100}, Mass: 100, Simulate: 1},
			{Name: "CubeC", Location: Vector{X: 400, Y: 0, Z: 150}, Extents: Vector{X: 100, Y: 100, Z: 100}, Mass: 100, Simulate: 1},
		},
		Pickups: []Pickup{
			{Class: "WeaponPickup", Location: Vector{X: -300, Y: 0, Z: 60}},
		},
	}
}
