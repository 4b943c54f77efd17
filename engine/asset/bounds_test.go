package asset

import (
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBox(t *testing.T, translation [3]float32) string {
	t.Helper()
	doc := gltf.NewDocument()
	positions := modeler.WritePosition(doc, [][3]float32{
		{-0.5, 0, -0.25}, {0.5, 2, 0.25}, {0, 1, 0},
	})
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: "Box",
		Primitives: []*gltf.Primitive{{
			Attributes: map[string]uint32{"POSITION": positions},
			Mode:       gltf.PrimitivePoints,
		}},
	})
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name:        "Box",
		Mesh:        gltf.Index(0),
		Translation: translation,
		Rotation:    [4]float32{0, 0, 0, 1},
		Scale:       [3]float32{1, 1, 1},
	})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)
	filename := filepath.Join(t.TempDir(), "box.glb")
	require.NoError(t, gltf.SaveBinary(doc, filename))
	return filename
}

func TestLoadBoundsConvertsToZUpCentimetres(t *testing.T) {
	filename := writeBox(t, [3]float32{1, 0, 0})

	bounds, err := LoadBounds(filename, 100)

	require.NoError(t, err)
	extents, center := bounds.Extents(), bounds.Center()
	assert.InDeltaSlice(t, []float32{50, 100, 200}, extents[:], 1e-3)
	assert.InDeltaSlice(t, []float32{0, 100, 100}, center[:], 1e-3)
}

func TestLoadBoundsRejectsMissingDefaultScene(t *testing.T) {
	doc := gltf.NewDocument()
	doc.Scene = gltf.Index(3)
	filename := filepath.Join(t.TempDir(), "broken.glb")
	require.NoError(t, gltf.SaveBinary(doc, filename))

	_, err := LoadBounds(filename, 1)

	assert.Error(t, err)
}

func TestLoadBoundsMissingFile(t *testing.T) {
	_, err := LoadBounds(filepath.Join(t.TempDir(), "none.glb"), 1)

	assert.Error(t, err)
}

func TestLocalMatrixDefaultsToIdentity(t *testing.T) {
	assert.Equal(t, mgl32.Ident4(), localMatrix(&gltf.Node{}))
}
