package asset

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/prototype/engine/util"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadBounds returns the axis aligned bounds of all meshes in the default scene of
// a glTF file. glTF is Y-up, the result is converted to Z-up and multiplied by unitScale.
func LoadBounds(filename string, unitScale float32) (util.AABB, error) {
	doc, err := gltf.Open(filename)
	if err != nil {
		return util.AABB{}, errors.Wrapf(err, "could not open model %s", filename)
	}
	if len(doc.Scenes) == 0 {
		return util.AABB{}, errors.Errorf("model %s has no scene", filename)
	}
	defaultSceneIndex := 0
	if doc.Scene != nil {
		defaultSceneIndex = int(*doc.Scene)
	}
	if defaultSceneIndex >= len(doc.Scenes) {
		return util.AABB{}, errors.Errorf("model %s has no scene %d", filename, defaultSceneIndex)
	}

	b := &boundsBuilder{min: mgl32.Vec3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32}, max: mgl32.Vec3{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32}}
	for _, nodeIndex := range doc.Scenes[defaultSceneIndex].Nodes {
		if err = b.visit(doc, nodeIndex, mgl32.Ident4()); err != nil {
			return util.AABB{}, errors.Wrapf(err, "could not read model %s", filename)
		}
	}
	if b.points == 0 {
		return util.AABB{}, errors.Errorf("model %s has no vertices", filename)
	}
	yUp := util.NewAABBFromMinMax(b.min, b.max)
	center, extents := yUp.Center(), yUp.Extents()
	bounds := util.NewAABB(
		mgl32.Vec3{center.Z(), center.X(), center.Y()}.Mul(unitScale),
		mgl32.Vec3{extents.Z(), extents.X(), extents.Y()}.Mul(unitScale),
	)
	util.LogIOInfo(fmt.Sprintf("[Asset] %s: %d vertices, extents %v", filename, b.points, bounds.Extents()))
	return bounds, nil
}

type boundsBuilder struct {
	min, max mgl32.Vec3
	points   int
}

func (b *boundsBuilder) visit(doc *gltf.Document, nodeIndex uint32, parent mgl32.Mat4) error {
	if int(nodeIndex) >= len(doc.Nodes) {
		return errors.Errorf("node %d out of range", nodeIndex)
	}
	node := doc.Nodes[nodeIndex]
	world := parent.Mul4(localMatrix(node))
	if node.Mesh != nil {
		if int(*node.Mesh) >= len(doc.Meshes) {
			return errors.Errorf("node %d uses missing mesh %d", nodeIndex, *node.Mesh)
		}
		for _, primitive := range doc.Meshes[*node.Mesh].Primitives {
			positionIndex, ok := primitive.Attributes["POSITION"]
			if !ok {
				continue
			}
			if int(positionIndex) >= len(doc.Accessors) {
				return errors.Errorf("mesh %d uses missing accessor %d", *node.Mesh, positionIndex)
			}
			var vertBuffer [][3]float32
			vertBuffer, err := modeler.ReadPosition(doc, doc.Accessors[positionIndex], vertBuffer)
			if err != nil {
				return err
			}
			for _, v := range vertBuffer {
				p := world.Mul4x1(mgl32.Vec4{v[0], v[1], v[2], 1}).Vec3()
				for axis := 0; axis < 3; axis++ {
					b.min[axis] = float32(math.Min(float64(b.min[axis]), float64(p[axis])))
					b.max[axis] = float32(math.Max(float64(b.max[axis]), float64(p[axis])))
				}
				b.points++
			}
		}
	}
	for _, child := range node.Children {
		if err := b.visit(doc, child, world); err != nil {
			return err
		}
	}
	return nil
}

func localMatrix(node *gltf.Node) mgl32.Mat4 {
	matrix := mgl32.Mat4(node.Matrix)
	if matrix != (mgl32.Mat4{}) && matrix != mgl32.Ident4() {
		return matrix
	}
	scale := node.Scale
	if scale == [3]float32{} {
		scale = [3]float32{1, 1, 1}
	}
	rotation := mgl32.QuatIdent()
	if node.Rotation != [4]float32{} {
		rotation = mgl32.Quat{W: node.Rotation[3], V: mgl32.Vec3{node.Rotation[0], node.Rotation[1], node.Rotation[2]}}
	}
	translation := mgl32.Translate3D(node.Translation[0], node.Translation[1], node.Translation[2])
	return translation.Mul4(rotation.Mat4()).Mul4(mgl32.Scale3D(scale[0], scale[1], scale[2]))
}
