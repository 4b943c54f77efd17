package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/prototype/engine/anim"
	"github.com/memmaker/prototype/engine/util"
)

// SkeletalMesh is the first person arms mesh. Nothing is rendered, it provides
// the sockets weapons attach to and the anim instance montages play on.
type SkeletalMesh struct {
	*util.Transform
	sockets      map[string]*util.Transform
	animInstance *anim.Instance
	attached     map[string]*util.Transform
}

func NewSkeletalMesh(name string, parent util.Transformer) *SkeletalMesh {
	mesh := &SkeletalMesh{
		Transform:    util.NewDefaultTransform(name),
		sockets:      make(map[string]*util.Transform),
		animInstance: anim.NewInstance(name),
		attached:     make(map[string]*util.Transform),
	}
	mesh.SetParent(parent)
	return mesh
}

func (m *SkeletalMesh) AddSocket(name string, offset mgl32.Vec3, rotation util.Rotator) {
	socket := util.NewTransform(offset, rotation, mgl32.Vec3{1, 1, 1})
	socket.SetName(name)
	socket.SetParent(m.Transform)
	m.sockets[name] = socket
}

func (m *SkeletalMesh) GetSocket(name string) (*util.Transform, bool) {
	socket, ok := m.sockets[name]
	return socket, ok
}

// AttachToSocket snaps child onto the socket. An unknown socket attaches to the mesh root.
func (m *SkeletalMesh) AttachToSocket(child *util.Transform, socketName string) {
	parent, ok := m.GetSocket(socketName)
	if !ok {
		util.LogAnimationDebug(fmt.Sprintf("[SkeletalMesh] %s has no socket '%s', attaching to root", m.GetName(), socketName))
		parent = m.Transform
	}
	child.SetPosition(mgl32.Vec3{})
	child.SetRotation(util.Rotator{})
	child.SetParent(parent)
	m.attached[socketName] = child
}

func (m *SkeletalMesh) AttachedTo(socketName string) *util.Transform {
	return m.attached[socketName]
}

func (m *SkeletalMesh) GetAnimInstance() *anim.Instance {
	return m.animInstance
}
