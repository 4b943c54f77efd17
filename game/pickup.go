package game

import (
	"fmt"

	"github.com/memmaker/prototype/engine/actor"
	"github.com/memmaker/prototype/engine/util"
)

// WeaponPickup holds a weapon until a character walks into it.
type WeaponPickup struct {
	actor.BaseActor
	Radius float32
	weapon *WeaponComponent
	build  func() (*WeaponComponent, error)
}

func NewWeaponPickup(radius float32, build func() (*WeaponComponent, error)) *WeaponPickup {
	return &WeaponPickup{
		BaseActor: actor.NewBaseActor("WeaponPickup"),
		Radius:    radius,
		build:     build,
	}
}

func (p *WeaponPickup) BeginPlay() {
	weapon, err := p.build()
	if err != nil {
		util.LogWeaponError(fmt.Sprintf("[Pickup] %s could not build its weapon: %v", p, err))
		p.Destroy()
		return
	}
	p.weapon = weapon
	weapon.GetTransform().SetParent(p.RootTransform())
}

func (p *WeaponPickup) Weapon() *WeaponComponent {
	return p.weapon
}

// Tick hands the weapon to the first overlapping character that can take it.
func (p *WeaponPickup) Tick(deltaTime float64) {
	world := p.GetWorld()
	if world == nil || p.weapon == nil {
		return
	}
	location := p.GetActorLocation()
	for _, a := range world.Actors() {
		character, isCharacter := a.(*Character)
		if !isCharacter || character.IsPendingKill() {
			continue
		}
		body := character.CollisionBody()
		if body == nil || !body.Shape.OverlapsSphere(body.Position, location, p.Radius) {
			continue
		}
		if p.weapon.AttachWeapon(character) {
			util.LogGameInfo(fmt.Sprintf("[Pickup] %s picked up %s", character, p.weapon.GetName()))
			p.weapon = nil
			p.Destroy()
			return
		}
	}
}
