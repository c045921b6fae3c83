package systems

import (
	"demos3d/internal/components"
	"demos3d/internal/engine"
	"demos3d/internal/input"
	"demos3d/internal/logging"
)

// JetpackSystem burns fuel for lift while Space is held, recharges it
// otherwise, and starts a dash on Shift when the player can pay for it.
type JetpackSystem struct {
	engine.BaseComponent
	// MaxLiftSpeed caps the upward speed thrust can build up.
	MaxLiftSpeed float32
}

func NewJetpackSystem() *JetpackSystem {
	return &JetpackSystem{MaxLiftSpeed: 6}
}

func (s *JetpackSystem) Update(deltaTime float32) {
	g := s.GetGameObject()
	w := s.World()
	if g == nil || g.Scene == nil || w == nil || w.Input() == nil || w.Clock() == nil {
		return
	}
	player, err := g.Scene.FindSingleByTag(engine.TagPlayer)
	if err != nil {
		return
	}
	jp := engine.GetComponent[*components.Jetpack](player)
	ctrl := engine.GetComponent[*components.TopDownController](player)
	if jp == nil || ctrl == nil {
		return
	}

	in, now := w.Input(), w.Clock().Now()

	if in.KeyDown(input.KeySpace) && jp.Burn(deltaTime, now) {
		ctrl.Velocity.Y += jp.Thrust * deltaTime
		if ctrl.Velocity.Y > s.MaxLiftSpeed {
			ctrl.Velocity.Y = s.MaxLiftSpeed
		}
	} else {
		jp.Recharge(deltaTime, now)
	}

	dash := engine.GetComponent[*components.Dash](player)
	if dash == nil || !in.KeyPressed(input.KeyShift) {
		return
	}
	if dash.Ready(now) && jp.Spend(dash.FuelCost, now) {
		dash.Begin(ctrl.Facing, now)
		logging.Logger.Debug().Float32("fuel", jp.Fuel).Msg("dash")
	}
}
