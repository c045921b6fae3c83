package components

import "demos3d/internal/engine"

// Jetpack holds the player's fuel tank. Fuel always stays within
// [0, MaxFuel].
type Jetpack struct {
	engine.BaseComponent
	Fuel    float32
	MaxFuel float32
	Active  bool
	// LastUsed is the game time in seconds of the last burn or dash.
	LastUsed float64

	BurnRate      float32 // fuel per second while thrusting
	RechargeRate  float32 // fuel per second while idle
	RechargeDelay float64 // seconds after LastUsed before recharging
	Thrust        float32 // upward acceleration while burning
}

func NewJetpack() *Jetpack {
	return &Jetpack{
		Fuel:          100,
		MaxFuel:       100,
		BurnRate:      35,
		RechargeRate:  25,
		RechargeDelay: 0.75,
		Thrust:        28,
	}
}

// Burn consumes fuel for dt seconds of thrust. It reports false, and marks
// the jetpack inactive, when the tank is empty.
func (j *Jetpack) Burn(dt float32, now float64) bool {
	if j.Fuel <= 0 {
		j.Active = false
		return false
	}
	j.Fuel = clampf(j.Fuel-j.BurnRate*dt, 0, j.MaxFuel)
	j.Active = true
	j.LastUsed = now
	return true
}

// Recharge refills the tank once RechargeDelay has passed since LastUsed.
func (j *Jetpack) Recharge(dt float32, now float64) {
	j.Active = false
	if now-j.LastUsed < j.RechargeDelay {
		return
	}
	j.Fuel = clampf(j.Fuel+j.RechargeRate*dt, 0, j.MaxFuel)
}

// Spend takes amount from the tank if there is enough.
func (j *Jetpack) Spend(amount float32, now float64) bool {
	if j.Fuel < amount {
		return false
	}
	j.Fuel = clampf(j.Fuel-amount, 0, j.MaxFuel)
	j.LastUsed = now
	return true
}

// Percent is Fuel as a fraction of MaxFuel.
func (j *Jetpack) Percent() float32 {
	if j.MaxFuel <= 0 {
		return 0
	}
	return j.Fuel / j.MaxFuel
}
