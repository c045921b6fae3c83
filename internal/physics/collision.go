package physics

import (
	"demos3d/internal/components"
	"demos3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Below this approach speed contacts stop instead of bouncing.
const restSpeed = 1.0

// torqueScale converts contact impulses into degrees per second of spin.
const torqueScale = 50.0

func invMass(rb *components.Rigidbody) float32 {
	if rb.Mass <= 0 {
		return 1
	}
	return 1 / rb.Mass
}

// resolveDynamic handles collision between two dynamic rigidbodies
func (p *PhysicsWorld) resolveDynamic(a, b *engine.GameObject) {
	if !a.Active || !b.Active {
		return
	}
	rbA := engine.GetComponent[*components.Rigidbody](a)
	rbB := engine.GetComponent[*components.Rigidbody](b)
	if rbA == nil || rbB == nil || (rbA.IsSleeping && rbB.IsSleeping) {
		return
	}
	sa, okA := shapeOf(a)
	sb, okB := shapeOf(b)
	if !okA || !okB {
		return
	}

	pushOut, hit := contact(sa, sb)
	if !hit {
		return
	}
	p.recordCollision(a, b)
	if sa.trigger || sb.trigger {
		return
	}
	rbA.Wake()
	rbB.Wake()

	// Split the push based on mass ratio
	imA, imB := invMass(rbA), invMass(rbB)
	a.Transform.Position = rl.Vector3Add(a.Transform.Position, rl.Vector3Scale(pushOut, imA/(imA+imB)))
	b.Transform.Position = rl.Vector3Subtract(b.Transform.Position, rl.Vector3Scale(pushOut, imB/(imA+imB)))

	normal := rl.Vector3Normalize(pushOut)
	relVel := rl.Vector3Subtract(rbA.Velocity, rbB.Velocity)
	velAlongNormal := rl.Vector3DotProduct(relVel, normal)

	// Only resolve if objects are moving toward each other
	if velAlongNormal > 0 {
		return
	}

	e := (rbA.Bounciness + rbB.Bounciness) / 2
	if -velAlongNormal < restSpeed {
		e = 0
	}
	j := -(1 + e) * velAlongNormal / (imA + imB)
	impulse := rl.Vector3Scale(normal, j)
	rbA.Velocity = rl.Vector3Add(rbA.Velocity, rl.Vector3Scale(impulse, imA))
	rbB.Velocity = rl.Vector3Subtract(rbB.Velocity, rl.Vector3Scale(impulse, imB))

	// Tangential friction
	friction := (rbA.Friction + rbB.Friction) / 2
	tangent := rl.Vector3Subtract(relVel, rl.Vector3Scale(normal, velAlongNormal))
	rbA.Velocity = rl.Vector3Subtract(rbA.Velocity, rl.Vector3Scale(tangent, friction*imA/(imA+imB)))
	rbB.Velocity = rl.Vector3Add(rbB.Velocity, rl.Vector3Scale(tangent, friction*imB/(imA+imB)))

	// Spin from an off-center hit; the contact sits on the surface facing the other body.
	if !rbA.LockRotation {
		rA := rl.Vector3Scale(normal, -extentAlong(sa, normal))
		torque := rl.Vector3CrossProduct(rA, impulse)
		rbA.AngularVelocity = rl.Vector3Add(rbA.AngularVelocity, rl.Vector3Scale(torque, torqueScale*imA))
	}
	if !rbB.LockRotation {
		rB := rl.Vector3Scale(normal, extentAlong(sb, normal))
		torque := rl.Vector3CrossProduct(rB, rl.Vector3Negate(impulse))
		rbB.AngularVelocity = rl.Vector3Add(rbB.AngularVelocity, rl.Vector3Scale(torque, torqueScale*imB))
	}
}

// extentAlong is the distance from the shape's center to its surface along axis.
func extentAlong(s shape, axis rl.Vector3) float32 {
	if s.kind == shapeSphere {
		return s.radius
	}
	return s.obb.projectRadius(axis)
}

// resolveStatic pushes a dynamic body out of static geometry.
func (p *PhysicsWorld) resolveStatic(obj, static *engine.GameObject) {
	if !obj.Active || !static.Active {
		return
	}
	rb := engine.GetComponent[*components.Rigidbody](obj)
	if rb == nil || rb.IsSleeping {
		return
	}
	so, okO := shapeOf(obj)
	ss, okS := shapeOf(static)
	if !okO || !okS {
		return
	}

	pushOut, hit := contact(so, ss)
	if !hit {
		return
	}
	p.recordCollision(obj, static)
	if so.trigger || ss.trigger {
		return
	}

	obj.Transform.Position = rl.Vector3Add(obj.Transform.Position, pushOut)

	normal := rl.Vector3Normalize(pushOut)
	vn := rl.Vector3DotProduct(rb.Velocity, normal)
	if vn >= 0 {
		return
	}

	bounce := -vn * rb.Bounciness
	if -vn < restSpeed {
		bounce = 0
	}
	v := rl.Vector3Add(rl.Vector3Subtract(rb.Velocity, rl.Vector3Scale(normal, vn)), rl.Vector3Scale(normal, bounce))

	// Friction scales down motion along the surface
	tangent := rl.Vector3Subtract(v, rl.Vector3Scale(normal, rl.Vector3DotProduct(v, normal)))
	rb.Velocity = rl.Vector3Subtract(v, rl.Vector3Scale(tangent, rb.Friction))
	rb.AngularVelocity = rl.Vector3Scale(rb.AngularVelocity, 1-rb.Friction)
}

// resolveKinematicStatic pushes a controller-driven body out of static
// geometry and reports grounding to its PlayerController.
func (p *PhysicsWorld) resolveKinematicStatic(k, static *engine.GameObject) {
	if !static.Active {
		return
	}
	sk, okK := shapeOf(k)
	ss, okS := shapeOf(static)
	if !okK || !okS {
		return
	}

	pushOut, hit := contact(sk, ss)
	if !hit {
		return
	}
	p.recordCollision(k, static)
	if sk.trigger || ss.trigger {
		return
	}

	k.Transform.Position = rl.Vector3Add(k.Transform.Position, pushOut)

	pc := engine.FindComponent[engine.PlayerController](k)
	if pc == nil {
		return
	}
	normal := rl.Vector3Normalize(pushOut)
	_, vy, _ := pc.GetVelocity()
	switch {
	case normal.Y > 0.5:
		// Landed on something
		pc.SetGrounded(true)
		if vy < 0 {
			pc.SetVelocityY(0)
		}
	case normal.Y < -0.5 && vy > 0:
		// Hit a ceiling
		pc.SetVelocityY(0)
	}
}

// resolveKinematicDynamic lets a kinematic body shove dynamic ones.
func (p *PhysicsWorld) resolveKinematicDynamic(k, obj *engine.GameObject) {
	if !obj.Active {
		return
	}
	rb := engine.GetComponent[*components.Rigidbody](obj)
	if rb == nil {
		return
	}
	sk, okK := shapeOf(k)
	so, okO := shapeOf(obj)
	if !okK || !okO {
		return
	}

	pushOut, hit := contact(so, sk)
	if !hit {
		return
	}
	p.recordCollision(k, obj)
	if sk.trigger || so.trigger {
		return
	}

	rb.Wake()
	obj.Transform.Position = rl.Vector3Add(obj.Transform.Position, pushOut)

	normal := rl.Vector3Normalize(pushOut)
	kv := kinematicVelocity(k)
	kn := rl.Vector3DotProduct(kv, normal)
	on := rl.Vector3DotProduct(rb.Velocity, normal)
	if on < kn {
		rb.Velocity = rl.Vector3Add(rb.Velocity, rl.Vector3Scale(normal, kn-on))
	}
}

// kinematicVelocity prefers the controller's velocity over the rigidbody's.
func kinematicVelocity(k *engine.GameObject) rl.Vector3 {
	if pc := engine.FindComponent[engine.PlayerController](k); pc != nil {
		x, y, z := pc.GetVelocity()
		return rl.Vector3{X: x, Y: y, Z: z}
	}
	if rb := engine.GetComponent[*components.Rigidbody](k); rb != nil {
		return rb.Velocity
	}
	return rl.Vector3{}
}
