package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	Up      = mgl64.Vec3{0, 1, 0}
	Forward = mgl64.Vec3{0, 0, 1}
)

// Pose is a world-space position and orientation. +Z is forward, +Y is up.
type Pose struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// NewPose returns a pose at p facing +Z.
func NewPose(p mgl64.Vec3) Pose {
	return Pose{Position: p, Rotation: mgl64.QuatIdent()}
}

// Forward returns the facing direction of the pose.
func (p Pose) Forward() mgl64.Vec3 {
	return p.Rotation.Rotate(Forward)
}

func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Lerp interpolates from a to b with t clamped to [0, 1].
func Lerp(a, b, t float64) float64 {
	t = Clamp01(t)
	return a + t*(b-a)
}

// MoveTowards moves current toward target by at most maxDelta without overshooting.
func MoveTowards(current, target mgl64.Vec3, maxDelta float64) mgl64.Vec3 {
	d := target.Sub(current)
	dist := d.Len()
	if dist <= maxDelta || dist == 0 {
		return target
	}
	return current.Add(d.Mul(maxDelta / dist))
}

// QuatLerp is a normalized lerp along the shortest arc with t clamped to [0, 1].
func QuatLerp(a, b mgl64.Quat, t float64) mgl64.Quat {
	t = Clamp01(t)
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	q := a.Scale(1 - t).Add(b.Scale(t))
	if q.Len() == 0 {
		return b
	}
	return q.Normalize()
}

// QuatAngle returns the angle in radians between two orientations.
func QuatAngle(a, b mgl64.Quat) float64 {
	d := math.Abs(a.Normalize().Dot(b.Normalize()))
	if d > 1 {
		d = 1
	}
	return 2 * math.Acos(d)
}

// LookRotation returns the orientation whose forward axis points along forward
// with +Y as up. A zero vector yields the identity.
func LookRotation(forward mgl64.Vec3) mgl64.Quat {
	if forward.Len() < 1e-9 {
		return mgl64.QuatIdent()
	}
	f := forward.Normalize()
	right := Up.Cross(f)
	if right.Len() < 1e-9 {
		return mgl64.QuatBetweenVectors(Forward, f)
	}
	right = right.Normalize()
	up := f.Cross(right)
	return mgl64.Mat4ToQuat(mgl64.Mat3FromCols(right, up, f).Mat4()).Normalize()
}

// SmoothDamp moves current toward target as a critically damped spring and
// returns the new value and velocity.
func SmoothDamp(current, target, velocity, smoothTime, dt float64) (float64, float64) {
	if dt <= 0 {
		return current, velocity
	}
	smoothTime = math.Max(0.0001, smoothTime)
	omega := 2 / smoothTime
	x := omega * dt
	exp := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)
	change := current - target
	temp := (velocity + omega*change) * dt
	velocity = (velocity - omega*temp) * exp
	out := target + (change+temp)*exp

	// no overshoot
	if (target-current > 0) == (out > target) {
		out = target
		velocity = 0
	}
	return out, velocity
}

// FlatDistance is the distance between a and b on the XZ plane.
func FlatDistance(a, b mgl64.Vec3) float64 {
	return math.Hypot(a.X()-b.X(), a.Z()-b.Z())
}
