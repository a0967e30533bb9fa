// Package physics provides closest-approach utilities for points moving
// linearly over one time step.
package physics

import (
	"math"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
)

// Coefficients describe the squared separation of two moving points as a
// quadratic in time: A*t^2 + B*t + C.
type Coefficients struct {
	A float64 // squared length of the relative velocity, never negative
	B float64 // twice the dot product of relative position and velocity
	C float64 // squared separation at t=0
}

// NewCoefficients builds the quadratic for relative position pq and
// relative velocity uv.
func NewCoefficients(pq, uv mgl64.Vec2) Coefficients {
	return Coefficients{
		A: uv.Dot(uv),
		B: 2 * pq.Dot(uv),
		C: pq.Dot(pq),
	}
}

// At evaluates the quadratic at time t.
func (c Coefficients) At(t float64) float64 {
	return t*t*c.A + t*c.B + c.C
}

// Vertex returns the unclamped time of minimum separation.
// Only meaningful when A != 0.
func (c Coefficients) Vertex() float64 {
	return -c.B / (2 * c.A)
}

// Approach is the closest approach of two points within one time step.
type Approach struct {
	T               float64 // time in [0,1] at which the minimum is reached
	DistanceSquared float64
}

// Distance returns the separation at the closest approach.
func (a Approach) Distance() float64 {
	return math.Sqrt(a.DistanceSquared)
}

// Within reports whether the separation at the closest approach is at most
// radius.
func (a Approach) Within(radius float64) bool {
	return a.DistanceSquared <= radius*radius
}

// Calculator computes closest approaches between pairs of moving points.
// The zero value is ready to use and does not trace.
type Calculator struct {
	// Logger receives the intermediate vectors and coefficients of every
	// query at debug level. Nil disables tracing.
	Logger *log.Logger
}

// ClosestApproach finds when, within t in [0,1], point p moving by u comes
// closest to point q moving by v, and the squared separation at that time.
func (c Calculator) ClosestApproach(p, u, q, v mgl64.Vec2) Approach {
	pq := p.Sub(q)
	uv := u.Sub(v)
	k := NewCoefficients(pq, uv)
	c.trace(pq, uv, k)

	// Same velocity: the separation never changes.
	if k.A == 0 {
		return Approach{T: 0, DistanceSquared: k.C}
	}

	t := math.Min(1, k.Vertex())
	if t < 0 {
		// Already moving apart.
		return Approach{T: 0, DistanceSquared: k.C}
	}

	// Rounding can take the value just below zero when the points meet.
	return Approach{T: t, DistanceSquared: math.Max(0, k.At(t))}
}

// MinDistanceSquared returns the squared minimum separation of the two
// points over the step.
func (c Calculator) MinDistanceSquared(p, u, q, v mgl64.Vec2) float64 {
	return c.ClosestApproach(p, u, q, v).DistanceSquared
}

// MinDistance returns the minimum separation of the two points over the step.
func (c Calculator) MinDistance(p, u, q, v mgl64.Vec2) float64 {
	return math.Sqrt(c.MinDistanceSquared(p, u, q, v))
}

// WillCollide reports whether the points come within radius of each other
// during the step. For two circles pass the sum of their radii.
func (c Calculator) WillCollide(p, u, q, v mgl64.Vec2, radius float64) bool {
	return c.ClosestApproach(p, u, q, v).Within(radius)
}

// SegmentCircleIntersect reports whether a point travelling from start to end
// passes within radius+fudge of a stationary center. Fudge is an extra
// safety margin, usually the radius of the moving object.
//
// A start point already inside the circle always intersects, even when it
// moves away.
func (c Calculator) SegmentCircleIntersect(start, end, center mgl64.Vec2, radius, fudge float64) bool {
	return c.WillCollide(start, end.Sub(start), center, mgl64.Vec2{}, radius+fudge)
}

func (c Calculator) trace(pq, uv mgl64.Vec2, k Coefficients) {
	if c.Logger == nil {
		return
	}
	c.Logger.Debug("closest approach",
		"pq.x", pq.X(), "pq.y", pq.Y(),
		"uv.x", uv.X(), "uv.y", uv.Y(),
		"A", k.A, "B", k.B, "C", k.C,
	)
}

// ClosestApproach is Calculator.ClosestApproach without tracing.
func ClosestApproach(p, u, q, v mgl64.Vec2) Approach {
	return Calculator{}.ClosestApproach(p, u, q, v)
}

// MinDistanceSquared is Calculator.MinDistanceSquared without tracing.
func MinDistanceSquared(p, u, q, v mgl64.Vec2) float64 {
	return Calculator{}.MinDistanceSquared(p, u, q, v)
}

// MinDistance is Calculator.MinDistance without tracing.
func MinDistance(p, u, q, v mgl64.Vec2) float64 {
	return Calculator{}.MinDistance(p, u, q, v)
}

// WillCollide is Calculator.WillCollide without tracing.
func WillCollide(p, u, q, v mgl64.Vec2, radius float64) bool {
	return Calculator{}.WillCollide(p, u, q, v, radius)
}

// SegmentCircleIntersect is Calculator.SegmentCircleIntersect without tracing.
func SegmentCircleIntersect(start, end, center mgl64.Vec2, radius, fudge float64) bool {
	return Calculator{}.SegmentCircleIntersect(start, end, center, radius, fudge)
}
