// Package camera implements a fly-through camera driven by
// keyboard movement, mouse look and the scroll wheel.
package camera

import (
	"math"

	"github.com/oliverbestmann/tricam/glm"
)

// Direction of a keyboard movement relative to the view
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "Forward"
	case Backward:
		return "Backward"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Direction(?)"
	}
}

// pitch is kept away from the poles so the view never flips
const maxPitch = 89.0

type Options struct {
	Position glm.Vec3f
	WorldUp  glm.Vec3f

	// in degrees. A yaw of -90 looks down the negative z axis
	Yaw   float32
	Pitch float32

	// movement speed in units per second
	Speed float32

	// degrees of rotation per pixel of mouse movement
	Sensitivity float32

	// vertical field of view and its bounds, in degrees
	Zoom    float32
	MinZoom float32
	MaxZoom float32
}

func DefaultOptions() Options {
	return Options{
		Position:    glm.Vec3f{0, 0, 3},
		WorldUp:     glm.Vec3f{0, 1, 0},
		Yaw:         -90,
		Pitch:       0,
		Speed:       2.5,
		Sensitivity: 0.1,
		Zoom:        45,
		MinZoom:     1,
		MaxZoom:     90,
	}
}

type Camera struct {
	position glm.Vec3f
	worldUp  glm.Vec3f

	// derived from yaw and pitch, always orthonormal
	front glm.Vec3f
	up    glm.Vec3f
	right glm.Vec3f

	yaw   float32
	pitch float32

	speed       float32
	sensitivity float32

	zoom    float32
	minZoom float32
	maxZoom float32

	initial Options
}

func New(opts Options) *Camera {
	defaults := DefaultOptions()

	if !isFiniteVec(opts.WorldUp) || opts.WorldUp.LengthSqr() == 0 {
		opts.WorldUp = defaults.WorldUp
	}

	if !isFiniteVec(opts.Position) {
		opts.Position = defaults.Position
	}

	// min and max propagate NaN, so the clamped values need finite inputs
	for _, field := range []struct{ value, fallback *float32 }{
		{&opts.Yaw, &defaults.Yaw},
		{&opts.Pitch, &defaults.Pitch},
		{&opts.Speed, &defaults.Speed},
		{&opts.Sensitivity, &defaults.Sensitivity},
		{&opts.Zoom, &defaults.Zoom},
	} {
		if !isFinite(*field.value) {
			*field.value = *field.fallback
		}
	}

	validBounds := isFinite(opts.MinZoom) && isFinite(opts.MaxZoom) &&
		opts.MinZoom > 0 && opts.MinZoom <= opts.MaxZoom

	if !validBounds {
		opts.MinZoom = defaults.MinZoom
		opts.MaxZoom = defaults.MaxZoom
	}

	c := &Camera{initial: opts}
	c.Reset()

	return c
}

// Reset restores the state the camera was created with.
func (c *Camera) Reset() {
	opts := c.initial

	c.position = opts.Position
	c.worldUp = opts.WorldUp.Normalize()
	c.yaw = opts.Yaw
	c.pitch = clamp(opts.Pitch, -maxPitch, maxPitch)
	c.speed = opts.Speed
	c.sensitivity = opts.Sensitivity
	c.minZoom = opts.MinZoom
	c.maxZoom = opts.MaxZoom
	c.zoom = clamp(opts.Zoom, opts.MinZoom, opts.MaxZoom)

	// seed right so updateVectors has a fallback if front is parallel to worldUp
	c.right = glm.Vec3f{1, 0, 0}
	c.updateVectors()
}

// ProcessKeyboard moves the camera along its front or right
// vector by speed * dt.
func (c *Camera) ProcessKeyboard(direction Direction, dt float32) {
	velocity := c.speed * dt

	switch direction {
	case Forward:
		c.position = c.position.Add(c.front.MulScalar(velocity))
	case Backward:
		c.position = c.position.Sub(c.front.MulScalar(velocity))
	case Left:
		c.position = c.position.Sub(c.right.MulScalar(velocity))
	case Right:
		c.position = c.position.Add(c.right.MulScalar(velocity))
	}
}

// ProcessMouseMovement turns the camera. Offsets are in pixels, a
// positive dy looks up.
func (c *Camera) ProcessMouseMovement(dx, dy float32, constrainPitch bool) {
	if !isFinite(dx) || !isFinite(dy) {
		return
	}

	c.yaw = float32(math.Mod(float64(c.yaw+dx*c.sensitivity), 360))
	c.pitch += dy * c.sensitivity

	if constrainPitch {
		c.pitch = clamp(c.pitch, -maxPitch, maxPitch)
	}

	c.updateVectors()
}

// ProcessMouseScroll narrows the field of view for positive offsets.
// The result is clamped to the configured zoom bounds.
func (c *Camera) ProcessMouseScroll(offset float32) {
	if !isFinite(offset) {
		return
	}

	c.zoom = clamp(c.zoom-offset, c.minZoom, c.maxZoom)
}

// LookAt returns the view matrix of the camera.
func (c *Camera) LookAt() glm.Mat4f {
	return glm.LookAt(c.position, c.position.Add(c.front), c.up)
}

// Zoom returns the vertical field of view in radians.
func (c *Camera) Zoom() glm.Rad {
	return glm.DegToRad(c.zoom)
}

func (c *Camera) Position() glm.Vec3f {
	return c.position
}

func (c *Camera) Front() glm.Vec3f {
	return c.front
}

func (c *Camera) Up() glm.Vec3f {
	return c.up
}

func (c *Camera) Right() glm.Vec3f {
	return c.right
}

func (c *Camera) Yaw() float32 {
	return c.yaw
}

func (c *Camera) Pitch() float32 {
	return c.pitch
}

func (c *Camera) updateVectors() {
	yaw := float64(glm.DegToRad(c.yaw))
	pitch := float64(glm.DegToRad(c.pitch))

	front := glm.Vec3f{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}

	c.front = front.Normalize()

	right := c.front.Cross(c.worldUp)
	if right.LengthSqr() < 1e-12 {
		// looking straight up or down, keep the previous right vector
		right = c.right
	}

	c.up = right.Cross(c.front).Normalize()

	// recompute right from front and up to remove any remaining drift
	c.right = c.front.Cross(c.up).Normalize()
}

func clamp(value, lo, hi float32) float32 {
	return max(lo, min(hi, value))
}

func isFinite(value float32) bool {
	return !math.IsNaN(float64(value)) && !math.IsInf(float64(value), 0)
}

func isFiniteVec(v glm.Vec3f) bool {
	return isFinite(v[0]) && isFinite(v[1]) && isFinite(v[2])
}
