package orion

// Renderer draws the frame. Creating and releasing it is up to
// the caller, the loop only drives the per frame operations.
type Renderer interface {
	// FrameStart advances the frame clock and returns the time
	// since the previous frame in seconds.
	FrameStart() float32

	// UpdateUniform copies data into the uniform buffer used by
	// the next call to Draw.
	UpdateUniform(data []byte) error

	// Draw renders and presents one frame. An error wrapping
	// ErrSkipFrame drops the frame but keeps the loop running.
	Draw() error
}
