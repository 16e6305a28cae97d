package orion

import (
	"fmt"
	"math"
)

// FrameTitle appends the frame rate derived from dt to base.
// For a dt of zero (e.g. the first frame) base is returned as is.
func FrameTitle(base string, dt float32) string {
	if !(dt > 0) || math.IsInf(float64(dt), 0) {
		return base
	}

	return fmt.Sprintf("%s FPS: %1.1f", base, 1/dt)
}
