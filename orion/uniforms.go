package orion

import (
	"structs"

	"github.com/oliverbestmann/tricam/glm"
)

// Uniforms is the per frame data of the triangle shader. Its memory
// layout matches the uniform struct in triangle.wgsl.
type Uniforms struct {
	_ structs.HostLayout

	// projection * view * model
	MVP glm.Mat4f
}
