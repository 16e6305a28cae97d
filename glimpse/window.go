package glimpse

import (
	"github.com/oliverbestmann/tricam/input"
	"github.com/oliverbestmann/webgpu/wgpu"
)

type Window interface {
	GetSize() (uint32, uint32)
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// Input returns the input manager fed by this window
	Input() *input.Manager

	SetTitle(title string)
	Terminate()
}
