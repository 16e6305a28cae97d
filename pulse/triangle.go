package pulse

import (
	_ "embed"
	"fmt"
	"log/slog"
	"structs"
	"unsafe"

	"github.com/oliverbestmann/tricam/glm"
	"github.com/oliverbestmann/tricam/orion"
	"github.com/oliverbestmann/webgpu/wgpu"
)

//go:embed triangle.wgsl
var triangleShaderCode string

type Vertex struct {
	_ structs.HostLayout

	Position glm.Vec3f
	Color    glm.Vec3f
}

var triangleVertices = []Vertex{
	{Position: glm.Vec3f{1, -1, 0}, Color: glm.Vec3f{1, 0, 0}},
	{Position: glm.Vec3f{-1, -1, 0}, Color: glm.Vec3f{0, 1, 0}},
	{Position: glm.Vec3f{0, 1, 0}, Color: glm.Vec3f{0, 0, 1}},
}

var triangleIndices = []uint32{0, 1, 2}

type TitleSetter interface {
	SetTitle(title string)
}

type TriangleOptions struct {
	// surface size
	Width  uint32
	Height uint32

	// receives the base title with the current frame rate every frame.
	// Can be nil.
	Window TitleSetter
	Title  string

	ClearColor Color

	// defaults to a wall clock
	Clock *orion.FrameClock
}

// TriangleRenderer owns all gpu resources needed to draw the triangle.
// It implements orion.Renderer.
type TriangleRenderer struct {
	view       *View
	window     TitleSetter
	title      string
	clock      *orion.FrameClock
	clearColor wgpu.Color

	vertices  *wgpu.Buffer
	indices   *wgpu.Buffer
	uniforms  *wgpu.Buffer
	pipelines *PipelineCache[trianglePipeline]
	bindGroup *wgpu.BindGroup
}

var _ orion.Renderer = (*TriangleRenderer)(nil)

func NewTriangleRenderer(view *View, opts TriangleOptions) (*TriangleRenderer, error) {
	if opts.Width == 0 || opts.Height == 0 {
		return nil, fmt.Errorf("invalid surface size %dx%d", opts.Width, opts.Height)
	}

	if opts.Clock == nil {
		opts.Clock = orion.NewFrameClock()
	}

	r := &TriangleRenderer{
		view:       view,
		window:     opts.Window,
		title:      opts.Title,
		clock:      opts.Clock,
		clearColor: opts.ClearColor.ToWGPU(),
	}

	view.Configure(opts.Width, opts.Height)

	r.vertices = view.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Triangle.Vertices",
		Contents: wgpu.ToBytes(triangleVertices),
		Usage:    wgpu.BufferUsageVertex,
	})

	r.indices = view.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Triangle.Indices",
		Contents: wgpu.ToBytes(triangleIndices),
		Usage:    wgpu.BufferUsageIndex,
	})

	r.uniforms = view.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Triangle.Uniforms",
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		Size:  uint64(unsafe.Sizeof(orion.Uniforms{})),
	})

	r.pipelines = NewPipelineCache[trianglePipeline](view.Context, 1)

	pc := r.pipelines.Get(r.pipelineConfig())

	r.bindGroup = view.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Triangle.Uniforms",
		Layout: pc.GetBindGroupLayout(0),
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  r.uniforms,
				Size:    wgpu.WholeSize,
			},
		},
	})

	slog.Info("Triangle renderer initialized",
		slog.Int("width", int(opts.Width)),
		slog.Int("height", int(opts.Height)),
		slog.Any("format", view.Format()),
	)

	return r, nil
}

// FrameStart advances the frame clock and shows the frame rate
// in the window title.
func (r *TriangleRenderer) FrameStart() float32 {
	dt := r.clock.Tick()

	if r.window != nil {
		r.window.SetTitle(orion.FrameTitle(r.title, dt))
	}

	return dt
}

// UpdateUniform writes data to the uniform buffer. The write is
// ordered before any command buffer submitted afterwards.
func (r *TriangleRenderer) UpdateUniform(data []byte) error {
	if uint64(len(data)) > r.uniforms.GetSize() {
		return fmt.Errorf("uniform data of %d bytes exceeds buffer size %d", len(data), r.uniforms.GetSize())
	}

	r.view.WriteBuffer(r.uniforms, 0, data)

	return nil
}

func (r *TriangleRenderer) Draw() error {
	// get the surface texture (the actual screen)
	surface, err := r.view.Surface.TryGetCurrentTexture()
	if err != nil {
		return fmt.Errorf("%w: get current texture: %w", orion.ErrSkipFrame, err)
	}

	// the texture is consumed by Present, release it only if we bail out earlier
	surfaceGuard := NewReleaseGuard(surface)
	defer surfaceGuard.Release()

	surfaceView := surface.CreateView(nil)
	defer surfaceView.Release()

	pc := r.pipelines.Get(r.pipelineConfig())

	encoder := r.view.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{
		Label: "Triangle",
	})

	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "Triangle",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       surfaceView,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: r.clearColor,
			},
		},
	})

	passGuard := NewReleaseGuard(pass)
	defer passGuard.Release()

	width, height := r.view.Size()

	pass.SetViewport(0, 0, float32(width), float32(height), 0, 1)
	pass.SetPipeline(pc.Pipeline)
	pass.SetBindGroup(0, r.bindGroup, nil)
	pass.SetVertexBuffer(0, r.vertices, 0, wgpu.WholeSize)
	pass.SetIndexBuffer(r.indices, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
	pass.DrawIndexed(uint32(len(triangleIndices)), 1, 0, 0, 0)
	pass.End()

	// must release pass before finishing the encoder
	passGuard.Release()

	cmdBuffer := encoder.Finish(nil)
	defer cmdBuffer.Release()

	r.view.Submit(cmdBuffer)

	// present the rendered image
	r.view.Surface.Present()
	surfaceGuard.Keep()

	return nil
}

// Release frees all resources in reverse order of creation.
// Calling it more than once is safe.
func (r *TriangleRenderer) Release() {
	if r.bindGroup != nil {
		r.bindGroup.Release()
		r.bindGroup = nil
	}

	if r.pipelines != nil {
		r.pipelines.Release()
		r.pipelines = nil
	}

	if r.uniforms != nil {
		r.uniforms.Release()
		r.uniforms = nil
	}

	if r.indices != nil {
		r.indices.Release()
		r.indices = nil
	}

	if r.vertices != nil {
		r.vertices.Release()
		r.vertices = nil
	}
}

func (r *TriangleRenderer) pipelineConfig() trianglePipeline {
	return trianglePipeline{
		TargetFormat: r.view.Format(),
		ShaderSource: triangleShaderCode,
	}
}

type trianglePipeline struct {
	TargetFormat wgpu.TextureFormat
	ShaderSource string
}

func (conf trianglePipeline) Specialize(dev *wgpu.Device) *wgpu.RenderPipeline {
	slog.Info(
		"Create RenderPipeline for triangle",
		slog.Any("format", conf.TargetFormat),
	)

	shader := dev.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:      "Triangle.ShaderSource",
		WGSLSource: &wgpu.ShaderSourceWGSL{Code: conf.ShaderSource},
	})

	defer shader.Release()

	desc := &wgpu.RenderPipelineDescriptor{
		Label: fmt.Sprintf("Triangle.%s", conf.TargetFormat),
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: uint64(unsafe.Sizeof(Vertex{})),
					StepMode:    wgpu.VertexStepModeVertex,
					Attributes: []wgpu.VertexAttribute{
						{
							// position
							Format:         wgpu.VertexFormatFloat32x3,
							Offset:         uint64(unsafe.Offsetof(Vertex{}.Position)),
							ShaderLocation: 0,
						},
						{
							// color
							Format:         wgpu.VertexFormatFloat32x3,
							Offset:         uint64(unsafe.Offsetof(Vertex{}.Color)),
							ShaderLocation: 1,
						},
					},
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    conf.TargetFormat,
					Blend:     nil,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		DepthStencil: nil,
		Multisample: wgpu.MultisampleState{
			Count:                  1,
			Mask:                   0xFFFFFFFF,
			AlphaToCoverageEnabled: false,
		},
	}

	return dev.CreateRenderPipeline(desc)
}
