package orion

import "errors"

// ErrSkipFrame is returned (possibly wrapped) by a Renderer if the
// current frame can not be drawn, e.g. because the surface has no
// texture available right now. The loop drops the frame and continues.
var ErrSkipFrame = errors.New("skip frame")
