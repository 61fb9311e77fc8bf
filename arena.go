package drawq

// defaultChunkLen is the number of requests per arena chunk.
const defaultChunkLen = 64

// slab is a chunked allocator for one request type. Chunks are fixed
// capacity so addresses of allocated values stay stable while the slab
// grows; reset rewinds the slab without releasing chunk storage.
type slab[T any] struct {
	chunks   [][]T
	current  int
	chunkLen int
}

func (s *slab[T]) alloc() *T {
	if s.chunkLen == 0 {
		s.chunkLen = defaultChunkLen
	}
	for {
		if s.current == len(s.chunks) {
			s.chunks = append(s.chunks, make([]T, 0, s.chunkLen))
		}
		c := &s.chunks[s.current]
		if len(*c) < cap(*c) {
			var zero T
			*c = append(*c, zero)
			return &(*c)[len(*c)-1]
		}
		s.current++
	}
}

func (s *slab[T]) reset() {
	for i := range s.chunks {
		s.chunks[i] = s.chunks[i][:0]
	}
	s.current = 0
}

// Arena is a frame-scoped allocator for drawing requests. It owns the
// memory of every request for exactly one frame: requests are handed
// out during the frame and invalidated wholesale by Reset. There is no
// individual deallocation, and the arena grows as needed, so
// allocation never fails.
//
// An Arena is exclusively owned by one DrawingContext and is not safe
// for concurrent use.
type Arena struct {
	textures        slab[TextureRequest]
	gradients       slab[GradientRequest]
	fillRects       slab[FillRectRequest]
	inverseEllipses slab[InverseEllipseRequest]
	lines           slab[LineRequest]
	triangles       slab[TriangleRequest]
	getPixels       slab[GetPixelRequest]

	allocs int
}

// NewArena creates an arena whose chunks hold chunkLen requests each.
// A chunkLen of zero or less selects the default.
func NewArena(chunkLen int) *Arena {
	a := &Arena{}
	if chunkLen <= 0 {
		chunkLen = defaultChunkLen
	}
	a.textures.chunkLen = chunkLen
	a.gradients.chunkLen = chunkLen
	a.fillRects.chunkLen = chunkLen
	a.inverseEllipses.chunkLen = chunkLen
	a.lines.chunkLen = chunkLen
	a.triangles.chunkLen = chunkLen
	a.getPixels.chunkLen = chunkLen
	return a
}

// AllocTexture allocates a zeroed TextureRequest.
func (a *Arena) AllocTexture() *TextureRequest {
	a.allocs++
	return a.textures.alloc()
}

// AllocGradient allocates a zeroed GradientRequest.
func (a *Arena) AllocGradient() *GradientRequest {
	a.allocs++
	return a.gradients.alloc()
}

// AllocFillRect allocates a zeroed FillRectRequest.
func (a *Arena) AllocFillRect() *FillRectRequest {
	a.allocs++
	return a.fillRects.alloc()
}

// AllocInverseEllipse allocates a zeroed InverseEllipseRequest.
func (a *Arena) AllocInverseEllipse() *InverseEllipseRequest {
	a.allocs++
	return a.inverseEllipses.alloc()
}

// AllocLine allocates a zeroed LineRequest.
func (a *Arena) AllocLine() *LineRequest {
	a.allocs++
	return a.lines.alloc()
}

// AllocTriangle allocates a zeroed TriangleRequest.
func (a *Arena) AllocTriangle() *TriangleRequest {
	a.allocs++
	return a.triangles.alloc()
}

// AllocGetPixel allocates a zeroed GetPixelRequest.
func (a *Arena) AllocGetPixel() *GetPixelRequest {
	a.allocs++
	return a.getPixels.alloc()
}

// Len returns the number of live allocations since the last Reset.
func (a *Arena) Len() int {
	return a.allocs
}

// Reset invalidates every prior allocation and reclaims the chunk
// storage for reuse. It does not return memory to the runtime, which
// amortizes allocation cost across frames. Callers must release all
// request references before resetting.
func (a *Arena) Reset() {
	a.textures.reset()
	a.gradients.reset()
	a.fillRects.reset()
	a.inverseEllipses.reset()
	a.lines.reset()
	a.triangles.reset()
	a.getPixels.reset()
	a.allocs = 0
}
