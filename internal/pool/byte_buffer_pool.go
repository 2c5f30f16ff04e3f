// Package pool provides a sync.Pool-backed byte buffer, reused across
// nodes while decompressing octree.bin payloads so that the per-node
// scratch buffer -- scoped to one iteration and released before the next
// -- doesn't allocate fresh memory on every node.
package pool

import "sync"

const (
	// NodeBufferDefaultSize is the default capacity of a pooled node buffer.
	NodeBufferDefaultSize = 1024 * 64 // 64KiB, comfortably above a typical decompressed node
	// NodeBufferMaxThreshold discards buffers grown past this size instead
	// of returning them to the pool, to avoid retaining one oversized node's
	// memory for the lifetime of the process.
	NodeBufferMaxThreshold = 1024 * 1024 * 16 // 16MiB
)

// ByteBuffer is a reusable, growable byte slice.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the given initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte { return bb.B }

// Reset empties the buffer while retaining its allocated memory.
func (bb *ByteBuffer) Reset() { bb.B = bb.B[:0] }

// Grow ensures the buffer can hold requiredBytes more bytes without
// reallocating, using an amortized growth strategy: small buffers grow by
// a fixed increment, larger ones by 25% of current capacity.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := NodeBufferDefaultSize
	if cap(bb.B) > 4*NodeBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.Grow(len(data))
	bb.B = append(bb.B, data...)

	return len(data), nil
}

// ByteBufferPool pools ByteBuffers, discarding any that grow past
// maxThreshold instead of returning them for reuse.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool of buffers with the given default
// capacity and retention threshold.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any { return NewByteBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (p *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse, or discards it if it grew
// past the pool's maxThreshold.
func (p *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if p.maxThreshold > 0 && cap(bb.B) > p.maxThreshold {
		return
	}

	bb.Reset()
	p.pool.Put(bb)
}

var nodeBufferPool = NewByteBufferPool(NodeBufferDefaultSize, NodeBufferMaxThreshold)

// GetNodeBuffer retrieves a ByteBuffer from the default node payload pool.
func GetNodeBuffer() *ByteBuffer { return nodeBufferPool.Get() }

// PutNodeBuffer returns a ByteBuffer to the default node payload pool.
func PutNodeBuffer(bb *ByteBuffer) { nodeBufferPool.Put(bb) }
