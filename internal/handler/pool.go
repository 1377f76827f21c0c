package handler

import (
	"bytes"
	"sync"
)

// bufferPool recycles encode buffers across requests. Most responses fit in
// the 512-byte preallocation; a full village snapshot grows the buffer once
// and the capacity survives reuse.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}
