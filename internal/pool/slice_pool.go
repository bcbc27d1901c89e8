package pool

import "sync"

// The line-offset table built while scanning a source buffer is scratch
// space: it is needed only between the scan and link passes and is released
// before a load returns. Pooling it keeps repeated loads allocation-free
// once warmed up.
var intSlicePool = sync.Pool{
	New: func() any { return &[]int{} },
}

// GetIntSlice retrieves an int slice with the exact requested length from
// the pool, allocating a fresh one if the pooled slice is too small.
//
// The caller must invoke the returned cleanup function (typically with
// defer) to return the slice to the pool. The slice must not be used after
// cleanup runs.
func GetIntSlice(size int) ([]int, func()) {
	ptr, _ := intSlicePool.Get().(*[]int)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]int, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() { intSlicePool.Put(ptr) }
}
