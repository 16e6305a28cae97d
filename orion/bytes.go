package orion

import "unsafe"

// AsByteSlice views value as raw bytes without copying. T must
// not contain any pointers.
func AsByteSlice[T any](value *T) []byte {
	var zeroT T

	n := unsafe.Sizeof(zeroT)
	ptr := (*byte)(unsafe.Pointer(value))

	return unsafe.Slice(ptr, n)
}
