//go:build windows

package device

import (
	"errors"
	"os"
	"syscall"
	"unsafe"
)

// mapReadOnly maps size bytes of f as a read-only view.
func mapReadOnly(f *os.File, size int) ([]byte, func([]byte) error, error) {
	handle, err := syscall.CreateFileMapping(
		syscall.Handle(f.Fd()),
		nil,
		syscall.PAGE_READONLY,
		uint32(uint64(size)>>32), //nolint:gosec // G115: high half of the size
		uint32(size),             //nolint:gosec // G115: low half of the size
		nil,
	)
	if err != nil {
		return nil, nil, err
	}
	// The view keeps the mapping alive after the handle is closed.
	defer func() { _ = syscall.CloseHandle(handle) }()

	addr, err := syscall.MapViewOfFile(handle, syscall.FILE_MAP_READ, 0, 0, uintptr(size))
	if err != nil {
		return nil, nil, err
	}

	//nolint:gosec // G103: addr is a valid view of exactly size bytes
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), unmapView, nil
}

func unmapView(data []byte) error {
	if len(data) == 0 {
		return errors.New("cannot unmap empty data")
	}
	return syscall.UnmapViewOfFile(uintptr(unsafe.Pointer(unsafe.SliceData(data))))
}
