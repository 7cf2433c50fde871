//go:build unix

package device

import (
	"os"
	"syscall"
)

// mapReadOnly maps size bytes of f with PROT_READ. The pages are shared
// with the page cache; nothing can write through them.
func mapReadOnly(f *os.File, size int) ([]byte, func([]byte) error, error) {
	fd := int(f.Fd()) //nolint:gosec // G115: descriptors fit in int
	data, err := syscall.Mmap(fd, 0, size, syscall.PROT_READ, syscall.MAP_SHARED)
	if err != nil {
		return nil, nil, err
	}
	return data, syscall.Munmap, nil
}
