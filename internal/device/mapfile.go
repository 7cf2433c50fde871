package device

import (
	"fmt"
	"os"
)

// MapFile maps a file of raw elements read-only into a new region. The
// file must hold a whole number of elements in the region's storage
// layout. The mapping is removed when the last reference is released.
func MapFile(path string, kind Kind) (*Region, error) {
	//nolint:gosec // G304: path is chosen by the caller
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	stat, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	size := stat.Size()
	if size%int64(kind.Size()) != 0 {
		return nil, fmt.Errorf("%w: %s has %d bytes of %s", ErrSize, path, size, kind)
	}
	if size == 0 {
		return newRegion(kind, []byte{}, nil)
	}

	data, unmap, err := mapReadOnly(file, int(size)) //nolint:gosec // G115: file size fits in int
	if err != nil {
		return nil, fmt.Errorf("mmap failed: %w", err)
	}
	return newRegion(kind, data, unmap)
}
