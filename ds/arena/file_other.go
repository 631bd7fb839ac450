//go:build !unix

package arena

import "os"

// NewFile returns an arena whose region holds the contents of the file at
// path, extended to at least size bytes. Without memory mapping the region
// lives in process memory; Flush writes the whole region back to the file.
func NewFile(path string, size int) (*Arena, error) {
	if size <= 0 {
		return nil, ErrBadSize
	}
	size = alignUp(size)

	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if len(existing) > size {
		size = alignUp(len(existing))
	}
	data := make([]byte, size)
	copy(data, existing)

	flush := func(region []byte) error {
		return os.WriteFile(path, region, 0o644)
	}
	return newArena(data, nil, flush, nil), nil
}
