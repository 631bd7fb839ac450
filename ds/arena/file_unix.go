//go:build unix

package arena

import (
	"errors"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// NewFile returns an arena whose region is a shared memory map of the file
// at path. The file is created if missing and extended to at least size
// bytes, and stays open for the life of the arena so Grow can remap it.
// Writes land in the page cache immediately; Flush forces them to disk with
// msync.
func NewFile(path string, size int) (*Arena, error) {
	if size <= 0 {
		return nil, ErrBadSize
	}
	size = alignUp(size)

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.Size() > int64(size) {
		size = alignUp(int(info.Size()))
	}
	if err := f.Truncate(int64(size)); err != nil {
		f.Close()
		return nil, err
	}

	region, err := syscall.Mmap(int(f.Fd()), 0, size,
		syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, err
	}

	remap := func(newSize int) ([]byte, error) {
		if err := unix.Msync(region, unix.MS_SYNC); err != nil {
			return nil, err
		}
		if err := syscall.Munmap(region); err != nil {
			return nil, err
		}
		if err := f.Truncate(int64(newSize)); err != nil {
			return nil, err
		}
		m, err := syscall.Mmap(int(f.Fd()), 0, newSize,
			syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED)
		if err != nil {
			return nil, err
		}
		region = m
		return m, nil
	}
	flush := func([]byte) error {
		return unix.Msync(region, unix.MS_SYNC)
	}
	cleanup := func() error {
		err := syscall.Munmap(region)
		if errors.Is(err, syscall.EINVAL) {
			// Treat double-unmap as no-op for callers.
			err = nil
		}
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		return err
	}
	return newArena(region, remap, flush, cleanup), nil
}
