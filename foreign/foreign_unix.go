//go:build unix

package foreign

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

func processFuncs() map[string]Func {
	nullary := func(fn func() int) Func {
		return Func{Fn: func([]int64) (int64, error) {
			return int64(fn()), nil
		}}
	}
	return map[string]Func{
		"getpid":      nullary(unix.Getpid),
		"getppid":     nullary(unix.Getppid),
		"getuid":      nullary(unix.Getuid),
		"getgid":      nullary(unix.Getgid),
		"geteuid":     nullary(unix.Geteuid),
		"getegid":     nullary(unix.Getegid),
		"getpagesize": nullary(unix.Getpagesize),
	}
}

// mapExecutable copies code into an anonymous private mapping and then
// makes the mapping read-only and executable.
func mapExecutable(code []byte) ([]byte, error) {
	page := unix.Getpagesize()
	size := (len(code) + page - 1) / page * page
	b, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("mmap: %w", err)
	}
	copy(b, code)
	err = unix.Mprotect(b, unix.PROT_READ|unix.PROT_EXEC)
	if err != nil {
		err = fmt.Errorf("mprotect: %w", err)
		if uerr := unix.Munmap(b); uerr != nil {
			err = errors.Join(err, fmt.Errorf("munmap: %w", uerr))
		}
		return nil, err
	}
	return b, nil
}

func regionAddr(b []byte) uintptr {
	return uintptr(unsafe.Pointer(&b[0]))
}

func unmap(b []byte) error {
	return unix.Munmap(b)
}
