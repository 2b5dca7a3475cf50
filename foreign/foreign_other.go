//go:build !unix

package foreign

func processFuncs() map[string]Func {
	return nil
}

func mapExecutable(code []byte) ([]byte, error) {
	return nil, ErrUnsupported
}

func regionAddr(b []byte) uintptr {
	return 0
}

func unmap(b []byte) error {
	return nil
}
