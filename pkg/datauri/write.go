package datauri

import (
	"fmt"
	"os"
)

// Write persists the payload to an existing file and returns the open
// handle; the caller owns closing it. The target must already exist, this
// is not a create-if-missing operation. With overwrite the file contents
// are replaced; otherwise the payload is appended.
func (d *Data) Write(path string, overwrite bool) (*os.File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &FileNotFoundError{Resource: path, Err: err}
	}
	if info.IsDir() {
		return nil, &FileNotFoundError{Resource: path, Err: fmt.Errorf("%s is a directory", path)}
	}

	flags := os.O_WRONLY
	if overwrite {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_APPEND
	}
	f, err := os.OpenFile(path, flags, info.Mode().Perm())
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if _, err := f.Write(d.data); err != nil {
		f.Close()
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	return f, nil
}
