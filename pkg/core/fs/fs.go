// Package fs provides filesystem operations that respect sandbox boundaries.
// Command handlers should use this package instead of direct os calls.
package fs

import (
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"unicode/utf8"

	"golang.org/x/sys/unix"

	"github.com/rcarmo/go-minishell/pkg/core"
	"github.com/rcarmo/go-minishell/pkg/sandbox"
)

// ProcCwd is the kernel's self-referential handle for the working directory.
const ProcCwd = "/proc/self/cwd"

// ReadFile reads an entire file.
func ReadFile(path string) ([]byte, error) {
	if err := sandbox.Check("open", path, sandbox.PermRead); err != nil {
		return nil, err
	}
	return os.ReadFile(path) // #nosec G304 -- sandbox.Check enforces allowed paths
}

// ReadText reads an entire file and requires it to be valid UTF-8.
func ReadText(path string) (string, error) {
	data, err := ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", &os.PathError{Op: "read", Path: path, Err: core.ErrNotUTF8}
	}
	return string(data), nil
}

// Touch creates path if it does not exist. Existing content is kept.
func Touch(path string) error {
	if err := sandbox.Check("open", path, sandbox.PermWrite); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0666) // #nosec G302 G304 -- umask applies; sandbox.Check enforces allowed paths
	if err != nil {
		return err
	}
	return f.Close()
}

// Copy copies the regular file src to dst, replacing dst's content.
// dst is only opened once src has been opened, so a failed source never
// leaves a new destination behind.
func Copy(src, dst string) (err error) {
	if err := sandbox.Check("open", src, sandbox.PermRead); err != nil {
		return err
	}
	if err := sandbox.Check("open", dst, sandbox.PermWrite); err != nil {
		return err
	}

	srcFile, err := os.Open(src) // #nosec G304 -- sandbox.Check enforces allowed paths
	if err != nil {
		return err
	}
	defer srcFile.Close()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return err
	}
	if srcInfo.IsDir() {
		return &os.PathError{Op: "copy", Path: src, Err: unix.EISDIR}
	}

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, srcInfo.Mode().Perm()) // #nosec G304 -- sandbox.Check enforces allowed paths
	if err != nil {
		return err
	}
	defer func() {
		if cerr := dstFile.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(dstFile, srcFile)
	return err
}

// Mkdir creates a single directory level.
func Mkdir(path string, perm os.FileMode) error {
	if err := sandbox.Check("mkdir", path, sandbox.PermWrite); err != nil {
		return err
	}
	return os.Mkdir(path, perm)
}

// ReadDir reads directory contents.
func ReadDir(path string) ([]iofs.DirEntry, error) {
	if err := sandbox.Check("open", path, sandbox.PermRead); err != nil {
		return nil, err
	}
	return os.ReadDir(path)
}

// RemoveFile unlinks path. Directories are refused by the kernel rather
// than removed, unlike os.Remove which falls back to rmdir.
func RemoveFile(path string) error {
	if err := sandbox.Check("remove", path, sandbox.PermWrite); err != nil {
		return err
	}
	if err := unix.Unlink(path); err != nil {
		return &os.PathError{Op: "remove", Path: path, Err: err}
	}
	return nil
}

// Rename renames oldpath to newpath.
func Rename(oldpath, newpath string) error {
	if err := sandbox.Check("rename", oldpath, sandbox.PermWrite); err != nil {
		return err
	}
	if err := sandbox.Check("rename", newpath, sandbox.PermWrite); err != nil {
		return err
	}
	return os.Rename(oldpath, newpath)
}

// Chdir changes the process working directory.
func Chdir(path string) error {
	if err := sandbox.Check("chdir", path, sandbox.PermRead); err != nil {
		return err
	}
	return os.Chdir(path)
}

// Getwd resolves the working directory from ProcCwd. Hosts without procfs
// fall back to the getcwd system call; neither path caches the result.
func Getwd() (string, error) {
	dir, err := os.Readlink(ProcCwd)
	if err == nil {
		return dir, nil
	}
	if !errors.Is(err, iofs.ErrNotExist) {
		return "", err
	}
	return unix.Getwd()
}
