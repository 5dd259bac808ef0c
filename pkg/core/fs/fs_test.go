package fs_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rcarmo/go-minishell/pkg/core"
	"github.com/rcarmo/go-minishell/pkg/core/fs"
	"github.com/rcarmo/go-minishell/pkg/sandbox"
	"github.com/rcarmo/go-minishell/pkg/testutil"
)

func TestReadTextRejectsInvalidUTF8(t *testing.T) {
	path := testutil.TempFile(t, "bin.dat", "ok\xff\xfe")

	_, err := fs.ReadText(path)
	if !errors.Is(err, core.ErrNotUTF8) {
		t.Fatalf("ReadText error = %v, want ErrNotUTF8", err)
	}
}

func TestTouchKeepsContent(t *testing.T) {
	path := testutil.TempFile(t, "keep.txt", "content")

	testutil.AssertNoError(t, fs.Touch(path))
	testutil.AssertFileContent(t, path, "content")
}

func TestCopyMissingSourceLeavesNoDestination(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "b")

	testutil.AssertError(t, fs.Copy(filepath.Join(dir, "a"), dst))
	testutil.AssertFileNotExists(t, dst)
}

func TestCopyDirectorySourceFails(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	if err := os.Mkdir(src, 0755); err != nil {
		t.Fatal(err)
	}
	dst := filepath.Join(dir, "dst")

	testutil.AssertError(t, fs.Copy(src, dst))
	testutil.AssertFileNotExists(t, dst)
}

func TestCopyOverwritesAndKeepsMode(t *testing.T) {
	dir := testutil.TempDirWithFiles(t, map[string]string{
		"a": "new",
		"b": "old content",
	})
	src := filepath.Join(dir, "a")
	if err := os.Chmod(src, 0600); err != nil {
		t.Fatal(err)
	}
	dst := filepath.Join(dir, "c")

	testutil.AssertNoError(t, fs.Copy(src, filepath.Join(dir, "b")))
	testutil.AssertFileContent(t, filepath.Join(dir, "b"), "new")

	testutil.AssertNoError(t, fs.Copy(src, dst))
	info, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("mode = %o, want 600", info.Mode().Perm())
	}
}

func TestRemoveFileRefusesDirectory(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}

	err := fs.RemoveFile(sub)
	var pathErr *os.PathError
	if !errors.As(err, &pathErr) || pathErr.Op != "remove" {
		t.Fatalf("RemoveFile(dir) error = %v, want *os.PathError remove", err)
	}
	testutil.AssertFileExists(t, sub)
}

func TestGetwdFollowsChdir(t *testing.T) {
	testutil.Chdir(t, t.TempDir())
	dir := t.TempDir()

	testutil.AssertNoError(t, fs.Chdir(dir))
	got, err := fs.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	want, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("Getwd() = %q, want %q", got, want)
	}
}

func TestSandboxDeniesOutsidePaths(t *testing.T) {
	allowed := t.TempDir()
	outside := t.TempDir()
	if err := sandbox.Init(&sandbox.Config{AllowedPaths: []string{allowed}}); err != nil {
		t.Fatal(err)
	}
	defer sandbox.Disable()

	testutil.AssertNoError(t, fs.Mkdir(filepath.Join(allowed, "ok"), 0755))

	target := filepath.Join(outside, "nope")
	if err := fs.Mkdir(target, 0755); !errors.Is(err, sandbox.ErrAccessDenied) {
		t.Fatalf("Mkdir outside sandbox error = %v, want ErrAccessDenied", err)
	}
	testutil.AssertFileNotExists(t, target)
}
