// Package sandbox provides capability-based filesystem access control.
// It restricts the shell's filesystem commands to pre-authorized paths.
package sandbox

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Common sandbox errors.
var (
	ErrAccessDenied = errors.New("access denied: path not in sandbox")
	ErrReadOnly     = errors.New("write access denied: sandbox is read-only")
)

// Permission represents file access permissions.
type Permission uint8

const (
	PermNone  Permission = 0
	PermRead  Permission = 1 << iota // Can read files and list directories
	PermWrite                        // Can create, modify, rename and remove
)

// String returns a short form such as "rw" or "r-".
func (p Permission) String() string {
	b := []byte("--")
	if p&PermRead != 0 {
		b[0] = 'r'
	}
	if p&PermWrite != 0 {
		b[1] = 'w'
	}
	return string(b)
}

// PathRule defines access rules for a path prefix.
type PathRule struct {
	Path       string     // Path prefix (resolved to absolute)
	Permission Permission // Allowed operations
}

// Config holds sandbox configuration.
type Config struct {
	// Paths to allow access to
	AllowedPaths []string
	// Grant read access only, even on allowed paths
	ReadOnly bool
}

type sandbox struct {
	mu      sync.RWMutex
	rules   []PathRule
	enabled bool
}

// Global sandbox instance, disabled until Init is called.
var global = &sandbox{}

// Init enables the global sandbox with the given configuration.
// An empty allow-list leaves the sandbox disabled.
func Init(cfg *Config) error {
	global.mu.Lock()
	defer global.mu.Unlock()

	global.rules = nil
	global.enabled = false
	if cfg == nil || len(cfg.AllowedPaths) == 0 {
		return nil
	}

	perm := PermRead | PermWrite
	if cfg.ReadOnly {
		perm = PermRead
	}
	for _, p := range cfg.AllowedPaths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return &os.PathError{Op: "sandbox", Path: p, Err: err}
		}
		global.rules = append(global.rules, PathRule{
			Path:       filepath.Clean(abs),
			Permission: perm,
		})
	}
	global.enabled = true
	return nil
}

// Disable turns the sandbox off and clears its rules.
func Disable() {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.enabled = false
	global.rules = nil
}

// IsEnabled returns whether the sandbox is enabled.
func IsEnabled() bool {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.enabled
}

// Rules returns a copy of the active rules.
func Rules() []PathRule {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return append([]PathRule(nil), global.rules...)
}

// Check verifies that path may be accessed with perm. Failures are returned
// as *os.PathError carrying op, so they print like the OS's own errors.
func Check(op, path string, perm Permission) error {
	global.mu.RLock()
	defer global.mu.RUnlock()

	if !global.enabled {
		return nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return &os.PathError{Op: op, Path: path, Err: ErrAccessDenied}
	}
	abs = filepath.Clean(abs)

	readOnly := false
	for _, rule := range global.rules {
		if !within(abs, rule.Path) {
			continue
		}
		if rule.Permission&perm == perm {
			return nil
		}
		if perm&PermWrite != 0 && rule.Permission&PermWrite == 0 {
			readOnly = true
		}
	}

	if readOnly {
		return &os.PathError{Op: op, Path: path, Err: ErrReadOnly}
	}
	return &os.PathError{Op: op, Path: path, Err: ErrAccessDenied}
}

// within reports whether path equals root or lies beneath it.
func within(path, root string) bool {
	if path == root {
		return true
	}
	if root == string(filepath.Separator) {
		return true
	}
	return strings.HasPrefix(path, root+string(filepath.Separator))
}
