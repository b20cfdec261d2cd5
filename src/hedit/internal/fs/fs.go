package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/oakenai/hedit/src/hedit/internal/errors"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const _configKeyAllowedRoots = "storage.allowedRoots"

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// Storage wraps the filesystem operations used by hedit. Every path passed to
// a mutating or reading method is expected to have gone through ValidatePath.
type Storage interface {
	// ValidatePath resolves path to a canonical absolute form and rejects
	// anything that escapes the configured allowed roots, including via symlink.
	ValidatePath(path string) (string, error)
	Exists(path string) (bool, error)
	IsDirectory(path string) (bool, error)
	ReadFile(path string) (string, error)
	WriteFile(path string, data string) error
	MkdirAll(path string) error
	RemoveAll(path string) error
	Rename(oldPath, newPath string) error
	Remove(path string) error
}

// Params define values used to construct Storage.
type Params struct {
	fx.In

	Config config.Provider
	Logger *zap.SugaredLogger
}

type storage struct {
	allowedRoots []string
	logger       *zap.SugaredLogger
}

// New creates a Storage restricted to the roots listed under storage.allowedRoots.
func New(p Params) (Storage, error) {
	var roots []string
	if err := p.Config.Get(_configKeyAllowedRoots).Populate(&roots); err != nil {
		return nil, err
	}
	if len(roots) == 0 {
		return nil, errors.New("storage.allowedRoots must list at least one root")
	}

	resolved := make([]string, 0, len(roots))
	for _, root := range roots {
		abs, err := filepath.Abs(root)
		if err != nil {
			return nil, err
		}
		if r, err := filepath.EvalSymlinks(abs); err == nil {
			abs = r
		}
		resolved = append(resolved, abs)
	}

	return &storage{
		allowedRoots: resolved,
		logger:       p.Logger.With("component", "storage"),
	}, nil
}

func (s *storage) ValidatePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &errors.PathNotAllowedError{Path: path}
	}

	resolved, err := resolveSymlinks(abs)
	if err != nil {
		return "", &errors.PathNotAllowedError{Path: path}
	}

	for _, root := range s.allowedRoots {
		if resolved == root || strings.HasPrefix(resolved, root+string(filepath.Separator)) {
			return resolved, nil
		}
	}

	s.logger.Warnw("rejected path outside allowed roots", "path", path, "resolved", resolved)
	return "", &errors.PathNotAllowedError{Path: path}
}

// resolveSymlinks canonicalizes abs even when the final path element does not
// exist yet, by resolving the parent directory and rejoining the base name.
func resolveSymlinks(abs string) (string, error) {
	resolved, err := filepath.EvalSymlinks(abs)
	if err == nil {
		return resolved, nil
	}
	if !os.IsNotExist(err) {
		return "", err
	}

	dir, err := filepath.EvalSymlinks(filepath.Dir(abs))
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, filepath.Base(abs)), nil
}

func (s *storage) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, &errors.ReadWriteError{Op: "stat", Path: path, Err: err}
	}
	return true, nil
}

func (s *storage) IsDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, &errors.ReadWriteError{Op: "stat", Path: path, Err: err}
	}
	return info.IsDir(), nil
}

func (s *storage) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &errors.FileNotFoundError{Path: path}
		}
		return "", &errors.ReadWriteError{Op: "read", Path: path, Err: err}
	}
	return string(data), nil
}

func (s *storage) WriteFile(path string, data string) error {
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		return &errors.ReadWriteError{Op: "write", Path: path, Err: err}
	}
	return nil
}

func (s *storage) MkdirAll(path string) error {
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		return &errors.ReadWriteError{Op: "mkdir", Path: path, Err: err}
	}
	return nil
}

func (s *storage) RemoveAll(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return &errors.ReadWriteError{Op: "removeall", Path: path, Err: err}
	}
	return nil
}

func (s *storage) Rename(oldPath, newPath string) error {
	if err := os.Rename(oldPath, newPath); err != nil {
		return &errors.ReadWriteError{Op: "rename", Path: oldPath, Err: err}
	}
	return nil
}

func (s *storage) Remove(path string) error {
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return &errors.FileNotFoundError{Path: path}
		}
		return &errors.ReadWriteError{Op: "remove", Path: path, Err: err}
	}
	return nil
}
