package util

import (
	"os"
	"path/filepath"
)

// LocateFile returns the first existing path among name itself and name
// joined to each of dirs.
func LocateFile(name string, dirs []string) (string, bool) {
	if FileExists(name) || filepath.IsAbs(name) {
		return name, FileExists(name)
	}
	for _, dir := range dirs {
		candidate := filepath.Join(dir, name)
		if FileExists(candidate) {
			return candidate, true
		}
	}
	return name, false
}

// FileExists is true for regular files only.
func FileExists(name string) bool {
	info, err := os.Stat(name)
	return err == nil && info.Mode().IsRegular()
}

func DirExists(name string) bool {
	info, err := os.Stat(name)
	return err == nil && info.IsDir()
}
