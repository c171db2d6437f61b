package domain

import "path/filepath"

// InstancesDirName is the directory under the launcher root that holds one
// sub-directory per instance.
const InstancesDirName = "instances"

// MediaSubdir is where an instance keeps its screenshots, relative to the
// instance directory.
var MediaSubdir = filepath.Join(".minecraft", "screenshots")

type Instance struct {
	Name     string
	Path     string
	MediaDir string
}

func NewInstance(instancesDir, name string) Instance {
	path := filepath.Join(instancesDir, name)
	return Instance{
		Name:     name,
		Path:     path,
		MediaDir: filepath.Join(path, MediaSubdir),
	}
}

func InstancesDir(sourceRoot string) string {
	return filepath.Join(sourceRoot, InstancesDirName)
}
