package registry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cwbdev/cwb/entity"
)

// Detection is the outcome of scanning a project directory.
type Detection struct {
	Components []entity.ComponentConfig
	Findings   []string
}

var nodeLockfiles = []entity.PackageManager{
	entity.PackageManagerYarn,
	entity.PackageManagerPnpm,
	entity.PackageManagerBun,
	entity.PackageManagerNpm,
}

// Detect refines the default components against what exists under root:
// alternate directories and lockfiles select paths and package managers.
func Detect(root string) *Detection {
	d := &Detection{}

	backendDir := filepath.Join(root, "backend")
	if isDir(backendDir) {
		d.Findings = append(d.Findings, "Python backend detected in backend/")
	}
	backend := backendComponent(backendDir)
	if exists(filepath.Join(backendDir, "pyproject.toml")) || exists(filepath.Join(backendDir, "uv.lock")) {
		d.Findings = append(d.Findings, "Python project with pyproject.toml detected")
	}
	d.Components = append(d.Components, backend)

	frontendDir := firstDir(root, "ui", "frontend")
	pm := detectNodePackageManager(frontendDir)
	if isDir(frontendDir) {
		d.Findings = append(d.Findings, fmt.Sprintf("Frontend detected in %s/ (%s)", filepath.Base(frontendDir), pm))
	}
	d.Components = append(d.Components, frontendComponent(frontendDir, pm))

	infraDir := firstDir(root, filepath.Join("infrastructure", "cdk"), "infra")
	pm = detectNodePackageManager(infraDir)
	if isDir(infraDir) {
		rel, _ := filepath.Rel(root, infraDir)
		d.Findings = append(d.Findings, fmt.Sprintf("CDK infrastructure detected in %s/ (%s)", filepath.ToSlash(rel), pm))
	}
	d.Components = append(d.Components, infrastructureComponent(infraDir, pm))

	return d
}

// Discover builds a registry from Detect(root).
func Discover(root string) (*Registry, error) {
	r := New()
	for _, c := range Detect(root).Components {
		if err := r.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func detectNodePackageManager(dir string) entity.PackageManager {
	for _, pm := range nodeLockfiles {
		if exists(filepath.Join(dir, pm.Lockfile())) {
			return pm
		}
	}
	if exists(filepath.Join(dir, "bun.lock")) {
		return entity.PackageManagerBun
	}
	return entity.PackageManagerNpm
}

func firstDir(root string, candidates ...string) string {
	for _, c := range candidates {
		if dir := filepath.Join(root, c); isDir(dir) {
			return dir
		}
	}
	return filepath.Join(root, candidates[0])
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
