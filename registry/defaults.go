package registry

import "github.com/cwbdev/cwb/entity"

const (
	Backend        = "backend"
	Frontend       = "frontend"
	Infrastructure = "infrastructure"
)

func backendComponent(path string) entity.ComponentConfig {
	return entity.ComponentConfig{
		Name:           Backend,
		Path:           path,
		Language:       entity.LanguagePython,
		PackageManager: entity.PackageManagerUv,
		Test:           entity.Template{"uv", "run", "pytest"},
		Lint:           entity.Template{"uv", "run", "ruff", "check"},
		Build:          entity.Template{"uv", "build"},
		Format:         entity.Template{"uv", "run", "ruff", "format"},
		Dev:            entity.Template{"uv", "run", "python", "-m", "app.api.main"},
	}
}

func frontendComponent(path string, pm entity.PackageManager) entity.ComponentConfig {
	return entity.ComponentConfig{
		Name:           Frontend,
		Path:           path,
		Language:       entity.LanguageTypeScript,
		PackageManager: pm,
		Test:           script(pm, "test"),
		Lint:           script(pm, "lint"),
		Build:          script(pm, "build"),
		Format:         script(pm, "format"),
		Dev:            script(pm, "dev"),
	}
}

// The CDK app has no formatter or dev server.
func infrastructureComponent(path string, pm entity.PackageManager) entity.ComponentConfig {
	return entity.ComponentConfig{
		Name:           Infrastructure,
		Path:           path,
		Language:       entity.LanguageTypeScript,
		PackageManager: pm,
		Test:           script(pm, "test"),
		Lint:           script(pm, "lint"),
		Build:          script(pm, "build"),
	}
}

func script(pm entity.PackageManager, name string) entity.Template {
	bin := pm.String()
	if pm == entity.PackageManagerUnknown {
		bin = entity.PackageManagerNpm.String()
	}
	return entity.Template{bin, "run", name}
}

// Defaults are the compiled-in components, relative to the project root.
func Defaults() []entity.ComponentConfig {
	return []entity.ComponentConfig{
		backendComponent("backend"),
		frontendComponent("ui", entity.PackageManagerNpm),
		infrastructureComponent("infrastructure/cdk", entity.PackageManagerNpm),
	}
}
