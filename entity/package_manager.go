package entity

import "strings"

type PackageManager int

const (
	PackageManagerUnknown PackageManager = iota
	PackageManagerUv
	PackageManagerNpm
	PackageManagerYarn
	PackageManagerPnpm
	PackageManagerBun
)

func ParsePackageManager(s string) PackageManager {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "uv":
		return PackageManagerUv
	case "npm":
		return PackageManagerNpm
	case "yarn":
		return PackageManagerYarn
	case "pnpm":
		return PackageManagerPnpm
	case "bun":
		return PackageManagerBun
	default:
		return PackageManagerUnknown
	}
}

func (p PackageManager) String() string {
	switch p {
	case PackageManagerUv:
		return "uv"
	case PackageManagerNpm:
		return "npm"
	case PackageManagerYarn:
		return "yarn"
	case PackageManagerPnpm:
		return "pnpm"
	case PackageManagerBun:
		return "bun"
	default:
		return "unknown"
	}
}

// Each operation returns the argv steps to run in order, or nil for
// PackageManagerUnknown.

func (p PackageManager) InstallArgs() [][]string {
	switch p {
	case PackageManagerUv:
		return [][]string{{"uv", "sync"}}
	case PackageManagerNpm:
		return [][]string{{"npm", "install"}}
	case PackageManagerYarn:
		return [][]string{{"yarn", "install"}}
	case PackageManagerPnpm:
		return [][]string{{"pnpm", "install"}}
	case PackageManagerBun:
		return [][]string{{"bun", "install"}}
	default:
		return nil
	}
}

func (p PackageManager) UpdateArgs() [][]string {
	switch p {
	case PackageManagerUv:
		return [][]string{{"uv", "lock", "--upgrade"}, {"uv", "sync"}}
	case PackageManagerNpm:
		return [][]string{{"npm", "update"}}
	case PackageManagerYarn:
		return [][]string{{"yarn", "upgrade"}}
	case PackageManagerPnpm:
		return [][]string{{"pnpm", "update"}}
	case PackageManagerBun:
		return [][]string{{"bun", "update"}}
	default:
		return nil
	}
}

func (p PackageManager) OutdatedArgs() [][]string {
	switch p {
	case PackageManagerUv:
		return [][]string{{"uv", "lock", "--dry-run"}}
	case PackageManagerNpm:
		return [][]string{{"npm", "outdated"}}
	case PackageManagerYarn:
		return [][]string{{"yarn", "outdated"}}
	case PackageManagerPnpm:
		return [][]string{{"pnpm", "outdated"}}
	case PackageManagerBun:
		return [][]string{{"bun", "outdated"}}
	default:
		return nil
	}
}

func (p PackageManager) SyncArgs() [][]string {
	switch p {
	case PackageManagerUv:
		return [][]string{{"uv", "sync", "--locked"}}
	case PackageManagerNpm:
		return [][]string{{"npm", "ci"}}
	case PackageManagerYarn:
		return [][]string{{"yarn", "install", "--frozen-lockfile"}}
	case PackageManagerPnpm:
		return [][]string{{"pnpm", "install", "--frozen-lockfile"}}
	case PackageManagerBun:
		return [][]string{{"bun", "install", "--frozen-lockfile"}}
	default:
		return nil
	}
}

// Lockfile is the file whose presence selects this package manager.
func (p PackageManager) Lockfile() string {
	switch p {
	case PackageManagerUv:
		return "uv.lock"
	case PackageManagerNpm:
		return "package-lock.json"
	case PackageManagerYarn:
		return "yarn.lock"
	case PackageManagerPnpm:
		return "pnpm-lock.yaml"
	case PackageManagerBun:
		return "bun.lockb"
	default:
		return ""
	}
}
