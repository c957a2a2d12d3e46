package constants

const ProjectDocsURL = "https://github.com/cwbdev/cwb#readme"

// DocsURLMap maps a docs topic to the documentation of the wrapped tool.
var DocsURLMap = map[string]string{
	"cwb":        ProjectDocsURL,
	"cdk":        "https://docs.aws.amazon.com/cdk/v2/guide/cli.html",
	"aws":        "https://docs.aws.amazon.com/cli/latest/userguide/cli-configure-files.html",
	"uv":         "https://docs.astral.sh/uv/",
	"npm":        "https://docs.npmjs.com/cli",
	"yarn":       "https://yarnpkg.com/cli",
	"pnpm":       "https://pnpm.io/pnpm-cli",
	"bun":        "https://bun.sh/docs/cli/install",
	"pytest":     "https://docs.pytest.org/",
	"ruff":       "https://docs.astral.sh/ruff/",
	"pre-commit": "https://pre-commit.com/",
}
