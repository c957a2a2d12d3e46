package constants

// Version is overridden at build time with -ldflags.
var Version = "source"

const (
	RepoOwner = "cwbdev"
	RepoName  = "cwb"
)

const (
	ConfigFileName        = "config.yaml"
	ExampleConfigFileName = "config.yaml.example"
)

const (
	CDKDir    = "infrastructure/cdk"
	CDKOutDir = "cdk.out"
)
