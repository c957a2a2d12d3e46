package gateway_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbdev/cwb/entity"
	CLIErrors "github.com/cwbdev/cwb/errors"
	"github.com/cwbdev/cwb/executor/executortest"
	"github.com/cwbdev/cwb/gateway"
	"github.com/stretchr/testify/require"
)

func devEnv() *entity.EnvironmentConfig {
	return &entity.EnvironmentConfig{
		AccountNumber: "111111111111",
		Region:        "us-east-1",
		AwsProfile:    "dev",
	}
}

func TestCDKEnv(t *testing.T) {
	env := devEnv()
	require.Equal(t, map[string]string{
		"AWS_REGION":          "us-east-1",
		"AWS_DEFAULT_REGION":  "us-east-1",
		"AWS_ACCOUNT":         "111111111111",
		"CDK_DEFAULT_REGION":  "us-east-1",
		"CDK_DEFAULT_ACCOUNT": "111111111111",
		"AWS_PROFILE":         "dev",
	}, gateway.CDKEnv(env))

	env.AwsProfile = ""
	_, ok := gateway.CDKEnv(env)["AWS_PROFILE"]
	require.False(t, ok)
}

var cdkCommandTest = []struct {
	name string
	run  func(g *gateway.Gateway) error
	out  string
}{
	{
		name: "Deploy one stack",
		run:  func(g *gateway.Gateway) error { return g.Deploy(context.Background(), devEnv(), "ApiStack") },
		out:  "cdk deploy ApiStack --require-approval never",
	},
	{
		name: "Deploy all stacks",
		run:  func(g *gateway.Gateway) error { return g.DeployAll(context.Background(), devEnv()) },
		out:  "cdk deploy --all --require-approval never",
	},
	{
		name: "Destroy all stacks",
		run:  func(g *gateway.Gateway) error { return g.DestroyAll(context.Background(), devEnv()) },
		out:  "cdk destroy --all --force",
	},
	{
		name: "Diff without a stack",
		run:  func(g *gateway.Gateway) error { return g.Diff(context.Background(), devEnv(), "") },
		out:  "cdk diff",
	},
	{
		name: "Bootstrap uses the configured region",
		run:  func(g *gateway.Gateway) error { return g.Bootstrap(context.Background(), devEnv(), "") },
		out:  "cdk bootstrap --region us-east-1",
	},
}

func TestCDKCommands(t *testing.T) {
	for _, tt := range cdkCommandTest {
		t.Run(tt.name, func(t *testing.T) {
			rec := &executortest.Recorder{}
			g := gateway.New(rec, "/project")

			require.NoError(t, tt.run(g))
			calls := rec.Calls()
			require.Len(t, calls, 1)
			require.Equal(t, tt.out, calls[0].Request.CommandLine())
			require.Equal(t, entity.ExecStreamed, calls[0].Mode)
			require.Equal(t, filepath.Join("/project", "infrastructure", "cdk"), calls[0].Request.Dir)
			require.Equal(t, "111111111111", calls[0].Request.Env["CDK_DEFAULT_ACCOUNT"])
		})
	}
}

func TestBootstrapRegionOverride(t *testing.T) {
	rec := &executortest.Recorder{}
	g := gateway.New(rec, "/project")

	require.NoError(t, g.Bootstrap(context.Background(), devEnv(), "eu-central-1"))
	req := rec.Calls()[0].Request
	require.Equal(t, []string{"bootstrap", "--region", "eu-central-1"}, req.Args)
	require.Equal(t, "eu-central-1", req.Env["AWS_REGION"])
	require.Equal(t, "eu-central-1", req.Env["CDK_DEFAULT_REGION"])
}

func TestListStacks(t *testing.T) {
	rec := &executortest.Recorder{
		Handler: func(req entity.ExecRequest, mode entity.ExecMode) (*entity.ExecResult, error) {
			return &entity.ExecResult{Stdout: "ApiStack\n  DataStack  \n\n"}, nil
		},
	}
	g := gateway.New(rec, "/project")

	stacks, err := g.ListStacks(context.Background(), devEnv())
	require.NoError(t, err)
	require.Equal(t, []string{"ApiStack", "DataStack"}, stacks)
	require.Equal(t, entity.ExecCaptured, rec.Calls()[0].Mode)
}

func TestCheckCDKDir(t *testing.T) {
	root := t.TempDir()
	g := gateway.New(&executortest.Recorder{}, root)
	require.True(t, errors.Is(g.CheckCDKDir(), CLIErrors.CDKDirNotFound))

	require.NoError(t, os.MkdirAll(g.CDKDir(), 0o755))
	require.NoError(t, g.CheckCDKDir())
}

func TestClean(t *testing.T) {
	root := t.TempDir()
	rec := &executortest.Recorder{}
	g := gateway.New(rec, root)

	removed, err := g.Clean(context.Background())
	require.NoError(t, err)
	require.False(t, removed)
	require.Empty(t, rec.Calls())

	out := filepath.Join(g.CDKDir(), "cdk.out")
	require.NoError(t, os.MkdirAll(out, 0o755))
	removed, err = g.Clean(context.Background())
	require.NoError(t, err)
	require.True(t, removed)
	require.Equal(t, []string{"rm -rf " + out}, rec.Commands())
}
