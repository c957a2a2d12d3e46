package gateway

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbdev/cwb/constants"
	"github.com/cwbdev/cwb/entity"
	CLIErrors "github.com/cwbdev/cwb/errors"
	"github.com/cwbdev/cwb/ui"
	"github.com/pkg/errors"
)

// CDKEnv is the child environment for every cdk invocation against env.
func CDKEnv(env *entity.EnvironmentConfig) map[string]string {
	vars := map[string]string{
		"AWS_REGION":          env.Region,
		"AWS_DEFAULT_REGION":  env.Region,
		"AWS_ACCOUNT":         env.AccountNumber,
		"CDK_DEFAULT_REGION":  env.Region,
		"CDK_DEFAULT_ACCOUNT": env.AccountNumber,
	}
	if env.AwsProfile != "" {
		vars["AWS_PROFILE"] = env.AwsProfile
	}
	return vars
}

func (g *Gateway) cdkRequest(env *entity.EnvironmentConfig, args ...string) entity.ExecRequest {
	return entity.ExecRequest{
		Name:  "cdk",
		Args:  args,
		Dir:   g.CDKDir(),
		Env:   CDKEnv(env),
		Label: "cdk",
	}
}

// CheckCDKDir fails with CDKDirNotFound when the CDK app is missing.
func (g *Gateway) CheckCDKDir() error {
	info, err := os.Stat(g.CDKDir())
	if err != nil || !info.IsDir() {
		return CLIErrors.CDKDirNotFound
	}
	return nil
}

func (g *Gateway) stream(ctx context.Context, req entity.ExecRequest) error {
	_, err := g.runner.Run(ctx, req, entity.ExecStreamed)
	return err
}

// ListStacks returns the stack names reported by `cdk list`.
func (g *Gateway) ListStacks(ctx context.Context, env *entity.EnvironmentConfig) ([]string, error) {
	ui.StartSpinner(&ui.SpinnerCfg{Message: "Synthesizing stacks"})
	res, err := g.runner.Run(ctx, g.cdkRequest(env, "list"), entity.ExecCaptured)
	ui.StopSpinner("")
	if err != nil {
		return nil, errors.Wrap(err, "listing stacks")
	}

	var stacks []string
	for _, line := range strings.Split(res.Stdout, "\n") {
		if name := strings.TrimSpace(line); name != "" {
			stacks = append(stacks, name)
		}
	}
	return stacks, nil
}

func (g *Gateway) Deploy(ctx context.Context, env *entity.EnvironmentConfig, stack string) error {
	return g.stream(ctx, g.cdkRequest(env, "deploy", stack, "--require-approval", "never"))
}

func (g *Gateway) DeployAll(ctx context.Context, env *entity.EnvironmentConfig) error {
	return g.stream(ctx, g.cdkRequest(env, "deploy", "--all", "--require-approval", "never"))
}

func (g *Gateway) Destroy(ctx context.Context, env *entity.EnvironmentConfig, stack string) error {
	return g.stream(ctx, g.cdkRequest(env, "destroy", stack, "--force"))
}

func (g *Gateway) DestroyAll(ctx context.Context, env *entity.EnvironmentConfig) error {
	return g.stream(ctx, g.cdkRequest(env, "destroy", "--all", "--force"))
}

// Status streams `cdk list` so the operator sees synthesis output live.
func (g *Gateway) Status(ctx context.Context, env *entity.EnvironmentConfig) error {
	return g.stream(ctx, g.cdkRequest(env, "list"))
}

// Diff compares one stack, or every stack when stack is empty.
func (g *Gateway) Diff(ctx context.Context, env *entity.EnvironmentConfig, stack string) error {
	args := []string{"diff"}
	if stack != "" {
		args = append(args, stack)
	}
	return g.stream(ctx, g.cdkRequest(env, args...))
}

func (g *Gateway) Bootstrap(ctx context.Context, env *entity.EnvironmentConfig, region string) error {
	if region == "" {
		region = env.Region
	}
	req := g.cdkRequest(env, "bootstrap", "--region", region)
	req.Env["AWS_REGION"] = region
	req.Env["AWS_DEFAULT_REGION"] = region
	req.Env["CDK_DEFAULT_REGION"] = region
	return g.stream(ctx, req)
}

// Clean removes the synthesized cdk.out directory. It reports false when
// there was nothing to remove.
func (g *Gateway) Clean(ctx context.Context) (bool, error) {
	out := filepath.Join(g.CDKDir(), constants.CDKOutDir)
	if _, err := os.Stat(out); os.IsNotExist(err) {
		return false, nil
	}
	_, err := g.runner.Run(ctx, entity.ExecRequest{
		Name:  "rm",
		Args:  []string{"-rf", out},
		Label: "clean",
	}, entity.ExecCaptured)
	if err != nil {
		return false, errors.Wrapf(err, "removing %s", out)
	}
	return true, nil
}
