package gateway

import (
	"context"
	"encoding/json"

	"github.com/cwbdev/cwb/entity"
	"github.com/pkg/errors"
)

// CallerIdentity runs `aws sts get-caller-identity` for the environment's profile.
func (g *Gateway) CallerIdentity(ctx context.Context, env *entity.EnvironmentConfig) (*entity.CallerIdentity, error) {
	args := []string{"sts", "get-caller-identity", "--output", "json"}
	if profile := env.Profile(); profile != "default" {
		args = append(args, "--profile", profile)
	}

	res, err := g.runner.Run(ctx, entity.ExecRequest{
		Name:  "aws",
		Args:  args,
		Label: "aws",
	}, entity.ExecCaptured)
	if err != nil {
		return nil, err
	}
	if res.DryRun {
		return &entity.CallerIdentity{Account: env.AccountNumber}, nil
	}

	var identity entity.CallerIdentity
	if err := json.Unmarshal([]byte(res.Stdout), &identity); err != nil {
		return nil, errors.Wrap(err, "decoding caller identity")
	}
	return &identity, nil
}
