package gateway_test

import (
	"context"
	"testing"

	"github.com/cwbdev/cwb/entity"
	"github.com/cwbdev/cwb/executor/executortest"
	"github.com/cwbdev/cwb/gateway"
	"github.com/stretchr/testify/require"
)

func TestCallerIdentity(t *testing.T) {
	rec := &executortest.Recorder{
		Handler: func(req entity.ExecRequest, mode entity.ExecMode) (*entity.ExecResult, error) {
			return &entity.ExecResult{Stdout: `{"UserId":"AIDA","Account":"999999999999","Arn":"arn:aws:iam::999999999999:user/ci"}`}, nil
		},
	}
	g := gateway.New(rec, "/project")

	identity, err := g.CallerIdentity(context.Background(), devEnv())
	require.NoError(t, err)
	require.Equal(t, "999999999999", identity.Account)
	require.Equal(t, "aws sts get-caller-identity --output json --profile dev", rec.Commands()[0])
}

func TestCallerIdentityDefaultProfile(t *testing.T) {
	rec := &executortest.Recorder{Dry: true}
	g := gateway.New(rec, "/project")
	env := devEnv()
	env.AwsProfile = ""

	identity, err := g.CallerIdentity(context.Background(), env)
	require.NoError(t, err)
	require.Equal(t, env.AccountNumber, identity.Account)
	require.Equal(t, "aws sts get-caller-identity --output json", rec.Commands()[0])
}

func TestCallerIdentityBadJSON(t *testing.T) {
	rec := &executortest.Recorder{
		Handler: func(req entity.ExecRequest, mode entity.ExecMode) (*entity.ExecResult, error) {
			return &entity.ExecResult{Stdout: "not json"}, nil
		},
	}
	_, err := gateway.New(rec, "/project").CallerIdentity(context.Background(), devEnv())
	require.Error(t, err)
}
