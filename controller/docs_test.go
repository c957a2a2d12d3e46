package controller_test

import (
	"context"
	"testing"

	"github.com/cwbdev/cwb/executor/executortest"
	"github.com/stretchr/testify/require"
)

func TestDocs(t *testing.T) {
	f := newFixture(t, &executortest.Recorder{Dry: true}, nil, fixtureOptions{})

	require.NoError(t, f.ctrl.Docs(context.Background(), ""))
	require.NoError(t, f.ctrl.Docs(context.Background(), "CDK"))
	require.Error(t, f.ctrl.Docs(context.Background(), "kubernetes"))
}
