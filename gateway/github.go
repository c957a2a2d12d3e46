package gateway

import (
	"context"

	"github.com/cwbdev/cwb/constants"
)

// LatestRelease returns the tag of the newest published cwb release.
func (g *Gateway) LatestRelease(ctx context.Context) (string, error) {
	rep, _, err := g.github.Repositories.GetLatestRelease(ctx, constants.RepoOwner, constants.RepoName)
	if err != nil {
		return "", err
	}
	return rep.GetTagName(), nil
}
