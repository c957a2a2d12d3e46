package configs_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/cwbdev/cwb/configs"
	"github.com/cwbdev/cwb/entity"
	CLIErrors "github.com/cwbdev/cwb/errors"
	"github.com/stretchr/testify/require"
)

func devDocument() *entity.ConfigDocument {
	return &entity.ConfigDocument{
		DefaultEnvironment: "dev",
		Environments: map[string]entity.EnvironmentConfig{
			"dev": {
				AccountNumber: "111111111111",
				Region:        "us-east-1",
				Tags:          []entity.Tag{{Key: "team", Value: "core"}},
			},
		},
	}
}

func TestResolveDefault(t *testing.T) {
	env, name, err := configs.Resolve(devDocument(), "")
	require.NoError(t, err)
	require.Equal(t, "dev", name)
	require.Equal(t, "111111111111", env.AccountNumber)
	require.Equal(t, "us-east-1", env.Region)
}

func TestResolveIsCaseInsensitive(t *testing.T) {
	_, name, err := configs.Resolve(devDocument(), "DEV")
	require.NoError(t, err)
	require.Equal(t, "dev", name)
}

func TestResolveUnknownListsValid(t *testing.T) {
	_, _, err := configs.Resolve(devDocument(), "staging")

	var unknown *CLIErrors.UnknownEnvironmentError
	require.True(t, errors.As(err, &unknown))
	require.Equal(t, "staging", unknown.Name)
	require.Equal(t, []string{"dev"}, unknown.Valid)
}

func TestResolveMissingDefault(t *testing.T) {
	doc := devDocument()
	doc.DefaultEnvironment = "prod"

	_, _, err := configs.Resolve(doc, "")
	var unknown *CLIErrors.UnknownEnvironmentError
	require.True(t, errors.As(err, &unknown))
	require.Equal(t, "prod", unknown.Name)
}

func TestResolveIsDeterministic(t *testing.T) {
	doc := devDocument()

	first, _, err := configs.Resolve(doc, "dev")
	require.NoError(t, err)
	second, _, err := configs.Resolve(doc, "dev")
	require.NoError(t, err)
	require.True(t, reflect.DeepEqual(first, second))

	first.Tags[0].Value = "changed"
	third, _, err := configs.Resolve(doc, "dev")
	require.NoError(t, err)
	require.Equal(t, "core", third.Tags[0].Value)
}
