package cargo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectSingleMatch(t *testing.T) {
	artifacts := []Artifact{
		{TargetName: "dep", Executable: "/t/dep"},
		{TargetName: "myapp", Executable: ""},
		{TargetName: "myapp", Executable: "/t/debug/myapp"},
	}

	bin, err := Select(artifacts, "myapp", "")
	require.NoError(t, err)
	assert.Equal(t, "/t/debug/myapp", bin)
}

func TestSelectNoArtifacts(t *testing.T) {
	artifacts := []Artifact{
		{TargetName: "myapp", Executable: ""}, // library only
		{TargetName: "other", Executable: "/t/other"},
	}

	_, err := Select(artifacts, "myapp", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no viable output artifacts")
}

func TestSelectAmbiguousListsCandidates(t *testing.T) {
	artifacts := []Artifact{
		{TargetName: "myapp", Executable: "/t/debug/server"},
		{TargetName: "myapp", Executable: "/t/debug/client"},
	}

	_, err := Select(artifacts, "myapp", "")
	require.Error(t, err)
	var amb *AmbiguousError
	require.ErrorAs(t, err, &amb)
	assert.Equal(t, []string{"server", "client"}, amb.Candidates)
}

func TestSelectFilterPicksPrefixMatch(t *testing.T) {
	artifacts := []Artifact{
		{TargetName: "myapp", Executable: "/t/debug/server"},
		{TargetName: "myapp", Executable: "/t/debug/client"},
	}

	bin, err := Select(artifacts, "myapp", "cli")
	require.NoError(t, err)
	assert.Equal(t, "/t/debug/client", bin)
}

func TestSelectFilterFirstMatchWinsInBuildOrder(t *testing.T) {
	artifacts := []Artifact{
		{TargetName: "myapp", Executable: "/t/debug/server-a"},
		{TargetName: "myapp", Executable: "/t/debug/server-b"},
	}

	bin, err := Select(artifacts, "myapp", "server")
	require.NoError(t, err)
	assert.Equal(t, "/t/debug/server-a", bin)
}

func TestSelectFilterNoMatch(t *testing.T) {
	artifacts := []Artifact{
		{TargetName: "myapp", Executable: "/t/debug/server"},
	}

	_, err := Select(artifacts, "myapp", "client")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"client"`)
}

func TestSelectFilterMatchesBaseNameNotPath(t *testing.T) {
	artifacts := []Artifact{
		{TargetName: "myapp", Executable: "/client/debug/server"},
	}

	_, err := Select(artifacts, "myapp", "client")
	assert.Error(t, err)
}
