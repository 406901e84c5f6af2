package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const sortPipeline = `pipeline: {
	name: "sorter"
	steps: [
		{op: "distinct"},
		{op: "sort"},
	]
}`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunWithYAMLInput(t *testing.T) {
	dir := t.TempDir()
	pipelinePath := writeFile(t, dir, "sort.cue", sortPipeline)
	inputPath := writeFile(t, dir, "data.yaml", "- 3\n- 1\n- 3\n- 2\n")

	out, err := execute(t, "run", pipelinePath, "--input", inputPath)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestRunJSONOutputCarriesRunToken(t *testing.T) {
	dir := t.TempDir()
	pipelinePath := writeFile(t, dir, "sort.cue", sortPipeline)
	inputPath := writeFile(t, dir, "data.json", `[2, 1]`)

	out, err := execute(t, "--format", "json", "run", pipelinePath, "--input", inputPath)
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.RunToken)
}

func TestRunRequiresDatasetSource(t *testing.T) {
	dir := t.TempDir()
	pipelinePath := writeFile(t, dir, "sort.cue", sortPipeline)

	_, err := execute(t, "run", pipelinePath)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRunRejectsBothSources(t *testing.T) {
	dir := t.TempDir()
	pipelinePath := writeFile(t, dir, "sort.cue", sortPipeline)
	inputPath := writeFile(t, dir, "data.yaml", "- 1\n")

	_, err := execute(t, "run", pipelinePath, "--input", inputPath, "--db", "x.db")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRunMissingDataset(t *testing.T) {
	dir := t.TempDir()
	pipelinePath := writeFile(t, dir, "sort.cue", sortPipeline)

	_, err := execute(t, "run", pipelinePath, "--input", filepath.Join(dir, "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRunInvalidPipelineFailsWithExitFailure(t *testing.T) {
	dir := t.TempDir()
	pipelinePath := writeFile(t, dir, "bad.cue", `pipeline: {
	name: "bad"
	steps: [{op: "teleport"}]
}`)
	inputPath := writeFile(t, dir, "data.yaml", "- 1\n")

	_, err := execute(t, "run", pipelinePath, "--input", inputPath)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestRunEmptyInputExtremumFails(t *testing.T) {
	dir := t.TempDir()
	pipelinePath := writeFile(t, dir, "max.cue", `pipeline: {
	name: "max"
	steps: [{op: "max"}]
}`)
	inputPath := writeFile(t, dir, "data.json", `[]`)

	_, err := execute(t, "run", pipelinePath, "--input", inputPath)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestRunRejectsInvalidFormat(t *testing.T) {
	_, err := execute(t, "--format", "xml", "ops")
	require.Error(t, err)
}
