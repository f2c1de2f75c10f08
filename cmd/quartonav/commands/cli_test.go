package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openearth/nesbp-msp-knowledge-platform/internal/config"
	"github.com/openearth/nesbp-msp-knowledge-platform/internal/validate"
)

const nodesCSV = "id;parent_id;label;kind;order\nhome;;Home;navbar;1\nabout;home;About us;item;1\n"

func parse(t *testing.T, args ...string) *CLI {
	t.Helper()
	cli := &CLI{}
	parser, err := kong.New(cli, kong.Vars{"version": "test"}, kong.Exit(func(int) { t.Fatal("unexpected exit") }))
	require.NoError(t, err)
	_, err = parser.Parse(args)
	require.NoError(t, err)
	return cli
}

func project(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nodes.csv"), []byte(nodesCSV), 0o600))
	return dir
}

func TestConfigDefaults(t *testing.T) {
	cfg, err := parse(t).Config()
	require.NoError(t, err)

	want := config.Default()
	assert.Equal(t, want, cfg)
}

func TestConfigFlags(t *testing.T) {
	dir := t.TempDir()
	cfg, err := parse(t, "nav.tsv",
		"--content-csv", "",
		"--root", dir,
		"--yml-out", "site.yml",
		"--create-stubs",
		"--theme1", "flatly",
		"--no-toc",
		"--sidebar-style", "docked",
	).Config()
	require.NoError(t, err)

	assert.Equal(t, "nav.tsv", cfg.NodesPath)
	assert.Empty(t, cfg.ContentPath)
	assert.Equal(t, dir, cfg.Root)
	assert.Equal(t, filepath.Join(dir, "site.yml"), cfg.OutputFile())
	assert.True(t, cfg.CreatePages)
	assert.Equal(t, [2]string{"flatly", config.DefaultTheme2}, cfg.Themes)
	assert.False(t, cfg.TOC)
	assert.Equal(t, "docked", cfg.SidebarStyle)
}

func TestConfigFromEnvironment(t *testing.T) {
	t.Setenv("QUARTONAV_SITE_TITLE", "Knowledge Platform")
	t.Setenv("QUARTONAV_CREATE_STUBS", "true")

	cfg, err := parse(t).Config()
	require.NoError(t, err)
	assert.Equal(t, "Knowledge Platform", cfg.SiteTitle)
	assert.True(t, cfg.CreatePages)
}

func TestConfigRejectsWatchWithValidate(t *testing.T) {
	_, err := parse(t, "--watch", "--validate").Config()
	require.Error(t, err)
}

func TestExecuteWritesSite(t *testing.T) {
	dir := project(t)
	cli := parse(t, filepath.Join(dir, "nodes.csv"), "--root", dir, "--content-csv", "", "--create-stubs")

	var out bytes.Buffer
	require.Equal(t, 0, cli.Execute(context.Background(), &out))

	assert.FileExists(t, filepath.Join(dir, "_quarto.yml"))
	assert.FileExists(t, filepath.Join(dir, "home", "index.qmd"))
	assert.FileExists(t, filepath.Join(dir, "home", "about-us.qmd"))
	assert.Contains(t, out.String(), "Wrote "+filepath.Join(dir, "_quarto.yml"))
	assert.Contains(t, out.String(), "Created stub home/about-us.qmd")
}

func TestExecuteDryRun(t *testing.T) {
	dir := project(t)
	cli := parse(t, filepath.Join(dir, "nodes.csv"), "--root", dir, "--content-csv", "", "--dry-run")

	var out bytes.Buffer
	require.Equal(t, 0, cli.Execute(context.Background(), &out))

	assert.Contains(t, out.String(), "type: website")
	assert.NoFileExists(t, filepath.Join(dir, "_quarto.yml"))
}

func TestExecuteValidateJSON(t *testing.T) {
	dir := project(t)
	cli := parse(t, filepath.Join(dir, "nodes.csv"), "--root", dir, "--content-csv", "", "--validate", "--format", "json")

	var out bytes.Buffer
	require.Equal(t, 0, cli.Execute(context.Background(), &out))

	var got validate.JSONOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Len(t, got.Tree, 2)
	assert.Zero(t, got.WarningCount)
	assert.NoFileExists(t, filepath.Join(dir, "_quarto.yml"))
}

func TestExecuteWritesMetricsFile(t *testing.T) {
	dir := project(t)
	metricsFile := filepath.Join(dir, "metrics.prom")
	cli := parse(t, filepath.Join(dir, "nodes.csv"), "--root", dir, "--content-csv", "", "--metrics-file", metricsFile)

	require.Equal(t, 0, cli.Execute(context.Background(), &bytes.Buffer{}))

	data, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `quartonav_run_outcomes_total{outcome="success"} 1`)
	assert.Contains(t, string(data), "quartonav_nodes 2")
}

func TestExecuteExitCodes(t *testing.T) {
	dir := project(t)
	bad := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte("id,parent_id,label,kind\na,,A,banner\n"), 0o600))

	assert.Equal(t, 3, parse(t, filepath.Join(dir, "missing.csv"), "--root", dir).Execute(context.Background(), &bytes.Buffer{}))
	assert.Equal(t, 2, parse(t, bad, "--root", dir).Execute(context.Background(), &bytes.Buffer{}))
	assert.Equal(t, 7, parse(t, "--root", filepath.Join(dir, "nope")).Execute(context.Background(), &bytes.Buffer{}))
}

func TestUseColor(t *testing.T) {
	assert.False(t, parse(t).useColor(&bytes.Buffer{}))
	assert.False(t, parse(t, "--no-color").useColor(os.Stdout))
}
