// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package cmd_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/rogpeppe/go-internal/testscript"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/defenseunicorns/eureka"
	"github.com/defenseunicorns/eureka/cmd"
	"github.com/defenseunicorns/eureka/config"
)

func TestE2E(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: filepath.Join("..", "testdata"),
		Setup: func(env *testscript.Env) error {
			env.Setenv("NO_COLOR", "true")
			env.Setenv("HOME", filepath.Join(env.WorkDir, "home"))
			return nil
		},
		RequireUniqueNames: true,
	})
}

func TestParseExitCode(t *testing.T) {
	assert.Equal(t, 0, cmd.ParseExitCode(nil))
	assert.Equal(t, 1, cmd.ParseExitCode(errors.New("boom")))
	assert.Equal(t, 1, cmd.ParseExitCode(eureka.ErrNotFound))
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := cmd.NewRootCmd()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	ctx := log.WithContext(context.Background(), log.New(&stderr))
	err := root.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}

func TestRootCmd(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cfg")

	_, _, err := execute(t, "--config-dir", dir, "get", "repo")
	require.ErrorIs(t, err, eureka.ErrNotFound)

	_, stderr, err := execute(t, "--config-dir", dir, "init")
	require.NoError(t, err)
	assert.Contains(t, stderr, "created config directory")
	assert.DirExists(t, dir)

	_, _, err = execute(t, "--config-dir", dir, "set", "editor", "/usr/bin/vim\n")
	require.NoError(t, err)
	b, err := os.ReadFile(filepath.Join(dir, "editor_path"))
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/vim\n", string(b))

	stdout, _, err := execute(t, "--config-dir", dir, "get", "editor")
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/vim\n", stdout)

	stdout, _, err = execute(t, "--config-dir", dir, "show", "-o", "text")
	require.NoError(t, err)
	assert.Equal(t, "editor=/usr/bin/vim\n", stdout)

	_, _, err = execute(t, "--config-dir", dir, "rm", "repo")
	require.EqualError(t, err, "path does not exist: "+filepath.Join(dir, "repo_path"))

	_, _, err = execute(t, "--config-dir", dir, "get", "pager")
	require.EqualError(t, err, `invalid config key: "pager"`)

	_, _, err = execute(t, "--config-dir", dir, "set", "repo")
	require.EqualError(t, err, "accepts 2 arg(s), received 1")

	_, _, err = execute(t, "-l", "loud", "path")
	require.Error(t, err)
}

func TestConfigDirPrecedence(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(config.DirEnvVar, "")

	stdout, _, err := execute(t, "path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".eureka")+"\n", stdout)

	env := filepath.Join(t.TempDir(), "env")
	t.Setenv(config.DirEnvVar, env)
	stdout, _, err = execute(t, "path", "repo")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(env, "repo_path")+"\n", stdout)

	flag := filepath.Join(t.TempDir(), "flag")
	stdout, _, err = execute(t, "--config-dir", flag, "path", "editor")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(flag, "editor_path")+"\n", stdout)
}

func TestKeyCompletion(t *testing.T) {
	root := cmd.NewRootCmd()
	for _, name := range []string{"get", "set", "rm", "path"} {
		sub, _, err := root.Find([]string{name})
		require.NoError(t, err)
		require.NotNil(t, sub.ValidArgsFunction, name)

		keys, directive := sub.ValidArgsFunction(sub, nil, "")
		assert.Equal(t, []string{"repo", "editor"}, keys)
		assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)

		keys, _ = sub.ValidArgsFunction(sub, []string{"repo"}, "")
		assert.Empty(t, keys)
	}
}
