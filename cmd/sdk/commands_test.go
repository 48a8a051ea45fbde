// cmd/sdk/commands_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Temp install root, fake catalog server, environment variables
// PURPOSE: Test the commands end to end, including printed guidance and exit status

package sdk

import (
	"bytes"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/sdkman/pkg/config"
	"github.com/arthur-debert/sdkman/pkg/errors"
	"github.com/arthur-debert/sdkman/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cmdResult struct {
	stdout string
	stderr string
	err    error
}

// setupEnv points the configuration at env. An empty apiURL disables the catalog.
func setupEnv(t *testing.T, env *testutil.TestEnvironment, apiURL string) {
	t.Helper()
	t.Setenv(config.EnvDir, env.Root)
	t.Setenv(config.EnvCandidatesDir, "")
	t.Setenv(config.EnvCandidatesAPI, apiURL)
	t.Setenv(config.EnvPlatform, testutil.DefaultPlatform)
	t.Setenv(config.EnvInsecureSSL, "")
	t.Setenv(config.EnvOfflineMode, "")
	if apiURL == "" {
		t.Setenv(config.EnvAvailable, "false")
	} else {
		t.Setenv(config.EnvAvailable, "true")
	}
}

func run(t *testing.T, args ...string) cmdResult {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	var stdout, stderr bytes.Buffer

	rootCmd := NewRootCmd()
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	// a nil slice would make cobra fall back to os.Args
	rootCmd.SetArgs(append([]string{}, args...))

	err := rootCmd.Execute()
	if err != nil {
		PrintError(printerFor(&stderr), err)
	}
	return cmdResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestUninstall_RefusesCurrentVersion(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	setupEnv(t, env, "")
	env.InstallVersion("java", "17.0.1-tem")
	env.SetCurrentLink("java", "17.0.1-tem")
	before := env.Snapshot()

	res := run(t, "uninstall", "java", "17.0.1-tem")

	require.Error(t, res.err)
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrRefusedCurrentRemoval))
	assert.Equal(t, 1, ExitCode(res.err))
	assert.Contains(t, res.stderr, "java 17.0.1-tem is the current version and should not be removed.")
	assert.Contains(t, res.stderr, "--force")
	assert.NotContains(t, res.stdout, "removed")
	assert.Equal(t, before, env.Snapshot())
}

func TestUninstall_Force(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	setupEnv(t, env, "")
	dir := env.InstallVersion("java", "17.0.1-tem")
	env.SetCurrentLink("java", "17.0.1-tem")

	res := run(t, "uninstall", "--force", "java", "17.0.1-tem")

	require.NoError(t, res.err)
	assert.Equal(t, 0, ExitCode(res.err))
	assert.Contains(t, res.stdout, "removed java 17.0.1-tem.")
	assert.False(t, env.Exists(dir))
	assert.False(t, env.Exists(env.Paths.CurrentLink("java")))
}

func TestUninstall_NotCurrent(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	setupEnv(t, env, "")
	env.InstallVersion("java", "17.0.1-tem")
	old := env.InstallVersion("java", "11.0.2-tem")
	env.SetCurrentLink("java", "17.0.1-tem")

	res := run(t, "uninstall", "java", "11.0.2-tem")

	require.NoError(t, res.err)
	assert.False(t, env.Exists(old))
	assert.True(t, env.Exists(env.Paths.CurrentLink("java")))
}

func TestUninstall_NotInstalled(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	setupEnv(t, env, "")

	res := run(t, "uninstall", "java", "1.0")

	require.Error(t, res.err)
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrNotInstalled))
	assert.Contains(t, res.stderr, "Stop! java 1.0 is not installed.")
}

func TestUninstall_UnknownCandidate(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	setupEnv(t, env, "")

	res := run(t, "uninstall", "cobol", "1.0")

	require.Error(t, res.err)
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrUnknownCandidate))
	assert.Contains(t, res.stderr, "Stop! cobol is not a valid candidate.")
}

func TestInstall_CatalogDefault(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	catalog := testutil.NewCatalogServer(t).
		SetDefault("java", "17.0.1-tem").
		AddValid("java", "17.0.1-tem", testutil.DefaultPlatform)
	setupEnv(t, env, catalog.URL)

	res := run(t, "install", "java")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Using the default version of java: 17.0.1-tem")
	assert.Contains(t, res.stdout, "java 17.0.1-tem resolved (catalog)")
	assert.Equal(t, []string{
		"/candidates/default/java",
		"/candidates/validate/java/17.0.1-tem/" + testutil.DefaultPlatform,
	}, catalog.Requests())
}

func TestInstall_Unresolvable(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	catalog := testutil.NewCatalogServer(t)
	setupEnv(t, env, catalog.URL)
	before := env.Snapshot()

	res := run(t, "install", "java", "99.99.99")

	require.Error(t, res.err)
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrUnresolvableVersion))
	assert.Contains(t, res.stderr, "Stop! java 99.99.99 is not available.")
	assert.Contains(t, res.stderr, "$ sdk list java")
	assert.Equal(t, before, env.Snapshot())
}

func TestInstall_AlreadyInstalled(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	catalog := testutil.NewCatalogServer(t)
	setupEnv(t, env, catalog.URL)
	env.InstallVersion("java", "99.99.99")

	res := run(t, "install", "java", "99.99.99")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "java 99.99.99 is already installed.")
}

func TestInstall_RejectedWithErrorStatusUsesLocalInstall(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	catalog := testutil.NewCatalogServer(t)
	catalog.SetStatus(http.StatusNotFound)
	setupEnv(t, env, catalog.URL)
	env.InstallVersion("java", "99.99.99")

	res := run(t, "install", "java", "99.99.99")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "java 99.99.99 is already installed.")
}

func TestInstall_CatalogUnavailable(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	catalog := testutil.NewCatalogServer(t)
	catalog.SetFailing(true)
	setupEnv(t, env, catalog.URL)

	res := run(t, "install", "java")

	require.Error(t, res.err)
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrCatalogUnavailable))
	assert.Contains(t, res.stderr, "Error:")
}

func TestInstall_OfflineFlag(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	catalog := testutil.NewCatalogServer(t)
	setupEnv(t, env, catalog.URL)
	env.InstallVersion("java", "17.0.1-tem")

	res := run(t, "--offline", "install", "java", "17.0.1-tem")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "already installed")
	assert.Empty(t, catalog.Requests())
}

func TestInstall_OfflineRequiresVersion(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	setupEnv(t, env, "")

	res := run(t, "install", "java")

	require.Error(t, res.err)
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrVersionRequired))
	assert.Contains(t, res.stderr, "must be given when offline")
}

func TestInstall_FromFolder(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	setupEnv(t, env, "")
	build := env.LocalBuild("jdk-build")

	res := run(t, "install", "java", "local-21", build)

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Linked java local-21")
	assert.Contains(t, res.stdout, "Default java version set to local-21")

	dest, err := os.Readlink(env.Paths.VersionDir("java", "local-21"))
	require.NoError(t, err)
	assert.Equal(t, build, dest)

	current, ok := env.DataStore.CurrentVersion("java")
	assert.True(t, ok)
	assert.Equal(t, "local-21", current)
}

func TestInstall_FromFolderKeepsExistingCurrent(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	setupEnv(t, env, "")
	env.InstallVersion("java", "17.0.1-tem")
	env.SetCurrentLink("java", "17.0.1-tem")

	res := run(t, "install", "java", "local-21", env.LocalBuild("jdk-build"))

	require.NoError(t, res.err)
	current, ok := env.DataStore.CurrentVersion("java")
	assert.True(t, ok)
	assert.Equal(t, "17.0.1-tem", current)
}

func TestInstall_MissingCatalogURL(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	setupEnv(t, env, "")
	t.Setenv(config.EnvAvailable, "true")

	res := run(t, "install", "java", "17.0.1-tem")

	require.Error(t, res.err)
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrMissingEnv))
	assert.Contains(t, res.stderr, config.EnvCandidatesAPI)
	assert.Contains(t, res.stderr, "shell integration")
}

func TestDefault_SetsCurrent(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	setupEnv(t, env, "")
	env.InstallVersion("java", "11.0.2-tem")
	env.InstallVersion("java", "17.0.1-tem")
	env.SetCurrentLink("java", "17.0.1-tem")

	res := run(t, "default", "java", "11.0.2-tem")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Default java version set to 11.0.2-tem")
	current, ok := env.DataStore.CurrentVersion("java")
	assert.True(t, ok)
	assert.Equal(t, "11.0.2-tem", current)
}

func TestDefault_NotInstalled(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	catalog := testutil.NewCatalogServer(t).AddValid("java", "21.0.0-tem", testutil.DefaultPlatform)
	setupEnv(t, env, catalog.URL)

	res := run(t, "default", "java", "21.0.0-tem")

	require.Error(t, res.err)
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrNotInstalled))
	assert.False(t, env.Exists(env.Paths.CurrentLink("java")))
}

func TestDefault_ReplacesBrokenLink(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	setupEnv(t, env, "")
	env.InstallVersion("java", "17.0.1-tem")
	env.SetCurrentLink("java", "deleted-version")

	res := run(t, "default", "java", "17.0.1-tem")

	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "current link of java is broken")
	current, ok := env.DataStore.CurrentVersion("java")
	assert.True(t, ok)
	assert.Equal(t, "17.0.1-tem", current)
}

func TestCurrent(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	setupEnv(t, env, "")
	env.InstallVersion("java", "17.0.1-tem")
	env.SetCurrentLink("java", "17.0.1-tem")
	env.InstallVersion("maven", "3.9.6")

	t.Run("single candidate", func(t *testing.T) {
		res := run(t, "current", "java")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "Using java version 17.0.1-tem")
	})

	t.Run("candidate without current", func(t *testing.T) {
		res := run(t, "current", "maven")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "Not using any version of maven")
	})

	t.Run("all candidates", func(t *testing.T) {
		res := run(t, "current")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "java")
		assert.Contains(t, res.stdout, "17.0.1-tem")
		assert.NotContains(t, res.stdout, "maven")
	})
}

func TestCurrent_BrokenLinkIsNotFatal(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	setupEnv(t, env, "")
	env.InstallVersion("java", "17.0.1-tem")
	env.SetCurrentLink("java", "17.0.1-tem")
	require.NoError(t, os.RemoveAll(env.Paths.VersionDir("java", "17.0.1-tem")))

	res := run(t, "current", "java")

	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "current link of java is broken")
	assert.Contains(t, res.stdout, "Not using any version of java")
}

func TestList(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	setupEnv(t, env, "")
	env.InstallVersion("java", "11.0.2-tem")
	env.InstallVersion("java", "17.0.1-tem")
	env.SetCurrentLink("java", "17.0.1-tem")

	t.Run("candidates", func(t *testing.T) {
		res := run(t, "list")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "Available candidates:")
		assert.Contains(t, res.stdout, "* java")
		assert.Contains(t, res.stdout, "  kotlin")
	})

	t.Run("versions", func(t *testing.T) {
		res := run(t, "list", "java")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "11.0.2-tem")
		assert.Contains(t, res.stdout, "17.0.1-tem")
		assert.Contains(t, res.stdout, "current")
	})

	t.Run("no versions", func(t *testing.T) {
		res := run(t, "list", "scala")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "No versions of scala are installed.")
	})
}

func TestList_MissingManifest(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	setupEnv(t, env, "")
	require.NoError(t, os.Remove(env.Paths.ManifestPath()))

	res := run(t, "list")

	require.Error(t, res.err)
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrMissingManifest))
	assert.Equal(t, 1, ExitCode(res.err))
}

func TestDoctor(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	setupEnv(t, env, "")
	env.InstallVersion("java", "17.0.1-tem")
	env.SetCurrentLink("java", "17.0.1-tem")
	env.SetCurrentLink("kotlin", "gone")

	res := run(t, "doctor")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "kotlin")
	assert.Contains(t, res.stdout, "sdk doctor --fix")
	assert.True(t, env.Exists(env.Paths.CurrentLink("kotlin")))

	res = run(t, "doctor", "--fix")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Removed broken current link of kotlin")
	assert.False(t, env.Exists(env.Paths.CurrentLink("kotlin")))
	assert.True(t, env.Exists(env.Paths.CurrentLink("java")))

	res = run(t, "doctor")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "No problems found.")
}

func TestConfigCmd(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	setupEnv(t, env, "")

	res := run(t, "config")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, env.Root)
	assert.Contains(t, res.stdout, filepath.Join(env.Root, "candidates"))
	assert.Contains(t, res.stdout, "available = false")
}

func TestVersionCmd(t *testing.T) {
	res := run(t, "version")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "sdk version")
}

func TestNoCommand(t *testing.T) {
	res := run(t)
	require.Error(t, res.err)
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrInvalidInput))
	assert.Contains(t, res.stdout, "sdk")
}

func TestHelpTopics(t *testing.T) {
	res := run(t, "help", "topics")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "offline")
	assert.Contains(t, res.stdout, "layout")
}
