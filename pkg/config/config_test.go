// Test Type: Unit Test
// Description: Tests for configuration layering, layout derivation and rendering

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/movex/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the XDG config lookup at an empty temp dir
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "build_arm64", cfg.Layout.BuildBase)
	assert.Equal(t, "install_arm64", cfg.Layout.InstallBase)
	assert.Equal(t, "usr", cfg.Layout.MarkerDir)
	assert.Equal(t, "/dev/", cfg.Layout.DevicePrefix)
	assert.Equal(t, "sudo", cfg.Tools.Privilege)
	assert.Equal(t, []string{"-f", "-y"}, cfg.Tools.E2fsckArgs)
	assert.Equal(t, []string{"-f"}, cfg.Tools.Resize2fsArgs)
	assert.False(t, cfg.Expand.StrictCheck)
	assert.Contains(t, cfg.Build.Command, "{package}")
	assert.Contains(t, cfg.Build.Hint, "tonistiigi/binfmt")
}

func TestLoad_Layering(t *testing.T) {
	home := isolate(t)

	userDir := filepath.Join(home, "movex")
	require.NoError(t, os.MkdirAll(userDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(userDir, ConfigFileName), []byte(`
[layout]
build_base = "build_user"
install_base = "install_user"
`), 0644))

	explicit := filepath.Join(t.TempDir(), "explicit.toml")
	require.NoError(t, os.WriteFile(explicit, []byte(`
[layout]
install_base = "install_explicit"

[tools]
privilege = ""
`), 0644))

	t.Setenv("MOVEX_EXPAND__STRICT_CHECK", "true")

	cfg, err := Load(explicit)
	require.NoError(t, err)

	assert.Equal(t, "build_user", cfg.Layout.BuildBase, "user file overrides defaults")
	assert.Equal(t, "install_explicit", cfg.Layout.InstallBase, "explicit file overrides user file")
	assert.Equal(t, "", cfg.Tools.Privilege)
	assert.True(t, cfg.Expand.StrictCheck, "env overrides files")
	assert.Equal(t, "usr", cfg.Layout.MarkerDir, "untouched keys keep their default")
}

func TestLoad_EnvList(t *testing.T) {
	isolate(t)
	t.Setenv("MOVEX_TOOLS__E2FSCK_ARGS", "-f,-p")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, []string{"-f", "-p"}, cfg.Tools.E2fsckArgs)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoad_InvalidFile(t *testing.T) {
	isolate(t)
	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[layout\nbuild_base ="), 0644))

	_, err := Load(bad)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Layout.MarkerDir = " "

	err := cfg.Validate()
	require.Error(t, err)
	assert.Equal(t, "layout.marker_dir", errors.GetErrorDetails(err)["key"])

	cfg = Default()
	cfg.Build.Command = nil
	assert.Error(t, cfg.Validate())
}

func TestLayout_Artifacts(t *testing.T) {
	layout := Default().Layout

	src := layout.SourceArtifacts("/ws", "nav")
	assert.Equal(t, "nav", src.Package)
	assert.Equal(t, "/ws/build_arm64/nav", src.Binaries)
	assert.Equal(t, "/ws/install_arm64/nav/share/nav/launch", src.Launch)
	assert.Equal(t, "/ws/install_arm64/nav/share/nav/config", src.Config)

	dst := layout.DestArtifacts("/mnt/target", "nav")
	assert.Equal(t, "/mnt/target/usr/lib/nav", dst.Binaries)
	assert.Equal(t, "/mnt/target/usr/share/nav/launch", dst.Launch)
	assert.Equal(t, "/mnt/target/usr/share/nav/config", dst.Config)
	assert.Equal(t, "/mnt/target/usr", layout.Marker("/mnt/target"))
	assert.Equal(t, "/ws/src", layout.PackageSources("/ws"))
}

func TestLayout_Alternate(t *testing.T) {
	layout := Layout{
		BuildBase: "out", InstallBase: "inst", MarkerDir: "opt",
		LibDir: "bin", ShareDir: "data", LaunchDir: "start", ConfigDir: "etc",
	}

	assert.Equal(t, "/ws/out/p", layout.SourceArtifacts("/ws", "p").Binaries)
	assert.Equal(t, "/d/opt/data/p/etc", layout.DestArtifacts("/d", "p").Config)
}

func TestTools_Privileged(t *testing.T) {
	tools := Tools{Privilege: "sudo"}
	assert.Equal(t, []string{"sudo", "growpart", "/dev/sda", "2"}, tools.Privileged("growpart", "/dev/sda", "2"))

	tools.Privilege = ""
	assert.Equal(t, []string{"umount", "/dev/sda2"}, tools.Privileged("umount", "/dev/sda2"))
}

func TestRender_RoundTrip(t *testing.T) {
	isolate(t)
	cfg := Default()
	cfg.Layout.BuildBase = "build_custom"

	out, err := Render(cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "[layout]")
	assert.Contains(t, out, "build_custom")

	path := filepath.Join(t.TempDir(), "rendered.toml")
	require.NoError(t, os.WriteFile(path, []byte(out), 0644))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "layout.build_base", envKey("MOVEX_LAYOUT__BUILD_BASE"))
	assert.Equal(t, "expand.strict_check", envKey("MOVEX_EXPAND__STRICT_CHECK"))
}

func TestLoadWithOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("MOVEX_TOOLS__PRIVILEGE", "doas")

	cfg, err := LoadWithOverrides("", []string{
		"tools.privilege=",
		"expand.strict_check=true",
		"Tools.E2fsck_Args=-n",
	})
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Tools.Privilege, "overrides win over env")
	assert.True(t, cfg.Expand.StrictCheck)
	assert.Equal(t, []string{"-n"}, cfg.Tools.E2fsckArgs)
}

func TestParseOverrides_Invalid(t *testing.T) {
	for _, override := range []string{"privilege=sudo", "tools.privilege", "=x"} {
		t.Run(override, func(t *testing.T) {
			_, err := ParseOverrides([]string{override})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrUsage))
		})
	}
}
