package config

// Config is the complete movex configuration
type Config struct {
	Layout Layout      `koanf:"layout" toml:"layout"`
	Tools  Tools       `koanf:"tools" toml:"tools"`
	Build  BuildConfig `koanf:"build" toml:"build"`
	Expand Expand      `koanf:"expand" toml:"expand"`
}

// Layout holds the fixed path segments of the source and destination trees
type Layout struct {
	BuildBase    string `koanf:"build_base" toml:"build_base"`
	InstallBase  string `koanf:"install_base" toml:"install_base"`
	MarkerDir    string `koanf:"marker_dir" toml:"marker_dir"`
	LibDir       string `koanf:"lib_dir" toml:"lib_dir"`
	ShareDir     string `koanf:"share_dir" toml:"share_dir"`
	LaunchDir    string `koanf:"launch_dir" toml:"launch_dir"`
	ConfigDir    string `koanf:"config_dir" toml:"config_dir"`
	DevicePrefix string `koanf:"device_prefix" toml:"device_prefix"`
}

// Tools names the external programs movex shells out to
type Tools struct {
	Privilege     string   `koanf:"privilege" toml:"privilege"`
	Lsblk         string   `koanf:"lsblk" toml:"lsblk"`
	LsblkArgs     []string `koanf:"lsblk_args" toml:"lsblk_args"`
	Umount        string   `koanf:"umount" toml:"umount"`
	E2fsck        string   `koanf:"e2fsck" toml:"e2fsck"`
	E2fsckArgs    []string `koanf:"e2fsck_args" toml:"e2fsck_args"`
	Growpart      string   `koanf:"growpart" toml:"growpart"`
	Resize2fs     string   `koanf:"resize2fs" toml:"resize2fs"`
	Resize2fsArgs []string `koanf:"resize2fs_args" toml:"resize2fs_args"`
}

// Privileged prefixes name and args with the privilege command, if any
func (t Tools) Privileged(name string, args ...string) []string {
	cmd := make([]string, 0, len(args)+2)
	if t.Privilege != "" {
		cmd = append(cmd, t.Privilege)
	}
	cmd = append(cmd, name)
	return append(cmd, args...)
}

// BuildConfig configures the containerised cross build
type BuildConfig struct {
	Command []string `koanf:"command" toml:"command"`
	Hint    string   `koanf:"hint" toml:"hint"`
}

// Expand tunes the partition expansion sequence
type Expand struct {
	StrictCheck bool `koanf:"strict_check" toml:"strict_check"`
}
