package config

// Raw* types mirror the YAML file with pointer fields so that keys which are
// absent can be told apart from zero values.

type RawTools struct {
	Enumerator *string `yaml:"enumerator"`
	Activator  *string `yaml:"activator"`
	Geometry   *string `yaml:"geometry"`
	Controller *string `yaml:"controller"`
	KeySim     *string `yaml:"keysim"`
}

type RawSnapKeys struct {
	Left  *string `yaml:"left"`
	Right *string `yaml:"right"`
}

type RawConfig struct {
	Backend     *string      `yaml:"backend"`
	Tools       *RawTools    `yaml:"tools"`
	RestoreSnap *bool        `yaml:"restore_snap"`
	SnapKeys    *RawSnapKeys `yaml:"snap_keys"`
	Display     *string      `yaml:"display"`
	XAuthority  *string      `yaml:"xauthority"`
	LogLevel    *string      `yaml:"log_level"`
	LogFile     *string      `yaml:"log_file"`
}
