package api

import "time"

const (
	DefaultOutputName     = "LunaUlt_Song_P.pak"
	DefaultAssetExtension = ".wem"
	DefaultCanonicalName  = "LunaUlt.wem"
	DefaultEditorGrace    = 4 * time.Second

	// LayoutFilename is picked up from the working directory when no
	// layout file is given on the command line.
	LayoutFilename = ".wempak.yaml"
)

// Layout is the .wempak.yaml configuration format. Paths are relative to
// the working directory unless absolute, and use forward slashes.
type Layout struct {
	AssetExtension string         `yaml:"assetExtension"`
	CanonicalName  string         `yaml:"canonicalName"`
	Editor         EditorLayout   `yaml:"editor"`
	Archiver       ArchiverLayout `yaml:"archiver"`

	// Set by Resolve, not from YAML.
	WorkDir string `yaml:"-"`
}

// EditorLayout locates the interactive sound-bank editor.
type EditorLayout struct {
	Root       string `yaml:"root"`
	Executable string `yaml:"executable"`
	InputDir   string `yaml:"inputDir"`
	Artifact   string `yaml:"artifact"`

	// Grace is how long the editor runs before it is terminated. The
	// editor has no completion signal; its artifact is assumed to be on
	// disk once this elapses.
	Grace time.Duration `yaml:"grace"`
}

// ArchiverLayout locates the batch archive compressor.
type ArchiverLayout struct {
	Root     string `yaml:"root"`
	Script   string `yaml:"script"`
	AudioDir string `yaml:"audioDir"`
	Archive  string `yaml:"archive"`
}

// DefaultLayout returns the layout of the bundled tool folders.
func DefaultLayout() *Layout {
	return &Layout{
		AssetExtension: DefaultAssetExtension,
		CanonicalName:  DefaultCanonicalName,
		Editor: EditorLayout{
			Root:       "apps/soundMod",
			Executable: "apps/soundMod/SoundFileEditor.exe",
			InputDir:   "apps/soundMod/bnk_sfx_1031001",
			Artifact:   "apps/soundMod/Output/bnk_sfx_1031001.bnk",
			Grace:      DefaultEditorGrace,
		},
		Archiver: ArchiverLayout{
			Root:     "apps/u4pakc",
			Script:   "apps/u4pakc/compress.bat",
			AudioDir: "apps/u4pakc/Marvel/Content/WwiseAudio",
			Archive:  "apps/u4pakc/Marvel.pak",
		},
	}
}
