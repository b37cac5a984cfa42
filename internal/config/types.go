package config

// Config is the user configuration read from config.yaml. Every field is
// optional; unset fields keep their defaults.
type Config struct {
	RowsPerPage int          `yaml:"rowsPerPage,omitempty"`
	LogLevel    string       `yaml:"logLevel,omitempty"`
	Colors      ColorConfig  `yaml:"colors,omitempty"`
	Hotkeys     HotkeyConfig `yaml:"hotkeys,omitempty"`
}

// ColorConfig holds per-kind cell colours as lipgloss colour strings
// ("#87CEEB", "212", ...).
type ColorConfig struct {
	String string `yaml:"string,omitempty"`
	Int    string `yaml:"int,omitempty"`
	Float  string `yaml:"float,omitempty"`
	Bool   string `yaml:"bool,omitempty"`
	Empty  string `yaml:"empty,omitempty"`
}

// HotkeyConfig lists the keys bound to each action, in bubbletea key
// notation ("ctrl+c", "pgdown", "/").
type HotkeyConfig struct {
	Up          []string `yaml:"up,omitempty"`
	Down        []string `yaml:"down,omitempty"`
	PrevPage    []string `yaml:"prevPage,omitempty"`
	NextPage    []string `yaml:"nextPage,omitempty"`
	Load        []string `yaml:"load,omitempty"`
	Save        []string `yaml:"save,omitempty"`
	Search      []string `yaml:"search,omitempty"`
	ClearSearch []string `yaml:"clearSearch,omitempty"`
	GoTo        []string `yaml:"goTo,omitempty"`
	Columns     []string `yaml:"columns,omitempty"`
	ShowAll     []string `yaml:"showAll,omitempty"`
	HideAll     []string `yaml:"hideAll,omitempty"`
	Toggle      []string `yaml:"toggle,omitempty"`
	Filter      []string `yaml:"filter,omitempty"`
	Edit        []string `yaml:"edit,omitempty"`
	Copy        []string `yaml:"copy,omitempty"`
	Logs        []string `yaml:"logs,omitempty"`
	Help        []string `yaml:"help,omitempty"`
	Quit        []string `yaml:"quit,omitempty"`
	Confirm     []string `yaml:"confirm,omitempty"`
	Cancel      []string `yaml:"cancel,omitempty"`
	Tab         []string `yaml:"tab,omitempty"`
}
