package config

// DefaultRowsPerPage is the page size of the paged browse view.
const DefaultRowsPerPage = 100

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		RowsPerPage: DefaultRowsPerPage,
		LogLevel:    "info",
		Colors: ColorConfig{
			String: "#87CEEB", // sky blue
			Int:    "#90EE90", // light green
			Float:  "#FFB6C1", // light pink
			Bool:   "#DDA0DD", // plum
			Empty:  "#D3D3D3", // light gray
		},
		Hotkeys: HotkeyConfig{
			Up:          []string{"up", "k"},
			Down:        []string{"down", "j"},
			PrevPage:    []string{"left", "h", "pgup"},
			NextPage:    []string{"right", "l", "pgdown"},
			Load:        []string{"o"},
			Save:        []string{"s"},
			Search:      []string{"/"},
			ClearSearch: []string{"c"},
			GoTo:        []string{"g"},
			Columns:     []string{"v"},
			ShowAll:     []string{"a"},
			HideAll:     []string{"x"},
			Toggle:      []string{" ", "enter"},
			Filter:      []string{"f"},
			Edit:        []string{"e"},
			Copy:        []string{"y"},
			Logs:        []string{"L"},
			Help:        []string{"?"},
			Quit:        []string{"q", "ctrl+c"},
			Confirm:     []string{"enter"},
			Cancel:      []string{"esc"},
			Tab:         []string{"tab"},
		},
	}
}
