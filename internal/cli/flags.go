package cli

import "mockcheck/internal/config"

// Flags holds command-line flags
type Flags struct {
	BaseURL    string // first positional argument, not a flag
	SuitePath  string
	NameFilter string
	HealthPath string
	Verbose    bool
	Progress   bool
	Save       bool
	XLSXPath   string
	Details    bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		BaseURL:    f.BaseURL,
		SuitePath:  f.SuitePath,
		NameFilter: f.NameFilter,
		HealthPath: f.HealthPath,
		Verbose:    f.Verbose,
		Progress:   f.Progress,
		Save:       f.Save,
		XLSXPath:   f.XLSXPath,
	}
}
