package cli

import "gvcheck/internal/config"

// Flags holds command-line flags
type Flags struct {
	Jobs         int
	NameFilter   string
	Kind         string
	FailFast     bool
	ExamplesRoot string
	OpenFails    bool
	HistoryLimit int
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Jobs:         f.Jobs,
		NameFilter:   f.NameFilter,
		Kind:         f.Kind,
		FailFast:     f.FailFast,
		ExamplesRoot: f.ExamplesRoot,
		OpenFails:    f.OpenFails,
		HistoryLimit: f.HistoryLimit,
	}
}
