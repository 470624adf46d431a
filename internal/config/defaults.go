package config

const (
	// DefaultCompiler is the C compiler used when CC is unset
	DefaultCompiler = "cc"
	// WindowsCompiler is the fixed compiler name on Windows
	WindowsCompiler = "cl"
	// InterpreterName is the GVPR interpreter looked up on PATH
	InterpreterName = "gvpr"
	// DefaultExamplesRoot is the default Graphviz source tree location
	DefaultExamplesRoot = "."
	// DefaultOutputDir is the default directory for results and history
	DefaultOutputDir = ".gvcheck"
	// DefaultOutputJSONFile is the default results JSON file name
	DefaultOutputJSONFile = "check-results.json"
	// DefaultHistoryDBFile is the default run-history database file name
	DefaultHistoryDBFile = "history.db"
	// DefaultJobs is the default number of parallel checks
	DefaultJobs = 4
)

// DefaultLibraries are the Graphviz libraries the compile checks link against
var DefaultLibraries = []string{"cgraph", "gvc"}
