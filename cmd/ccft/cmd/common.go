package cmd

const appName = "ccft-pymarkdown"

var (
	flagVerbose    int
	flagQuiet      int
	flagConfig     string
	flagDryRun     bool
	flagSkipErrors bool
	flagExclusion  string
	flagMode       string
	flagFormat     string
)
