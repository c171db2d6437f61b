package config

// Options are the command line switches that shape a run.
type Options struct {
	Yes            bool
	NonInteractive bool
	DryRun         bool
	Verbose        bool
	Wait           bool
	LogLevel       string
}

// Config is the resolved pair of folders a copy pass works on. It is not
// modified after Resolve returns.
type Config struct {
	SourceRoot      string
	DestinationRoot string
	Options
}
