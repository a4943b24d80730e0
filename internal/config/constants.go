package config

// ConfigFileName is looked up by FindConfig, from a directory up to the
// filesystem root.
const ConfigFileName = "sysf.yaml"

// ConfigFileNames are all recognized config file names, in lookup order.
var ConfigFileNames = []string{"sysf.yaml", "sysf.yml"}

// Built-in type names
const (
	IntTypeName  = "Int"
	BoolTypeName = "Bool"
)

// Evaluation defaults
const (
	// DefaultMaxDepth bounds nested eval calls so that deeply nested input
	// fails with an error instead of exhausting the Go stack.
	DefaultMaxDepth = 10000
	DefaultLogLevel = "warn"
)

// Application modes decide where a call binds its parameter.
const (
	// ApplicationScoped pushes the callee's captured frame for the body.
	ApplicationScoped = "scoped"
	// ApplicationCaller binds the parameter into the caller's frame.
	ApplicationCaller = "caller"
)
