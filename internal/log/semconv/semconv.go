package semconv

// Invocation
const (
	// UUIDv7 generated once per command invocation. Shared by every input
	// parsed by that invocation.
	RunID = "run_id"
)

// Inputs
const (
	// Display name of the input: a file path, or "<expr>" for inline source.
	Source = "source"

	// Size of the input in bytes.
	SourceBytes = "source_bytes"
)

// Results
const (
	// Number of statements in the parsed program.
	Statements = "statements"

	// Number of tokens produced by the lexer, EOF included.
	Tokens = "tokens"

	// Number of ILLEGAL tokens seen in the input.
	IllegalTokens = "illegal_tokens"
)
