package backend

// Fixed instructional templates wrapped around user code before delegation to
// the shared invocation path.
const (
	explainTemplate = "Explain the following code in clear terms. Include purpose, key logic, and potential issues.\n\n```\n%s\n```\n"

	// editSplitTemplate separates instructions from code; used when the
	// split_edit toggle is on (the default).
	editSplitTemplate = "Edit the code per the instructions. Respond with the full, updated code in a fenced block.\n\n[INSTRUCTIONS]\n%s\n\n[CODE]\n```\n%s\n```\n"

	// editMergedTemplate folds the instructions into one sentence; used when
	// split_edit is off for tools that respond better to a single directive.
	editMergedTemplate = "Edit the following code so that it satisfies this instruction, and respond with the full, updated code in a fenced block: %s\n\n```\n%s\n```\n"
)

// Reusable prompt templates for common workflows, exposed for the REPL's
// slash commands. Each takes the code to operate on via Generate.
const (
	// UnitTestPrompt asks for comprehensive unit tests with edge cases.
	UnitTestPrompt = "You are a test generator. Given the module code and context, produce comprehensive unit tests with edge cases."

	// DocExplainPrompt asks for documentation-level explanations of
	// functions and types based on their signatures and doc comments.
	DocExplainPrompt = "Explain the following functions and types based on their signatures and documentation. Clarify purpose, parameters, return values, and examples if useful."

	// RefactorPrompt asks for concrete refactoring suggestions.
	RefactorPrompt = "Review the code and suggest refactors that improve readability, performance, and maintainability. Propose concrete diffs and rationale."
)
