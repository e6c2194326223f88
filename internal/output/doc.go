// Package output handles what vocabmd prints.
//
// Every command writes through a Printer, which switches between
// human-readable text and JSON depending on the --json flag:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonFlag, isTTY).WithStderr(cmd.ErrOrStderr())
//	printer.Success(map[string]any{"message": "Exported 3 notes", "count": 3})
//	printer.Error(err)
//
// Human output is styled with lipgloss when stdout is a terminal and plain
// when piped. JSON output is indented and written to stdout, errors
// included, as {"error": "...", "code": N}.
//
// # Exit codes
//
//	output.ExitSuccess     // 0
//	output.ExitUserError   // 1: bad flags, unknown timezone, malformed date
//	output.ExitSystemError // 2: unreadable database, unwritable output folder
//
// Commands return *ExitError values built with NewUserError or
// NewSystemError; main turns them into the process exit status with
// GetExitCode.
package output
