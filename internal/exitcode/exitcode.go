// internal/exitcode/exitcode.go
package exitcode

// Process exit statuses. Validation failures and configuration errors are
// distinct so callers can tell "your inputs disagree" from "your invocation
// is wrong".
const (
	OK         = 0
	Validation = 1
	Config     = 2
	Write      = 3
)
