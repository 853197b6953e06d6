package cli

import "fmt"

// ExitError carries a non-zero process status whose cause has already been
// shown to the operator.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
