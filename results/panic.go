package results

import "fmt"

// PanicError carries a value recovered from a panicking callback through the
// error channel of a Result.  The original panic payload is preserved in
// Value so callers can retrieve it with errors.As.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("recovered panic: %v", e.Value)
}

// Unwrap exposes the panic payload when it was itself an error, allowing
// errors.Is and errors.As to see through the recovery.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
