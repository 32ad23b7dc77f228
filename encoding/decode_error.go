package encoding

import "fmt"

// DecodeError reports a decode failure together with the cursor state at
// the point of failure. It replaces the reference implementation's
// behavior of printing internal state to stderr and returning garbage.
//
// Offset is the byte offset of the cursor; Half reports whether the low
// nibble of that byte was the next to be consumed. Err is the underlying
// sentinel from the errs package, reachable through errors.Is.
type DecodeError struct {
	Offset int
	Half   bool
	Err    error
}

func (e *DecodeError) Error() string {
	nibble := "high"
	if e.Half {
		nibble = "low"
	}

	return fmt.Sprintf("%v at byte %d (%s nibble)", e.Err, e.Offset, nibble)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
