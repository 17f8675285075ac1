package agegan

import "fmt"

// A NumericFault is returned when a training step
// produces a loss that is NaN or infinite.
//
// The step is aborted before the optimizer step of the
// affected network, so that network's parameters are not
// corrupted.
type NumericFault struct {
	Loss  string
	Value float64
}

// Error returns a message describing the fault.
func (n *NumericFault) Error() string {
	return fmt.Sprintf("numeric fault: %s is %v", n.Loss, n.Value)
}
