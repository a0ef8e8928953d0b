package bdd

import (
	"fmt"

	"github.com/pkg/errors"
)

// Precondition violations in the gate converter: these always indicate a
// bug in the upstream preprocessing collaborator (missing order, an
// operator the converter doesn't know, an Atleast threshold out of range),
// never a condition the BDD core can recover from.
var (
	// ErrUnknownGateType is wrapped when a Gate carries a GateType the
	// converter has no rule for.
	ErrUnknownGateType = errors.New("unknown gate operator")
	// ErrInvalidArity is wrapped when a gate has the wrong number of
	// arguments for its operator (e.g. Not/Null with more than one child,
	// Xor with other than two).
	ErrInvalidArity = errors.New("gate has wrong number of arguments for its operator")
	// ErrAtleastRange is wrapped when an Atleast gate's threshold is
	// negative or exceeds its argument count.
	ErrAtleastRange = errors.New("atleast threshold out of range")
	// ErrMissingOrder is wrapped when a basic-event variable index has no
	// entry in the index-to-order map supplied to New. Module indices need no
	// entry: their order comes from the module gate itself.
	ErrMissingOrder = errors.New("variable has no assigned order")
)

// wrapGate annotates err with the offending gate's id and type, preserving
// the original error for errors.Is/errors.Cause.
func wrapGate(err error, gateID int, gateType fmt.Stringer) error {
	return errors.Wrapf(err, "gate %d (%s)", gateID, gateType)
}
