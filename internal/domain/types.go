package domain

import "strconv"

// AccountID names an account on the host. The host resolves caller identity;
// the directory treats account ids as opaque strings.
type AccountID string

// String returns the string form of the account id.
func (a AccountID) String() string { return string(a) }

// GroupID is the caller-chosen primary key of a group chat.
type GroupID string

// String returns the string form of the group id.
func (g GroupID) String() string { return string(g) }

// Amount is a value-transfer amount counted in nano value-units.
type Amount uint64

// Denominations of Amount.
const (
	NanoUnit  Amount = 1
	MilliUnit Amount = 1_000_000
	Unit      Amount = 1_000_000_000
)

// StorageDeposit is the minimum attached value for state-creating calls
// (first key registration, group creation): 0.01 value-unit.
const StorageDeposit = 10 * MilliUnit

// String renders the raw nano count as a decimal string, the form payment
// notifications carry on the wire.
func (a Amount) String() string { return strconv.FormatUint(uint64(a), 10) }
