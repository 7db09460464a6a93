package preference

import "errors"

// Sentinel errors returned by the preference package.
var (
	// ErrUnequalRoster indicates that the leader and junior lists differ in length,
	// so no square compatibility matrix (and no perfect pairing) exists.
	ErrUnequalRoster = errors.New("preference: leader and junior counts differ")

	// ErrDuplicateEmployee indicates that an identifier appears twice within one role.
	ErrDuplicateEmployee = errors.New("preference: duplicate employee id")

	// ErrNilRand indicates that a noisy matrix was requested without a random source.
	ErrNilRand = errors.New("preference: random source is nil")

	// ErrBadNoiseFactor indicates a negative or non-finite noise factor.
	ErrBadNoiseFactor = errors.New("preference: noise factor must be finite and >= 0")
)

// EmployeeID identifies a leader or a junior. The role is implied by the
// list an ID appears in; nothing else about an employee matters here.
type EmployeeID int

// List is a ranked wishlist, most desired partner first.
type List []EmployeeID

// Book maps an employee to their wishlist. A missing entry is legal and
// means "no preference recorded".
type Book map[EmployeeID]List
