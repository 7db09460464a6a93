package teams

import (
	"fmt"

	"github.com/katalvlaran/teampair/assign"
	"github.com/katalvlaran/teampair/preference"
)

// Assemble converts a final assignment into teams, one per leader, in leader
// order: Team{leaders[i], juniors[a[i]]}.
//
// Errors: preference.ErrUnequalRoster when the lists differ in length,
// assign.ErrNotPermutation when a is malformed.
func Assemble(a assign.Assignment, leaders, juniors []preference.EmployeeID) ([]Team, error) {
	if len(leaders) != len(juniors) {
		return nil, fmt.Errorf("assemble: %w", preference.ErrUnequalRoster)
	}
	if err := assign.ValidatePermutation(a, len(leaders)); err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}

	out := make([]Team, len(a))
	for i, j := range a {
		out[i] = Team{Leader: leaders[i], Junior: juniors[j]}
	}

	return out, nil
}
