package teams

import (
	"errors"

	"github.com/katalvlaran/teampair/assign"
	"github.com/katalvlaran/teampair/preference"
)

// Sentinel errors returned by option validation.
var (
	// ErrBadRounds indicates that Rounds < 1.
	ErrBadRounds = errors.New("teams: Rounds must be >= 1")

	// ErrBadStagnation indicates that StagnationLimit < 1.
	ErrBadStagnation = errors.New("teams: StagnationLimit must be >= 1")

	// ErrBadMaxPasses indicates that MaxPasses < 0.
	ErrBadMaxPasses = errors.New("teams: MaxPasses must be >= 0")

	// ErrBadParallelism indicates that Parallelism < 1.
	ErrBadParallelism = errors.New("teams: Parallelism must be >= 1")

	// ErrNoSolvers indicates an empty solver list.
	ErrNoSolvers = errors.New("teams: at least one solver is required")

	// ErrNilEvaluator indicates that a nil *Evaluator was supplied.
	ErrNilEvaluator = errors.New("teams: evaluator is nil")
)

// Team is one leader paired with one junior.
type Team struct {
	Leader preference.EmployeeID
	Junior preference.EmployeeID
}

// Candidate is one assignment produced during diversification.
type Candidate struct {
	Assignment assign.Assignment
	Score      float64 // harmonic mean on noise-free preferences
	Round      int     // diversification round that produced it
	Solver     string  // Solver.Name() of the producer
}

// RefineStats reports what the local search did.
type RefineStats struct {
	Passes int // full sweeps over all pairs
	Swaps  int // accepted swaps
}

// Result is the outcome of Build.
type Result struct {
	// Teams lists one pair per leader, in leader order.
	Teams []Team

	// Assignment is the final permutation: Assignment[i] is the junior index of leader i.
	Assignment assign.Assignment

	// HarmonicMean is the objective value of Assignment (0 for an empty roster).
	HarmonicMean float64

	// Start is the best diversification candidate before refinement.
	Start Candidate

	// Candidates is the number of candidates scored during diversification.
	Candidates int

	// Refine reports local-search activity.
	Refine RefineStats
}
