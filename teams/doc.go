// Package teams pairs N leaders with N juniors into two-person teams,
// maximising a fairness-weighted satisfaction score.
//
// Pipeline (Build):
//
//	wishlists ─► cost matrix ─► Diversify ─► best candidate ─► Refine ─► Assemble
//
// preference.BuildCostMatrix turns both sides' wishlists into an N×N cost
// matrix (lower = more mutually desired). Diversify runs Options.Rounds
// rounds; each round perturbs the matrix with bounded symmetric integer
// noise from its own seeded stream and runs every configured solver
// (Hungarian and Greedy by default). Every candidate is scored with the
// Evaluator on the *noise-free* preferences and the best one is kept.
// Refine hill-climbs over pairwise junior swaps, accepting strict
// improvements only, until a pass finds none. Assemble maps the final
// permutation back to employee IDs.
//
// Objective:
//
//	satisfaction(i) = leaderScore(i, a[i]) + juniorScore(a[i], i)   (≥ 2)
//	H(a)            = N / Σ 1/satisfaction(i)
//
// The harmonic mean punishes a single unhappy pair much harder than the
// arithmetic mean does. The Hungarian solver is optimal for the cost *sum*,
// not for H, which is why noisy restarts and local search are layered on top.
// The result is a local optimum of H under single swaps, not a global one,
// and no stability (in the Gale–Shapley sense) is claimed.
//
// Determinism:
//
//	All randomness flows from Options.Seed (or an injected Options.Rand).
//	Each round derives an independent stream up front, so results are
//	identical with or without Options.Parallelism.
//
// Errors (sentinel):
//
//	– ErrBadRounds, ErrBadStagnation, ErrBadMaxPasses, ErrBadParallelism,
//	  ErrNoSolvers for invalid Options;
//	– preference.ErrUnequalRoster / ErrDuplicateEmployee for bad rosters;
//	– assign.ErrNotPermutation for malformed assignments.
package teams
