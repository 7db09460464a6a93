// Package teampair forms two-person teams by pairing N team leaders with N
// juniors from two-sided ranked wishlists.
//
// What it optimises:
//
//	Each pair scores leaderScore + juniorScore, where a partner ranked k-th
//	on a list of length L scores L-k and an unranked partner scores 1.
//	The tool maximises the harmonic mean of the pair scores, so one
//	miserable pair costs more than several happy ones gain.
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/        dense integer cost matrix, validators, element-wise ops
//	preference/    wishlists, scoring, cost-matrix builders, bounded noise
//	assign/        Solver interface, Hungarian (exact min-sum) and Greedy
//	teams/         Evaluator, Diversify (noisy multi-start), Refine, Build
//	roster/        YAML roster input, validation and team reports
//	cmd/teampair/  command-line front end
//
// Quick example:
//
//	res, err := teams.Build(ctx, leaders, juniors, leaderPrefs, juniorPrefs,
//		teams.WithSeed(42))
//	for _, t := range res.Teams {
//		fmt.Println(t.Leader, "+", t.Junior)
//	}
//
// The result is a local optimum of the harmonic mean under pairwise swaps.
// It is not a stable matching and not guaranteed to be globally optimal.
//
//	go get github.com/katalvlaran/teampair
package teampair
