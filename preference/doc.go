// Package preference turns two-sided wishlists into pairing costs.
//
// A wishlist (List) ranks partners of the opposite role from most to least
// desired. Score converts a rank into an integer:
//
//	score(list, p) = len(list) - index(p)   if p is listed
//	score(list, p) = 1                      otherwise (missing list or entry)
//
// so the first-ranked partner scores len(list), the last-ranked scores 1 and
// an unranked partner is never penalised below the baseline of 1.
//
// BuildCostMatrix combines both sides into an N×N cost matrix
//
//	cost[i][j] = -(leaderScore(i, j) + juniorScore(j, i))
//
// where a more negative cost means a more mutually desired pairing, ready
// for any cost-minimising assignment solver. Perturb overlays
// bounded, symmetric integer noise drawn from a caller-supplied source.
//
// Errors (sentinel):
//
//	– ErrUnequalRoster      if the leader and junior counts differ.
//	– ErrDuplicateEmployee  if an identifier repeats within one role.
//	– ErrNilRand            if a noisy build is requested without a source.
//	– ErrBadNoiseFactor     if the noise factor is negative, NaN or Inf.
package preference
