package teams_test

import (
	"math/rand"

	"github.com/katalvlaran/teampair/preference"
)

// roster bundles the four inputs of Build.
type roster struct {
	leaders, juniors []preference.EmployeeID
	lp, jp           preference.Book
}

// mirroredRoster: L1↔J1 and L2↔J2 are each other's first choice.
func mirroredRoster() roster {
	return roster{
		leaders: []preference.EmployeeID{1, 2},
		juniors: []preference.EmployeeID{11, 12},
		lp:      preference.Book{1: {11, 12}, 2: {12, 11}},
		jp:      preference.Book{11: {1, 2}, 12: {2, 1}},
	}
}

// randomRoster builds n leaders (ids 1..n) and n juniors (ids 101..100+n)
// with shuffled full or partial wishlists; some owners get none at all.
func randomRoster(n int, rng *rand.Rand) roster {
	r := roster{
		leaders: make([]preference.EmployeeID, n),
		juniors: make([]preference.EmployeeID, n),
		lp:      preference.Book{},
		jp:      preference.Book{},
	}
	for i := 0; i < n; i++ {
		r.leaders[i] = preference.EmployeeID(i + 1)
		r.juniors[i] = preference.EmployeeID(101 + i)
	}
	fill := func(owners, partners []preference.EmployeeID, book preference.Book) {
		for _, o := range owners {
			if rng.Intn(6) == 0 {
				continue // no wishlist
			}
			perm := rng.Perm(len(partners))
			k := 1 + rng.Intn(len(partners))
			list := make(preference.List, k)
			for x := 0; x < k; x++ {
				list[x] = partners[perm[x]]
			}
			book[o] = list
		}
	}
	fill(r.leaders, r.juniors, r.lp)
	fill(r.juniors, r.leaders, r.jp)

	return r
}
