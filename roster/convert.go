package roster

import (
	"sort"

	"github.com/katalvlaran/teampair/preference"
)

// LeaderIDs returns leader IDs in document order.
func (r *Roster) LeaderIDs() []preference.EmployeeID { return ids(r.Leaders) }

// JuniorIDs returns junior IDs in document order.
func (r *Roster) JuniorIDs() []preference.EmployeeID { return ids(r.Juniors) }

// LeaderBook returns the leaders' wishlists as a preference.Book.
func (r *Roster) LeaderBook() preference.Book { return book(r.Wishlists.Leaders) }

// JuniorBook returns the juniors' wishlists as a preference.Book.
func (r *Roster) JuniorBook() preference.Book { return book(r.Wishlists.Juniors) }

// LeaderName returns the display name of leader id, or "" when unknown.
func (r *Roster) LeaderName(id preference.EmployeeID) string { return name(r.Leaders, id) }

// JuniorName returns the display name of junior id, or "" when unknown.
func (r *Roster) JuniorName(id preference.EmployeeID) string { return name(r.Juniors, id) }

// Warning describes wishlist entries that name nobody in the partner role.
type Warning struct {
	Role    string // "leader" or "junior": the owner's role
	Owner   preference.EmployeeID
	Unknown []preference.EmployeeID
}

// Warnings lists wishlist entries that cannot match any partner. Such
// entries are harmless (they only shorten the effective list) but usually
// indicate a typo. The result is sorted by role, then owner.
func (r *Roster) Warnings() []Warning {
	var out []Warning
	collect := func(role string, b preference.Book, partners []preference.EmployeeID) {
		unknown := b.Unknown(partners)
		owners := make([]preference.EmployeeID, 0, len(unknown))
		for o := range unknown {
			owners = append(owners, o)
		}
		sort.Slice(owners, func(i, j int) bool { return owners[i] < owners[j] })
		for _, o := range owners {
			out = append(out, Warning{Role: role, Owner: o, Unknown: unknown[o]})
		}
	}
	collect("leader", r.LeaderBook(), r.JuniorIDs())
	collect("junior", r.JuniorBook(), r.LeaderIDs())

	return out
}

func ids(ms []Member) []preference.EmployeeID {
	out := make([]preference.EmployeeID, len(ms))
	for i, m := range ms {
		out[i] = m.ID
	}

	return out
}

func book(lists map[preference.EmployeeID][]preference.EmployeeID) preference.Book {
	b := make(preference.Book, len(lists))
	for owner, l := range lists {
		b[owner] = preference.List(l)
	}

	return b
}

func name(ms []Member, id preference.EmployeeID) string {
	for _, m := range ms {
		if m.ID == id {
			return m.Name
		}
	}

	return ""
}
