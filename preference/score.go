package preference

// Score returns how much the owner of list wants partner.
//
//   - partner ranked at index k ⇒ len(list) - k (first place scores len(list)),
//   - list empty/nil or partner absent ⇒ 1.
//
// The result is always ≥ 1.
//
// Complexity: O(len(list)).
func Score(list List, partner EmployeeID) int {
	if i := list.Index(partner); i >= 0 {
		return len(list) - i
	}

	return 1
}

// Score looks up owner's wishlist and scores partner against it.
// An owner without a recorded wishlist scores every partner 1.
func (b Book) Score(owner, partner EmployeeID) int {
	return Score(b[owner], partner)
}

// Index returns the position of partner in list, or -1.
func (l List) Index(partner EmployeeID) int {
	var (
		i  int
		id EmployeeID
	)
	for i, id = range l {
		if id == partner {
			return i
		}
	}

	return -1
}

// Unknown reports, per owner, the wishlist entries that are not in known.
// Such entries never match a real partner and silently degrade to the
// baseline score, so callers may want to surface them as data-quality
// warnings. Owners with no unknown entries are omitted.
//
// Complexity: O(total wishlist length + len(known)).
func (b Book) Unknown(known []EmployeeID) map[EmployeeID][]EmployeeID {
	set := make(map[EmployeeID]struct{}, len(known))
	for _, id := range known {
		set[id] = struct{}{}
	}

	out := make(map[EmployeeID][]EmployeeID)
	var ok bool
	for owner, list := range b {
		for _, id := range list {
			if _, ok = set[id]; !ok {
				out[owner] = append(out[owner], id)
			}
		}
	}

	return out
}
