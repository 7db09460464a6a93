// Package roster reads and writes the YAML documents exchanged with the
// teampair command.
//
// Input document:
//
//	leaders:
//	  - {id: 1, name: Alice}
//	  - {id: 2, name: Dmitry}
//	juniors:
//	  - {id: 11, name: Bob}
//	  - {id: 12, name: Chen}
//	wishlists:
//	  leaders: {1: [11, 12], 2: [12]}
//	  juniors: {11: [1, 2]}
//
// Load decodes (unknown keys are rejected), validates the structure with
// go-playground/validator, and enforces the engine's roster rules (equal
// counts, unique IDs per role, wishlist owners must exist). Wishlist entries
// naming unknown partners are legal; Warnings lists them.
//
// Output document (EncodeReport):
//
//	harmonic_mean: 4
//	teams:
//	  - {leader: 1, junior: 11, leader_name: Alice, junior_name: Bob, satisfaction: 4}
//
// Errors: ErrInvalidRoster wraps every structural problem (the validator's
// ValidationErrors stay reachable through errors.As);
// preference.ErrUnequalRoster and preference.ErrDuplicateEmployee pass
// through unchanged.
package roster
