package roster

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/teampair/preference"
)

// ErrInvalidRoster indicates a malformed or inconsistent roster document.
var ErrInvalidRoster = errors.New("roster: invalid roster")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Member is one leader or junior.
type Member struct {
	ID   preference.EmployeeID `yaml:"id" validate:"gt=0"`
	Name string                `yaml:"name,omitempty" validate:"max=128"`
}

// Wishlists holds both sides' ranked preferences, keyed by owner ID.
type Wishlists struct {
	Leaders map[preference.EmployeeID][]preference.EmployeeID `yaml:"leaders,omitempty" validate:"dive,keys,gt=0,endkeys,dive,gt=0"`
	Juniors map[preference.EmployeeID][]preference.EmployeeID `yaml:"juniors,omitempty" validate:"dive,keys,gt=0,endkeys,dive,gt=0"`
}

// Roster is a decoded roster document. Member order is significant: leader
// i of the result is Leaders[i], and junior indices refer to Juniors.
type Roster struct {
	Leaders   []Member  `yaml:"leaders" validate:"unique=ID,dive"`
	Juniors   []Member  `yaml:"juniors" validate:"unique=ID,dive"`
	Wishlists Wishlists `yaml:"wishlists,omitempty"`
}

// Load decodes and validates a roster document from r.
func Load(r io.Reader) (*Roster, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var ros Roster
	if err := dec.Decode(&ros); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidRoster)
		}
		return nil, fmt.Errorf("%w: decode: %w", ErrInvalidRoster, err)
	}
	if err := ros.Validate(); err != nil {
		return nil, err
	}

	return &ros, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("roster: open %s: %w", path, err)
	}
	defer f.Close()

	ros, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return ros, nil
}

// Validate checks field constraints, then the pairing rules: equal counts,
// unique IDs per role, and wishlist owners that exist in their role.
func (r *Roster) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRoster, err)
	}
	if err := preference.ValidateRoster(r.LeaderIDs(), r.JuniorIDs()); err != nil {
		return err
	}
	if err := checkOwners("leader", r.Wishlists.Leaders, r.Leaders); err != nil {
		return err
	}

	return checkOwners("junior", r.Wishlists.Juniors, r.Juniors)
}

// checkOwners rejects wishlists whose owner is not a member of role.
func checkOwners(role string, lists map[preference.EmployeeID][]preference.EmployeeID, members []Member) error {
	known := make(map[preference.EmployeeID]struct{}, len(members))
	for _, m := range members {
		known[m.ID] = struct{}{}
	}
	var ok bool
	for owner := range lists {
		if _, ok = known[owner]; !ok {
			return fmt.Errorf("%w: wishlist owner %d is not a %s", ErrInvalidRoster, owner, role)
		}
	}

	return nil
}
