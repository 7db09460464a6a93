package roster

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/teampair/assign"
	"github.com/katalvlaran/teampair/preference"
	"github.com/katalvlaran/teampair/teams"
)

// Report is the output document of a pairing run.
type Report struct {
	HarmonicMean float64 `yaml:"harmonic_mean"`
	Teams        []Pair  `yaml:"teams"`
}

// Pair is one team in a Report.
type Pair struct {
	Leader       preference.EmployeeID `yaml:"leader"`
	Junior       preference.EmployeeID `yaml:"junior"`
	LeaderName   string                `yaml:"leader_name,omitempty"`
	JuniorName   string                `yaml:"junior_name,omitempty"`
	Satisfaction int                   `yaml:"satisfaction,omitempty"`
}

// NewReport attaches display names and, when sats is non-nil, per-pair
// satisfaction values to ts. sats[i] must belong to ts[i].
func (r *Roster) NewReport(ts []teams.Team, sats []int, harmonicMean float64) Report {
	rep := Report{HarmonicMean: harmonicMean, Teams: make([]Pair, len(ts))}
	for i, t := range ts {
		rep.Teams[i] = Pair{
			Leader:     t.Leader,
			Junior:     t.Junior,
			LeaderName: r.LeaderName(t.Leader),
			JuniorName: r.JuniorName(t.Junior),
		}
		if i < len(sats) {
			rep.Teams[i].Satisfaction = sats[i]
		}
	}

	return rep
}

// Assignment maps the pairs of a report back to an assignment over r:
// position i holds the index in r.Juniors of the junior paired with
// r.Leaders[i]. Every leader must appear exactly once.
//
// Errors: ErrInvalidRoster for unknown or repeated leaders and unknown
// juniors, assign.ErrNotPermutation when a junior repeats.
func (r *Roster) Assignment(pairs []Pair) (assign.Assignment, error) {
	var (
		n      = len(r.Leaders)
		lIndex = indexOf(r.Leaders)
		jIndex = indexOf(r.Juniors)
		a      = make(assign.Assignment, n)
		filled = make([]bool, n)
	)
	if len(pairs) != n {
		return nil, fmt.Errorf("%w: %d pairs for %d leaders", ErrInvalidRoster, len(pairs), n)
	}

	var i, j int
	var ok bool
	for _, p := range pairs {
		if i, ok = lIndex[p.Leader]; !ok {
			return nil, fmt.Errorf("%w: unknown leader %d", ErrInvalidRoster, p.Leader)
		}
		if filled[i] {
			return nil, fmt.Errorf("%w: leader %d paired twice", ErrInvalidRoster, p.Leader)
		}
		if j, ok = jIndex[p.Junior]; !ok {
			return nil, fmt.Errorf("%w: unknown junior %d", ErrInvalidRoster, p.Junior)
		}
		a[i], filled[i] = j, true
	}
	if err := assign.ValidatePermutation(a, n); err != nil {
		return nil, err
	}

	return a, nil
}

// EncodeReport writes rep as YAML.
func EncodeReport(w io.Writer, rep Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("roster: encode report: %w", err)
	}

	return enc.Close()
}

// DecodeReport reads a document written by EncodeReport.
func DecodeReport(rd io.Reader) (Report, error) {
	dec := yaml.NewDecoder(rd)
	dec.KnownFields(true)

	var rep Report
	if err := dec.Decode(&rep); err != nil {
		if errors.Is(err, io.EOF) {
			return Report{}, fmt.Errorf("%w: empty report", ErrInvalidRoster)
		}
		return Report{}, fmt.Errorf("%w: decode report: %w", ErrInvalidRoster, err)
	}

	return rep, nil
}

func indexOf(ms []Member) map[preference.EmployeeID]int {
	out := make(map[preference.EmployeeID]int, len(ms))
	for i, m := range ms {
		out[m.ID] = i
	}

	return out
}
