package engine

import "errors"

// BoonKind names a class of timed modifier. The engine treats kinds as
// opaque; the content definitions enumerate the valid ones.
type BoonKind string

// Boon is a timed modifier counted down in rounds. Boons of the same
// kind are stored separately and stack additively at query time.
type Boon struct {
	Kind      BoonKind `json:"kind"`
	Remaining int      `json:"remaining"`
	Potency   float64  `json:"potency"`
}

var ErrInvalidBoon = errors.New("invalid boon")

// ApplyBoon appends a new boon. Duration is in rounds and must be
// positive, as must potency.
func (s *State) ApplyBoon(kind BoonKind, duration int, potency float64) error {
	if kind == "" || duration <= 0 || potency <= 0 {
		return ErrInvalidBoon
	}

	s.Boons = append(s.Boons, Boon{Kind: kind, Remaining: duration, Potency: potency})
	s.emit(Event{Kind: EventBoonApplied, Boon: kind})

	return nil
}

// TickBoons advances boon lifetimes by one round and drops the ones
// that expire. The caller must invoke it exactly once per completed
// round, after the outcome is recorded and before the next round reads
// any potency.
func (s *State) TickBoons() {
	kept := s.Boons[:0]

	for _, b := range s.Boons {
		b.Remaining--
		if b.Remaining > 0 {
			kept = append(kept, b)
			continue
		}

		s.emit(Event{Kind: EventBoonExpired, Boon: b.Kind})
	}

	s.Boons = kept
}

// EffectivePotency sums the potency of all active boons of the given
// kind; 0 when none are active.
func (s *State) EffectivePotency(kind BoonKind) float64 {
	var total float64

	for _, b := range s.Boons {
		if b.Kind == kind {
			total += b.Potency
		}
	}

	return total
}
