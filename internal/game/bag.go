package game

// Shuffler is the randomness a Sequencer needs. *math/rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Sequencer produces shape kinds using the 7-bag randomizer: every freshly
// generated bag is a permutation of all seven kinds.
type Sequencer struct {
	rng     Shuffler
	current []Kind
	next    []Kind
}

// NewSequencer creates a sequencer drawing from rng.
// Two sequencers over identically seeded sources produce identical streams.
func NewSequencer(rng Shuffler) *Sequencer {
	return &Sequencer{rng: rng}
}

// Next removes and returns the next kind.
func (s *Sequencer) Next() Kind {
	if len(s.current) == 0 {
		s.current, s.next = s.next, s.fresh()
		// Only at start-up: both bags were empty.
		if len(s.current) == 0 {
			s.current = s.fresh()
		}
	}
	k := s.current[0]
	s.current = s.current[1:]
	return k
}

// Preview returns up to n upcoming kinds without consuming them.
func (s *Sequencer) Preview(n int) []Kind {
	if n <= 0 {
		return nil
	}
	out := make([]Kind, 0, min(n, len(s.current)+len(s.next)))
	for _, batch := range [][]Kind{s.current, s.next} {
		for _, k := range batch {
			if len(out) == n {
				return out
			}
			out = append(out, k)
		}
	}
	return out
}

// fresh returns a newly shuffled bag.
func (s *Sequencer) fresh() []Kind {
	bag := Kinds
	s.rng.Shuffle(len(bag), func(i, j int) {
		bag[i], bag[j] = bag[j], bag[i]
	})
	return bag[:]
}
