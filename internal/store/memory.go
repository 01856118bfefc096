package store

import (
	"sync"

	"github.com/spec-kit/support-desk/internal/domain"
)

// MemoryStore owns the canonical ticket collection, newest first. A single
// mutex guards the slice and the id counter so that id assignment and
// insertion form one critical section.
type MemoryStore struct {
	mu      sync.Mutex
	tickets []domain.Ticket
	counter int
}

// NewMemoryStore initializes the store from a seed set. The id counter is
// derived from the highest numeric suffix present in the seed so new tickets
// continue the sequence.
func NewMemoryStore(seed []domain.Ticket) *MemoryStore {
	s := &MemoryStore{
		tickets: make([]domain.Ticket, len(seed)),
	}
	copy(s.tickets, seed)
	for _, t := range seed {
		if n, ok := domain.SequenceNumber(t.ID); ok && n > s.counter {
			s.counter = n
		}
	}
	return s
}

// NextID increments the sequence counter and returns the next ticket id.
func (s *MemoryStore) NextID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counter++
	return domain.FormatID(s.counter)
}

// Insert prepends a ticket to the collection.
func (s *MemoryStore) Insert(ticket domain.Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prepend(ticket)
}

// InsertNew assigns the next id and inserts the built ticket under one lock,
// so concurrent submissions can neither duplicate nor skip ids.
func (s *MemoryStore) InsertNew(build func(id string) domain.Ticket) domain.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counter++
	ticket := build(domain.FormatID(s.counter))
	s.prepend(ticket)
	return ticket
}

// Snapshot returns a point-in-time copy of the collection. Callers cannot
// corrupt internal state through the returned slice.
func (s *MemoryStore) Snapshot() []domain.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Ticket, len(s.tickets))
	copy(out, s.tickets)
	return out
}

// Len returns the current number of tickets.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tickets)
}

func (s *MemoryStore) prepend(ticket domain.Ticket) {
	s.tickets = append([]domain.Ticket{ticket}, s.tickets...)
}
