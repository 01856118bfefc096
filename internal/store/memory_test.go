package store

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/support-desk/internal/domain"
)

func TestNewMemoryStoreDerivesCounterFromSeed(t *testing.T) {
	s := NewMemoryStore(SeedTickets(time.Now()))
	assert.Equal(t, 8, s.Len())
	assert.Equal(t, "ticket-009", s.NextID())
	assert.Equal(t, "ticket-010", s.NextID())
}

func TestNewMemoryStoreEmptySeed(t *testing.T) {
	s := NewMemoryStore(nil)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, "ticket-001", s.NextID())
}

func TestCounterIgnoresMalformedIDs(t *testing.T) {
	s := NewMemoryStore([]domain.Ticket{
		{ID: "ticket-042"},
		{ID: "legacy"},
		{ID: "ticket-007"},
	})
	assert.Equal(t, "ticket-043", s.NextID())
}

func TestInsertPrepends(t *testing.T) {
	s := NewMemoryStore(nil)
	s.Insert(domain.Ticket{ID: "ticket-001"})
	s.Insert(domain.Ticket{ID: "ticket-002"})

	snap := s.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "ticket-002", snap[0].ID)
	assert.Equal(t, "ticket-001", snap[1].ID)
}

func TestSnapshotIsIsolated(t *testing.T) {
	s := NewMemoryStore([]domain.Ticket{{ID: "ticket-001", Name: "Sarah"}})

	snap := s.Snapshot()
	snap[0].Name = "mutated"

	again := s.Snapshot()
	assert.Equal(t, "Sarah", again[0].Name)
}

func TestNextIDNeverRepeats(t *testing.T) {
	s := NewMemoryStore(nil)

	const workers = 50
	ids := make(chan string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- s.NextID()
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool, workers)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)
}

func TestInsertNewIsAtomic(t *testing.T) {
	s := NewMemoryStore(SeedTickets(time.Now()))

	const workers = 25
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.InsertNew(func(id string) domain.Ticket {
				return domain.Ticket{ID: id, Status: domain.TicketStatusOpen}
			})
		}()
	}
	wg.Wait()

	snap := s.Snapshot()
	require.Len(t, snap, 8+workers)

	seen := make(map[string]bool, len(snap))
	for _, ticket := range snap {
		assert.False(t, seen[ticket.ID], "duplicate id %s", ticket.ID)
		seen[ticket.ID] = true
	}
}

func TestSeedTickets(t *testing.T) {
	now := time.Now()
	seed := SeedTickets(now)
	require.Len(t, seed, 8)

	for _, ticket := range seed {
		assert.True(t, domain.ValidStatus(ticket.Status), "seed %s has invalid status", ticket.ID)
		assert.True(t, domain.ValidPriority(ticket.Priority), "seed %s has invalid priority", ticket.ID)
		assert.True(t, domain.ValidCategory(ticket.Category), "seed %s has invalid category", ticket.ID)
		assert.False(t, ticket.CreatedAt.After(now), "seed %s created in the future", ticket.ID)
	}
}
