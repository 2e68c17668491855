package usecase

import (
	"context"
	"log"
	"sync"
	"time"

	"talent-match/internal/domain/match"
	"talent-match/internal/repository"
)

// MatchHistoryRecorder accepts completed match results for later analytics.
// Record must never block and must never surface an error to the caller.
type MatchHistoryRecorder interface {
	Record(entry match.HistoryEntry)
}

// NopRecorder discards every entry. Used when history persistence is
// disabled or unavailable.
type NopRecorder struct{}

func (NopRecorder) Record(match.HistoryEntry) {}

// AsyncRecorder buffers entries on a channel and writes them from a single
// background goroutine. When the buffer is full the entry is dropped and
// logged rather than blocking the match request.
type AsyncRecorder struct {
	repo    repository.MatchHistoryRepository
	logger  *log.Logger
	entries chan match.HistoryEntry

	closeOnce sync.Once
	closing   chan struct{}
	done      chan struct{}

	writeTimeout time.Duration
}

func NewAsyncRecorder(repo repository.MatchHistoryRepository, logger *log.Logger, buffer int) *AsyncRecorder {
	if buffer <= 0 {
		buffer = 256
	}
	r := &AsyncRecorder{
		repo:         repo,
		logger:       logger,
		entries:      make(chan match.HistoryEntry, buffer),
		closing:      make(chan struct{}),
		done:         make(chan struct{}),
		writeTimeout: 5 * time.Second,
	}
	go r.drain()
	return r
}

func (r *AsyncRecorder) Record(entry match.HistoryEntry) {
	if entry.MatchedAt.IsZero() {
		entry.MatchedAt = time.Now().UTC()
	}
	select {
	case <-r.closing:
		if r.logger != nil {
			r.logger.Printf("[History] recorder closed, dropping entry | candidate_id=%d | role_id=%d", entry.CandidateID, entry.RoleID)
		}
		return
	default:
	}
	select {
	case r.entries <- entry:
	default:
		if r.logger != nil {
			r.logger.Printf("[History] buffer full, dropping entry | candidate_id=%d | role_id=%d", entry.CandidateID, entry.RoleID)
		}
	}
}

// Close stops accepting entries and flushes whatever is already buffered.
// Record remains safe to call afterwards; late entries are dropped.
func (r *AsyncRecorder) Close() {
	r.closeOnce.Do(func() {
		close(r.closing)
		<-r.done
	})
}

func (r *AsyncRecorder) drain() {
	defer close(r.done)
	for {
		select {
		case entry := <-r.entries:
			r.write(entry)
		case <-r.closing:
			for {
				select {
				case entry := <-r.entries:
					r.write(entry)
				default:
					return
				}
			}
		}
	}
}

func (r *AsyncRecorder) write(entry match.HistoryEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), r.writeTimeout)
	defer cancel()

	err := r.repo.Insert(ctx, repository.MatchHistoryRecord{
		CandidateID:     entry.CandidateID,
		RoleID:          entry.RoleID,
		MatchPercentage: entry.MatchPercentage,
		MatchedAt:       entry.MatchedAt,
	})
	if err != nil && r.logger != nil {
		r.logger.Printf("[History] insert failed | candidate_id=%d | role_id=%d | err=%v", entry.CandidateID, entry.RoleID, err)
	}
}
