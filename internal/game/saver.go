package game

import (
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
)

var errSaverClosed = errors.New("game: saver closed")

// saver writes state blobs in the background. Only the most recently
// scheduled blob is kept; writes are serialized so an older blob can never
// land after a newer one.
type saver struct {
	store  Store
	logger *log.Logger

	mu      sync.Mutex // guards pending, closed
	pending []byte
	closed  bool

	writeMu sync.Mutex // held across take+write
	kick    chan struct{}
	done    chan struct{}
	wg      sync.WaitGroup
}

func newSaver(store Store, logger *log.Logger) *saver {
	s := &saver{
		store:  store,
		logger: logger,
		kick:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	s.wg.Add(1)
	go s.run()
	return s
}

func (s *saver) run() {
	defer s.wg.Done()
	for {
		select {
		case <-s.kick:
			//nolint:errcheck // Logged in write; retried on the next mutation
			s.write()
		case <-s.done:
			return
		}
	}
}

// schedule replaces the pending blob and wakes the writer.
func (s *saver) schedule(blob []byte) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.pending = blob
	s.mu.Unlock()

	select {
	case s.kick <- struct{}{}:
	default:
	}
}

// write saves the pending blob, if any. On failure the blob goes back to
// pending unless a newer one was scheduled meanwhile.
func (s *saver) write() error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	blob := s.pending
	s.pending = nil
	s.mu.Unlock()

	if blob == nil {
		return nil
	}

	if err := s.store.Save(blob); err != nil {
		s.mu.Lock()
		if s.pending == nil {
			s.pending = blob
		}
		s.mu.Unlock()
		s.logger.Warn("could not save game state", "error", err)
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return nil
}

// isClosed reports whether close has been called.
func (s *saver) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// flush writes the pending blob synchronously.
func (s *saver) flush() error {
	return s.write()
}

// close stops the background writer and performs the final flush.
func (s *saver) close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return errSaverClosed
	}
	s.closed = true
	s.mu.Unlock()

	close(s.done)
	s.wg.Wait()
	return s.flush()
}
