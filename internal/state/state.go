package state

import (
	"image"
	"sync"
	"time"

	"github.com/rook-computer/starfield/internal/starfield"
)

type Phase int

const (
	BOOTING Phase = iota
	READY
	RENDERING
	ERROR
)

func (p Phase) String() string {
	switch p {
	case BOOTING:
		return "booting"
	case READY:
		return "ready"
	case RENDERING:
		return "rendering"
	case ERROR:
		return "error"
	}
	return "unknown"
}

// Frame is a finished starfield. Image must not be mutated once published.
type Frame struct {
	ID         string
	Image      *image.RGBA
	Config     starfield.Config
	Seed       uint64
	Summary    starfield.Summary
	RenderedAt time.Time
}

type NetworkInfo struct {
	URL string
}

type State struct {
	Phase   Phase
	Message string
	Err     string
	Frame   Frame
	Network NetworkInfo
}

// Store holds the kiosk state shared between the web API and the display.
type Store struct {
	mu      sync.RWMutex
	state   State
	changed chan struct{}
}

func NewStore() *Store {
	return &Store{state: State{Phase: BOOTING}, changed: make(chan struct{}, 1)}
}

func (store *Store) Snapshot() State {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.state
}

// Changed delivers one pending notification after any number of updates.
func (store *Store) Changed() <-chan struct{} { return store.changed }

func (store *Store) SetPhase(phase Phase) {
	store.update(func(s *State) { s.Phase = phase })
}

func (store *Store) SetMessage(message string) {
	store.update(func(s *State) { s.Message = message })
}

func (store *Store) SetError(err error) {
	store.update(func(s *State) {
		s.Phase = ERROR
		s.Err = ""
		if err != nil {
			s.Err = err.Error()
		}
	})
}

// PublishFrame makes frame current and returns the store to READY.
func (store *Store) PublishFrame(frame Frame) {
	store.update(func(s *State) {
		s.Frame = frame
		s.Phase = READY
		s.Err = ""
		s.Message = ""
	})
}

func (store *Store) UpdateNetwork(network NetworkInfo) {
	store.update(func(s *State) { s.Network = network })
}

func (store *Store) update(fn func(*State)) {
	store.mu.Lock()
	fn(&store.state)
	store.mu.Unlock()
	select {
	case store.changed <- struct{}{}:
	default:
	}
}
