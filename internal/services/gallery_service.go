package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"vpapic.dev/internal/gallery"
)

var (
	ErrSessionNotFound = errors.New("gallery session not found")
	ErrIndexOutOfRange = errors.New("image index out of range")
)

// DefaultSessionTTL is how long an idle gallery session is kept
const DefaultSessionTTL = 30 * time.Minute

// GalleryState is the client-visible state of a gallery session
type GalleryState struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Index       int    `json:"index"`
	Length      int    `json:"length"`
	Image       string `json:"image"`
	HasControls bool   `json:"has_controls"`
}

type gallerySession struct {
	id       string
	slug     string
	images   []string
	nav      *gallery.Navigator
	lastSeen time.Time
}

func (g *gallerySession) state() GalleryState {
	return GalleryState{
		ID:          g.id,
		Slug:        g.slug,
		Index:       g.nav.Index(),
		Length:      g.nav.Len(),
		Image:       g.images[g.nav.Index()],
		HasControls: g.nav.HasControls(),
	}
}

// GalleryService owns one navigator per open gallery view.
// Each session is touched only through the service's lock.
type GalleryService struct {
	projects *ProjectService
	ttl      time.Duration
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*gallerySession
}

// NewGalleryService creates a new GalleryService; ttl <= 0 uses DefaultSessionTTL
func NewGalleryService(ps *ProjectService, ttl time.Duration) *GalleryService {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &GalleryService{
		projects: ps,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*gallerySession),
	}
}

// Open starts a gallery view for a project at its first image
func (s *GalleryService) Open(slug string) (GalleryState, error) {
	p, err := s.projects.GetBySlug(slug)
	if err != nil {
		return GalleryState{}, err
	}
	nav, err := gallery.New(len(p.Images))
	if err != nil {
		return GalleryState{}, err
	}

	sess := &gallerySession{
		id:     uuid.NewString(),
		slug:   p.Slug,
		images: p.Images,
		nav:    nav,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess.lastSeen = s.now()
	s.sessions[sess.id] = sess
	return sess.state(), nil
}

// Get returns the current state of a session
func (s *GalleryService) Get(id string) (GalleryState, error) {
	return s.with(id, func(*gallerySession) error { return nil })
}

// Next advances a session to the following image
func (s *GalleryService) Next(id string) (GalleryState, error) {
	return s.with(id, func(g *gallerySession) error {
		g.nav.Advance()
		return nil
	})
}

// Prev moves a session to the preceding image
func (s *GalleryService) Prev(id string) (GalleryState, error) {
	return s.with(id, func(g *gallerySession) error {
		g.nav.Retreat()
		return nil
	})
}

// Jump selects an image directly; index comes from the client so it is checked
func (s *GalleryService) Jump(id string, index int) (GalleryState, error) {
	return s.with(id, func(g *gallerySession) error {
		if !g.nav.Valid(index) {
			return ErrIndexOutOfRange
		}
		g.nav.JumpTo(index)
		return nil
	})
}

// Close discards a session
func (s *GalleryService) Close(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

// Len returns the number of open sessions
func (s *GalleryService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep removes sessions idle for longer than the TTL and returns how many went
func (s *GalleryService) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps expired sessions every interval until ctx is done
func (s *GalleryService) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				log.Debug().Int("removed", n).Msg("expired gallery sessions")
			}
		}
	}
}

func (s *GalleryService) with(id string, fn func(*gallerySession) error) (GalleryState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return GalleryState{}, ErrSessionNotFound
	}
	if sess.lastSeen.Before(s.now().Add(-s.ttl)) {
		delete(s.sessions, id)
		return GalleryState{}, ErrSessionNotFound
	}
	if err := fn(sess); err != nil {
		return GalleryState{}, err
	}
	sess.lastSeen = s.now()
	return sess.state(), nil
}
