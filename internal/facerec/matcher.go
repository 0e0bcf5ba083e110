// Package facerec resolves an attendance snapshot to a registered student.
//
// The matching model itself is out of scope: the production deployment talks
// to an external recognition service, and this package ships a mock that
// picks a random registered student. Both sit behind the Matcher interface,
// so the caller never knows the difference.
package facerec

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"
)

var ErrNoRegisteredFaces = errors.New("no registered faces available")

// Identity is a registered face entry: who a template belongs to.
type Identity struct {
	StudentID string
	Name      string
}

// GalleryRepository is the read-only lookup of registered identities.
// The store layer implements it over the users table; a real matcher would
// read biometric templates from it as well.
type GalleryRepository interface {
	RegisteredIdentities(ctx context.Context) ([]Identity, error)
}

// Match is a resolved recognition outcome.
type Match struct {
	StudentID  string
	Name       string
	Confidence float64
}

// Matcher resolves image bytes to a registered student.
type Matcher interface {
	Match(ctx context.Context, image []byte) (*Match, error)
}

// MockMatcher simulates recognition by sampling a random gallery entry with a
// confidence in [0.70, 0.95]. Deterministic behavior is not a goal; the
// contract it exercises (identity + confidence already resolved) is.
type MockMatcher struct {
	gallery GalleryRepository

	mu  sync.Mutex
	rng *rand.Rand
}

// NewMockMatcher creates a mock matcher over the given gallery.
func NewMockMatcher(gallery GalleryRepository) *MockMatcher {
	return &MockMatcher{
		gallery: gallery,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Match picks a random registered identity.
func (m *MockMatcher) Match(ctx context.Context, _ []byte) (*Match, error) {
	identities, err := m.gallery.RegisteredIdentities(ctx)
	if err != nil {
		return nil, err
	}
	if len(identities) == 0 {
		return nil, ErrNoRegisteredFaces
	}

	m.mu.Lock()
	pick := identities[m.rng.Intn(len(identities))]
	confidence := 0.70 + m.rng.Float64()*0.25
	m.mu.Unlock()

	return &Match{
		StudentID:  pick.StudentID,
		Name:       pick.Name,
		Confidence: float64(int(confidence*100)) / 100,
	}, nil
}
