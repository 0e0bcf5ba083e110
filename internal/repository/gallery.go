package repository

import (
	"context"

	"github.com/Sujithrababu/attendance-system/internal/facerec"
)

// Gallery adapts the users table to the face-matcher's identity lookup.
// Only student accounts with a student_id are candidates for recognition.
type Gallery struct {
	users UserRepository
}

// NewGallery creates the Gallery over the given user repository.
func NewGallery(users UserRepository) *Gallery {
	return &Gallery{users: users}
}

// RegisteredIdentities lists the students a snapshot can resolve to.
func (g *Gallery) RegisteredIdentities(ctx context.Context) ([]facerec.Identity, error) {
	students, err := g.users.ListStudents(ctx)
	if err != nil {
		return nil, err
	}

	identities := make([]facerec.Identity, 0, len(students))
	for _, s := range students {
		if s.StudentID == "" {
			continue
		}
		identities = append(identities, facerec.Identity{
			StudentID: s.StudentID,
			Name:      s.Name,
		})
	}
	return identities, nil
}
