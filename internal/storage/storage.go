package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates that a shoot session could not be located or has
// expired.
var ErrNotFound = errors.New("shoot session not found")

// Product is the structured result of detecting the main product in an
// uploaded photo.
type Product struct {
	Name       string   `json:"product"`
	Category   string   `json:"category"`
	Attributes []string `json:"attributes"`
	Confidence int      `json:"confidence"`
}

// Idea is a single creative shoot concept suggested for a product.
type Idea struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Summary      string   `json:"summary"`
	WhyItWorks   string   `json:"why_it_works"`
	ShotKeywords []string `json:"shot_keywords"`
}

// CameraSettings describes how a single shot should be framed technically.
type CameraSettings struct {
	Angle    string `json:"angle"`
	Lens     string `json:"lens"`
	Aperture string `json:"aperture"`
}

// Shot is one detailed, actionable plan inside a shoot.
type Shot struct {
	Index        int            `json:"index"`
	Title        string         `json:"title"`
	Camera       CameraSettings `json:"camera"`
	Lighting     string         `json:"lighting"`
	Background   string         `json:"background"`
	Props        string         `json:"props"`
	Composition  string         `json:"composition"`
	Instructions string         `json:"instructions"`
	GenPrompt    string         `json:"gen_prompt,omitempty"`
}

// Shoot ties a detection result to the ideas suggested for it, so a later
// plan request can resolve the full selected idea instead of a stub.
type Shoot struct {
	ID        string    `json:"id"`
	Product   Product   `json:"product"`
	Ideas     []Idea    `json:"ideas"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store is the behaviour the HTTP layer needs from shoot session storage.
type Store interface {
	CreateShoot(ctx context.Context, product Product, ideas []Idea) (Shoot, error)
	GetShoot(ctx context.Context, id string) (Shoot, error)
	DeleteShoot(ctx context.Context, id string) error
	Count(ctx context.Context) int
}
