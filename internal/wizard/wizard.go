// Package wizard drives the four-step venue creation flow as an explicit
// state machine: a tagged step enumeration, a transition table, and one
// validation gate per forward edge. Back edges are never gated.
package wizard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

type Step int

const (
	StepBasicInfo Step = iota + 1
	StepPricing
	StepSports
	StepImages
)

func (s Step) String() string {
	switch s {
	case StepBasicInfo:
		return "basic_info"
	case StepPricing:
		return "pricing"
	case StepSports:
		return "sports"
	case StepImages:
		return "images"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

var (
	ErrSubmitInFlight = errors.New("submit already in progress")
	ErrNotLastStep    = errors.New("cannot submit before the final step")
)

// GateError is a rejected forward transition. The cursor does not move.
type GateError struct {
	Step   Step
	Reason string
}

func (e *GateError) Error() string {
	return fmt.Sprintf("step %s: %s", e.Step, e.Reason)
}

// Form is the accumulated operator input across all steps.
type Form struct {
	Name               string   `json:"name"`
	Address            string   `json:"address"`
	City               string   `json:"city"`
	Description        string   `json:"description"`
	PricePerHour       string   `json:"pricePerHour"` // raw input, parsed at the gate
	CancellationPolicy string   `json:"cancellationPolicy"`
	SportIDs           []int64  `json:"sportIds"`
	Amenities          []string `json:"amenities"`
	ImageURLs          []string `json:"imageUrls"`
}

// gate validates the form before leaving the given step. Gates are data,
// keyed by step, not conditionals scattered through handlers.
type gate func(*Form) *GateError

var gates = map[Step]gate{
	StepBasicInfo: func(f *Form) *GateError {
		switch {
		case strings.TrimSpace(f.Name) == "":
			return &GateError{StepBasicInfo, "name is required"}
		case strings.TrimSpace(f.Address) == "":
			return &GateError{StepBasicInfo, "address is required"}
		case strings.TrimSpace(f.City) == "":
			return &GateError{StepBasicInfo, "city is required"}
		}
		return nil
	},
	StepPricing: func(f *Form) *GateError {
		if _, err := parsePrice(f.PricePerHour); err != nil {
			return &GateError{StepPricing, "price per hour must be a number"}
		}
		return nil
	},
	StepSports: func(f *Form) *GateError {
		if len(f.SportIDs) == 0 {
			return &GateError{StepSports, "select at least one sport"}
		}
		return nil
	},
	// StepImages has no forward gate; submit filters blank URLs instead.
}

// Draft is one in-progress wizard session. Cursor, form and freshness
// are guarded by mu: request goroutines and the store janitor touch the
// same draft concurrently.
type Draft struct {
	ID        uuid.UUID
	OwnerID   int64
	CreatedAt time.Time

	mu        sync.Mutex
	step      Step
	form      Form
	updatedAt time.Time

	submitting atomic.Bool
}

func NewDraft(ownerID int64) *Draft {
	now := time.Now()
	return &Draft{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		step:      StepBasicInfo,
		CreatedAt: now,
		updatedAt: now,
	}
}

// Step returns the current cursor position.
func (d *Draft) Step() Step {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.step
}

// Form returns a snapshot of the accumulated input.
func (d *Draft) Form() Form {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.form
}

// SetForm replaces the whole form with the posted snapshot.
func (d *Draft) SetForm(form Form) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.form = form
	d.updatedAt = time.Now()
}

// LastUpdated reports when the draft was last touched; the store's TTL
// eviction keys off it.
func (d *Draft) LastUpdated() time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.updatedAt
}

// Next advances the cursor when the current step's gate passes. On
// rejection the cursor stays where it is.
func (d *Draft) Next() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.step >= StepImages {
		return &GateError{d.step, "already at the final step"}
	}

	if gate, ok := gates[d.step]; ok {
		if err := gate(&d.form); err != nil {
			return err
		}
	}

	d.step++
	d.updatedAt = time.Now()
	return nil
}

// Back always succeeds; at the first step it is a no-op.
func (d *Draft) Back() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.step > StepBasicInfo {
		d.step--
	}
	d.updatedAt = time.Now()
}

// BeginSubmit claims the single in-flight submission slot. A second
// caller gets false until EndSubmit releases it.
func (d *Draft) BeginSubmit() bool {
	return d.submitting.CompareAndSwap(false, true)
}

func (d *Draft) EndSubmit() {
	d.submitting.Store(false)
}

// SubmitPayload is the venue creation request sent upstream.
type SubmitPayload struct {
	Name               string   `json:"name"`
	Address            string   `json:"address"`
	City               string   `json:"city"`
	Description        string   `json:"description,omitempty"`
	PricePerHour       float64  `json:"pricePerHour"`
	CancellationPolicy string   `json:"cancellationPolicy,omitempty"`
	SportIDs           []int64  `json:"sportIds"`
	Amenities          []string `json:"amenities,omitempty"`
	ImageURLs          []string `json:"imageUrls"`
}

// Payload builds the submission from the form: the price becomes numeric
// and blank image URLs are dropped. Only valid from the final step.
func (d *Draft) Payload() (*SubmitPayload, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.step != StepImages {
		return nil, ErrNotLastStep
	}

	price, err := parsePrice(d.form.PricePerHour)
	if err != nil {
		return nil, &GateError{StepPricing, "price per hour must be a number"}
	}

	images := make([]string, 0, len(d.form.ImageURLs))
	for _, raw := range d.form.ImageURLs {
		if url := strings.TrimSpace(raw); url != "" {
			images = append(images, url)
		}
	}

	return &SubmitPayload{
		Name:               strings.TrimSpace(d.form.Name),
		Address:            strings.TrimSpace(d.form.Address),
		City:               strings.TrimSpace(d.form.City),
		Description:        strings.TrimSpace(d.form.Description),
		PricePerHour:       price,
		CancellationPolicy: strings.TrimSpace(d.form.CancellationPolicy),
		SportIDs:           d.form.SportIDs,
		Amenities:          d.form.Amenities,
		ImageURLs:          images,
	}, nil
}

func parsePrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if price < 0 {
		return 0, fmt.Errorf("negative price")
	}
	return price, nil
}
