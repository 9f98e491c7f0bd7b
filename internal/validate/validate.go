// Package validate holds the pure validation rules applied before a Trip,
// Booking or BlogPost reaches the store. Every function collects the full
// list of violations instead of stopping at the first, so callers can show
// all problems at once.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/SOHAMSUPEKAR24/travle1/internal/models"
)

type Result struct {
	Valid  bool
	Errors []string
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Trip checks a trip payload against wall-clock time "now". A trip that was
// valid when created can fail re-validation later once its start date has
// passed; that quirk is intentional.
func Trip(t models.Trip, now time.Time) Result {
	var errs []string

	if len(strings.TrimSpace(t.Title)) < 3 {
		errs = append(errs, "Trip title must be at least 3 characters long")
	}
	if len(strings.TrimSpace(t.Location)) < 3 {
		errs = append(errs, "Trip location must be at least 3 characters long")
	}

	start, startErr := parseDate(t.StartDate)
	end, endErr := parseDate(t.EndDate)
	if t.StartDate == "" || t.EndDate == "" || startErr != nil || endErr != nil {
		errs = append(errs, "Trip must have valid start and end dates")
	} else {
		if !start.Before(end) {
			errs = append(errs, "End date must be after start date")
		}
		if start.Before(now) {
			errs = append(errs, "Start date cannot be in the past")
		}
	}

	if t.Price <= 0 {
		errs = append(errs, "Trip price must be a positive number")
	}
	if t.Capacity <= 0 {
		errs = append(errs, "Trip capacity must be a positive number")
	}
	if t.AvailableSeats < 0 || t.AvailableSeats > t.Capacity {
		errs = append(errs, "Available seats must be between 0 and total capacity")
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

func Booking(b models.Booking) Result {
	var errs []string

	if len(strings.TrimSpace(b.CustomerName)) < 2 {
		errs = append(errs, "Customer name must be at least 2 characters long")
	}
	if !emailPattern.MatchString(b.CustomerEmail) {
		errs = append(errs, "Valid customer email is required")
	}
	if len(strings.TrimSpace(b.CustomerPhone)) < 10 {
		errs = append(errs, "Valid customer phone number is required")
	}
	if b.NumberOfTravelers <= 0 {
		errs = append(errs, "Number of travelers must be a positive number")
	}
	if b.TotalAmount <= 0 {
		errs = append(errs, "Total amount must be a positive number")
	}

	for i, traveler := range b.Travelers {
		if len(strings.TrimSpace(traveler.Name)) < 2 {
			errs = append(errs, fmt.Sprintf("Traveler %d name is required", i+1))
		}
		if traveler.Age < 1 || traveler.Age > 120 {
			errs = append(errs, fmt.Sprintf("Traveler %d age must be between 1 and 120", i+1))
		}
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

// BlogPost applies the tag rules only when a tags slice is supplied; a nil
// tags field is accepted, an empty one is not.
func BlogPost(p models.BlogPost) Result {
	var errs []string

	if len(strings.TrimSpace(p.Title)) < 5 {
		errs = append(errs, "Blog title must be at least 5 characters long")
	}
	if len(strings.TrimSpace(p.Slug)) < 3 {
		errs = append(errs, "Blog slug must be at least 3 characters long")
	}
	if len(strings.TrimSpace(p.Excerpt)) < 20 {
		errs = append(errs, "Blog excerpt must be at least 20 characters long")
	}
	if len(strings.TrimSpace(p.Content)) < 100 {
		errs = append(errs, "Blog content must be at least 100 characters long")
	}
	if len(strings.TrimSpace(p.Author)) < 2 {
		errs = append(errs, "Blog author is required")
	}

	if p.Tags != nil {
		if len(p.Tags) == 0 {
			errs = append(errs, "At least one tag is required")
		}
		for i, tag := range p.Tags {
			if len(strings.TrimSpace(tag)) < 2 {
				errs = append(errs, fmt.Sprintf("Tag %d must be at least 2 characters long", i+1))
			}
		}
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}
