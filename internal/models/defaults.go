package models

import "time"

// DefaultDocument returns the compiled-in document used when no root
// document has been persisted yet. The sample records match the content
// the site launched with.
func DefaultDocument(now time.Time) Document {
	ts := now.UTC().Format(time.RFC3339)

	return Document{
		Trips: []Trip{
			{
				ID:             "TRIP_001",
				Title:          "Konkan–Goa: A Tour on the Water's Edge",
				Subtitle:       "Beaches, forts, seafood & sunsets",
				Location:       "Goa & Konkan Coast, India",
				StartDate:      "2025-11-10",
				EndDate:        "2025-11-16",
				Price:          34999,
				Currency:       "INR",
				Capacity:       24,
				AvailableSeats: 12,
				CoverImage:     "/goa-beach-sunset.png",
				Gallery:        []string{"/konkan-coast.png", "/goa-fort.png"},
				Categories:     []string{"Beach", "Culture", "Maharashtra", "Goa"},
				Highlights:     []string{"Dudhsagar trek", "Fort Aguada sunset", "Local seafood trail"},
				Itinerary: []ItineraryDay{
					{Day: 1, Title: "Arrive in Goa", Details: "Welcome dinner at beachside restaurant"},
					{Day: 2, Title: "North Goa Heritage", Details: "Explore forts and churches"},
				},
				MapURL:      "https://maps.google.com/?q=Goa",
				Featured:    true,
				Description: "Experience the perfect blend of coastal beauty and cultural heritage along the Konkan coast.",
				CreatedAt:   ts,
				UpdatedAt:   ts,
			},
		},
		Testimonials: []Testimonial{
			{
				ID:        "TEST_001",
				Name:      "Aarav Shah",
				Role:      "Guest, Oct 2024",
				Rating:    5,
				Photo:     "/happy-traveler.png",
				Text:      "Flawless planning and great hosts. The Konkan-Goa trip exceeded all expectations!",
				Featured:  true,
				CreatedAt: ts,
			},
		},
		Blogs: []BlogPost{
			{
				ID:        "BLOG_001",
				Title:     "Diwali in Maharashtra: Traditions & Trails",
				Slug:      "diwali-in-maharashtra-traditions",
				Excerpt:   "From lanterns to faral — experience the festive heart of Maharashtra.",
				Cover:     "/diwali-maharashtra-celebration.png",
				Author:    "Team TravelBabaVoyage",
				Date:      "2025-01-15",
				Tags:      []string{"Maharashtra", "Festivals", "Culture"},
				Content:   "# Diwali in Maharashtra\n\nExperience the magic of Diwali celebrations across Maharashtra...",
				Published: true,
				CreatedAt: ts,
				UpdatedAt: ts,
			},
		},
		Bookings:  []Booking{},
		Customers: []Customer{},
		Settings: Settings{
			SiteName:     "TravelBabaVoyage",
			ContactEmail: "info@travelbabavoyage.com",
			ContactPhone: "+91 98765 43210",
			Address:      "Mumbai, Maharashtra, India",
			SocialMedia: SocialMedia{
				Instagram: "https://instagram.com/travelbabavoyage",
				Facebook:  "https://facebook.com/travelbabavoyage",
			},
		},
	}
}
