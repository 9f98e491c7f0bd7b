// Package models defines the entity collections held by the root document.
// JSON field names mirror the persisted document format (camelCase).
package models

type ItineraryDay struct {
	Day     int    `json:"day"`
	Title   string `json:"title"`
	Details string `json:"details"`
}

type Trip struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Subtitle       string         `json:"subtitle"`
	Location       string         `json:"location"`
	StartDate      string         `json:"startDate"`
	EndDate        string         `json:"endDate"`
	Price          float64        `json:"price"`
	Currency       string         `json:"currency"`
	Capacity       int            `json:"capacity"`
	AvailableSeats int            `json:"availableSeats"`
	CoverImage     string         `json:"coverImage"`
	Gallery        []string       `json:"gallery"`
	Categories     []string       `json:"categories"`
	Highlights     []string       `json:"highlights"`
	Itinerary      []ItineraryDay `json:"itinerary"`
	MapURL         string         `json:"mapUrl"`
	Featured       bool           `json:"featured"`
	Description    string         `json:"description,omitempty"`
	CreatedAt      string         `json:"createdAt"`
	UpdatedAt      string         `json:"updatedAt"`
}

type Testimonial struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Rating    int    `json:"rating"`
	Photo     string `json:"photo"`
	Text      string `json:"text"`
	TripID    string `json:"tripId,omitempty"`
	CreatedAt string `json:"createdAt"`
	Featured  bool   `json:"featured"`
}

type BlogPost struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Slug            string   `json:"slug"`
	Excerpt         string   `json:"excerpt"`
	Cover           string   `json:"cover"`
	Author          string   `json:"author"`
	Date            string   `json:"date"`
	Tags            []string `json:"tags"`
	Content         string   `json:"content"`
	Published       bool     `json:"published"`
	CreatedAt       string   `json:"createdAt"`
	UpdatedAt       string   `json:"updatedAt"`
	MetaTitle       string   `json:"metaTitle,omitempty"`
	MetaDescription string   `json:"metaDescription,omitempty"`
	Keywords        string   `json:"keywords,omitempty"`
	ReadingTime     int      `json:"readingTime,omitempty"`
	Views           int      `json:"views,omitempty"`
}

type Traveler struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender"`
}

// PaymentStatus values for Booking.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
	PaymentRefunded  = "refunded"
)

type Booking struct {
	ID                string     `json:"id"`
	TripID            string     `json:"tripId"`
	CustomerName      string     `json:"customerName"`
	CustomerEmail     string     `json:"customerEmail"`
	CustomerPhone     string     `json:"customerPhone"`
	NumberOfTravelers int        `json:"numberOfTravelers"`
	TotalAmount       float64    `json:"totalAmount"`
	PaymentStatus     string     `json:"paymentStatus"`
	PaymentID         string     `json:"paymentId,omitempty"`
	PaymentMethod     string     `json:"paymentMethod,omitempty"`
	BookingDate       string     `json:"bookingDate"`
	SpecialRequests   string     `json:"specialRequests,omitempty"`
	Travelers         []Traveler `json:"travelers"`
}

type Customer struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Bookings    []string `json:"bookings"`
	TotalSpent  float64  `json:"totalSpent"`
	CreatedAt   string   `json:"createdAt"`
	Preferences []string `json:"preferences"`
}

type SocialMedia struct {
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
}

type Settings struct {
	SiteName     string      `json:"siteName"`
	ContactEmail string      `json:"contactEmail"`
	ContactPhone string      `json:"contactPhone"`
	Address      string      `json:"address"`
	SocialMedia  SocialMedia `json:"socialMedia"`
}

// Document is the root persisted under a single key. It is always read
// wholesale, mutated, and written back wholesale.
type Document struct {
	Trips        []Trip        `json:"trips"`
	Testimonials []Testimonial `json:"testimonials"`
	Blogs        []BlogPost    `json:"blogs"`
	Bookings     []Booking     `json:"bookings"`
	Customers    []Customer    `json:"customers"`
	Settings     Settings      `json:"settings"`
}
