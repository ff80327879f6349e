package donations

import "time"

// Donation es un aporte al refugio. UserID vacío = donante sin cuenta.
type Donation struct {
	ID          string
	UserID      string
	AmountCents int64
	Message     string
	IsAnonymous bool
	CreatedAt   time.Time
}
