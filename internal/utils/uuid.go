package utils

import "github.com/google/uuid"

// UUIDGenerator issues UUIDv7 identifiers for delta entries and devices.
// Version 7 is time-ordered, so journal IDs sort roughly by creation time.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new UUIDv7 string, falling back to a random UUIDv4 when
// the system clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
