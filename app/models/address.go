package models

import "strings"

// Destination is the shipping part of a checkout address.
type Destination struct {
	Country  string `json:"country" validate:"required,max=100"`
	Province string `json:"province" validate:"max=100"`
	City     string `json:"city" validate:"max=100"`
}

func (d Destination) String() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{d.City, d.Province, d.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
