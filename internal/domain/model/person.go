package model

import "strings"

// Person is a directory entry from the backend's person index. Birth and
// death dates are optional ISO-8601 date strings; only the year is shown in
// pickers.
type Person struct {
	ID        string  `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	BirthDate *string `json:"birthDate,omitempty"`
	DeathDate *string `json:"deathDate,omitempty"`
}

// FullName joins the person's first and last name.
func (p Person) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
}

// Lifespan renders a compact "1901–1987" span from whatever dates are known.
// Returns empty when neither date is present.
func (p Person) Lifespan() string {
	birth := yearOf(p.BirthDate)
	death := yearOf(p.DeathDate)
	switch {
	case birth == "" && death == "":
		return ""
	case death == "":
		return birth + "–"
	case birth == "":
		return "–" + death
	default:
		return birth + "–" + death
	}
}

// yearOf extracts the leading year from an ISO date string.
func yearOf(date *string) string {
	if date == nil {
		return ""
	}
	d := strings.TrimSpace(*date)
	if len(d) < 4 {
		return ""
	}
	return d[:4]
}
