package domain

// NationalID is the business key of a person record (for example a CPF).
// It is stored as given; no format is enforced.
type NationalID string

func (n NationalID) String() string {
	return string(n)
}
