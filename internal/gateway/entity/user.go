package entity

import "strings"

// ExternalID identifies a caller by the auth provider's user id.
type ExternalID string

func NormalizeExternalID(raw string) ExternalID {
	return ExternalID(strings.TrimSpace(raw))
}

func (id ExternalID) String() string {
	return strings.TrimSpace(string(id))
}

func (id ExternalID) IsZero() bool {
	return id.String() == ""
}
