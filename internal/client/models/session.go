// Package models defines the domain types exchanged between the API client,
// services and workflows: sessions, boats, contracts and service records.
package models

import "strings"

// Session holds the bearer token and the role set obtained at login.
// It is created once by the auth service and read-only afterwards.
type Session struct {
	Username string
	Token    string
	Roles    []string
}

// HasRole reports whether the session carries the given role.
// Comparison is case-insensitive.
func (s *Session) HasRole(role string) bool {
	for _, r := range s.Roles {
		if strings.EqualFold(r, role) {
			return true
		}
	}
	return false
}
