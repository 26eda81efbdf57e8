package session

import (
	"errors"
	"fmt"
	"strings"
)

// Session errors.
var (
	// ErrNoSession is returned by Load when no session file exists.
	// Callers treat this as the logged-out state, not a failure.
	ErrNoSession = errors.New("no session: not logged in")

	// ErrInvalidRole is returned when a role string is not "student" or
	// "admin".
	ErrInvalidRole = errors.New("invalid role")

	// ErrEmptyToken is returned when attempting to save a session without a
	// token.
	ErrEmptyToken = errors.New("session token cannot be empty")
)

// Role identifies the kind of account a session belongs to. The role decides
// which commands are available: admins post internships, students have a
// profile, tracker, and recommendations.
type Role string

const (
	// RoleStudent is a student account.
	RoleStudent Role = "student"
	// RoleAdmin is a school-admin account.
	RoleAdmin Role = "admin"
)

// ParseRole converts a string into a Role. Matching is case-insensitive.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleStudent:
		return RoleStudent, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("%w: %q (valid: student, admin)", ErrInvalidRole, s)
	}
}

// String returns the wire representation of the role.
func (r Role) String() string {
	return string(r)
}

// Session is the persisted authentication state: an opaque bearer credential
// and the role it was issued for. The token is not encrypted; the session
// file relies on filesystem permissions (0600).
type Session struct {
	Token string `yaml:"auth_token"`
	Role  Role   `yaml:"role"`
}

// Valid reports whether the session carries a token and a known role.
func (s Session) Valid() bool {
	return s.Token != "" && (s.Role == RoleStudent || s.Role == RoleAdmin)
}
