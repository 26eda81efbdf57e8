package api

import (
	"context"
	"net/http"
)

// authResponse is the envelope for signup and login endpoints.
type authResponse struct {
	envelope
	AuthToken string `json:"auth_token"`
}

// StudentSignup is the payload for POST /signup. The backend requires every
// field to be present and non-empty.
type StudentSignup struct {
	Username         string `json:"username"`
	Password         string `json:"password"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	School           string `json:"school"`
	EmailPersonal    string `json:"email_personal"`
	EmailSchool      string `json:"email_school"`
	Age              string `json:"age"`
	Grade            string `json:"grade"`
	Extracurriculars string `json:"extracurriculars"`
	Interests        string `json:"interests"`
	GPA              string `json:"gpa"`
	Courses          string `json:"courses"`
}

// AdminSignup is the payload for POST /admin/signup.
type AdminSignup struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	SchoolName string `json:"school_name"`
	Email      string `json:"email"`
}

// credentials is the payload for the login endpoints.
type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Signup creates a student account and returns the issued auth token.
func (c *Client) Signup(ctx context.Context, payload StudentSignup) (string, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/signup", nil, payload, &resp); err != nil {
		return "", err
	}
	return resp.AuthToken, nil
}

// AdminSignup creates a school-admin account and returns the issued auth
// token.
func (c *Client) AdminSignup(ctx context.Context, payload AdminSignup) (string, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/admin/signup", nil, payload, &resp); err != nil {
		return "", err
	}
	return resp.AuthToken, nil
}

// Login authenticates a student account and returns the auth token.
// Invalid credentials come back as HTTP 401; the wrapped ErrUnauthorized
// carries the server's message.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/login", nil, credentials{Username: username, Password: password}, &resp); err != nil {
		return "", err
	}
	return resp.AuthToken, nil
}

// AdminLogin authenticates a school-admin account and returns the auth token.
func (c *Client) AdminLogin(ctx context.Context, username, password string) (string, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/admin/login", nil, credentials{Username: username, Password: password}, &resp); err != nil {
		return "", err
	}
	return resp.AuthToken, nil
}

// VerifySession checks the stored token against the backend by issuing a
// lightweight authenticated read (GET /tracker, the same probe the web
// client used on page load). Any failure (401, unexpected status, network
// error) is returned so the caller can clear the session: safety over
// availability, logging out on ambiguity.
func (c *Client) VerifySession(ctx context.Context) error {
	_, err := c.ListTracker(ctx)
	return err
}
