package domain

// Session is an immutable handle on the remote tool server connection.
// A reconnect produces a new Session value instead of mutating the current one.
type Session struct {
	BaseEndpoint string
	SessionURL   string
	AuthToken    string
}

// NewSession creates a Session without an established session URL.
func NewSession(endpoint, authToken string) Session {
	return Session{
		BaseEndpoint: endpoint,
		AuthToken:    authToken,
	}
}

// HasSessionURL reports whether a session handshake succeeded.
func (s Session) HasSessionURL() bool {
	return s.SessionURL != ""
}

// WithSessionURL returns a copy of the session bound to the given session URL.
func (s Session) WithSessionURL(sessionURL string) Session {
	s.SessionURL = sessionURL
	return s
}

// AuthorizationHeader returns the bearer header value, or "" when no token is configured.
func (s Session) AuthorizationHeader() string {
	if s.AuthToken == "" {
		return ""
	}
	return "Bearer " + s.AuthToken
}
