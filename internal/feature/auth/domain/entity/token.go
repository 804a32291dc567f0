package entity

// TokenPair is issued on login and on every refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // access token lifetime in seconds
}

// ClientMeta describes the client that requested a session.
type ClientMeta struct {
	UserAgent string
	IPAddress string
}
