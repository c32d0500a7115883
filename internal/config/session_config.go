package config

type SessionConfig interface {
	GetStorageKey() string
	GetSessionDB() string
}

type Session struct {
	values
}

var _ SessionConfig = Session{}

// GetStorageKey is the key the token pair blob is stored under.
func (s Session) GetStorageKey() string {
	return s.get("LOCAL_STORAGE_KEY", "hotel-admin-auth")
}

func (s Session) GetSessionDB() string {
	return s.get("SESSION_DB", "./data/session.db")
}
