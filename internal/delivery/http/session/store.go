// Package session holds the server-side session record tying a client to an
// issued access token. The record is the first stage of the session gate:
// even a token that still verifies is useless without it.
package session

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/pkg/errors"

	"bookrack/config"
)

const (
	sessionName    = "bookrack_session"
	keyAccessToken = "accessToken"
	keyUsername    = "username"
)

// Record is the per-client session state created at login. Username is an
// observability copy only; authorization always re-derives identity from the
// verified token subject.
type Record struct {
	AccessToken string
	Username    string
}

// Store wraps the cookie-backed session store.
type Store struct {
	cookies *sessions.CookieStore
}

// NewStore is the constructor for Store.
func NewStore(cfg *config.Config) *Store {
	cookies := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	cookies.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cfg.Session.MaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Store{cookies: cookies}
}

// Record returns the session record for the request, reporting whether one
// with an access token exists.
func (s *Store) Record(r *http.Request) (*Record, bool) {
	sess, err := s.cookies.Get(r, sessionName)
	if err != nil {
		return nil, false
	}

	token, ok := sess.Values[keyAccessToken].(string)
	if !ok || token == "" {
		return nil, false
	}

	username, _ := sess.Values[keyUsername].(string)

	return &Record{AccessToken: token, Username: username}, true
}

// Save writes the session record for the client after a successful login.
func (s *Store) Save(r *http.Request, w http.ResponseWriter, record *Record) error {
	sess, err := s.cookies.Get(r, sessionName)
	if err != nil {
		// A stale or tampered cookie decodes to a fresh session; that is
		// fine, the login overwrites it.
		sess, err = s.cookies.New(r, sessionName)
		if err != nil && sess == nil {
			return errors.Wrap(err, "failed to create session")
		}
	}

	sess.Values[keyAccessToken] = record.AccessToken
	sess.Values[keyUsername] = record.Username

	return errors.Wrap(sess.Save(r, w), "failed to save session")
}
