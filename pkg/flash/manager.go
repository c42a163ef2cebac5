package flash

import (
	"net/http"

	"clinic-booking/pkg/jwt"
)

// Manager binds a Store to the request's session cookie.
type Manager struct {
	store      Store
	signer     *jwt.SessionSigner
	cookieName string
	secure     bool
}

func NewManager(store Store, signer *jwt.SessionSigner, cookieName string, secure bool) *Manager {
	return &Manager{
		store:      store,
		signer:     signer,
		cookieName: cookieName,
		secure:     secure,
	}
}

// Add stores msgs for the current session, starting one if the request has
// no valid cookie. Call it once per response: a second call on a cookieless
// request would start a second session. The cookie is re-issued so its expiry
// follows the store TTL.
func (m *Manager) Add(w http.ResponseWriter, r *http.Request, msgs ...Message) error {
	sessionID, ok := m.sessionID(r)
	var token string
	var err error
	if ok {
		token, err = m.signer.Sign(sessionID)
	} else {
		token, sessionID, err = m.signer.NewSession()
	}
	if err != nil {
		return err
	}

	for _, msg := range msgs {
		if err := m.store.Add(r.Context(), sessionID, msg); err != nil {
			return err
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.signer.TTL().Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Pop drains the messages of the current session. A request without a valid
// cookie simply has none.
func (m *Manager) Pop(r *http.Request) ([]Message, error) {
	sessionID, ok := m.sessionID(r)
	if !ok {
		return nil, nil
	}
	return m.store.Pop(r.Context(), sessionID)
}

func (m *Manager) sessionID(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	claims, err := m.signer.Validate(cookie.Value)
	if err != nil {
		return "", false
	}
	return claims.SessionID, true
}
