package identity

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/session"

	"activitylog/pkg/utils"
)

const (
	sessionKeyEmail = "user_email"
	sessionKeyName  = "user_name"
)

// Identity is the claimed identity for one request. The email is asserted
// by the client and never independently verified.
type Identity struct {
	Email       string `json:"user_email"`
	DisplayName string `json:"user_name"`
}

type Resolver struct {
	store *session.Store
}

func NewResolver(store *session.Store) *Resolver {
	return &Resolver{store: store}
}

// Current resolves the claimed identity for this request. An email already
// in the session wins; otherwise a non-empty fallback (a query or body
// parameter supplied by the caller) is adopted into the session. Returns
// false when no identity is established.
func (r *Resolver) Current(c *fiber.Ctx, fallback string) (Identity, bool) {
	sess, err := r.store.Get(c)
	if err != nil {
		log.Errorf("failed to load session: %v", err)
		return Identity{}, false
	}

	if email, ok := sess.Get(sessionKeyEmail).(string); ok && email != "" {
		name, _ := sess.Get(sessionKeyName).(string)
		if name == "" {
			name = utils.LocalPart(email)
		}
		return Identity{Email: email, DisplayName: name}, true
	}

	if fallback == "" {
		return Identity{}, false
	}

	id, err := establish(sess, fallback)
	if err != nil {
		log.Errorf("failed to adopt claimed email into session: %v", err)
		return Identity{}, false
	}

	return id, true
}

// Establish stores the claimed email in the session, replacing any previous
// identity. The display name is recomputed from the email.
func (r *Resolver) Establish(c *fiber.Ctx, email string) (Identity, error) {
	sess, err := r.store.Get(c)
	if err != nil {
		return Identity{}, fmt.Errorf("failed to load session: %w", err)
	}

	return establish(sess, email)
}

// Contents returns a snapshot of the raw session state.
func (r *Resolver) Contents(c *fiber.Ctx) map[string]any {
	contents := make(map[string]any)

	sess, err := r.store.Get(c)
	if err != nil {
		log.Errorf("failed to load session: %v", err)
		return contents
	}

	for _, key := range sess.Keys() {
		contents[key] = sess.Get(key)
	}

	return contents
}

func establish(sess *session.Session, email string) (Identity, error) {
	name := utils.LocalPart(email)

	sess.Set(sessionKeyEmail, email)
	sess.Set(sessionKeyName, name)
	if err := sess.Save(); err != nil {
		return Identity{}, fmt.Errorf("failed to save session: %w", err)
	}

	return Identity{Email: email, DisplayName: name}, nil
}
