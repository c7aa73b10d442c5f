package httpapi

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nestfinder/browse-api/internal/prefstore"
	"github.com/nestfinder/browse-api/internal/userstate"
)

// ProfileCookie identifies the browser profile all /me and /auth state
// hangs off. Issued on first contact.
const ProfileCookie = "nf_profile"

// Profiles hands out per-profile state. Favorites and session managers
// are rebuilt from the scoped store on each request, which keeps their
// memory and the persisted payloads in agreement. Compare lists are
// volatile, so live instances are held here.
type Profiles struct {
	store prefstore.Store

	mu      sync.Mutex
	compare map[string]*userstate.Compare
}

func NewProfiles(store prefstore.Store) *Profiles {
	return &Profiles{store: store, compare: make(map[string]*userstate.Compare)}
}

// Resolve returns the request's profile id, issuing a cookie when the
// browser does not have one yet.
func (p *Profiles) Resolve(w http.ResponseWriter, req *http.Request) string {
	if c, err := req.Cookie(ProfileCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     ProfileCookie,
		Value:    id,
		Path:     "/",
		Expires:  time.Now().AddDate(1, 0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func (p *Profiles) scopedStore(profileID string) prefstore.Store {
	return prefstore.Scoped(p.store, "profile:"+profileID)
}

func (p *Profiles) Favorites(ctx context.Context, profileID string) *userstate.Favorites {
	return userstate.NewFavorites(ctx, p.scopedStore(profileID))
}

func (p *Profiles) Session(ctx context.Context, profileID string) *userstate.Session {
	return userstate.NewSession(ctx, p.scopedStore(profileID))
}

func (p *Profiles) Compare(profileID string) *userstate.Compare {
	p.mu.Lock()
	defer p.mu.Unlock()
	c, ok := p.compare[profileID]
	if !ok {
		c = userstate.NewCompare()
		p.compare[profileID] = c
	}
	return c
}
