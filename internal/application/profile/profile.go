package profile

import (
	"context"
	"errors"
	"strings"
	"sync"

	"carmarket-backend/internal/domain"
	"carmarket-backend/internal/infrastructure/snapshot"
	"carmarket-backend/internal/pkg/validation"

	"github.com/rs/zerolog/log"
)

var (
	ErrNameRequired = errors.New("name is required")
	ErrInvalidEmail = errors.New("invalid email address")
)

// State is the persisted shape under profile-storage.
type State struct {
	Profile domain.UserProfile `json:"profile"`
}

// DefaultProfile is the card a fresh device starts with.
func DefaultProfile() domain.UserProfile {
	return domain.UserProfile{
		ID:     "currentUser",
		Name:   "Max Mustermann",
		Email:  "max.mustermann@example.com",
		Avatar: "https://images.unsplash.com/photo-1633332755192-727a05c4013d?ixlib=rb-1.2.1&auto=format&fit=crop&w=200&q=80",
		Settings: domain.ProfileSettings{
			PushNotifications: true,
			LocationServices:  true,
		},
		Notifications: domain.ProfileNotifications{Messages: true, ForumReplies: true, NewListings: true},
		Privacy:       domain.ProfilePrivacy{PublicProfile: true, ShowActivity: true},
	}
}

// Update is a partial profile edit; nil fields are left unchanged.
type Update struct {
	Name          *string                      `json:"name"`
	Email         *string                      `json:"email"`
	Avatar        *string                      `json:"avatar"`
	Notifications *domain.ProfileNotifications `json:"notifications"`
	Privacy       *domain.ProfilePrivacy       `json:"privacy"`
}

// Profile is one device's profile.
type Profile struct {
	owner   string
	persist snapshot.Persister

	mu sync.Mutex
	p  domain.UserProfile
}

// Open restores the owner's profile. A failed restore is logged and yields the default.
func Open(ctx context.Context, owner string, p snapshot.Persister) *Profile {
	pr := &Profile{owner: owner, persist: p, p: DefaultProfile()}
	var st State
	ok, err := p.Restore(ctx, snapshot.NamespaceProfile, owner, &st)
	if err != nil {
		log.Error().Err(err).Str("owner", owner).Msg("Failed to restore profile")
		return pr
	}
	if ok {
		pr.p = st.Profile
	}
	return pr
}

func (pr *Profile) save() {
	pr.persist.Submit(snapshot.NamespaceProfile, pr.owner, State{Profile: pr.p})
}

func (pr *Profile) Get() domain.UserProfile {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	return pr.p
}

// Update applies u atomically: nothing changes when any field is invalid.
func (pr *Profile) Update(u Update) (domain.UserProfile, error) {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	next := pr.p
	if u.Name != nil {
		name := strings.TrimSpace(*u.Name)
		if name == "" {
			return pr.p, ErrNameRequired
		}
		next.Name = name
	}
	if u.Email != nil {
		email := strings.TrimSpace(*u.Email)
		if !validation.IsValidEmail(email) {
			return pr.p, ErrInvalidEmail
		}
		next.Email = email
	}
	if u.Avatar != nil {
		next.Avatar = strings.TrimSpace(*u.Avatar)
	}
	if u.Notifications != nil {
		next.Notifications = *u.Notifications
	}
	if u.Privacy != nil {
		next.Privacy = *u.Privacy
	}
	pr.p = next
	pr.save()
	return next, nil
}

// UpdateSettings replaces the app settings.
func (pr *Profile) UpdateSettings(s domain.ProfileSettings) domain.UserProfile {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	pr.p.Settings = s
	pr.save()
	return pr.p
}
