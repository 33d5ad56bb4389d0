package domain

type ProfileSettings struct {
	DarkMode          bool `json:"darkMode"`
	PushNotifications bool `json:"pushNotifications"`
	LocationServices  bool `json:"locationServices"`
}

type ProfileNotifications struct {
	Messages     bool `json:"messages"`
	ForumReplies bool `json:"forumReplies"`
	NewListings  bool `json:"newListings"`
}

type ProfilePrivacy struct {
	PublicProfile bool `json:"publicProfile"`
	ShowActivity  bool `json:"showActivity"`
	DataForAds    bool `json:"dataForAds"`
}

// UserProfile is the device's own profile card and app preferences.
type UserProfile struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Email         string               `json:"email"`
	Avatar        string               `json:"avatar"`
	Settings      ProfileSettings      `json:"settings"`
	Notifications ProfileNotifications `json:"notifications"`
	Privacy       ProfilePrivacy       `json:"privacy"`
}
