package memory

import "fmt"

// GetUserProfile returns the long-term profile for a user.
//
// Stub: derived deterministically from the user id. A persisted profile
// store can replace this without changing callers.
func GetUserProfile(userID string) UserProfile {
	return UserProfile{
		UserID: userID,
		Summary: fmt.Sprintf(
			"User '%s' is in the UK timezone and prefers concise, practical answers with clear steps.",
			userID,
		),
	}
}
