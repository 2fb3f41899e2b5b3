package models

// Role is a closed set of account roles
type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

// ValidRole reports whether s names a known role
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return true
	}
	return false
}

// Badge is a named achievement awarded at most once per user
type Badge string

const (
	BadgeFirstSteps   Badge = "First Steps"
	BadgeFinisher     Badge = "Finisher"
	BadgeTopReviewer  Badge = "Top Reviewer"
	BadgeXPMaster     Badge = "XP Master"
	BadgeSpeedLearner Badge = "Speed Learner"
)

// XPMasterThreshold is the total XP at which the XP Master badge unlocks
const XPMasterThreshold = 500
