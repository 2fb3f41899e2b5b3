package utils

import (
	"log"

	"skillforge/database"
	"skillforge/models"

	"gorm.io/gorm"
)

// Gamification actions
const (
	ActionCompleteDay           = "COMPLETE_DAY"
	ActionPassQuiz              = "PASS_QUIZ"
	ActionSubmitReview          = "SUBMIT_REVIEW"
	ActionReceivePositiveReview = "RECEIVE_POSITIVE_REVIEW"
	ActionCompleteCourse        = "COMPLETE_COURSE"
)

// XPRewards maps each action to its fixed XP reward
var XPRewards = map[string]int{
	ActionCompleteDay:           10,
	ActionPassQuiz:              5,
	ActionSubmitReview:          3,
	ActionReceivePositiveReview: 2,
	ActionCompleteCourse:        50,
}

// XPResult reports the outcome of a single XP award
type XPResult struct {
	XPAwarded int `json:"xpAwarded"`
	TotalXP   int `json:"totalXP"`
}

// AwardXP adds the action's reward to the user's XP total and re-evaluates
// badge thresholds. Unknown actions award 0 XP. A nil result means the award
// failed; callers treat that as non-fatal and never surface it, so a failed
// award cannot block the action that triggered it.
func AwardXP(userID uint, action string) *XPResult {
	db := database.Database.Db

	xpAmount := XPRewards[action] // 0 for unknown actions

	if err := db.Model(&models.User{}).Where("id = ?", userID).
		UpdateColumn("xp", gorm.Expr("xp + ?", xpAmount)).Error; err != nil {
		log.Printf("Error awarding XP to user %d: %v", userID, err)
		return nil
	}

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		log.Printf("Error awarding XP to user %d: %v", userID, err)
		return nil
	}

	CheckForNewBadges(&user)

	return &XPResult{XPAwarded: xpAmount, TotalXP: user.XP}
}

// CheckForNewBadges evaluates threshold badges and persists any newly earned
// ones. Badge writes are add-if-absent; re-evaluation never removes a badge.
func CheckForNewBadges(user *models.User) []models.Badge {
	var newBadges []models.Badge

	if user.XP >= models.XPMasterThreshold && user.AddBadge(models.BadgeXPMaster) {
		newBadges = append(newBadges, models.BadgeXPMaster)
	}

	if len(newBadges) > 0 {
		if err := database.Database.Db.Model(&models.User{}).Where("id = ?", user.ID).
			UpdateColumn("badges", user.Badges).Error; err != nil {
			log.Printf("Error saving badges for user %d: %v", user.ID, err)
		}
	}

	return newBadges
}

// GrantBadge awards a single badge if the user does not already hold it.
// Returns true when the badge was newly added. Errors are logged only.
func GrantBadge(userID uint, badge models.Badge) bool {
	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		log.Printf("Error granting badge to user %d: %v", userID, err)
		return false
	}

	if !user.AddBadge(badge) {
		return false
	}

	if err := db.Model(&models.User{}).Where("id = ?", user.ID).
		UpdateColumn("badges", user.Badges).Error; err != nil {
		log.Printf("Error granting badge to user %d: %v", userID, err)
		return false
	}

	return true
}
