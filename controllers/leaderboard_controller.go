package controllers

import (
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mojalektira/backend/models"
)

type LeaderboardEntry struct {
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	ClassName string    `json:"class_name"`
	AgeGroup  string    `json:"age_group"`
	Score     int       `json:"score"`
}

// PeriodStart računa početak prozora: sedmica počinje zadnjim ponedjeljkom
// u 00:00 lokalno, mjesec prvim u mjesecu, godina prvim januarom.
func PeriodStart(period string, now time.Time) time.Time {
	switch period {
	case "month":
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case "year":
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	default: // week
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7 // nedjelja
		}
		monday := now.AddDate(0, 0, -(weekday - 1))
		return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, now.Location())
	}
}

// AggregateScores sabira rezultate po korisniku i vraća korisnike opadajuće
// po zbiru. Redoslijed pri istom zbiru lomi se po ID-u radi stabilnosti.
func AggregateScores(results []models.QuizResult) []LeaderboardEntry {
	totals := make(map[uuid.UUID]int)
	for _, r := range results {
		totals[r.UserID] += r.Score
	}

	entries := make([]LeaderboardEntry, 0, len(totals))
	for userID, total := range totals {
		entries = append(entries, LeaderboardEntry{UserID: userID, Score: total})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].UserID.String() < entries[j].UserID.String()
	})
	return entries
}

// GetLeaderboard: učita rezultate prozora, sabere po korisniku, uzme top N,
// pa tek onda primijeni filter uzrasne grupe. Filter poslije reza može
// vratiti manje od N redova - to je objavljeno ponašanje rang liste i
// mijenjanje redoslijeda bi mijenjalo postojeće plasmane.
func GetLeaderboard(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	period := c.DefaultQuery("period", "week")
	ageGroup := c.Query("ageGroup")
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}

	since := PeriodStart(period, time.Now())

	var results []models.QuizResult
	if err := db.Where("completed_at >= ?", since).Find(&results).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri učitavanju rang liste"})
		return
	}

	entries := AggregateScores(results)
	if len(entries) > limit {
		entries = entries[:limit]
	}

	// Dopuni profile preživjelih korisnika.
	ids := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.UserID)
	}
	var users []models.User
	if len(ids) > 0 {
		if err := db.Where("id IN ?", ids).Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri učitavanju korisnika"})
			return
		}
	}
	byID := make(map[uuid.UUID]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	out := make([]LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		u, ok := byID[e.UserID]
		if !ok {
			continue
		}
		e.Username = u.Username
		e.FullName = u.FullName
		e.ClassName = u.ClassName
		e.AgeGroup = u.AgeGroup
		if ageGroup != "" && u.AgeGroup != ageGroup {
			continue
		}
		out = append(out, e)
	}

	c.JSON(http.StatusOK, gin.H{
		"period":      period,
		"since":       since,
		"leaderboard": out,
	})
}
