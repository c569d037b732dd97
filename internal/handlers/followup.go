package handlers

import (
	"net/http"
	"strconv"
	"time"

	"crm-backend/internal/database"
	"crm-backend/internal/models"
	"crm-backend/internal/query"

	"github.com/gin-gonic/gin"
)

func followupJSON(f *models.Followup) gin.H {
	var reminder interface{}
	if f.NextFollowReminder != nil {
		reminder = f.NextFollowReminder.Format(models.TimeLayout)
	}

	return gin.H{
		"id":                   f.ID,
		"customer_id":          f.CustomerID,
		"user_id":              f.UserID,
		"follow_time":          f.FollowTime.Format(models.TimeLayout),
		"follow_method":        f.FollowMethod,
		"content":              f.Content,
		"next_follow_reminder": reminder,
		"created_at":           f.CreatedAt.Format(models.TimeLayout),
	}
}

// ListFollowups — история контактов, свежие сверху (по времени контакта,
// не по времени записи).
func ListFollowups(c *gin.Context) {
	p := query.Parse(c)

	q := database.DB.Model(&models.Followup{})
	if v, err := strconv.Atoi(c.Query("customer_id")); err == nil && v > 0 {
		q = q.Where("customer_id = ?", v)
	}

	var followups []models.Followup
	total, err := query.Paginate(q, p, "follow_time DESC, id DESC", &followups)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "server error: "+err.Error())
		return
	}

	items := make([]gin.H, 0, len(followups))
	for i := range followups {
		items = append(items, followupJSON(&followups[i]))
	}

	respondPage(c, items, total, p)
}

type followupInput struct {
	CustomerID         uint   `json:"customer_id"`
	FollowTime         string `json:"follow_time"`
	FollowMethod       string `json:"follow_method"`
	Content            string `json:"content"`
	NextFollowReminder string `json:"next_follow_reminder"`
}

func CreateFollowup(c *gin.Context) {
	var in followupInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if in.CustomerID == 0 || in.FollowTime == "" || in.FollowMethod == "" || in.Content == "" {
		respondError(c, http.StatusBadRequest, "customer_id, follow_time, follow_method and content are required")
		return
	}

	followTime, err := time.ParseInLocation(models.TimeLayout, in.FollowTime, time.Local)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid follow_time format")
		return
	}

	var reminder *time.Time
	if in.NextFollowReminder != "" {
		t, err := time.ParseInLocation(models.TimeLayout, in.NextFollowReminder, time.Local)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid next_follow_reminder format")
			return
		}
		reminder = &t
	}

	f := models.Followup{
		CustomerID: in.CustomerID,
		// автор всегда из сессии, из тела запроса user_id не принимаем
		UserID:             currentUserID(c),
		FollowTime:         followTime,
		FollowMethod:       in.FollowMethod,
		Content:            in.Content,
		NextFollowReminder: reminder,
	}

	if err := database.DB.Create(&f).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "server error: "+err.Error())
		return
	}

	respondData(c, "added", gin.H{"id": f.ID})
}

func DeleteFollowup(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid followup id")
		return
	}

	var f models.Followup
	if err := database.DB.First(&f, id).Error; err != nil {
		respondStoreError(c, err, "followup not found")
		return
	}

	if err := database.DB.Delete(&f).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "server error: "+err.Error())
		return
	}

	respondMessage(c, "deleted")
}
