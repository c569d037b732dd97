package handlers

import (
	"errors"
	"net/http"

	"crm-backend/internal/query"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Все ответы API заворачиваются в единый конверт {code, message?, data?}.

func respondData(c *gin.Context, msg string, data interface{}) {
	body := gin.H{"code": http.StatusOK}
	if msg != "" {
		body["message"] = msg
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(http.StatusOK, body)
}

func respondMessage(c *gin.Context, msg string) {
	respondData(c, msg, nil)
}

// respondPage — конверт для списков, с total до пагинации.
func respondPage(c *gin.Context, items interface{}, total int64, p query.Params) {
	c.JSON(http.StatusOK, gin.H{
		"code":  http.StatusOK,
		"data":  items,
		"total": total,
		"page":  p.Page,
		"limit": p.Limit,
	})
}

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{
		"code":    status,
		"message": msg,
	})
}

// respondStoreError — граница для ошибок БД: потерянная запись это 404,
// всё остальное — 500 с текстом ошибки.
func respondStoreError(c *gin.Context, err error, notFoundMsg string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusNotFound, notFoundMsg)
		return
	}
	respondError(c, http.StatusInternalServerError, "server error: "+err.Error())
}
