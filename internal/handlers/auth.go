package handlers

import (
	"net/http"
	"strings"

	"crm-backend/internal/database"
	"crm-backend/internal/models"
	"crm-backend/internal/password"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func userJSON(u *models.User) gin.H {
	return gin.H{
		"id":       u.ID,
		"username": u.Username,
		"nickname": u.Nickname,
		"role":     u.Role,
	}
}

// currentUserID — id пользователя из сессии; RequireAuth гарантирует,
// что на защищённых маршрутах он там есть.
func currentUserID(c *gin.Context) uint {
	sess := sessions.Default(c)
	uid, _ := sess.Get("user_id").(uint)
	return uid
}

type loginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func Login(c *gin.Context) {
	var in loginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" || in.Password == "" {
		respondError(c, http.StatusBadRequest, "username and password are required")
		return
	}

	var user models.User
	if err := database.DB.Where("username = ?", in.Username).First(&user).Error; err != nil {
		// не раскрываем, логин неверен или пароль
		respondError(c, http.StatusUnauthorized, "invalid username or password")
		return
	}

	if !password.Verify(in.Password, user.Password) {
		respondError(c, http.StatusUnauthorized, "invalid username or password")
		return
	}

	sess := sessions.Default(c)
	sess.Set("user_id", user.ID)
	sess.Set("username", user.Username)
	sess.Set("nickname", user.Nickname)
	sess.Set("role", user.Role)
	_ = sess.Save()

	respondData(c, "login successful", userJSON(&user))
}

func Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	respondMessage(c, "logout successful")
}

func UserInfo(c *gin.Context) {
	var user models.User
	if err := database.DB.First(&user, currentUserID(c)).Error; err != nil {
		respondStoreError(c, err, "user not found")
		return
	}

	respondData(c, "", userJSON(&user))
}

// UpdateUser меняет только то, что пришло в теле запроса; пустой пароль
// означает «не менять».
func UpdateUser(c *gin.Context) {
	var user models.User
	if err := database.DB.First(&user, currentUserID(c)).Error; err != nil {
		respondStoreError(c, err, "user not found")
		return
	}

	var data map[string]interface{}
	if err := c.ShouldBindJSON(&data); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if v, ok := data["nickname"]; ok {
		if s, ok := v.(string); ok {
			user.Nickname = s
		}
	}
	if v, ok := data["password"]; ok {
		if s, ok := v.(string); ok && s != "" {
			hash, err := password.Hash(s)
			if err != nil {
				respondError(c, http.StatusInternalServerError, "server error: "+err.Error())
				return
			}
			user.Password = hash
		}
	}

	if err := database.DB.Save(&user).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "server error: "+err.Error())
		return
	}

	respondMessage(c, "updated")
}
