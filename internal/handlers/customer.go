package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"crm-backend/internal/database"
	"crm-backend/internal/models"
	"crm-backend/internal/query"

	"github.com/gin-gonic/gin"
)

func customerJSON(cust *models.Customer) gin.H {
	return gin.H{
		"id":         cust.ID,
		"name":       cust.Name,
		"phone":      cust.Phone,
		"email":      cust.Email,
		"company":    cust.Company,
		"position":   cust.Position,
		"source":     cust.Source,
		"notes":      cust.Notes,
		"created_by": cust.CreatedBy,
		"created_at": cust.CreatedAt.Format(models.TimeLayout),
		"updated_at": cust.UpdatedAt.Format(models.TimeLayout),
	}
}

// ListCustomers — фильтры складываются по И: подстрока имени и телефона,
// точное совпадение источника.
func ListCustomers(c *gin.Context) {
	p := query.Parse(c)

	q := database.DB.Model(&models.Customer{})
	if name := c.Query("name"); name != "" {
		q = q.Where("name LIKE ?", "%"+name+"%")
	}
	if phone := c.Query("phone"); phone != "" {
		q = q.Where("phone LIKE ?", "%"+phone+"%")
	}
	if source := c.Query("source"); source != "" {
		q = q.Where("source = ?", source)
	}

	var customers []models.Customer
	total, err := query.Paginate(q, p, "created_at DESC, id DESC", &customers)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "server error: "+err.Error())
		return
	}

	items := make([]gin.H, 0, len(customers))
	for i := range customers {
		items = append(items, customerJSON(&customers[i]))
	}

	respondPage(c, items, total, p)
}

type customerInput struct {
	Name     string  `json:"name"`
	Phone    string  `json:"phone"`
	Email    *string `json:"email"`
	Company  *string `json:"company"`
	Position *string `json:"position"`
	Source   *string `json:"source"`
	Notes    *string `json:"notes"`
}

func CreateCustomer(c *gin.Context) {
	var in customerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" || in.Phone == "" {
		respondError(c, http.StatusBadRequest, "name and phone are required")
		return
	}

	uid := currentUserID(c)
	cust := models.Customer{
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		Company:   in.Company,
		Position:  in.Position,
		Source:    in.Source,
		Notes:     in.Notes,
		CreatedBy: &uid,
	}

	if err := database.DB.Create(&cust).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "server error: "+err.Error())
		return
	}

	respondData(c, "added", gin.H{"id": cust.ID})
}

// customerByID достаёт клиента по :id; неверный или отсутствующий id
// отрабатывается здесь, до любых мутаций.
func customerByID(c *gin.Context) (*models.Customer, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid customer id")
		return nil, false
	}

	var cust models.Customer
	if err := database.DB.First(&cust, id).Error; err != nil {
		respondStoreError(c, err, "customer not found")
		return nil, false
	}

	return &cust, true
}

func GetCustomer(c *gin.Context) {
	cust, ok := customerByID(c)
	if !ok {
		return
	}
	respondData(c, "", customerJSON(cust))
}

// UpdateCustomer — частичное обновление: поля, которых нет в теле,
// не трогаем. Пустая строка — легальное значение, она перезаписывает.
func UpdateCustomer(c *gin.Context) {
	cust, ok := customerByID(c)
	if !ok {
		return
	}

	var data map[string]interface{}
	if err := c.ShouldBindJSON(&data); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	// name и phone обязательные, null или не-строка для них — ошибка клиента
	if v, ok := data["name"]; ok {
		s, ok := v.(string)
		if !ok {
			respondError(c, http.StatusBadRequest, "name must be a string")
			return
		}
		cust.Name = s
	}
	if v, ok := data["phone"]; ok {
		s, ok := v.(string)
		if !ok {
			respondError(c, http.StatusBadRequest, "phone must be a string")
			return
		}
		cust.Phone = s
	}
	if v, ok := data["email"]; ok {
		cust.Email = optString(v)
	}
	if v, ok := data["company"]; ok {
		cust.Company = optString(v)
	}
	if v, ok := data["position"]; ok {
		cust.Position = optString(v)
	}
	if v, ok := data["source"]; ok {
		cust.Source = optString(v)
	}
	if v, ok := data["notes"]; ok {
		cust.Notes = optString(v)
	}

	if err := database.DB.Save(cust).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "server error: "+err.Error())
		return
	}

	respondMessage(c, "updated")
}

// DeleteCustomer удаляет клиента; его followups снимает каскад внешнего ключа.
func DeleteCustomer(c *gin.Context) {
	cust, ok := customerByID(c)
	if !ok {
		return
	}

	if err := database.DB.Delete(cust).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "server error: "+err.Error())
		return
	}

	respondMessage(c, "deleted")
}

// optString: null в JSON превращается в NULL в БД, строка — в значение.
func optString(v interface{}) *string {
	if s, ok := v.(string); ok {
		return &s
	}
	return nil
}
