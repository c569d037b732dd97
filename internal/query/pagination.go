package query

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// Params — параметры страницы из query string. Страницы с единицы.
type Params struct {
	Page  int
	Limit int
}

func Parse(c *gin.Context) Params {
	p := Params{Page: defaultPage, Limit: defaultLimit}

	if v, err := strconv.Atoi(c.Query("page")); err == nil && v >= 1 {
		p.Page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v >= 1 {
		p.Limit = v
	}

	return p
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Paginate считает total по уже отфильтрованному запросу q, затем
// забирает нужную страницу в dest. Страница за пределами данных — это
// не ошибка: dest останется пустым, total при этом корректен.
func Paginate(q *gorm.DB, p Params, order string, dest interface{}) (int64, error) {
	// запрос используется дважды (count + выборка страницы)
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, err
	}

	err := q.Order(order).Offset(p.Offset()).Limit(p.Limit).Find(dest).Error
	if err != nil {
		return 0, err
	}

	return total, nil
}
