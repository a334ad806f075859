package httpx

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Page — окно выборки для админских списков.
type Page struct {
	Limit  int
	Offset int
}

// ParsePage — limit/offset из query. Нечисловой limit даёт defaultLimit,
// числовой зажимается в [1, maxLimit]; отрицательный или битый offset даёт 0.
func ParsePage(c *gin.Context, defaultLimit, maxLimit int) Page {
	p := Page{Limit: max(1, min(defaultLimit, maxLimit))}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		p.Limit = max(1, min(v, maxLimit))
	}
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v >= 0 {
		p.Offset = v
	}
	return p
}

// ParseTime — момент времени из query[name] в RFC3339 (в UTC).
// Пустой параметр даёт def.
func ParseTime(c *gin.Context, name string, def time.Time) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be RFC3339: %w", name, err)
	}
	return t.UTC(), nil
}
