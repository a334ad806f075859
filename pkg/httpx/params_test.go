package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/product_wizard/pkg/httpx"
)

func ctxWithQuery(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/cache/expiring?"+rawQuery, http.NoBody)
	return c
}

func TestParsePage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    string
		def, max int
		want     httpx.Page
	}{
		{"defaults", "", 50, 500, httpx.Page{Limit: 50}},
		{"default above max", "", 900, 500, httpx.Page{Limit: 500}},
		{"zero default", "", 0, 500, httpx.Page{Limit: 1}},
		{"both", "limit=25&offset=10", 50, 500, httpx.Page{Limit: 25, Offset: 10}},
		{"limit clamped low", "limit=-5", 50, 500, httpx.Page{Limit: 1}},
		{"limit clamped high", "limit=9999", 50, 500, httpx.Page{Limit: 500}},
		{"garbage limit", "limit=all", 50, 500, httpx.Page{Limit: 50}},
		{"negative offset", "offset=-3", 50, 500, httpx.Page{Limit: 50}},
		{"garbage offset", "offset=next", 50, 500, httpx.Page{Limit: 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, httpx.ParsePage(ctxWithQuery(tt.query), tt.def, tt.max))
		})
	}
}

func TestParseTime(t *testing.T) {
	t.Parallel()
	def := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	got, err := httpx.ParseTime(ctxWithQuery(""), "before", def)
	require.NoError(t, err)
	assert.Equal(t, def, got)

	got, err = httpx.ParseTime(ctxWithQuery("before=2026-10-19T15:00:00%2B03:00"), "before", def)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC), got)

	_, err = httpx.ParseTime(ctxWithQuery("before=yesterday"), "before", def)
	assert.ErrorContains(t, err, "before must be RFC3339")
}
