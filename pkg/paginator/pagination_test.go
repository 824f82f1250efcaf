package paginator

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func ctxWithQuery(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return c
}

func TestNew(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  Paginate
	}{
		{"defaults", "", Paginate{From: 0, Size: 10, Page: 1}},
		{"second page", "page=2&page_size=5", Paginate{From: 5, Size: 5, Page: 2}},
		{"capped size", "page_size=500", Paginate{From: 0, Size: 100, Page: 1}},
		{"zero size falls back", "page_size=0", Paginate{From: 0, Size: 10, Page: 1}},
		{"negative page falls back", "page=-3", Paginate{From: 0, Size: 10, Page: 1}},
		{"malformed values fall back", "page=abc&page_size=xyz", Paginate{From: 0, Size: 10, Page: 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := New(ctxWithQuery(tc.query), 10, 100)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNew_NoMaxSize(t *testing.T) {
	got := New(ctxWithQuery("page_size=500"), 10, 0)
	assert.Equal(t, 500, got.Size)
}
