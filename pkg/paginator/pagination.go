package paginator

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

type Paginate struct {
	From, Size, Page int
}

// New reads page/page_size from the query string. Zero or malformed
// values fall back to defaultSize, and maxSize caps how much one page may
// return.
func New(c *gin.Context, defaultSize, maxSize int) Paginate {
	sizeStr := c.DefaultQuery("page_size", strconv.Itoa(defaultSize))
	pageStr := c.DefaultQuery("page", "1")

	size, _ := strconv.Atoi(sizeStr)
	page, _ := strconv.Atoi(pageStr)

	if size <= 0 {
		size = defaultSize
	}
	if maxSize > 0 && size > maxSize {
		size = maxSize
	}
	if page <= 0 {
		page = 1
	}

	from := (page - 1) * size

	return Paginate{
		From: from,
		Size: size,
		Page: page,
	}
}
