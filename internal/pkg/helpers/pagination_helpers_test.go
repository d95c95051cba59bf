package helpers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func contextWithQuery(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest(http.MethodGet, "/courses?"+rawQuery, nil)
	return ctx
}

func TestParsePaginationParamsDefaults(t *testing.T) {
	page, size := ParsePaginationParams(contextWithQuery(""))

	assert.Equal(t, 1, page)
	assert.Equal(t, 10, size)
}

func TestParsePaginationParamsExplicit(t *testing.T) {
	page, size := ParsePaginationParams(contextWithQuery("page=3&size=25"))

	assert.Equal(t, 3, page)
	assert.Equal(t, 25, size)
}

func TestParsePaginationParamsRejectsGarbage(t *testing.T) {
	page, size := ParsePaginationParams(contextWithQuery("page=abc&size=-4"))

	assert.Equal(t, 1, page)
	assert.Equal(t, 10, size)
}

func TestParsePaginationParamsCapsSize(t *testing.T) {
	_, size := ParsePaginationParams(contextWithQuery("size=5000"))

	assert.Equal(t, 100, size)
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(2, 10, 42)

	assert.Equal(t, 2, info.CurrentPage)
	assert.Equal(t, 5, info.TotalPages)
	assert.Equal(t, 10, info.PageSize)
	assert.Equal(t, int64(42), info.TotalItems)
}

func TestNewPaginationInfoExactFit(t *testing.T) {
	info := NewPaginationInfo(1, 10, 40)

	assert.Equal(t, 4, info.TotalPages)
}
