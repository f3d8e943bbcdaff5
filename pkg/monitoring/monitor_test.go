package monitoring

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsMiddlewareLabelsByRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(MetricsMiddleware())
	router.GET("/api/courses/:id", func(c *gin.Context) { c.Status(200) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/courses/42", nil))
	assert.Equal(t, 200, w.Code)

	// 打点用路由模板而不是具体路径
	got := testutil.ToFloat64(RequestCounter.WithLabelValues("GET", "/api/courses/:id", "200"))
	assert.Equal(t, 1.0, got)

	// 未命中的请求归入 unmatched
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/nope", nil))
	got = testutil.ToFloat64(RequestCounter.WithLabelValues("GET", "unmatched", "404"))
	assert.Equal(t, 1.0, got)
}

func TestObserveUploadUsesKeyPrefix(t *testing.T) {
	ObserveUpload("submissions/abc.pdf")
	ObserveUpload("submissions/def.pdf")
	ObserveUpload("noprefix.bin")

	assert.Equal(t, 2.0, testutil.ToFloat64(UploadCounter.WithLabelValues("submissions")))
	assert.Equal(t, 1.0, testutil.ToFloat64(UploadCounter.WithLabelValues("other")))
}
