package shared

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

func newLimitedRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(rl.RateLimitMiddleware())

	router.POST("/signup", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	router.GET("/heroes/:uuid", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return router
}

func hit(router *gin.Engine, method, path, ip string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, nil)
	req.Header.Set("X-Forwarded-For", ip)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	return rr
}

func TestRateLimitBlocksAfterLimit(t *testing.T) {
	RegisterTestingT(t)

	rl := NewRateLimiter(zap.NewNop(), nil)
	router := newLimitedRouter(rl)

	for i := 0; i < 5; i++ {
		rr := hit(router, "POST", "/signup", "10.0.0.1")
		Expect(rr.Code).To(Equal(http.StatusOK))
	}

	rr := hit(router, "POST", "/signup", "10.0.0.1")

	Expect(rr.Code).To(Equal(http.StatusTooManyRequests))
	Expect(rr.Header().Get("X-RateLimit-Limit")).To(Equal("5"))
	Expect(rr.Header().Get("X-RateLimit-Remaining")).To(Equal("0"))
	Expect(rr.Header().Get("X-RateLimit-Reset")).NotTo(BeEmpty())
}

func TestRateLimitIsPerClient(t *testing.T) {
	RegisterTestingT(t)

	rl := NewRateLimiter(zap.NewNop(), nil)
	router := newLimitedRouter(rl)

	for i := 0; i < 5; i++ {
		hit(router, "POST", "/signup", "10.0.0.1")
	}

	// A different client is unaffected.
	rr := hit(router, "POST", "/signup", "10.0.0.2")

	Expect(rr.Code).To(Equal(http.StatusOK))
}

func TestRateLimitWindowResets(t *testing.T) {
	RegisterTestingT(t)

	rl := NewRateLimiter(zap.NewNop(), nil)
	rl.SetConfig("POST /signup", RateLimitEndpointConfig{
		Requests: 1,
		Window:   50 * time.Millisecond,
		KeyFunc:  GetClientIP,
	})

	router := newLimitedRouter(rl)

	Expect(hit(router, "POST", "/signup", "10.0.0.1").Code).To(Equal(http.StatusOK))
	Expect(hit(router, "POST", "/signup", "10.0.0.1").Code).To(Equal(http.StatusTooManyRequests))

	Eventually(func() int {
		return hit(router, "POST", "/signup", "10.0.0.1").Code
	}, time.Second, 25*time.Millisecond).Should(Equal(http.StatusOK))
}

func TestNormalizePathCollapsesUUIDs(t *testing.T) {
	RegisterTestingT(t)

	rl := NewRateLimiter(zap.NewNop(), nil)

	Expect(rl.normalizePath("/heroes/6f1b0c9e-0000-0000-0000-000000000000")).To(Equal("/heroes/:uuid"))
	Expect(rl.normalizePath("/signup")).To(Equal("/signup"))
}

func TestGetStats(t *testing.T) {
	RegisterTestingT(t)

	rl := NewRateLimiter(zap.NewNop(), nil)
	router := newLimitedRouter(rl)

	hit(router, "POST", "/signup", "10.0.0.1")

	stats := rl.GetStats()

	Expect(stats["active_entries"]).To(Equal(1))
	Expect(stats["configs"]).To(BeNumerically(">", 0))
}
