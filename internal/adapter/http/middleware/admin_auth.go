package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"gwansang/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "관리자 인증이 필요합니다.", http.StatusUnauthorized)

// AdminAuth requires "Authorization: Bearer <token>". An empty token leaves
// the routes open, which is how local development runs.
func AdminAuth(token string) gin.HandlerFunc {
	if token == "" {
		log.Warn("[http][middleware] ADMIN_API_TOKEN not set, admin routes are unauthenticated")
		return func(c *gin.Context) { c.Next() }
	}
	want := []byte(token)

	return func(c *gin.Context) {
		got, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok || subtle.ConstantTimeCompare([]byte(got), want) != 1 {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
