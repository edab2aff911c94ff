package auth

import "github.com/gin-gonic/gin"

// Principal is the authenticated identity attached to a request after the
// session middleware succeeds. It lives for one request only.
type Principal struct {
	StaffID string
	Email   string
	Role    string
}

const principalKey = "authPrincipal"

// SetPrincipal stores the resolved principal in the request context.
func SetPrincipal(c *gin.Context, p Principal) {
	c.Set(principalKey, p)
}

// GetPrincipal returns the request's principal, or false when the request is
// unauthenticated.
func GetPrincipal(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}
