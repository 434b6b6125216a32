package platform

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// serviceToken mints a short-lived HS256 token carried in the service
// credential header on every sibling-service call.
func (c *Client) serviceToken() (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss": c.cfg.ServiceName,
		"iat": now.Unix(),
		"exp": now.Add(time.Minute).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(c.cfg.ServiceSecret))
}
