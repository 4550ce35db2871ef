package handlers

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/gin-gonic/gin"
)

const sessionCookie = "session_token"

// sessionToken returns the visitor's session token, issuing a fresh one in a
// cookie when none is present yet.
func sessionToken(c *gin.Context, maxAge int) string {
	if token, err := c.Cookie(sessionCookie); err == nil && token != "" {
		return token
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	token := hex.EncodeToString(buf)
	c.SetCookie(sessionCookie, token, maxAge, "/", "", false, true)
	return token
}
