// Package cartcookie serializes the whole cart into an HMAC-signed,
// client-held cookie. The server keeps no copy: every request reads the
// cookie, mutates the cart in memory and writes it back (last write wins).
package cartcookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tokokita.shop/app/internal/cart"
)

var ErrInvalid = errors.New("invalid cart cookie")

type Codec struct {
	Secret     []byte
	CookieName string
	Secure     bool
}

func New(secret []byte, name string, secure bool) *Codec {
	return &Codec{Secret: secret, CookieName: name, Secure: secure}
}

// value format: base64(json).base64(hmac(payload))
func (c *Codec) Encode(ct *cart.Cart) (string, error) {
	b, err := json.Marshal(ct)
	if err != nil {
		return "", err
	}
	payload := base64.RawURLEncoding.EncodeToString(b)
	return payload + "." + sign(c.Secret, payload), nil
}

func (c *Codec) Decode(v string) (*cart.Cart, error) {
	parts := strings.Split(v, ".")
	if len(parts) != 2 || parts[0] == "" {
		return nil, ErrInvalid
	}
	if !verify(c.Secret, parts[0], parts[1]) {
		return nil, ErrInvalid
	}
	raw, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, ErrInvalid
	}
	ct := cart.New()
	if err := json.Unmarshal(raw, ct); err != nil {
		return nil, ErrInvalid
	}
	ct.Sanitize()
	return ct, nil
}

// Get reads the cart from the request. A missing, tampered or malformed
// cookie yields a fresh empty cart; corruption never surfaces to the user.
func (c *Codec) Get(ctx *gin.Context) *cart.Cart {
	v, err := ctx.Cookie(c.CookieName)
	if err != nil || v == "" {
		return cart.New()
	}
	ct, err := c.Decode(v)
	if err != nil {
		c.Clear(ctx)
		return cart.New()
	}
	return ct
}

// Set writes the full cart back. An empty cart clears the cookie instead.
func (c *Codec) Set(ctx *gin.Context, ct *cart.Cart) {
	if ct == nil || len(ct.Items) == 0 {
		c.Clear(ctx)
		return
	}
	val, err := c.Encode(ct)
	if err != nil {
		return
	}
	maxAge := int((30 * 24 * time.Hour).Seconds())
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.CookieName, val, maxAge, "/", "", c.Secure, true)
}

func (c *Codec) Clear(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.CookieName, "", -1, "/", "", c.Secure, true)
}

func sign(secret []byte, payload string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func verify(secret []byte, payload, sig string) bool {
	return hmac.Equal([]byte(sign(secret, payload)), []byte(sig))
}
