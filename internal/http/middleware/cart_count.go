package middleware

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/gin-gonic/gin"
)

const cartCountKey = "cart_count"

type CartCountCfg struct {
	CookieName string
}

// Best-effort parse of the cart cookie payload for the header badge. The
// signature is deliberately not checked here: a wrong badge is harmless and
// the cart page itself always goes through the verifying codec.
type cartCookiePayload struct {
	Items []struct {
		Qty int `json:"qty"`
	} `json:"items"`
}

func CartCount(cfg CartCountCfg) gin.HandlerFunc {
	name := strings.TrimSpace(cfg.CookieName)
	if name == "" {
		name = "tokokita_cart"
	}

	return func(c *gin.Context) {
		n := 0

		if raw, err := c.Cookie(name); err == nil && raw != "" {
			if qty, ok := tryParseCartQty(raw); ok {
				n = qty
			}
		}

		c.Set(cartCountKey, n)
		c.Next()
	}
}

func GetCartCount(c *gin.Context) int {
	v, ok := c.Get(cartCountKey)
	if !ok {
		return 0
	}
	n, _ := v.(int)
	return n
}

// cookie format: base64url(json).base64url(sig)
func tryParseCartQty(raw string) (int, bool) {
	payload := raw
	if i := strings.IndexByte(raw, '.'); i >= 0 {
		payload = raw[:i]
	}
	b, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return 0, false
	}

	var p cartCookiePayload
	if err := json.Unmarshal(b, &p); err != nil {
		return 0, false
	}
	sum := 0
	for _, it := range p.Items {
		if it.Qty > 0 {
			sum += it.Qty
		}
	}
	return sum, true
}
