package flash

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"
)

var ErrInvalid = errors.New("invalid flash cookie")

type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindError   Kind = "error"
)

type Flash struct {
	Kind    Kind   `json:"k"`
	Message string `json:"m"`
}

const (
	CookieName = "flash"
	maxAge     = 2 * time.Minute
)

type Codec struct {
	secret []byte
	secure bool
}

func NewCodec(secret string, secure bool) *Codec {
	return &Codec{secret: []byte(secret), secure: secure}
}

// Encode produces base64(json).base64(hmac).
func (c *Codec) Encode(f Flash) (string, error) {
	b, err := json.Marshal(f)
	if err != nil {
		return "", err
	}
	payload := base64.RawURLEncoding.EncodeToString(b)
	return payload + "." + c.sign(payload), nil
}

func (c *Codec) Decode(v string) (*Flash, error) {
	payload, sig, ok := strings.Cut(v, ".")
	if !ok || !hmac.Equal([]byte(c.sign(payload)), []byte(sig)) {
		return nil, ErrInvalid
	}
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrInvalid
	}
	var f Flash
	if err := json.Unmarshal(raw, &f); err != nil || strings.TrimSpace(f.Message) == "" {
		return nil, ErrInvalid
	}
	return &f, nil
}

func (c *Codec) sign(payload string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// Set stores a flash to be shown on the next page load.
func (c *Codec) Set(w http.ResponseWriter, kind Kind, msg string) {
	val, err := c.Encode(Flash{Kind: kind, Message: msg})
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    val,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Redirect sets a flash and answers 303 See Other.
func (c *Codec) Redirect(w http.ResponseWriter, r *http.Request, location string, kind Kind, msg string) {
	c.Set(w, kind, msg)
	http.Redirect(w, r, location, http.StatusSeeOther)
}

type ctxKey struct{}

// Middleware reads the flash cookie into the request context and clears it,
// so each flash renders once. Invalid cookies are cleared too.
func (c *Codec) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ck, err := r.Cookie(CookieName); err == nil && ck.Value != "" {
			if f, err := c.Decode(ck.Value); err == nil {
				r = r.WithContext(context.WithValue(r.Context(), ctxKey{}, f))
			}
			http.SetCookie(w, &http.Cookie{
				Name:     CookieName,
				Value:    "",
				Path:     "/",
				MaxAge:   -1,
				HttpOnly: true,
				Secure:   c.secure,
				SameSite: http.SameSiteLaxMode,
			})
		}
		next.ServeHTTP(w, r)
	})
}

func FromContext(ctx context.Context) *Flash {
	f, _ := ctx.Value(ctxKey{}).(*Flash)
	return f
}
