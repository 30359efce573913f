package middleware

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"

	"backoffice/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	CSRFCookie = "csrf_token"
	CSRFField  = "csrf_token"
	CSRFHeader = "X-CSRF-Token"
)

type csrfKey struct{}

// CSRF implements a signed double-submit token. The cookie holds
// nonce.hmac(nonce); unsafe requests must echo the same value in the form
// field or header.
type CSRF struct {
	secret []byte
	secure bool
	deny   DenyFunc
}

func NewCSRF(secret string, secure bool, deny DenyFunc) *CSRF {
	return &CSRF{secret: []byte(secret), secure: secure, deny: deny}
}

func (c *CSRF) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ""
		if ck, err := r.Cookie(CSRFCookie); err == nil && c.valid(ck.Value) {
			token = ck.Value
		}

		if !isSafeMethod(r.Method) {
			sent := r.Header.Get(CSRFHeader)
			if sent == "" {
				sent = r.PostFormValue(CSRFField)
			}
			if token == "" || !hmac.Equal([]byte(sent), []byte(token)) {
				logger.FromCtx(r.Context()).Warn("csrf check failed", zap.String("path", r.URL.Path))
				c.deny(w, r)
				return
			}
		}

		if token == "" {
			token = c.issue()
			http.SetCookie(w, &http.Cookie{
				Name:     CSRFCookie,
				Value:    token,
				Path:     "/",
				HttpOnly: true,
				Secure:   c.secure,
				SameSite: http.SameSiteLaxMode,
			})
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), csrfKey{}, token)))
	})
}

func (c *CSRF) issue() string {
	nonce := uuid.NewString()
	return nonce + "." + c.sign(nonce)
}

func (c *CSRF) valid(token string) bool {
	nonce, sig, ok := strings.Cut(token, ".")
	return ok && nonce != "" && hmac.Equal([]byte(c.sign(nonce)), []byte(sig))
}

func (c *CSRF) sign(nonce string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(nonce))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// CSRFToken returns the token to embed in forms rendered for this request.
func CSRFToken(ctx context.Context) string {
	t, _ := ctx.Value(csrfKey{}).(string)
	return t
}

func isSafeMethod(m string) bool {
	return m == http.MethodGet || m == http.MethodHead || m == http.MethodOptions
}
