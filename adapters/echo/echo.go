// Package hxecho provides Echo framework integration for hxattr.
//
// Register the middleware once, then write HTMX response headers from
// handlers:
//
//	e := echo.New()
//	e.Use(hxecho.Middleware(hxecho.WithKey(key)))
//
//	e.POST("/todos", func(c echo.Context) error {
//	    resp := hxattr.Response{}.Trigger(hxattr.Simple("todos:changed"))
//	    return hxecho.Render(c, http.StatusCreated, todoRow(todo), resp)
//	})
package hxecho

import (
	"crypto/rand"
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/pthm/hxattr"
	"github.com/pthm/hxattr/lib/encoding"
)

const codecKey = "hxattr.codec"

// Option configures Middleware.
type Option func(*options)

type options struct {
	key  []byte
	vary bool
}

// WithKey sets the key used for signed hx-vals.
// The key should be at least 32 bytes of cryptographically random data.
// If not provided, a random key is generated (suitable for development only).
func WithKey(key []byte) Option {
	return func(o *options) {
		o.key = key
	}
}

// WithoutVary stops the middleware from adding "Vary: HX-Request".
func WithoutVary() Option {
	return func(o *options) {
		o.vary = false
	}
}

// Middleware stores a codec for signed values on every request and, by
// default, marks responses as varying on HX-Request so caches keep
// partial and full-page responses apart.
func Middleware(opts ...Option) echo.MiddlewareFunc {
	o := &options{vary: true}
	for _, opt := range opts {
		opt(o)
	}

	key := o.key
	if key == nil {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			panic(fmt.Sprintf("hxecho: failed to generate random key: %v", err))
		}
	}

	codec, err := encoding.NewCodec(key)
	if err != nil {
		panic(fmt.Sprintf("hxecho: failed to create codec: %v", err))
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(codecKey, codec)
			if o.vary {
				c.Response().Header().Add(echo.HeaderVary, hxattr.HeaderRequest)
			}
			return next(c)
		}
	}
}

// Codec returns the codec stored by Middleware, or nil.
func Codec(c echo.Context) *encoding.Codec {
	codec, _ := c.Get(codecKey).(*encoding.Codec)
	return codec
}

// IsHTMX returns true if the request originated from HTMX.
func IsHTMX(c echo.Context) bool {
	return hxattr.IsHTMX(c.Request())
}

// Apply writes resp's headers onto the Echo response.
func Apply(c echo.Context, resp hxattr.Response) error {
	return resp.Apply(c.Response())
}

// Render applies resp and writes a templ component with the given status.
//
//	func handler(c echo.Context) error {
//	    return hxecho.Render(c, http.StatusOK, myTemplate(), hxattr.Response{})
//	}
func Render(c echo.Context, status int, component templ.Component, resp hxattr.Response) error {
	if err := Apply(c, resp); err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return component.Render(c.Request().Context(), c.Response())
}

// NoContent applies resp and responds 200 with an empty body.
func NoContent(c echo.Context, resp hxattr.Response) error {
	if err := Apply(c, resp); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}
