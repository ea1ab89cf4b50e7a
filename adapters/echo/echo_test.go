package hxecho

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/pthm/hxattr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method string, htmx bool) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, "/", nil)
	if htmx {
		req.Header.Set(hxattr.HeaderRequest, "true")
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("stores codec and adds Vary", func(t *testing.T) {
		t.Parallel()

		c, rec := newContext(http.MethodGet, true)
		h := Middleware(WithKey([]byte("test-key")))(func(c echo.Context) error {
			assert.NotNil(t, Codec(c))
			return c.NoContent(http.StatusOK)
		})

		require.NoError(t, h(c))
		assert.Equal(t, hxattr.HeaderRequest, rec.Header().Get(echo.HeaderVary))
	})

	t.Run("WithoutVary skips the header", func(t *testing.T) {
		t.Parallel()

		c, rec := newContext(http.MethodGet, false)
		h := Middleware(WithoutVary())(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})

		require.NoError(t, h(c))
		assert.Empty(t, rec.Header().Get(echo.HeaderVary))
	})

	t.Run("Codec without middleware is nil", func(t *testing.T) {
		t.Parallel()

		c, _ := newContext(http.MethodGet, false)
		assert.Nil(t, Codec(c))
	})
}

func TestIsHTMX(t *testing.T) {
	t.Parallel()

	c, _ := newContext(http.MethodGet, true)
	assert.True(t, IsHTMX(c))

	c, _ = newContext(http.MethodGet, false)
	assert.False(t, IsHTMX(c))
}

func TestRender(t *testing.T) {
	t.Parallel()

	c, rec := newContext(http.MethodPost, true)
	component := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<li>done</li>`)
		return err
	})
	resp := hxattr.Response{}.
		Trigger(hxattr.Simple("todos:changed")).
		Reswap(hxattr.SwapBeforeEnd)

	require.NoError(t, Render(c, http.StatusCreated, component, resp))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "<li>done</li>", rec.Body.String())
	assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "todos:changed", rec.Header().Get(hxattr.HeaderTrigger))
	assert.Equal(t, "beforeend", rec.Header().Get(hxattr.HeaderReswap))
}

func TestRenderEncodingError(t *testing.T) {
	t.Parallel()

	c, rec := newContext(http.MethodPost, true)
	resp := hxattr.Response{}.Trigger(hxattr.Detailed("bad", make(chan int)))

	err := Render(c, http.StatusOK, templ.NopComponent, resp)

	require.Error(t, err)
	assert.Empty(t, rec.Header().Get(hxattr.HeaderTrigger))
}

func TestNoContent(t *testing.T) {
	t.Parallel()

	c, rec := newContext(http.MethodDelete, true)
	resp := hxattr.Response{}.Redirect("/login")

	require.NoError(t, NoContent(c, resp))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(hxattr.HeaderRedirect))
}
