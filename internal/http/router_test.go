package http

import (
	"encoding/json"
	"io"
	"log/slog"
	nethttp "net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokokita.shop/app/internal/cart"
	"tokokita.shop/app/internal/catalog"
	"tokokita.shop/app/internal/config"
	"tokokita.shop/app/internal/http/cartcookie"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	// Templates load relative to the module root.
	if err := os.Chdir("../.."); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// upstream is a stub catalog API. It counts single-product fetches so tests
// can assert when the handlers skip the upstream.
type upstream struct {
	srv        *httptest.Server
	products   []catalog.Product
	categories []string
	getCalls   atomic.Int32
}

func newUpstream(t *testing.T, products []catalog.Product, categories []string) *upstream {
	t.Helper()
	u := &upstream{products: products, categories: categories}
	u.srv = httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		switch r.URL.Path {
		case "/":
			json.NewEncoder(w).Encode(u.products)
		case "/categories":
			json.NewEncoder(w).Encode(u.categories)
		default:
			u.getCalls.Add(1)
			id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/"))
			if err != nil {
				w.WriteHeader(nethttp.StatusNotFound)
				return
			}
			for _, p := range u.products {
				if p.ID == id {
					json.NewEncoder(w).Encode(p)
					return
				}
			}
			w.WriteHeader(nethttp.StatusNotFound)
		}
	}))
	t.Cleanup(u.srv.Close)
	return u
}

func fixtureProducts() []catalog.Product {
	return []catalog.Product{
		{ID: 1, Title: "Fjallraven Backpack", Price: 109.95, Category: "men's clothing", Image: "http://img/1.jpg", Description: "A backpack."},
		{ID: 2, Title: "Mens Casual T-Shirt", Price: 22.30, Category: "men's clothing", Image: "http://img/2.jpg"},
		{ID: 3, Title: "Mens Cotton Jacket", Price: 55.99, Category: "men's clothing", Image: "http://img/3.jpg"},
		{ID: 4, Title: "Mens Slim Fit", Price: 15.99, Category: "men's clothing", Image: "http://img/4.jpg"},
		{ID: 5, Title: "Gold Bracelet", Price: 695.00, Category: "jewelery", Image: "http://img/5.jpg"},
		{ID: 6, Title: "Gold Ring", Price: 168.00, Category: "jewelery", Image: "http://img/6.jpg"},
	}
}

func fixtureCategories() []string {
	return []string{"men's clothing", "jewelery"}
}

func newTestRouter(t *testing.T, u *upstream) *gin.Engine {
	t.Helper()
	cfg := &config.Config{
		Env:             "test",
		CookieSecret:    testSecret,
		CartCookieName:  "tokokita_cart",
		FlashCookieName: "tokokita_flash",
		UpstreamTimeout: time.Second,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := catalog.NewClient(u.srv.URL, cfg.UpstreamTimeout)
	return NewRouter(logger, cfg, client)
}

func doRequest(r *gin.Engine, method, target string, form url.Values, cookies []*nethttp.Cookie) *httptest.ResponseRecorder {
	var req *nethttp.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func cartCookieFrom(t *testing.T, w *httptest.ResponseRecorder) *nethttp.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == "tokokita_cart" {
			return c
		}
	}
	return nil
}

func decodeCart(t *testing.T, c *nethttp.Cookie) *cart.Cart {
	t.Helper()
	require.NotNil(t, c, "expected a cart cookie")
	codec := cartcookie.New([]byte(testSecret), "tokokita_cart", false)
	val, err := url.QueryUnescape(c.Value)
	require.NoError(t, err)
	ct, err := codec.Decode(val)
	require.NoError(t, err)
	return ct
}

func encodeCart(t *testing.T, ct *cart.Cart) *nethttp.Cookie {
	t.Helper()
	codec := cartcookie.New([]byte(testSecret), "tokokita_cart", false)
	v, err := codec.Encode(ct)
	require.NoError(t, err)
	return &nethttp.Cookie{Name: "tokokita_cart", Value: v}
}

func TestHomeGroupsByCategory(t *testing.T) {
	r := newTestRouter(t, newUpstream(t, fixtureProducts(), fixtureCategories()))

	w := doRequest(r, nethttp.MethodGet, "/", nil, nil)
	require.Equal(t, nethttp.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "jewelery")
	assert.Contains(t, body, "Gold Ring")
	assert.Contains(t, body, "Mens Cotton Jacket")
	// Fourth product of the category never makes the top three.
	assert.NotContains(t, body, "Mens Slim Fit")
}

func TestHomeUpstreamDownIs502(t *testing.T) {
	u := newUpstream(t, nil, nil)
	u.srv.Close()
	r := newTestRouter(t, u)

	w := doRequest(r, nethttp.MethodGet, "/", nil, nil)
	assert.Equal(t, nethttp.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "unreachable")
}

func TestCatalogFilters(t *testing.T) {
	r := newTestRouter(t, newUpstream(t, fixtureProducts(), fixtureCategories()))

	w := doRequest(r, nethttp.MethodGet, "/catalog?category=jewelery&q=ring", nil, nil)
	require.Equal(t, nethttp.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "Gold Ring")
	assert.NotContains(t, body, "Gold Bracelet")
	assert.NotContains(t, body, "Fjallraven Backpack")
}

func TestCatalogEmptyResultRendersList(t *testing.T) {
	r := newTestRouter(t, newUpstream(t, fixtureProducts(), fixtureCategories()))

	w := doRequest(r, nethttp.MethodGet, "/catalog?q=zzzz", nil, nil)
	require.Equal(t, nethttp.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No products match")
}

func TestProductDetail(t *testing.T) {
	r := newTestRouter(t, newUpstream(t, fixtureProducts(), fixtureCategories()))

	w := doRequest(r, nethttp.MethodGet, "/product/1", nil, nil)
	require.Equal(t, nethttp.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Fjallraven Backpack")
	assert.Contains(t, w.Body.String(), "A backpack.")
}

func TestProductDetailUnknownIDIs404(t *testing.T) {
	r := newTestRouter(t, newUpstream(t, fixtureProducts(), fixtureCategories()))

	w := doRequest(r, nethttp.MethodGet, "/product/999", nil, nil)
	assert.Equal(t, nethttp.StatusNotFound, w.Code)
}

func TestProductDetailNonIntegerIDIs404(t *testing.T) {
	r := newTestRouter(t, newUpstream(t, fixtureProducts(), fixtureCategories()))

	w := doRequest(r, nethttp.MethodGet, "/product/abc", nil, nil)
	assert.Equal(t, nethttp.StatusNotFound, w.Code)
}

func TestDashboard(t *testing.T) {
	products := []catalog.Product{
		{ID: 1, Title: "cheap", Price: 10.00, Category: "a"},
		{ID: 2, Title: "dear", Price: 20.00, Category: "a"},
		{ID: 3, Title: "mid", Price: 15.00, Category: "b"},
	}
	r := newTestRouter(t, newUpstream(t, products, []string{"a", "b"}))

	w := doRequest(r, nethttp.MethodGet, "/dashboard", nil, nil)
	require.Equal(t, nethttp.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "$15.00") // average
	assert.Contains(t, body, "dear")   // most expensive
	assert.Contains(t, body, "cheap")  // cheapest
}

func TestDashboardEmptyCatalog(t *testing.T) {
	r := newTestRouter(t, newUpstream(t, []catalog.Product{}, nil))

	w := doRequest(r, nethttp.MethodGet, "/dashboard", nil, nil)
	require.Equal(t, nethttp.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "nothing to analyze")
}

func TestAddToCartTwiceAccumulates(t *testing.T) {
	u := newUpstream(t, fixtureProducts(), fixtureCategories())
	r := newTestRouter(t, u)

	w := doRequest(r, nethttp.MethodPost, "/add_to_cart/1", url.Values{}, nil)
	require.Equal(t, nethttp.StatusFound, w.Code)
	first := cartCookieFrom(t, w)

	w = doRequest(r, nethttp.MethodPost, "/add_to_cart/1", url.Values{}, []*nethttp.Cookie{first})
	require.Equal(t, nethttp.StatusFound, w.Code)

	ct := decodeCart(t, cartCookieFrom(t, w))
	require.Len(t, ct.Items, 1)
	assert.Equal(t, 1, ct.Items[0].ID)
	assert.Equal(t, 2, ct.Items[0].Quantity)
	assert.Equal(t, "Fjallraven Backpack", ct.Items[0].Title)

	// Only the first add needed a product fetch.
	assert.Equal(t, int32(1), u.getCalls.Load())
}

func TestAddToCartRedirectsToReferrer(t *testing.T) {
	r := newTestRouter(t, newUpstream(t, fixtureProducts(), fixtureCategories()))

	req := httptest.NewRequest(nethttp.MethodPost, "/add_to_cart/1", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Referer", "/catalog?category=jewelery")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, nethttp.StatusFound, w.Code)
	assert.Equal(t, "/catalog?category=jewelery", w.Header().Get("Location"))
}

func TestAddToCartUnknownProductIs404(t *testing.T) {
	r := newTestRouter(t, newUpstream(t, fixtureProducts(), fixtureCategories()))

	w := doRequest(r, nethttp.MethodPost, "/add_to_cart/999", url.Values{}, nil)
	assert.Equal(t, nethttp.StatusNotFound, w.Code)
}

func TestCartPageShowsLines(t *testing.T) {
	r := newTestRouter(t, newUpstream(t, fixtureProducts(), fixtureCategories()))

	ct := cart.New()
	ct.Add(cart.Item{ID: 6, Title: "Gold Ring", Price: 168.00, Image: "http://img/6.jpg"})
	ct.Increase(6)

	w := doRequest(r, nethttp.MethodGet, "/cart", nil, []*nethttp.Cookie{encodeCart(t, ct)})
	require.Equal(t, nethttp.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "Gold Ring")
	assert.Contains(t, body, "$336.00") // 2 x 168.00
}

func TestCartPageCorruptCookieShowsEmptyCart(t *testing.T) {
	r := newTestRouter(t, newUpstream(t, fixtureProducts(), fixtureCategories()))

	bad := &nethttp.Cookie{Name: "tokokita_cart", Value: "tampered.cookie"}
	w := doRequest(r, nethttp.MethodGet, "/cart", nil, []*nethttp.Cookie{bad})
	require.Equal(t, nethttp.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Your cart is empty")
}

func TestRemoveFromCart(t *testing.T) {
	r := newTestRouter(t, newUpstream(t, fixtureProducts(), fixtureCategories()))

	ct := cart.New()
	ct.Add(cart.Item{ID: 1, Title: "Backpack", Price: 109.95})
	ct.Increase(1)
	ct.Add(cart.Item{ID: 6, Title: "Gold Ring", Price: 168.00})

	w := doRequest(r, nethttp.MethodPost, "/remove_from_cart/1", url.Values{}, []*nethttp.Cookie{encodeCart(t, ct)})
	require.Equal(t, nethttp.StatusFound, w.Code)
	assert.Equal(t, "/cart", w.Header().Get("Location"))

	got := decodeCart(t, cartCookieFrom(t, w))
	require.Len(t, got.Items, 1)
	assert.Equal(t, 6, got.Items[0].ID)
}

func TestDecreaseRemovesQuantityOneLine(t *testing.T) {
	r := newTestRouter(t, newUpstream(t, fixtureProducts(), fixtureCategories()))

	ct := cart.New()
	ct.Add(cart.Item{ID: 1, Title: "Backpack", Price: 109.95})

	w := doRequest(r, nethttp.MethodPost, "/cart/decrease/1", url.Values{}, []*nethttp.Cookie{encodeCart(t, ct)})
	require.Equal(t, nethttp.StatusFound, w.Code)

	// The now-empty cart clears the cookie.
	c := cartCookieFrom(t, w)
	require.NotNil(t, c)
	assert.Empty(t, c.Value)
}

func TestIncreaseUnknownIDKeepsCart(t *testing.T) {
	r := newTestRouter(t, newUpstream(t, fixtureProducts(), fixtureCategories()))

	ct := cart.New()
	ct.Add(cart.Item{ID: 1, Title: "Backpack", Price: 109.95})

	w := doRequest(r, nethttp.MethodPost, "/cart/increase/42", url.Values{}, []*nethttp.Cookie{encodeCart(t, ct)})
	require.Equal(t, nethttp.StatusFound, w.Code)

	got := decodeCart(t, cartCookieFrom(t, w))
	require.Len(t, got.Items, 1)
	assert.Equal(t, 1, got.Items[0].Quantity)
}

func TestCheckoutWithSelection(t *testing.T) {
	r := newTestRouter(t, newUpstream(t, fixtureProducts(), fixtureCategories()))

	ct := cart.New()
	ct.Add(cart.Item{ID: 1, Title: "Backpack", Price: 10.50})
	ct.Increase(1)
	ct.Add(cart.Item{ID: 6, Title: "Gold Ring", Price: 5.00})

	form := url.Values{"selected_items": {"1"}}
	w := doRequest(r, nethttp.MethodPost, "/checkout", form, []*nethttp.Cookie{encodeCart(t, ct)})
	require.Equal(t, nethttp.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "Backpack")
	assert.NotContains(t, body, "Gold Ring")
	assert.Contains(t, body, "$21.00")
}

func TestCheckoutEmptySelectionRedirects(t *testing.T) {
	r := newTestRouter(t, newUpstream(t, fixtureProducts(), fixtureCategories()))

	w := doRequest(r, nethttp.MethodPost, "/checkout", url.Values{}, nil)
	require.Equal(t, nethttp.StatusFound, w.Code)
	assert.Equal(t, "/cart", w.Header().Get("Location"))
}

func TestCheckoutSelectionNotInCartRedirects(t *testing.T) {
	r := newTestRouter(t, newUpstream(t, fixtureProducts(), fixtureCategories()))

	ct := cart.New()
	ct.Add(cart.Item{ID: 1, Title: "Backpack", Price: 10})

	form := url.Values{"selected_items": {"42"}}
	w := doRequest(r, nethttp.MethodPost, "/checkout", form, []*nethttp.Cookie{encodeCart(t, ct)})
	require.Equal(t, nethttp.StatusFound, w.Code)
	assert.Equal(t, "/cart", w.Header().Get("Location"))
}

func TestCheckoutMalformedIDsIs400(t *testing.T) {
	r := newTestRouter(t, newUpstream(t, fixtureProducts(), fixtureCategories()))

	form := url.Values{"selected_items": {"not-a-number"}}
	w := doRequest(r, nethttp.MethodPost, "/checkout", form, nil)
	assert.Equal(t, nethttp.StatusBadRequest, w.Code)
}

func TestCheckoutNonPositiveIDRedirects(t *testing.T) {
	r := newTestRouter(t, newUpstream(t, fixtureProducts(), fixtureCategories()))

	ct := cart.New()
	ct.Add(cart.Item{ID: 1, Title: "Backpack", Price: 10})

	// "0" parses fine; it just selects nothing.
	form := url.Values{"selected_items": {"0"}}
	w := doRequest(r, nethttp.MethodPost, "/checkout", form, []*nethttp.Cookie{encodeCart(t, ct)})
	require.Equal(t, nethttp.StatusFound, w.Code)
	assert.Equal(t, "/cart", w.Header().Get("Location"))
}

func TestPanicRendersErrorPage(t *testing.T) {
	r := newTestRouter(t, newUpstream(t, fixtureProducts(), fixtureCategories()))
	r.GET("/explode", func(c *gin.Context) {
		panic("kaboom")
	})

	w := doRequest(r, nethttp.MethodGet, "/explode", nil, nil)
	require.Equal(t, nethttp.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Something went wrong.")
}

func TestLegacyMutatingGetsDoNotMutate(t *testing.T) {
	u := newUpstream(t, fixtureProducts(), fixtureCategories())
	r := newTestRouter(t, u)

	for _, target := range []string{"/add_to_cart/1", "/remove_from_cart/1", "/cart/increase/1", "/cart/decrease/1"} {
		w := doRequest(r, nethttp.MethodGet, target, nil, nil)
		assert.Equal(t, nethttp.StatusSeeOther, w.Code, target)
		assert.Equal(t, "/cart", w.Header().Get("Location"), target)
		assert.Nil(t, cartCookieFrom(t, w), target)
	}
	assert.Zero(t, u.getCalls.Load())
}

func TestStaticPages(t *testing.T) {
	r := newTestRouter(t, newUpstream(t, nil, nil))

	w := doRequest(r, nethttp.MethodGet, "/faq", nil, nil)
	require.Equal(t, nethttp.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Frequently asked questions")

	w = doRequest(r, nethttp.MethodGet, "/about", nil, nil)
	require.Equal(t, nethttp.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Galang Sopyan")
}

func TestFlashShowsOnceAfterRedirect(t *testing.T) {
	r := newTestRouter(t, newUpstream(t, fixtureProducts(), fixtureCategories()))

	w := doRequest(r, nethttp.MethodPost, "/add_to_cart/1", url.Values{}, nil)
	require.Equal(t, nethttp.StatusFound, w.Code)

	var flashCookie *nethttp.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "tokokita_flash" {
			flashCookie = c
		}
	}
	require.NotNil(t, flashCookie)

	w = doRequest(r, nethttp.MethodGet, "/cart", nil, []*nethttp.Cookie{flashCookie})
	require.Equal(t, nethttp.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Added to cart.")

	// The flash cookie is cleared after the first render.
	for _, c := range w.Result().Cookies() {
		if c.Name == "tokokita_flash" {
			assert.Empty(t, c.Value)
		}
	}
}
