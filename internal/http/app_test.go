package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	html "github.com/gofiber/template/html/v2"

	"pygextintores/internal/auth"
	"pygextintores/internal/cart"
	"pygextintores/internal/catalog"
	"pygextintores/internal/config"
	"pygextintores/internal/http/handlers"
	"pygextintores/internal/kv"
	"pygextintores/internal/money"
)

type testApp struct {
	app      *fiber.App
	products *catalog.Store
	carts    *cart.Manager
	auth     *auth.Service
}

// newTestApp wires the full route table over an in-memory slot store, with
// the same csrf setup the server uses. Rate limiting is left off; the
// throttle test adds its own limiter.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	store := kv.NewMemory()
	t.Cleanup(func() { _ = store.Close() })

	products := catalog.NewStore(store, nil)
	carts := cart.NewManager(store)
	authSvc, err := auth.NewService(store, "admin@pygextintores.cl", "Admin123!")
	if err != nil {
		t.Fatalf("auth service: %v", err)
	}

	engine := html.New("../../web/templates", ".html")
	engine.AddFunc("clp", money.CLP)
	engine.AddFunc("clpf", money.CLPRound)

	app := fiber.New(fiber.Config{Views: engine})
	app.Use(csrf.New(csrf.Config{KeyLookup: "form:csrf", CookieName: "csrf_", CookieSameSite: "Lax"}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	deps := handlers.NewDeps(products, carts, authSvc, config.Config{})

	app.Get("/", deps.StorefrontHandler.Home)
	app.Get("/productos", deps.StorefrontHandler.List)
	app.Get("/producto/:slug", deps.StorefrontHandler.Detail)

	app.Get("/carrito", deps.CartHandler.View)
	app.Post("/carrito", deps.CartHandler.Add)
	app.Post("/carrito/actualizar", deps.CartHandler.Update)
	app.Post("/carrito/eliminar", deps.CartHandler.Remove)
	app.Post("/carrito/abrir", deps.CartHandler.OpenDrawer)
	app.Post("/carrito/cerrar", deps.CartHandler.CloseDrawer)

	app.Get("/checkout", deps.CheckoutHandler.Form)
	app.Post("/checkout", deps.CheckoutHandler.Place)

	app.Get("/login", deps.AuthHandler.LoginForm)
	app.Post("/login", deps.AuthHandler.Login)
	app.Post("/logout", deps.AuthHandler.Logout)

	admin := app.Group("/admin", handlers.RequireAdmin(authSvc))
	admin.Get("/", deps.AdminHandler.Page)
	admin.Post("/products", deps.AdminHandler.Save)
	admin.Post("/products/:id/delete", deps.AdminHandler.Delete)

	return &testApp{app: app, products: products, carts: carts, auth: authSvc}
}

func cookieValue(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

// fetchCSRF grabs a csrf cookie from the login page.
func (ta *testApp) fetchCSRF(t *testing.T) string {
	t.Helper()
	resp, err := ta.app.Test(httptest.NewRequest("GET", "/login", nil))
	if err != nil {
		t.Fatalf("GET /login: %v", err)
	}
	tok := cookieValue(resp, "csrf_")
	if tok == "" {
		t.Fatal("csrf cookie missing")
	}
	return tok
}

// postForm submits a form with the csrf token and optional extra cookies,
// returning the response.
func (ta *testApp) postForm(t *testing.T, path, csrfTok string, form url.Values, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	form.Set("csrf", csrfTok)
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: csrfTok})
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	resp, err := ta.app.Test(req)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	return resp
}

// loginAs signs in and returns the session cookie.
func (ta *testApp) loginAs(t *testing.T, email, password string) *http.Cookie {
	t.Helper()
	csrfTok := ta.fetchCSRF(t)
	resp := ta.postForm(t, "/login", csrfTok, url.Values{"email": {email}, "password": {password}})
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("login as %s: status %d", email, resp.StatusCode)
	}
	sid := cookieValue(resp, "sid")
	if sid == "" {
		t.Fatal("sid cookie missing after login")
	}
	return &http.Cookie{Name: "sid", Value: sid}
}
