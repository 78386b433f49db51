package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestCartAddUpdateRemoveOverHTTP(t *testing.T) {
	ta := newTestApp(t)
	csrfTok := ta.fetchCSRF(t)

	first := ta.products.Products()[0]

	// first add creates the session and a one-unit line
	resp := ta.postForm(t, "/carrito", csrfTok, url.Values{"productId": {first.ID}})
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("add: status %d", resp.StatusCode)
	}
	sidVal := cookieValue(resp, "sid")
	if sidVal == "" {
		t.Fatal("add did not establish a session")
	}
	sid := &http.Cookie{Name: "sid", Value: sidVal}

	s := ta.carts.ForSession(sidVal)
	if s.Quantity(first.ID) != 1 {
		t.Fatalf("quantity after add = %d", s.Quantity(first.ID))
	}
	if !s.IsOpen() {
		t.Fatal("add did not open the drawer")
	}

	// repeat add increments the same line
	ta.postForm(t, "/carrito", csrfTok, url.Values{"productId": {first.ID}}, sid)
	if s.Quantity(first.ID) != 2 {
		t.Fatalf("quantity after repeat add = %d", s.Quantity(first.ID))
	}
	if len(s.Items()) != 1 {
		t.Fatalf("repeat add created %d lines", len(s.Items()))
	}

	// update to an explicit quantity
	ta.postForm(t, "/carrito/actualizar", csrfTok, url.Values{"productId": {first.ID}, "qty": {"5"}}, sid)
	if s.Quantity(first.ID) != 5 {
		t.Fatalf("quantity after update = %d", s.Quantity(first.ID))
	}

	// quantity 0 removes the line
	ta.postForm(t, "/carrito/actualizar", csrfTok, url.Values{"productId": {first.ID}, "qty": {"0"}}, sid)
	if s.Count() != 0 {
		t.Fatalf("count after zero update = %d", s.Count())
	}

	// remove on an already-empty cart is a no-op
	resp = ta.postForm(t, "/carrito/eliminar", csrfTok, url.Values{"productId": {first.ID}}, sid)
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("remove: status %d", resp.StatusCode)
	}
}

func TestCartAddRejectsBadInput(t *testing.T) {
	ta := newTestApp(t)
	csrfTok := ta.fetchCSRF(t)

	resp := ta.postForm(t, "/carrito", csrfTok, url.Values{})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing productId: status %d, want 400", resp.StatusCode)
	}

	resp = ta.postForm(t, "/carrito", csrfTok, url.Values{"productId": {"no-existe"}})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown product: status %d, want 404", resp.StatusCode)
	}
}

func TestCartDrawerRoutes(t *testing.T) {
	ta := newTestApp(t)
	csrfTok := ta.fetchCSRF(t)

	resp := ta.postForm(t, "/carrito/abrir", csrfTok, url.Values{})
	sidVal := cookieValue(resp, "sid")
	sid := &http.Cookie{Name: "sid", Value: sidVal}
	if !ta.carts.ForSession(sidVal).IsOpen() {
		t.Fatal("drawer not open after /carrito/abrir")
	}

	ta.postForm(t, "/carrito/cerrar", csrfTok, url.Values{}, sid)
	if ta.carts.ForSession(sidVal).IsOpen() {
		t.Fatal("drawer still open after /carrito/cerrar")
	}
}

func TestCartPageRenders(t *testing.T) {
	ta := newTestApp(t)

	resp, err := ta.app.Test(httptest.NewRequest("GET", "/carrito", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /carrito: status %d", resp.StatusCode)
	}
}
