package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestCheckoutEmptyCartRedirects(t *testing.T) {
	ta := newTestApp(t)

	resp, err := ta.app.Test(httptest.NewRequest("GET", "/checkout", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("empty checkout: status %d, want 302", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/carrito" {
		t.Fatalf("redirect to %q, want /carrito", loc)
	}
}

func TestCheckoutPlaceClearsCart(t *testing.T) {
	ta := newTestApp(t)
	csrfTok := ta.fetchCSRF(t)
	first := ta.products.Products()[0]

	resp := ta.postForm(t, "/carrito", csrfTok, url.Values{"productId": {first.ID}})
	sidVal := cookieValue(resp, "sid")
	sid := &http.Cookie{Name: "sid", Value: sidVal}

	req := httptest.NewRequest("GET", "/checkout", nil)
	req.AddCookie(sid)
	resp, err := ta.app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("checkout form: status %d", resp.StatusCode)
	}

	// missing contact data re-renders with a 400
	resp = ta.postForm(t, "/checkout", csrfTok, url.Values{"name": {"Ana"}}, sid)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("incomplete checkout: status %d, want 400", resp.StatusCode)
	}
	if ta.carts.ForSession(sidVal).Count() == 0 {
		t.Fatal("incomplete checkout cleared the cart")
	}

	// complete checkout renders the confirmation and empties the cart
	resp = ta.postForm(t, "/checkout", csrfTok, url.Values{
		"name":  {"Ana Rojas"},
		"email": {"ana@example.com"},
	}, sid)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("checkout place: status %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Ana Rojas") {
		t.Fatal("confirmation page does not greet the customer")
	}
	if !strings.Contains(string(body), first.Name) {
		t.Fatal("confirmation page does not list the purchased item")
	}
	if ta.carts.ForSession(sidVal).Count() != 0 {
		t.Fatal("cart not cleared after checkout")
	}
}
