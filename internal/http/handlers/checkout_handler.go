package handlers

import (
	"pygextintores/internal/cart"
	applog "pygextintores/internal/log"
	"pygextintores/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CheckoutHandler struct {
	Carts *cart.Manager
}

func (h *CheckoutHandler) Form(c *fiber.Ctx) error {
	s := h.Carts.ForSession(ensureSID(c))
	if s.Count() == 0 {
		return c.Redirect("/carrito")
	}
	return render(c, "checkout", fiber.Map{
		"Items":  s.Items(),
		"Totals": s.Totals(),
		"Err":    "",
	})
}

// Place validates the contact form, records the purchase intent, and clears
// the cart. Nothing else is persisted; payment and fulfillment happen
// offline.
func (h *CheckoutHandler) Place(c *fiber.Ctx) error {
	s := h.Carts.ForSession(ensureSID(c))

	name, okName := validate.Name(c.FormValue("name"))
	email, okEmail := validate.Email(c.FormValue("email"))
	if !okName || !okEmail {
		return c.Status(400).Render("checkout", fiber.Map{
			"Items":  s.Items(),
			"Totals": s.Totals(),
			"Err":    "Completa tu nombre y email para continuar.",
		})
	}

	items := s.Items()
	totals := s.Totals()
	if len(items) == 0 {
		return c.Redirect("/carrito")
	}

	applog.Audit(c, "checkout.place", map[string]any{
		"name": name, "email": email,
		"count": totals.Count, "subtotal": totals.Subtotal, "total": totals.Total,
	})
	s.Clear()
	s.Close()

	return render(c, "checkout_done", fiber.Map{
		"Name":   name,
		"Items":  items,
		"Totals": totals,
	})
}
