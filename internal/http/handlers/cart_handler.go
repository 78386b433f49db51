package handlers

import (
	"pygextintores/internal/cart"
	"pygextintores/internal/catalog"
	applog "pygextintores/internal/log"
	"pygextintores/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CartHandler struct {
	Products *catalog.Store
	Carts    *cart.Manager
}

func (h *CartHandler) store(c *fiber.Ctx) *cart.Store {
	return h.Carts.ForSession(ensureSID(c))
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	s := h.store(c)
	return render(c, "cart", fiber.Map{
		"Items":  s.Items(),
		"Totals": s.Totals(),
	})
}

// Add snapshots the product into the cart (quantity 1, or +1 on repeat) and
// opens the drawer.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	id, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	p, found := h.Products.FindByID(id)
	if !found {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Este producto ya no está disponible"})
	}
	s := h.store(c)
	s.Add(p)
	s.Open()
	applog.Info(c, "cart.add", map[string]any{"product": id, "qty": s.Quantity(id)})
	return redirectBack(c)
}

// Update sets a line's quantity; 0 removes the line.
func (h *CartHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	qty := validate.Qty(c.FormValue("qty"))
	h.store(c).UpdateQuantity(id, qty)
	applog.Info(c, "cart.update", map[string]any{"product": id, "qty": qty})
	return redirectBack(c)
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	id, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	h.store(c).Remove(id)
	applog.Info(c, "cart.remove", map[string]any{"product": id})
	return redirectBack(c)
}

func (h *CartHandler) OpenDrawer(c *fiber.Ctx) error {
	h.store(c).Open()
	return redirectBack(c)
}

func (h *CartHandler) CloseDrawer(c *fiber.Ctx) error {
	h.store(c).Close()
	return redirectBack(c)
}

// redirectBack returns to the page the form was posted from, defaulting to
// the cart page.
func redirectBack(c *fiber.Ctx) error {
	if ref := c.Get("Referer"); ref != "" {
		return c.Redirect(ref)
	}
	return c.Redirect("/carrito")
}
