package handlers

import (
	"pygextintores/internal/cart"
	"pygextintores/internal/catalog"
	"pygextintores/internal/domain"

	"github.com/gofiber/fiber/v2"
)

type StorefrontHandler struct {
	Products *catalog.Store
	Carts    *cart.Manager
}

// cartState is what every storefront page needs to draw the navbar badge and
// the drawer.
func (h *StorefrontHandler) cartState(c *fiber.Ctx) fiber.Map {
	s := h.Carts.ForSession(ensureSID(c))
	return fiber.Map{
		"CartCount": s.Count(),
		"CartOpen":  s.IsOpen(),
		"CartItems": s.Items(),
		"Totals":    s.Totals(),
	}
}

func (h *StorefrontHandler) Home(c *fiber.Ctx) error {
	products := h.Products.Products()
	featured := products
	if len(featured) > 4 {
		featured = featured[:4]
	}
	data := h.cartState(c)
	data["Featured"] = featured
	data["Categories"] = domain.Categories()
	return render(c, "home", data)
}

// List renders /productos, optionally filtered by ?categoria=.
func (h *StorefrontHandler) List(c *fiber.Ctx) error {
	data := h.cartState(c)
	data["Categories"] = domain.Categories()

	data["Current"] = ""
	if q := c.Query("categoria"); q != "" {
		cat := catalog.Normalize(q)
		data["Current"] = string(cat)
		data["Products"] = h.Products.ByCategory(cat)
	} else {
		data["Products"] = h.Products.Products()
	}
	return render(c, "products", data)
}

func (h *StorefrontHandler) Detail(c *fiber.Ctx) error {
	p, ok := h.Products.FindBySlug(c.Params("slug"))
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Este producto ya no está disponible"})
	}
	data := h.cartState(c)
	data["P"] = p
	data["InCart"] = h.Carts.ForSession(ensureSID(c)).Quantity(p.ID)
	return render(c, "product", data)
}
