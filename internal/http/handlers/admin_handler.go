package handlers

import (
	"sort"
	"strings"

	"pygextintores/internal/catalog"
	"pygextintores/internal/domain"
	applog "pygextintores/internal/log"
	"pygextintores/internal/upload"
	"pygextintores/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AdminHandler struct {
	Products *catalog.Store
	Uploader *upload.Cloudinary
}

// Page renders the product table plus the create/edit form. ?edit=<id>
// preloads the form.
func (h *AdminHandler) Page(c *fiber.Ctx) error {
	products := h.Products.Products()
	sort.Slice(products, func(i, j int) bool {
		return strings.ToLower(products[i].Name) < strings.ToLower(products[j].Name)
	})

	data := fiber.Map{
		"Products":       products,
		"Categories":     domain.Categories(),
		"UploadsEnabled": h.Uploader.Enabled(),
		"Err":            c.Query("err"),
	}
	if id := c.Query("edit"); id != "" {
		if p, ok := h.Products.FindByID(id); ok {
			data["Editing"] = p
		}
	}
	return render(c, "admin_products", data)
}

// Save upserts a product from the admin form. An empty id creates a new
// product; a posted image file is pushed to the asset host first.
func (h *AdminHandler) Save(c *fiber.Ctx) error {
	name, okName := validate.Name(c.FormValue("name"))
	price, okPrice := validate.Price(c.FormValue("price"))
	stock, okStock := validate.Stock(c.FormValue("stock"))
	description := strings.TrimSpace(c.FormValue("description"))
	if !okName || !okPrice || !okStock || description == "" {
		return c.Redirect("/admin?err=invalid")
	}

	imageURL := strings.TrimSpace(c.FormValue("imageUrl"))
	if fh, err := c.FormFile("image"); err == nil && fh != nil && fh.Size > 0 {
		if !h.Uploader.Enabled() {
			return c.Redirect("/admin?err=cloudinary")
		}
		f, err := fh.Open()
		if err != nil {
			applog.Error(c, "admin.products.upload.fail", err, nil)
			return c.Redirect("/admin?err=upload")
		}
		defer f.Close()
		url, err := h.Uploader.Image(c.Context(), fh.Filename, f)
		if err != nil {
			applog.Error(c, "admin.products.upload.fail", err, nil)
			return c.Redirect("/admin?err=upload")
		}
		imageURL = url
	}

	p := domain.Product{}
	id := strings.TrimSpace(c.FormValue("id"))
	if id != "" {
		// Edit keeps the fields the form doesn't expose (slug, specs, ...).
		if existing, ok := h.Products.FindByID(id); ok {
			p = existing
		} else {
			p.ID = id
		}
	} else {
		p.ID = "custom-" + uuid.NewString()
	}
	p.Name = name
	p.Category = domain.Category(c.FormValue("category"))
	p.Price = price
	p.Description = description
	p.Stock = stock
	p.ImageURL = imageURL

	if err := h.Products.Upsert(p); err != nil {
		applog.Error(c, "admin.products.save.fail", err, map[string]any{"product": p.ID})
		return c.Redirect("/admin?err=save")
	}
	applog.Audit(c, "admin.products.save", map[string]any{"product": p.ID, "name": p.Name})
	return c.Redirect("/admin")
}

func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	if err := h.Products.Delete(id); err != nil {
		applog.Error(c, "admin.products.delete.fail", err, map[string]any{"product": id})
		return c.Redirect("/admin?err=delete")
	}
	applog.Audit(c, "admin.products.delete", map[string]any{"product": id})
	return c.Redirect("/admin")
}
