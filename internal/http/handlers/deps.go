package handlers

import (
	"pygextintores/internal/auth"
	"pygextintores/internal/cart"
	"pygextintores/internal/catalog"
	"pygextintores/internal/config"
	"pygextintores/internal/upload"
)

type Deps struct {
	StorefrontHandler *StorefrontHandler
	CartHandler       *CartHandler
	CheckoutHandler   *CheckoutHandler
	AdminHandler      *AdminHandler
	AuthHandler       *AuthHandler
}

func NewDeps(products *catalog.Store, carts *cart.Manager, authSvc *auth.Service, cfg config.Config) *Deps {
	uploader := upload.NewCloudinary(cfg.CloudinaryCloudName, cfg.CloudinaryUploadPreset)

	return &Deps{
		StorefrontHandler: &StorefrontHandler{Products: products, Carts: carts},
		CartHandler:       &CartHandler{Products: products, Carts: carts},
		CheckoutHandler:   &CheckoutHandler{Carts: carts},
		AdminHandler:      &AdminHandler{Products: products, Uploader: uploader},
		AuthHandler:       &AuthHandler{Auth: authSvc},
	}
}
