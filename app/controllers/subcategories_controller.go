package controllers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/homegrown/app/services"
	"github.com/shashiranjanraj/homegrown/pkg/media"
	"github.com/shashiranjanraj/homegrown/pkg/response"
)

type SubcategoriesController struct {
	service *services.SubcategoryService
}

func NewSubcategoriesController(service *services.SubcategoryService) *SubcategoriesController {
	return &SubcategoriesController{service: service}
}

// Index lists subcategories, optionally filtered by ?category.
func (c *SubcategoriesController) Index(w http.ResponseWriter, r *http.Request) {
	subs, err := c.service.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, subs)
}

// Store creates a subcategory from a multipart form with one image.
func (c *SubcategoriesController) Store(w http.ResponseWriter, r *http.Request) {
	in, err := c.parseForm(r)
	if err != nil {
		fail(w, r, err)
		return
	}

	sub, err := c.service.Create(r.Context(), in)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Created(w, sub)
}

// Update rewrites a subcategory; a new image, when present, replaces the old.
func (c *SubcategoriesController) Update(w http.ResponseWriter, r *http.Request) {
	in, err := c.parseForm(r)
	if err != nil {
		fail(w, r, err)
		return
	}

	sub, err := c.service.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, sub)
}

// Destroy deletes a subcategory and queues its image for cleanup.
func (c *SubcategoriesController) Destroy(w http.ResponseWriter, r *http.Request) {
	if err := c.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		fail(w, r, err)
		return
	}
	response.Message(w, "Subcategory deleted")
}

func (c *SubcategoriesController) parseForm(r *http.Request) (services.SubcategoryInput, error) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return services.SubcategoryInput{}, fmt.Errorf("%w: expected a multipart form", services.ErrInvalid)
	}

	assets, err := uploadImages(r, "image")
	if err != nil {
		return services.SubcategoryInput{}, err
	}
	if len(assets) > 1 {
		cleanupUploads(assets)
		return services.SubcategoryInput{}, fmt.Errorf("%w: a subcategory has a single image", services.ErrInvalid)
	}

	var image media.Asset
	if len(assets) == 1 {
		image = assets[0]
	}

	return services.SubcategoryInput{
		Name:     r.FormValue("name"),
		Category: r.FormValue("category"),
		Image:    image,
	}, nil
}
