package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/homegrown/app/models"
	"github.com/shashiranjanraj/homegrown/app/resources"
	"github.com/shashiranjanraj/homegrown/app/services"
	"github.com/shashiranjanraj/homegrown/pkg/resource"
	"github.com/shashiranjanraj/homegrown/pkg/response"
)

type ProductsController struct {
	catalog *services.CatalogService
}

func NewProductsController(catalog *services.CatalogService) *ProductsController {
	return &ProductsController{catalog: catalog}
}

// Index lists products filtered by ?search&category&subcategory&sort.
func (c *ProductsController) Index(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	products, err := c.catalog.List(r.Context(), services.ListParams{
		Search:      q.Get("search"),
		Category:    q.Get("category"),
		Subcategory: q.Get("subcategory"),
		Sort:        q.Get("sort"),
	})
	if err != nil {
		fail(w, r, err)
		return
	}
	resource.CollectionOf(&resources.ProductResource{}, products).Respond(w)
}

// Show returns one product or 404.
func (c *ProductsController) Show(w http.ResponseWriter, r *http.Request) {
	product, err := c.catalog.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		fail(w, r, err)
		return
	}
	resource.New(&resources.ProductResource{}, product).Respond(w)
}

// Categories returns the fixed category list.
func (c *ProductsController) Categories(w http.ResponseWriter, r *http.Request) {
	response.Success(w, c.catalog.Categories())
}

// Store creates a product from a multipart form with 1 to 4 images.
func (c *ProductsController) Store(w http.ResponseWriter, r *http.Request) {
	in, err := c.parseForm(r, true)
	if err != nil {
		fail(w, r, err)
		return
	}

	product, err := c.catalog.Create(r.Context(), in)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Created(w, (&resources.ProductResource{}).ToArray(product))
}

// Update rewrites a product; new images, when present, replace the old set.
func (c *ProductsController) Update(w http.ResponseWriter, r *http.Request) {
	in, err := c.parseForm(r, false)
	if err != nil {
		fail(w, r, err)
		return
	}

	product, err := c.catalog.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, (&resources.ProductResource{}).ToArray(product))
}

// Destroy deletes a product and queues its images for cleanup.
func (c *ProductsController) Destroy(w http.ResponseWriter, r *http.Request) {
	if err := c.catalog.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		fail(w, r, err)
		return
	}
	response.Message(w, "Product deleted")
}

// parseForm reads the multipart product form. Image count limits are checked
// before anything is uploaded; the service re-validates afterwards.
func (c *ProductsController) parseForm(r *http.Request, imagesRequired bool) (services.ProductInput, error) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return services.ProductInput{}, fmt.Errorf("%w: expected a multipart form", services.ErrInvalid)
	}

	fileCount := 0
	if r.MultipartForm != nil {
		fileCount = len(r.MultipartForm.File["images"])
	}
	if imagesRequired && (fileCount < 1 || fileCount > 4) {
		return services.ProductInput{}, fmt.Errorf("%w: between 1 and 4 images required", services.ErrInvalid)
	}
	if fileCount > 4 {
		return services.ProductInput{}, fmt.Errorf("%w: between 1 and 4 images required", services.ErrInvalid)
	}

	in := services.ProductInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
		Subcategory: r.FormValue("subcategory"),
		Gender:      r.FormValue("gender"),
	}

	var err error
	if v := r.FormValue("price"); v != "" {
		if in.Price, err = strconv.ParseFloat(v, 64); err != nil {
			return services.ProductInput{}, fmt.Errorf("%w: price must be a number", services.ErrInvalid)
		}
	}
	if v := r.FormValue("stock"); v != "" {
		if in.Stock, err = strconv.Atoi(v); err != nil {
			return services.ProductInput{}, fmt.Errorf("%w: stock must be a whole number", services.ErrInvalid)
		}
	}
	if v := r.FormValue("rating"); v != "" {
		if in.Rating, err = strconv.ParseFloat(v, 64); err != nil {
			return services.ProductInput{}, fmt.Errorf("%w: rating must be a number", services.ErrInvalid)
		}
	}
	// Sizes arrive as a JSON array: [{"size":"M","stock":4}, ...]
	if v := r.FormValue("sizes"); v != "" {
		var sizes []models.SizeStock
		if err := json.Unmarshal([]byte(v), &sizes); err != nil {
			return services.ProductInput{}, fmt.Errorf("%w: sizes must be a JSON array of {size, stock}", services.ErrInvalid)
		}
		in.Sizes = sizes
	}

	in.Images, err = uploadImages(r, "images")
	if err != nil {
		return services.ProductInput{}, err
	}
	return in, nil
}
