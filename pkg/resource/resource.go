// Package resource provides API Resource transformers that control exactly
// what JSON shape a model is exposed as.
//
//	type ProductResource struct{ resource.Base }
//	func (r *ProductResource) ToArray(v interface{}) resource.Map {
//	    p := v.(models.Product)
//	    return resource.Map{
//	        "id":       p.ID.Hex(),
//	        "title":    p.Title,
//	        "imageUrl": p.ImageURL(),
//	    }
//	}
//
// Respond:
//
//	resource.New(&ProductResource{}, product).Respond(w)
//	resource.CollectionOf(&ProductResource{}, products).Respond(w)
package resource

import (
	"encoding/json"
	"net/http"
	"reflect"
)

// Map is a convenient alias for the output of ToArray.
type Map = map[string]interface{}

// Transformer defines the single method a Resource must implement.
type Transformer interface {
	// ToArray converts one model instance into a Map.
	ToArray(v interface{}) Map
}

// Base can be embedded in any Resource to satisfy future extension points.
type Base struct{}

// ------------------- Single resource -------------------

// Resource wraps a single model with its transformer.
type Resource struct {
	transformer Transformer
	data        interface{}
	meta        Map
}

// New creates a Resource for a single model instance.
func New(t Transformer, data interface{}) *Resource {
	return &Resource{transformer: t, data: data}
}

// WithMeta attaches additional metadata to the response envelope.
func (r *Resource) WithMeta(meta Map) *Resource {
	r.meta = meta
	return r
}

// MarshalJSON implements json.Marshaler so Resource can be nested.
func (r *Resource) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.transformer.ToArray(r.data))
}

// Respond writes the resource as JSON with status 200.
func (r *Resource) Respond(w http.ResponseWriter) {
	out := Map{"data": r.transformer.ToArray(r.data)}
	if r.meta != nil {
		out["meta"] = r.meta
	}
	writeJSON(w, http.StatusOK, out)
}

// ------------------- Collection resource -------------------

// Collection wraps a slice of models with a transformer.
type Collection struct {
	transformer Transformer
	items       interface{}
	meta        Map
}

// CollectionOf creates a Collection from a slice (passed as interface{}).
// items should be a []SomeModel.
func CollectionOf(t Transformer, items interface{}) *Collection {
	return &Collection{transformer: t, items: items}
}

// WithMeta attaches extra metadata.
func (c *Collection) WithMeta(meta Map) *Collection {
	c.meta = meta
	return c
}

// ToSlice transforms every item through the transformer. The transformer
// receives the original typed element, not a decoded map.
func (c *Collection) ToSlice() []Map {
	v := reflect.ValueOf(c.items)
	if v.Kind() != reflect.Slice {
		return nil
	}

	result := make([]Map, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		result = append(result, c.transformer.ToArray(v.Index(i).Interface()))
	}
	return result
}

// Respond writes the collection as JSON with status 200. An empty slice
// serializes as [] rather than null.
func (c *Collection) Respond(w http.ResponseWriter) {
	out := Map{"data": c.ToSlice()}
	if c.meta != nil {
		out["meta"] = c.meta
	}
	writeJSON(w, http.StatusOK, out)
}

// ------------------- Helpers -------------------

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
