package services_test

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/homegrown/app/models"
	"github.com/shashiranjanraj/homegrown/app/repositories"
)

// fakeProductStore serves a fixed slice and records the last query.
type fakeProductStore struct {
	products  []models.Product
	lastQuery repositories.ProductQuery
	created   []models.Product
	updated   []models.Product
	deleted   []primitive.ObjectID
}

func (f *fakeProductStore) Find(_ context.Context, q repositories.ProductQuery) ([]models.Product, error) {
	f.lastQuery = q
	var out []models.Product
	for _, p := range f.products {
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if q.Subcategory != "" && p.Subcategory != q.Subcategory {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductStore) FindByID(_ context.Context, id primitive.ObjectID) (models.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, repositories.ErrNotFound
}

func (f *fakeProductStore) Create(_ context.Context, p *models.Product) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	f.created = append(f.created, *p)
	f.products = append(f.products, *p)
	return nil
}

func (f *fakeProductStore) Update(_ context.Context, p *models.Product) error {
	for i := range f.products {
		if f.products[i].ID == p.ID {
			f.products[i] = *p
			f.updated = append(f.updated, *p)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (f *fakeProductStore) Delete(_ context.Context, id primitive.ObjectID) error {
	for i := range f.products {
		if f.products[i].ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			f.deleted = append(f.deleted, id)
			return nil
		}
	}
	return repositories.ErrNotFound
}

// fakeOrderStore keeps orders in memory, scoped the way the real repository
// scopes them.
type fakeOrderStore struct {
	orders []models.Order
}

func (f *fakeOrderStore) Create(_ context.Context, o *models.Order) error {
	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	f.orders = append(f.orders, *o)
	return nil
}

func (f *fakeOrderStore) FindByUser(_ context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderStore) FindByIDForUser(_ context.Context, id, userID primitive.ObjectID) (models.Order, error) {
	for _, o := range f.orders {
		if o.ID == id && o.UserID == userID {
			return o, nil
		}
	}
	return models.Order{}, repositories.ErrNotFound
}

// fakeUserStore keeps users in memory, indexed by id and email.
type fakeUserStore struct {
	users []models.User
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, repositories.ErrNotFound
}

func (f *fakeUserStore) FindByID(_ context.Context, id primitive.ObjectID) (models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, repositories.ErrNotFound
}

func (f *fakeUserStore) Create(_ context.Context, u *models.User) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	f.users = append(f.users, *u)
	return nil
}

func (f *fakeUserStore) Update(_ context.Context, u *models.User) error {
	for i := range f.users {
		if f.users[i].ID == u.ID {
			f.users[i] = *u
			return nil
		}
	}
	return repositories.ErrNotFound
}
