package checkout

import (
	"context"
	"time"

	"github.com/guedes-jr/store-delizandra-api/models"
	"github.com/guedes-jr/store-delizandra-api/repository"
)

// fakeProductRepo implements repository.ProductRepository over a map.
type fakeProductRepo struct {
	products map[uint]models.Product
	err      error
}

func (f *fakeProductRepo) ListActive(context.Context, repository.ProductFilter) ([]models.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) GetActiveByID(_ context.Context, id uint) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, f.err
	}
	return &p, nil
}

func (f *fakeProductRepo) FindActiveByIDs(_ context.Context, ids []uint) (map[uint]models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	found := make(map[uint]models.Product)
	for _, id := range ids {
		if p, ok := f.products[id]; ok && p.IsActive {
			found[id] = p
		}
	}
	return found, nil
}

func (f *fakeProductRepo) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := f.products[id]
	return ok, nil
}

// fakeInventoryRepo implements repository.InventoryRepository over a map.
type fakeInventoryRepo struct {
	quantities map[uint]int
	err        error
}

func (f *fakeInventoryRepo) QuantitiesByProductIDs(_ context.Context, ids []uint) (map[uint]int, error) {
	if f.err != nil {
		return nil, f.err
	}
	found := make(map[uint]int)
	for _, id := range ids {
		if qty, ok := f.quantities[id]; ok {
			found[id] = qty
		}
	}
	return found, nil
}

// fakeOrderRepo captures created orders; CreateErr simulates a failed
// atomic write (nothing is recorded in that case).
type fakeOrderRepo struct {
	created   []*models.Order
	CreateErr error
}

func (f *fakeOrderRepo) Create(_ context.Context, order *models.Order) error {
	if f.CreateErr != nil {
		return f.CreateErr
	}
	order.ID = uint(len(f.created) + 1)
	f.created = append(f.created, order)
	return nil
}

func (f *fakeOrderRepo) ListRecent(context.Context, int) ([]models.Order, error) {
	orders := make([]models.Order, 0, len(f.created))
	for _, o := range f.created {
		orders = append(orders, *o)
	}
	return orders, nil
}

func (f *fakeOrderRepo) KPIsSince(context.Context, time.Time) (*repository.KPIReport, error) {
	return &repository.KPIReport{}, nil
}
