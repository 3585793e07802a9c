package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/guedes-jr/store-delizandra-api/models"
)

type ProductRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// imagesByPosition keeps preloaded galleries in display order so the
// first element is always the primary image.
func imagesByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC, id ASC")
}

func (r *ProductRepo) ListActive(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("products.is_active = ?", true).
		Preload("Category").
		Preload("Images", imagesByPosition).
		Order("products.featured DESC, products.id DESC")

	if filter.Query != "" {
		likePattern := "%" + filter.Query + "%"
		query = query.Where(
			"products.name ILIKE ? OR products.description ILIKE ? OR products.sku ILIKE ?",
			likePattern, likePattern, likePattern,
		)
	}
	if filter.CategorySlug != "" {
		query = query.
			Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.slug = ?", filter.CategorySlug)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepo) GetActiveByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Images", imagesByPosition).
		Where("is_active = ?", true).
		First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepo) FindActiveByIDs(ctx context.Context, ids []uint) (map[uint]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Preload("Images", imagesByPosition).
		Where("id IN ? AND is_active = ?", ids, true).
		Find(&products).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID, nil
}

func (r *ProductRepo) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
