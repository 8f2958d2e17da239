package repository

import (
	"errors"
	"strings"

	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/models"

	"gorm.io/gorm"
)

// Sort orders accepted by List.
const (
	SortNameAsc   = "name"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortCategory  = "category"
)

// SweetListFilter narrows catalog listings.
type SweetListFilter struct {
	Name     string
	Category string
	MinPrice *float64
	MaxPrice *float64
	Sort     string
	Page     int
	PageSize int
}

func sweetOrderClause(sort string) string {
	switch sort {
	case SortPriceAsc:
		return "price_amount ASC, id ASC"
	case SortPriceDesc:
		return "price_amount DESC, id ASC"
	case SortCategory:
		return "category ASC, name ASC, id ASC"
	default:
		return "name ASC, id ASC"
	}
}

// SweetRepository is the catalog data access interface.
type SweetRepository interface {
	List(filter SweetListFilter) ([]models.Sweet, int64, error)
	GetByID(id uint) (*models.Sweet, error)
	ListByIDs(ids []uint) ([]models.Sweet, error)
	Create(sweet *models.Sweet) error
	Update(sweet *models.Sweet) error
	Delete(id uint) error
	// DecrementStock subtracts quantity from stock only when enough is
	// available; the returned count is 0 when stock was insufficient.
	DecrementStock(sweetID uint, quantity int) (int64, error)
	IncrementStock(sweetID uint, quantity int) (int64, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) SweetRepository
}

// GormSweetRepository is the GORM implementation.
type GormSweetRepository struct {
	db *gorm.DB
}

// NewSweetRepository builds a catalog repository.
func NewSweetRepository(db *gorm.DB) *GormSweetRepository {
	return &GormSweetRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormSweetRepository) WithTx(tx *gorm.DB) SweetRepository {
	if tx == nil {
		return r
	}
	return &GormSweetRepository{db: tx}
}

// Transaction runs fn inside a transaction.
func (r *GormSweetRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// List returns catalog entries matching the filter.
func (r *GormSweetRepository) List(filter SweetListFilter) ([]models.Sweet, int64, error) {
	var sweets []models.Sweet

	query := r.db.Model(&models.Sweet{})
	if name := strings.TrimSpace(filter.Name); name != "" {
		query = query.Where("name LIKE ?", "%"+name+"%")
	}
	if category := strings.TrimSpace(filter.Category); category != "" {
		query = query.Where("category = ?", category)
	}
	if filter.MinPrice != nil {
		query = query.Where("price_amount >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price_amount <= ?", *filter.MaxPrice)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order(sweetOrderClause(filter.Sort)).Find(&sweets).Error; err != nil {
		return nil, 0, err
	}

	return sweets, total, nil
}

// GetByID returns one sweet, or nil when it does not exist.
func (r *GormSweetRepository) GetByID(id uint) (*models.Sweet, error) {
	var sweet models.Sweet
	if err := r.db.First(&sweet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sweet, nil
}

// ListByIDs loads sweets in bulk.
func (r *GormSweetRepository) ListByIDs(ids []uint) ([]models.Sweet, error) {
	if len(ids) == 0 {
		return []models.Sweet{}, nil
	}
	var sweets []models.Sweet
	if err := r.db.Where("id IN ?", ids).Find(&sweets).Error; err != nil {
		return nil, err
	}
	return sweets, nil
}

// Create inserts a sweet.
func (r *GormSweetRepository) Create(sweet *models.Sweet) error {
	return r.db.Create(sweet).Error
}

// Update saves a sweet.
func (r *GormSweetRepository) Update(sweet *models.Sweet) error {
	return r.db.Save(sweet).Error
}

// Delete soft-deletes a sweet.
func (r *GormSweetRepository) Delete(id uint) error {
	return r.db.Delete(&models.Sweet{}, id).Error
}

// DecrementStock atomically subtracts purchased units.
func (r *GormSweetRepository) DecrementStock(sweetID uint, quantity int) (int64, error) {
	if sweetID == 0 || quantity <= 0 {
		return 0, errors.New("invalid stock decrement params")
	}
	result := r.db.Model(&models.Sweet{}).
		Where("id = ? AND stock >= ?", sweetID, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// IncrementStock adds restocked units.
func (r *GormSweetRepository) IncrementStock(sweetID uint, quantity int) (int64, error) {
	if sweetID == 0 || quantity <= 0 {
		return 0, errors.New("invalid stock increment params")
	}
	result := r.db.Model(&models.Sweet{}).
		Where("id = ?", sweetID).
		Update("stock", gorm.Expr("stock + ?", quantity))
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
