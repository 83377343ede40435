package repository

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	apperrors "safarihub/internal/errors"
	"safarihub/internal/model"
)

// mysqlDuplicateEntry is the MySQL errno for a unique index violation.
const mysqlDuplicateEntry = 1062

// AdminRepository defines admin persistence operations.
type AdminRepository interface {
	Create(ctx context.Context, admin *model.Admin) error
	FindByEmail(ctx context.Context, email string) (*model.Admin, error)
	Count(ctx context.Context) (int64, error)
}

type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository builds a GORM-backed repository.
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

// Create inserts a new admin. Email uniqueness is enforced by the unique
// index, so a concurrent duplicate registration fails here atomically
// rather than racing a prior existence check.
func (r *adminRepository) Create(ctx context.Context, admin *model.Admin) error {
	if err := r.db.WithContext(ctx).Create(admin).Error; err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return apperrors.ErrEmailTaken
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var admin model.Admin
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Admin{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
