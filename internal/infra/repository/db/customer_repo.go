package db

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/checkout/internal/domain/model"
	"gorm.io/gorm"
)

type CustomerRepo struct {
	dbDao *DbDao
}

func NewCustomerRepo(dbDao *DbDao) *CustomerRepo {
	return &CustomerRepo{dbDao: dbDao}
}

// Create - 創建客戶
func (s *CustomerRepo) CreateCustomer(ctx context.Context, customer *model.Customer) (*model.Customer, error) {
	if err := s.dbDao.WithContext(ctx).Create(customer).Error; err != nil {
		return nil, err
	}
	return customer, nil
}

// Read - 根據ID查詢客戶
func (s *CustomerRepo) GetCustomerByID(ctx context.Context, id int) (*model.Customer, error) {
	var customer model.Customer
	err := s.dbDao.WithContext(ctx).First(&customer, id).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// Read - 根據Email查詢客戶
func (s *CustomerRepo) GetCustomerByEmail(ctx context.Context, email string) (*model.Customer, error) {
	var customer model.Customer
	err := s.dbDao.WithContext(ctx).Where("customer_email = ?", email).First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// Read - 查詢所有客戶
func (s *CustomerRepo) GetAllCustomers(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer
	err := s.dbDao.WithContext(ctx).Find(&customers).Error
	return customers, err
}

// Resolve 客戶是否存在
func (s *CustomerRepo) Resolve(ctx context.Context, id int) (bool, error) {
	var count int64
	err := s.dbDao.WithContext(ctx).Model(&model.Customer{}).
		Where("customer_id = ?", id).Count(&count).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return count > 0, nil
}

// Update - 更新客戶
func (s *CustomerRepo) UpdateCustomer(ctx context.Context, customer *model.Customer) error {
	return s.dbDao.WithContext(ctx).Save(customer).Error
}

// Delete - 軟刪除客戶
func (s *CustomerRepo) DeleteCustomer(ctx context.Context, id int) error {
	return s.dbDao.WithContext(ctx).Delete(&model.Customer{}, id).Error
}
