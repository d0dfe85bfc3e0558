package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/checkout/internal/domain/model"
	"github.com/RoyceAzure/lab/checkout/internal/infra/repository/db"
	"gorm.io/gorm"
)

var (
	ErrCustomerNotExist = errors.New("customer is not exist")
)

type CustomerService struct {
	customerRepo db.ICustomerRepository
}

func NewCustomerService(customerRepo db.ICustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

func (u *CustomerService) GetCustomer(ctx context.Context, customerID int) (*model.Customer, error) {
	customer, err := u.customerRepo.GetCustomerByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotExist
		}
		return nil, err
	}
	return customer, nil
}

// Resolve 客戶是否存在，結帳引擎的前置檢查用
func (u *CustomerService) Resolve(ctx context.Context, customerID int) (bool, error) {
	return u.customerRepo.Resolve(ctx, customerID)
}
