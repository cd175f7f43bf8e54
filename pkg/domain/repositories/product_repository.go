package repositories

import "github.com/markus-pettersen/logistics-simulation/pkg/domain/entities"

// ProductRepository provides access to product reference data
type ProductRepository interface {
	GetProduct(id entities.ProductID) (*entities.Product, error)
	GetAllProducts() ([]*entities.Product, error)
	LoadProducts(products []*entities.Product) error
}
