package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Category    string             `bson:"category" json:"category"`
	SubCategory string             `bson:"subCategory" json:"subCategory"`
	Image       []string           `bson:"image" json:"image"`
	Sizes       []string           `bson:"sizes" json:"sizes"`
	Date        time.Time          `bson:"date" json:"date"`
	Stock       int                `bson:"stock" json:"stock"`
	Sold        int                `bson:"sold" json:"sold"`
	Rating      float64            `bson:"rating" json:"rating"`
	Reviews     []string           `bson:"reviews" json:"reviews"`
	Bestseller  bool               `bson:"bestseller" json:"bestseller"`
	Featured    bool               `bson:"featured" json:"featured"`
}

// CartSnapshot copies the catalog fields a cart line carries.
func (p *Product) CartSnapshot(quantity int, size string) CartLine {
	image := p.Image
	if image == nil {
		image = []string{}
	}
	return CartLine{
		ProductID:   p.ID.Hex(),
		Name:        p.Name,
		Image:       image,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    quantity,
		Size:        size,
		Category:    p.Category,
		SubCategory: p.SubCategory,
		Stock:       p.Stock,
	}
}
