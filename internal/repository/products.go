package repository

import (
	"context"

	"github.com/packline/packaging-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProductRepository provides MongoDB access to the products collection.
// Product codes are the document ids, so uniqueness is enforced by the store.
type ProductRepository struct {
	collection *mongo.Collection
}

// NewProductRepository creates a new product repository.
func NewProductRepository(db *MongoDB) *ProductRepository {
	return &ProductRepository{
		collection: db.Products,
	}
}

// FindByCode returns the product with the given code, or nil if absent.
func (r *ProductRepository) FindByCode(ctx context.Context, code string) (*model.Product, error) {
	var product model.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": code}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindAll returns all catalog products sorted by code.
func (r *ProductRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	opts := options.Find().SetSort(bson.M{"_id": 1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	products := []model.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Insert stores a new product. Returns model.ErrProductAlreadyExists when
// the code is taken.
func (r *ProductRepository) Insert(ctx context.Context, product model.Product) error {
	_, err := r.collection.InsertOne(ctx, product)
	if mongo.IsDuplicateKeyError(err) {
		return model.ErrProductAlreadyExists
	}
	return err
}

// Update replaces the mutable fields of an existing product. Returns false
// when no product with that code exists.
func (r *ProductRepository) Update(ctx context.Context, product model.Product) (bool, error) {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": product.Code},
		bson.M{"$set": bson.M{"name": product.Name, "base_price": product.BasePrice}},
	)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

// DeleteByCode removes a product, reporting whether it existed.
func (r *ProductRepository) DeleteByCode(ctx context.Context, code string) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": code})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

// ExistsByCode reports whether a product with the given code exists.
func (r *ProductRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": code}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
