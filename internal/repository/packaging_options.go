package repository

import (
	"context"

	"github.com/packline/packaging-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PackagingOptionRepository provides MongoDB access to packaging options.
type PackagingOptionRepository struct {
	collection *mongo.Collection
}

// NewPackagingOptionRepository creates a new packaging option repository.
func NewPackagingOptionRepository(db *MongoDB) *PackagingOptionRepository {
	return &PackagingOptionRepository{
		collection: db.PackagingOptions,
	}
}

// FindByProductCode returns the bundle options of a product, largest first.
// An empty result is valid: the product is then sold unit-by-unit only.
func (r *PackagingOptionRepository) FindByProductCode(ctx context.Context, productCode string) ([]model.PackagingOption, error) {
	opts := options.Find().SetSort(bson.M{"bundle_size": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"product_code": productCode}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	result := []model.PackagingOption{}
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// FindAll returns every packaging option in the catalog.
func (r *PackagingOptionRepository) FindAll(ctx context.Context) ([]model.PackagingOption, error) {
	opts := options.Find().SetSort(bson.D{{Key: "product_code", Value: 1}, {Key: "bundle_size", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	result := []model.PackagingOption{}
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// FindByID returns the packaging option with the given id, or nil if absent.
func (r *PackagingOptionRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.PackagingOption, error) {
	var option model.PackagingOption
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&option)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &option, nil
}

// Insert stores a new packaging option, assigning its id.
func (r *PackagingOptionRepository) Insert(ctx context.Context, option *model.PackagingOption) error {
	if option.ID.IsZero() {
		option.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, option)
	return err
}

// Update replaces an existing packaging option. Returns false when no
// option with that id exists.
func (r *PackagingOptionRepository) Update(ctx context.Context, option model.PackagingOption) (bool, error) {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": option.ID},
		bson.M{"$set": bson.M{
			"product_code": option.ProductCode,
			"bundle_size":  option.BundleSize,
			"bundle_price": option.BundlePrice,
		}},
	)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

// DeleteByID removes a packaging option, reporting whether it existed.
func (r *PackagingOptionRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

// DeleteByProductCode removes all options of a product, returning how many
// were removed. Used when a product is deleted from the catalog.
func (r *PackagingOptionRepository) DeleteByProductCode(ctx context.Context, productCode string) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"product_code": productCode})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
