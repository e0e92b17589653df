package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"dealer-orders/internal/models"
	"dealer-orders/internal/repository"
)

const ordersCollection = "orders"

type OrderMongoRepo struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewOrderMongo(db *mongo.Database) *OrderMongoRepo {
	return &OrderMongoRepo{coll: db.Collection(ordersCollection), now: time.Now}
}

func (r *OrderMongoRepo) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "orderId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "email", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "createdAt", Value: -1}},
		},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *OrderMongoRepo) Create(ctx context.Context, o models.Order) error {
	if o.Cart == nil {
		o.Cart = models.CartItems{}
	}
	if _, err := r.coll.InsertOne(ctx, o); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("order %s: %w", o.OrderID, repository.ErrDuplicate)
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func (r *OrderMongoRepo) Get(ctx context.Context, id string) (models.Order, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *OrderMongoRepo) FindByOrderIDAndEmail(ctx context.Context, orderID, email string) (models.Order, error) {
	return r.findOne(ctx, bson.M{"orderId": orderID, "email": email})
}

func (r *OrderMongoRepo) findOne(ctx context.Context, filter bson.M) (models.Order, error) {
	var o models.Order
	err := r.coll.FindOne(ctx, filter).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Order{}, repository.ErrNotFound
	}
	if err != nil {
		return models.Order{}, fmt.Errorf("find order: %w", err)
	}
	return o, nil
}

func (r *OrderMongoRepo) List(ctx context.Context) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer cur.Close(ctx)

	out := []models.Order{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return out, nil
}

func (r *OrderMongoRepo) Update(ctx context.Context, id string, upd models.OrderUpdate) (models.Order, error) {
	set := bson.M{"updatedAt": r.now().UTC()}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.TrackingDetails != nil {
		set["trackingDetails"] = *upd.TrackingDetails
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var o models.Order
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Order{}, repository.ErrNotFound
	}
	if err != nil {
		return models.Order{}, fmt.Errorf("update order: %w", err)
	}
	return o, nil
}

func (r *OrderMongoRepo) SetNotifications(ctx context.Context, id string, n models.Notifications) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"notifications": n}})
	if err != nil {
		return fmt.Errorf("update notifications: %w", err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *OrderMongoRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
