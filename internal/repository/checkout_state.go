package repository

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/cart-sync/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CheckoutStateDocument is the checkout-scoped state of one cart session:
// the ids selected for checkout and the last confirmed delivery info.
type CheckoutStateDocument struct {
	SessionID        string              `bson:"_id" json:"session_id"`
	SelectedProducts []string            `bson:"selected_products" json:"selected_products"`
	DeliveryInfo     *model.DeliveryInfo `bson:"delivery_info,omitempty" json:"delivery_info,omitempty"`
	UpdatedAt        time.Time           `bson:"updated_at" json:"updated_at"`
}

// CheckoutStateRepository stores checkout state in MongoDB, one document per session.
type CheckoutStateRepository struct {
	collection *mongo.Collection
}

// NewCheckoutStateRepository creates a new checkout state repository.
func NewCheckoutStateRepository(db *MongoDB) *CheckoutStateRepository {
	return &CheckoutStateRepository{collection: db.CheckoutStates}
}

// Get returns the session's state, or nil when nothing has been stored.
func (r *CheckoutStateRepository) Get(ctx context.Context, sessionID string) (*CheckoutStateDocument, error) {
	var doc CheckoutStateDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": sessionID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// SaveSelection replaces the selected product ids.
func (r *CheckoutStateRepository) SaveSelection(ctx context.Context, sessionID string, productIDs []string) error {
	if productIDs == nil {
		productIDs = []string{}
	}
	return r.upsert(ctx, sessionID, bson.M{"$set": bson.M{
		"selected_products": productIDs,
		"updated_at":        time.Now(),
	}})
}

// SaveDeliveryInfo replaces the saved delivery info.
func (r *CheckoutStateRepository) SaveDeliveryInfo(ctx context.Context, sessionID string, info model.DeliveryInfo) error {
	return r.upsert(ctx, sessionID, bson.M{
		"$set": bson.M{
			"delivery_info": info,
			"updated_at":    time.Now(),
		},
		"$setOnInsert": bson.M{"selected_products": []string{}},
	})
}

// Clear removes all checkout state of the session.
func (r *CheckoutStateRepository) Clear(ctx context.Context, sessionID string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": sessionID})
	return err
}

func (r *CheckoutStateRepository) upsert(ctx context.Context, sessionID string, update bson.M) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": sessionID}, update, options.Update().SetUpsert(true))
	return err
}
