package services

import (
	"context"
	"errors"
	"log"

	"oldcarhat/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidID       = errors.New("invalid document id")
	ErrOrderNotFound   = errors.New("order not found")
	ErrProductNotFound = errors.New("product not found")
)

// CheckoutStore is the slice of storage the checkout sequence needs. The
// mongo implementation lives in checkout_mongo.go; tests substitute a fake.
type CheckoutStore interface {
	InsertPayment(ctx context.Context, payment model.Payment) (primitive.ObjectID, error)
	MarkOrderPaid(ctx context.Context, orderID primitive.ObjectID) (int64, error)
	MarkProductSold(ctx context.Context, productID primitive.ObjectID) (int64, error)
	DeletePayment(ctx context.Context, paymentID primitive.ObjectID) error
}

type CheckoutResult struct {
	PaymentID       primitive.ObjectID
	OrdersMatched   int64
	ProductsMatched int64
}

// Checkout runs the post-payment write sequence as a saga: insert the payment
// record, mark the order paid, then flag the product sold and un-promoted.
// Interior failure deletes the payment record again and surfaces the error,
// so a success response is never sent while the order or product still shows
// unpaid.
type Checkout struct {
	store CheckoutStore
}

func NewCheckout(store CheckoutStore) *Checkout {
	return &Checkout{store: store}
}

func (s *Checkout) Run(ctx context.Context, payment model.Payment) (*CheckoutResult, error) {
	orderID, err := primitive.ObjectIDFromHex(payment.OrderID)
	if err != nil {
		return nil, ErrInvalidID
	}
	productID, err := primitive.ObjectIDFromHex(payment.ProductID)
	if err != nil {
		return nil, ErrInvalidID
	}

	paymentID, err := s.store.InsertPayment(ctx, payment)
	if err != nil {
		return nil, err
	}

	ordersMatched, err := s.store.MarkOrderPaid(ctx, orderID)
	if err != nil {
		s.compensate(ctx, paymentID)
		return nil, err
	}
	if ordersMatched == 0 {
		s.compensate(ctx, paymentID)
		return nil, ErrOrderNotFound
	}

	productsMatched, err := s.store.MarkProductSold(ctx, productID)
	if err != nil {
		s.compensate(ctx, paymentID)
		return nil, err
	}
	if productsMatched == 0 {
		s.compensate(ctx, paymentID)
		return nil, ErrProductNotFound
	}

	return &CheckoutResult{
		PaymentID:       paymentID,
		OrdersMatched:   ordersMatched,
		ProductsMatched: productsMatched,
	}, nil
}

func (s *Checkout) compensate(ctx context.Context, paymentID primitive.ObjectID) {
	if err := s.store.DeletePayment(ctx, paymentID); err != nil {
		// Nothing left to undo with; the payment record stays orphaned.
		log.Printf("checkout: failed to roll back payment %s: %v", paymentID.Hex(), err)
	}
}
