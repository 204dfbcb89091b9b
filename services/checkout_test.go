package services

import (
	"context"
	"errors"
	"testing"

	"oldcarhat/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeCheckoutStore struct {
	insertErr      error
	orderMatched   int64
	orderErr       error
	productMatched int64
	productErr     error

	inserted  bool
	paymentID primitive.ObjectID
	deleted   []primitive.ObjectID
}

func (f *fakeCheckoutStore) InsertPayment(ctx context.Context, payment model.Payment) (primitive.ObjectID, error) {
	if f.insertErr != nil {
		return primitive.NilObjectID, f.insertErr
	}
	f.inserted = true
	f.paymentID = primitive.NewObjectID()
	return f.paymentID, nil
}

func (f *fakeCheckoutStore) MarkOrderPaid(ctx context.Context, orderID primitive.ObjectID) (int64, error) {
	return f.orderMatched, f.orderErr
}

func (f *fakeCheckoutStore) MarkProductSold(ctx context.Context, productID primitive.ObjectID) (int64, error) {
	return f.productMatched, f.productErr
}

func (f *fakeCheckoutStore) DeletePayment(ctx context.Context, paymentID primitive.ObjectID) error {
	f.deleted = append(f.deleted, paymentID)
	return nil
}

func validPayment() model.Payment {
	return model.Payment{
		OrderID:   primitive.NewObjectID().Hex(),
		ProductID: primitive.NewObjectID().Hex(),
		Amount:    1200,
	}
}

func TestCheckoutSuccess(t *testing.T) {
	store := &fakeCheckoutStore{orderMatched: 1, productMatched: 1}
	result, err := NewCheckout(store).Run(context.Background(), validPayment())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.PaymentID != store.paymentID {
		t.Errorf("expected payment id %s, got %s", store.paymentID.Hex(), result.PaymentID.Hex())
	}
	if result.OrdersMatched != 1 || result.ProductsMatched != 1 {
		t.Errorf("unexpected match counts: %+v", result)
	}
	if len(store.deleted) != 0 {
		t.Error("compensation ran on the success path")
	}
}

func TestCheckoutInvalidIDs(t *testing.T) {
	store := &fakeCheckoutStore{orderMatched: 1, productMatched: 1}
	payment := validPayment()
	payment.OrderID = "not-hex"

	_, err := NewCheckout(store).Run(context.Background(), payment)
	if err != ErrInvalidID {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if store.inserted {
		t.Error("payment was written despite an invalid id")
	}
}

func TestCheckoutOrderMissingCompensates(t *testing.T) {
	store := &fakeCheckoutStore{orderMatched: 0, productMatched: 1}
	_, err := NewCheckout(store).Run(context.Background(), validPayment())
	if err != ErrOrderNotFound {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
	if len(store.deleted) != 1 || store.deleted[0] != store.paymentID {
		t.Errorf("expected the inserted payment to be deleted, got %v", store.deleted)
	}
}

func TestCheckoutProductStepFailureCompensates(t *testing.T) {
	store := &fakeCheckoutStore{orderMatched: 1, productErr: errors.New("write timeout")}
	_, err := NewCheckout(store).Run(context.Background(), validPayment())
	if err == nil || err.Error() != "write timeout" {
		t.Fatalf("expected driver error surfaced, got %v", err)
	}
	if len(store.deleted) != 1 {
		t.Errorf("expected one compensation delete, got %d", len(store.deleted))
	}
}

func TestCheckoutInsertFailureStops(t *testing.T) {
	store := &fakeCheckoutStore{insertErr: errors.New("insert failed")}
	_, err := NewCheckout(store).Run(context.Background(), validPayment())
	if err == nil {
		t.Fatal("expected error")
	}
	if len(store.deleted) != 0 {
		t.Error("nothing was inserted, nothing should be deleted")
	}
}
