package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"

	httpdelivery "dealer-orders/internal/delivery/http"
	"dealer-orders/internal/models"
)

func fakeCheckout(f *gofakeit.Faker) models.Checkout {
	cart := []models.CartItem{
		{
			Title: f.CarMaker() + " " + f.CarModel(),
			Price: float64(f.Number(15_000, 90_000)),
			Image: f.URL(),
			Year:  f.DigitN(4),
			Type:  f.CarType(),
		},
	}
	return models.Checkout{
		OrderID:       "ORD-" + f.Password(false, true, true, false, false, 9),
		FirstName:     f.FirstName(),
		LastName:      f.LastName(),
		Email:         f.Email(),
		Phone:         f.Phone(),
		Address:       f.Street(),
		City:          f.City(),
		State:         f.StateAbr(),
		ZipCode:       f.Zip(),
		Country:       "US",
		PaymentMethod: f.RandomString([]string{"bank_transfer", "crypto", "financing"}),
		Cart:          cart,
		Total:         cart[0].Price,
	}
}

func orderFromCheckout(in models.Checkout) models.Order {
	now := time.Now().UTC()
	return models.Order{
		ID:            gofakeit.UUID(),
		OrderID:       in.OrderID,
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		City:          in.City,
		State:         in.State,
		ZipCode:       in.ZipCode,
		Country:       in.Country,
		PaymentMethod: in.PaymentMethod,
		Cart:          models.CartItems(in.Cart),
		Total:         models.CartItems(in.Cart).Total(),
		Status:        models.StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestCreateOrder_FakeCheckouts_Echoed(t *testing.T) {
	f := gofakeit.New(42)

	for i := 0; i < 20; i++ {
		in := fakeCheckout(f)

		var got models.Checkout
		s := &svcStub{
			createOrder: func(_ context.Context, c models.Checkout) (models.Order, error) {
				got = c
				return orderFromCheckout(c), nil
			},
		}
		r := httpdelivery.NewHandler(s, s, s).InitRoutes()

		body, err := json.Marshal(in)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/order", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		require.Equal(t, in.OrderID, got.OrderID)
		require.Equal(t, in.Email, got.Email)
		require.Len(t, got.Cart, 1)

		var resp struct {
			Message string       `json:"message"`
			Order   models.Order `json:"order"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, "Order created successfully", resp.Message)
		require.Equal(t, in.OrderID, resp.Order.OrderID)
		require.Equal(t, models.StatusPending, resp.Order.Status)
		require.InDelta(t, in.Total, resp.Order.Total, 0.001)
	}
}
