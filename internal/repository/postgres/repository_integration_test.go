package postgres_test

import (
	"context"
	"testing"
	"time"

	gorm "github.com/jinzhu/gorm"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/require"

	"dealer-orders/internal/models"
	"dealer-orders/internal/repository"
	pg "dealer-orders/internal/repository/postgres"
)

type pgEnv struct {
	DB   *gorm.DB
	Repo *pg.OrderPostgresRepo
}

func upPostgres(t *testing.T) *pgEnv {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test")
	}

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.Run("postgres", "16-alpine", []string{
		"POSTGRES_DB=orders",
		"POSTGRES_USER=app",
		"POSTGRES_PASSWORD=app",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Purge(resource) })

	env := &pgEnv{}
	require.NoError(t, pool.Retry(func() error {
		db, err := pg.ConnectDB(pg.Config{
			Host:     "localhost",
			Port:     resource.GetPort("5432/tcp"),
			Username: "app",
			Password: "app",
			DbName:   "orders",
			SslMode:  "disable",
		})
		if err != nil {
			return err
		}
		if err := pg.Migrate(db); err != nil {
			return err
		}
		env.DB = db
		env.Repo = pg.NewOrderPostgres(db)
		return nil
	}))
	t.Cleanup(func() { _ = env.DB.Close() })

	return env
}

func order(id, orderID, email string) models.Order {
	now := time.Now().UTC().Truncate(time.Microsecond)
	processing := now.Add(24 * time.Hour)
	return models.Order{
		ID:            id,
		OrderID:       orderID,
		FirstName:     "Jane",
		LastName:      "Doe",
		Email:         email,
		Phone:         "555-0100",
		Address:       "1 Main St",
		City:          "Austin",
		State:         "TX",
		ZipCode:       "73301",
		Country:       "US",
		PaymentMethod: "crypto",
		Cart: models.CartItems{
			{Title: "2020 Audi Q3", Price: 30000, Year: "2020", Type: "SUV"},
			{Title: "2018 BMW X1", Price: 21000, Year: "2018", Type: "SUV"},
		},
		Total:  51000,
		Status: models.StatusPending,
		TrackingDetails: models.TrackingDetails{
			Destination:            "Austin, TX",
			ExpectedProcessingDate: &processing,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func Test_Postgres_CreateGetFind(t *testing.T) {
	env := upPostgres(t)
	ctx := context.Background()

	require.NoError(t, env.Repo.Create(ctx, order("11111111-1111-1111-1111-111111111111", "ORD-PG0000001", "jane@x.com")))

	got, err := env.Repo.Get(ctx, "11111111-1111-1111-1111-111111111111")
	require.NoError(t, err)
	require.Len(t, got.Cart, 2)
	require.Equal(t, "2018 BMW X1", got.Cart[1].Title)
	require.Equal(t, "Austin, TX", got.TrackingDetails.Destination)
	require.NotNil(t, got.TrackingDetails.ExpectedProcessingDate)
	require.Nil(t, got.TrackingDetails.ActualShippedDate)

	_, err = env.Repo.FindByOrderIDAndEmail(ctx, "ORD-PG0000001", "jane@x.com")
	require.NoError(t, err)

	_, err = env.Repo.FindByOrderIDAndEmail(ctx, "ORD-PG0000001", "nope@x.com")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func Test_Postgres_Create_DuplicateOrderID(t *testing.T) {
	env := upPostgres(t)
	ctx := context.Background()

	require.NoError(t, env.Repo.Create(ctx, order("11111111-1111-1111-1111-111111111111", "ORD-DUPLICATE", "a@x.com")))
	err := env.Repo.Create(ctx, order("22222222-2222-2222-2222-222222222222", "ORD-DUPLICATE", "b@x.com"))
	require.ErrorIs(t, err, repository.ErrDuplicate)
}

func Test_Postgres_UpdateNotificationsDelete(t *testing.T) {
	env := upPostgres(t)
	ctx := context.Background()
	id := "33333333-3333-3333-3333-333333333333"

	require.NoError(t, env.Repo.Create(ctx, order(id, "ORD-PGUPDATE1", "a@x.com")))

	st := models.StatusShipped
	shipped := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	got, err := env.Repo.Update(ctx, id, models.OrderUpdate{
		Status:          &st,
		TrackingDetails: &models.TrackingDetails{Destination: "Austin, TX", ActualShippedDate: &shipped},
	})
	require.NoError(t, err)
	require.Equal(t, models.StatusShipped, got.Status)
	require.NotNil(t, got.TrackingDetails.ActualShippedDate)
	require.True(t, shipped.Equal(*got.TrackingDetails.ActualShippedDate))
	require.Nil(t, got.TrackingDetails.ExpectedProcessingDate, "tracking is replaced as a whole")

	_, err = env.Repo.Update(ctx, "44444444-4444-4444-4444-444444444444", models.OrderUpdate{Status: &st})
	require.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, env.Repo.SetNotifications(ctx, id, models.Notifications{AdminAlertSent: true, LastError: "smtp down"}))
	got, err = env.Repo.Get(ctx, id)
	require.NoError(t, err)
	require.True(t, got.Notifications.AdminAlertSent)
	require.Equal(t, "smtp down", got.Notifications.LastError)

	all, err := env.Repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	require.NoError(t, env.Repo.Delete(ctx, id))
	require.ErrorIs(t, env.Repo.Delete(ctx, id), repository.ErrNotFound)
}

func Test_Postgres_List_Empty_OK(t *testing.T) {
	env := upPostgres(t)

	all, err := env.Repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 0)
}

func Test_Postgres_Create_MissingTable_Error(t *testing.T) {
	env := upPostgres(t)
	require.NoError(t, env.DB.DropTable(&models.Order{}).Error)

	err := env.Repo.Create(context.Background(), order("55555555-5555-5555-5555-555555555555", "ORD-NOTABLE01", "a@x.com"))
	require.Error(t, err)
	require.NotErrorIs(t, err, repository.ErrDuplicate)
}
