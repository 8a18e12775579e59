package orders

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lowkeylegends/storefront-backend/pkg/config"
	"github.com/lowkeylegends/storefront-backend/pkg/db"
	"github.com/lowkeylegends/storefront-backend/pkg/db/models"
	pkgerrors "github.com/lowkeylegends/storefront-backend/pkg/errors"
)

func setupOrderTest(t *testing.T) (*db.Client, Service) {
	t.Helper()

	client, err := db.New(context.Background(), config.DBConfig{
		Driver: config.DriverSQLite,
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	require.NoError(t, client.DB().AutoMigrate(&models.Order{}, &models.OrderItem{}))

	repo := NewRepository(client.DB())
	return client, NewService(repo, client)
}

func int64ptr(v int64) *int64 { return &v }

func seedOrder(t *testing.T, svc Service, userID *int64, number string, items ...models.OrderItem) *models.Order {
	t.Helper()
	order := &models.Order{
		UserID:      userID,
		OrderNumber: number,
		Status:      "pending",
		Subtotal:    29.99,
		TaxAmount:   2.17,
		TotalAmount: 32.16,
	}
	require.NoError(t, svc.Create(context.Background(), order, items))
	return order
}

func TestCreatePersistsOrderAndItems(t *testing.T) {
	client, svc := setupOrderTest(t)

	order := seedOrder(t, svc, int64ptr(1), "",
		models.OrderItem{ProductID: 101, ProductName: "Lowkey King Tee", Quantity: 2, UnitPrice: 29.99, TotalPrice: 59.98},
		models.OrderItem{ProductID: 102, ProductName: "Shadow Tumbler", Quantity: 1, UnitPrice: 24.99, TotalPrice: 24.99},
	)

	assert.NotZero(t, order.ID)
	assert.True(t, strings.HasPrefix(order.OrderNumber, "LL-"))

	var count int64
	require.NoError(t, client.DB().Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestListForUserNewestFirstWithItems(t *testing.T) {
	client, svc := setupOrderTest(t)

	first := seedOrder(t, svc, int64ptr(7), "LL-A",
		models.OrderItem{ProductID: 101, ProductName: "Lowkey King Tee", Quantity: 1, UnitPrice: 29.99, TotalPrice: 29.99})
	second := seedOrder(t, svc, int64ptr(7), "LL-B")
	seedOrder(t, svc, int64ptr(8), "LL-C")

	// Separate the created_at timestamps so ordering is deterministic.
	require.NoError(t, client.DB().Model(&models.Order{}).Where("id = ?", first.ID).
		Update("created_at", time.Now().Add(-time.Hour)).Error)

	got, err := svc.ListForUser(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, second.OrderNumber, got[0].OrderNumber)
	assert.Equal(t, first.OrderNumber, got[1].OrderNumber)
	assert.Empty(t, got[0].Items)
	require.Len(t, got[1].Items, 1)
	assert.Equal(t, "Lowkey King Tee", got[1].Items[0].ProductName)
}

func TestGetByNumberOwner(t *testing.T) {
	_, svc := setupOrderTest(t)

	seedOrder(t, svc, int64ptr(7), "LL-OWNED",
		models.OrderItem{ProductID: 101, ProductName: "Lowkey King Tee", Quantity: 1, UnitPrice: 29.99, TotalPrice: 29.99})

	got, err := svc.GetByNumber(context.Background(), 7, "LL-OWNED")
	require.NoError(t, err)
	assert.Equal(t, "LL-OWNED", got.OrderNumber)
	require.Len(t, got.Items, 1)
}

func TestGetByNumberGuestOrderReadableByAnyone(t *testing.T) {
	_, svc := setupOrderTest(t)

	seedOrder(t, svc, nil, "LL-GUEST")

	for _, caller := range []int64{0, 42} {
		got, err := svc.GetByNumber(context.Background(), caller, "LL-GUEST")
		require.NoError(t, err)
		assert.Equal(t, "LL-GUEST", got.OrderNumber)
	}
}

func TestGetByNumberOtherUserDenied(t *testing.T) {
	_, svc := setupOrderTest(t)

	seedOrder(t, svc, int64ptr(7), "LL-OWNED")

	_, err := svc.GetByNumber(context.Background(), 8, "LL-OWNED")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeForbidden, pkgerrors.CodeOf(err))
	assert.Contains(t, err.Error(), "Access denied")
}

func TestGetByNumberOwnedOrderReadableWithoutAuth(t *testing.T) {
	_, svc := setupOrderTest(t)

	seedOrder(t, svc, int64ptr(7), "LL-OWNED")

	got, err := svc.GetByNumber(context.Background(), 0, "LL-OWNED")
	require.NoError(t, err)
	assert.Equal(t, "LL-OWNED", got.OrderNumber)
}

func TestGetByNumberUnknown(t *testing.T) {
	_, svc := setupOrderTest(t)

	_, err := svc.GetByNumber(context.Background(), 7, "LL-MISSING")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.CodeOf(err))
}

func TestUpdateStatusAndFulfillmentID(t *testing.T) {
	client, svc := setupOrderTest(t)

	order := seedOrder(t, svc, int64ptr(7), "LL-UPD")

	require.NoError(t, svc.UpdateStatus(context.Background(), order.ID, "processing"))
	require.NoError(t, svc.UpdateFulfillmentID(context.Background(), order.ID, "pf-123"))

	var row models.Order
	require.NoError(t, client.DB().First(&row, order.ID).Error)
	assert.Equal(t, "processing", row.Status)
	require.NotNil(t, row.PrintifyOrderID)
	assert.Equal(t, "pf-123", *row.PrintifyOrderID)
}

func TestNewOrderNumberFormat(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	number := NewOrderNumber(now)
	assert.True(t, strings.HasPrefix(number, "LL-20260110-"))
	assert.Len(t, number, len("LL-20260110-")+6)
	assert.NotEqual(t, number, NewOrderNumber(now))
}
