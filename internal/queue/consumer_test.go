package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyanshi-bakery/storefront/internal/models"
	"github.com/priyanshi-bakery/storefront/internal/repository"
	"github.com/priyanshi-bakery/storefront/pkg/logger"
)

func newTestConsumer(repo repository.OrderRepository) *Consumer {
	return &Consumer{
		repo:          repo,
		log:           logger.New("error"),
		minProcessing: 0,
		maxProcessing: 0,
	}
}

func createPendingOrder(t *testing.T, repo *repository.InMemoryOrderRepository) int64 {
	order := &models.Order{
		CustomerName:  "Priya",
		CustomerEmail: "priya@example.com",
		Items:         []models.OrderItem{{ProductID: 1, Quantity: 2}},
	}
	require.NoError(t, repo.Create(context.Background(), order))
	return order.ID
}

func TestProcessOrder_CompletesOrder(t *testing.T) {
	repo := repository.NewInMemoryOrderRepository()
	orderID := createPendingOrder(t, repo)
	c := newTestConsumer(repo)

	c.ProcessOrder(context.Background(), orderID)

	status, err := repo.GetStatus(context.Background(), orderID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCompleted, status)
}

func TestProcessOrder_UnknownOrder(t *testing.T) {
	repo := repository.NewInMemoryOrderRepository()
	c := newTestConsumer(repo)

	// must not panic or create anything
	c.ProcessOrder(context.Background(), 999)

	_, err := repo.GetStatus(context.Background(), 999)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestProcessOrder_CancelledMidProcessing(t *testing.T) {
	repo := repository.NewInMemoryOrderRepository()
	orderID := createPendingOrder(t, repo)

	c := newTestConsumer(repo)
	c.minProcessing = time.Hour
	c.maxProcessing = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.ProcessOrder(ctx, orderID)
		close(done)
	}()

	// let the consumer reach the processing state, then cancel
	require.Eventually(t, func() bool {
		status, err := repo.GetStatus(context.Background(), orderID)
		return err == nil && status == models.OrderStatusProcessing
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done

	status, err := repo.GetStatus(context.Background(), orderID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusProcessing, status, "cancelled order must not be marked completed")
}
