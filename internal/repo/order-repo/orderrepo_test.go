package orderrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/agrofount/agrofount-credit/internal/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindOrdersByUserID(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	rows := pgxmock.NewRows([]string{"id", "user_id", "status", "total_price", "created_at"}).
		AddRow(2, 1, domain.OrderStatusCompleted, decimal.NewFromInt(40000), now).
		AddRow(1, 1, domain.OrderStatusCancelled, decimal.NewFromInt(10000), now.Add(-24*time.Hour))
	mock.ExpectQuery(regexp.QuoteMeta("FROM orders")).
		WithArgs(1).
		WillReturnRows(rows)

	orders, err := repo.FindOrdersByUserID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, domain.OrderStatusCompleted, orders[0].Status)

	mock.ExpectQuery(regexp.QuoteMeta("FROM orders")).
		WithArgs(1).
		WillReturnError(errors.New("database error"))

	_, err = repo.FindOrdersByUserID(context.Background(), 1)
	assert.Error(t, err)
}
