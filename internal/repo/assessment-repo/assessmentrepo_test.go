package assessmentrepo

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

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	a := &domain.CreditAssessment{
		UserID:        1,
		TotalSpending: decimal.NewFromInt(150000),
		RepaymentRate: decimal.NewFromInt(100),
		IsEligible:    true,
		Comments:      "eligible with score 1000 from 5 completed orders",
		CreatedAt:     time.Now(),
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO credit_assessments")).
		WithArgs(a.UserID, a.TotalSpending, a.RepaymentRate, a.IsEligible, a.Comments, a.CreatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))

	created, err := repo.Create(context.Background(), a)
	assert.NoError(t, err)
	assert.Equal(t, 1, created.ID)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO credit_assessments")).
		WithArgs(a.UserID, a.TotalSpending, a.RepaymentRate, a.IsEligible, a.Comments, a.CreatedAt).
		WillReturnError(errors.New("database error"))

	_, err = repo.Create(context.Background(), a)
	assert.Error(t, err)
}
