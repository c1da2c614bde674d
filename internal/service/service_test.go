package service

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/salonhq/loyalty/internal/pg"
	"github.com/salonhq/loyalty/internal/repo"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()
	mockTxManager := pg.NewMockTXManager(ctrl)

	repos := repo.New(mockDB)
	services := New(repos, mockTxManager)

	assert.NotNil(t, services.Rules)
	assert.NotNil(t, services.LedgerService)
	assert.NotNil(t, services.ReferralService)
	assert.NotNil(t, services.RedemptionService)
	assert.NotNil(t, services.CancellationService)
}
