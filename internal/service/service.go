package service

import (
	cancellationhandlers "github.com/salonhq/loyalty/internal/handlers/cancellations"
	ledgerhandlers "github.com/salonhq/loyalty/internal/handlers/ledger"
	referralhandlers "github.com/salonhq/loyalty/internal/handlers/referrals"
	rewardhandlers "github.com/salonhq/loyalty/internal/handlers/rewards"
	"github.com/salonhq/loyalty/internal/pg"
	"github.com/salonhq/loyalty/internal/repo"
	"github.com/salonhq/loyalty/internal/rules"
	"github.com/salonhq/loyalty/internal/service/cancellationservice"
	"github.com/salonhq/loyalty/internal/service/ledgerservice"
	"github.com/salonhq/loyalty/internal/service/redemptionservice"
	"github.com/salonhq/loyalty/internal/service/referralservice"
)

type Services struct {
	Rules               rules.Provider
	LedgerService       ledgerhandlers.Service
	ReferralService     referralhandlers.Service
	RedemptionService   rewardhandlers.Service
	CancellationService cancellationhandlers.Service
}

func New(repos *repo.Repositories, txManager pg.TXManager) *Services {
	rulesService := rules.New(repos.Settings)
	ledgerService := ledgerservice.New(repos.Accounts, repos.Transactions, rulesService, txManager)
	return &Services{
		Rules:               rulesService,
		LedgerService:       ledgerService,
		ReferralService:     referralservice.New(ledgerService, repos.Accounts, repos.Transactions, rulesService),
		RedemptionService:   redemptionservice.New(repos.Accounts, repos.Transactions, repos.Rewards, rulesService, txManager),
		CancellationService: cancellationservice.New(repos.Vouchers, repos.Cancellations, repos.Blocks, rulesService, txManager),
	}
}
