package repo

import (
	"github.com/salonhq/loyalty/internal/pg"
	accountrepo "github.com/salonhq/loyalty/internal/repo/account-repo"
	blockrepo "github.com/salonhq/loyalty/internal/repo/block-repo"
	cancellationrepo "github.com/salonhq/loyalty/internal/repo/cancellation-repo"
	rewardrepo "github.com/salonhq/loyalty/internal/repo/reward-repo"
	settingsrepo "github.com/salonhq/loyalty/internal/repo/settings-repo"
	transactionrepo "github.com/salonhq/loyalty/internal/repo/transaction-repo"
	voucherrepo "github.com/salonhq/loyalty/internal/repo/voucher-repo"
)

type Repositories struct {
	Accounts      *accountrepo.Repository
	Transactions  *transactionrepo.Repository
	Rewards       *rewardrepo.Repository
	Vouchers      *voucherrepo.Repository
	Cancellations *cancellationrepo.Repository
	Blocks        *blockrepo.Repository
	Settings      *settingsrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		Accounts:      accountrepo.New(conn),
		Transactions:  transactionrepo.New(conn),
		Rewards:       rewardrepo.New(conn),
		Vouchers:      voucherrepo.New(conn),
		Cancellations: cancellationrepo.New(conn),
		Blocks:        blockrepo.New(conn),
		Settings:      settingsrepo.New(conn),
	}
}
