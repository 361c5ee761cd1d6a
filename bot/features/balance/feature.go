package balance

import (
	"shopkeeper/domain/interfaces"
)

type Feature struct {
	balanceService interfaces.BalanceService
}

func New(balanceService interfaces.BalanceService) *Feature {
	return &Feature{
		balanceService: balanceService,
	}
}
