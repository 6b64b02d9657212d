package service

import (
	"fmt"
	"time"

	"github.com/giftbar/ledger/pkg/uow"
)

type AppServices struct {
	AccountService   *AccountService
	OperationService *OperationService
	BalanceService   *BalanceService
	PayoutService    *PayoutService
	PurchaseService  *PurchaseService
	FundingService   *FundingService
	RateService      *RateService
	MovementService  *MovementService
}

func Factory(unitOfWork uow.UOW, fetcher QuoteFetcher, giftTTL time.Duration) (*AppServices, error) {
	rateService, rateErr := NewRateService(unitOfWork, fetcher)
	if rateErr != nil {
		return nil, fmt.Errorf("service factory: %s", rateErr.Error())
	}

	accountService, accountErr := NewAccountService(unitOfWork)
	if accountErr != nil {
		return nil, fmt.Errorf("service factory: %s", accountErr.Error())
	}

	operationService, operationErr := NewOperationService(unitOfWork, rateService)
	if operationErr != nil {
		return nil, fmt.Errorf("service factory: %s", operationErr.Error())
	}

	balanceService, balanceErr := NewBalanceService(unitOfWork)
	if balanceErr != nil {
		return nil, fmt.Errorf("service factory: %s", balanceErr.Error())
	}

	payoutService, payoutErr := NewPayoutService(unitOfWork, rateService)
	if payoutErr != nil {
		return nil, fmt.Errorf("service factory: %s", payoutErr.Error())
	}

	purchaseService, purchaseErr := NewPurchaseService(unitOfWork, giftTTL)
	if purchaseErr != nil {
		return nil, fmt.Errorf("service factory: %s", purchaseErr.Error())
	}

	fundingService, fundingErr := NewFundingService(unitOfWork, rateService)
	if fundingErr != nil {
		return nil, fmt.Errorf("service factory: %s", fundingErr.Error())
	}

	movementService, movementErr := NewMovementService(unitOfWork)
	if movementErr != nil {
		return nil, fmt.Errorf("service factory: %s", movementErr.Error())
	}

	return &AppServices{
		AccountService:   accountService,
		OperationService: operationService,
		BalanceService:   balanceService,
		PayoutService:    payoutService,
		PurchaseService:  purchaseService,
		FundingService:   fundingService,
		RateService:      rateService,
		MovementService:  movementService,
	}, nil
}
