package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shopkeeper/domain/entities"
	"shopkeeper/domain/interfaces"
	"shopkeeper/domain/utils"

	log "github.com/sirupsen/logrus"
)

// purchaseService implements the buy transaction over the item listing,
// balance ledger and purchase log
type purchaseService struct {
	balance      interfaces.BalanceService
	shopItemRepo interfaces.ShopItemRepository
	purchaseRepo interfaces.PurchaseRepository
	locker       *utils.UserLocker
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(
	balance interfaces.BalanceService,
	shopItemRepo interfaces.ShopItemRepository,
	purchaseRepo interfaces.PurchaseRepository,
	locker *utils.UserLocker,
) interfaces.PurchaseService {
	return &purchaseService{
		balance:      balance,
		shopItemRepo: shopItemRepo,
		purchaseRepo: purchaseRepo,
		locker:       locker,
	}
}

// Purchase debits the item price through the ledger and appends an
// ownership record. If the append fails after the debit landed, the price
// is credited back before the failure is reported. Buying never touches
// the role gateway: ownership is not equipping.
func (s *purchaseService) Purchase(ctx context.Context, userID, roleID string) (*interfaces.PurchaseResult, error) {
	unlock := s.locker.Lock(userID)
	defer unlock()

	item, err := s.shopItemRepo.GetByRoleID(ctx, roleID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up item: %w", err)
	}
	if item == nil {
		return nil, ErrItemUnavailable
	}

	owned, err := s.purchaseRepo.Exists(ctx, userID, roleID)
	if err != nil {
		return nil, fmt.Errorf("failed to check ownership: %w", err)
	}
	if owned {
		return nil, ErrAlreadyOwned
	}

	newBalance, err := s.balance.Debit(ctx, userID, item.Price)
	if err != nil {
		if errors.Is(err, ErrInsufficientFunds) {
			return nil, err
		}
		// Nothing has committed, nothing to compensate
		return nil, fmt.Errorf("%w: %v", ErrBalanceUpdateFailed, err)
	}

	purchase := &entities.Purchase{
		UserID:      userID,
		RoleID:      roleID,
		PurchasedAt: time.Now().UTC(),
	}
	if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
		// Debit landed but ownership did not. The user lock is still held,
		// so crediting the price back restores the pre-debit balance.
		if _, refundErr := s.balance.Credit(ctx, userID, item.Price); refundErr != nil {
			log.WithError(refundErr).WithFields(log.Fields{
				"userID": userID,
				"roleID": roleID,
				"price":  item.Price,
			}).Error("refund after failed purchase record also failed, manual correction required")
		}
		return nil, fmt.Errorf("%w: %v", ErrPurchaseRecordFailed, err)
	}

	return &interfaces.PurchaseResult{
		ItemName:   item.Name,
		Price:      item.Price,
		NewBalance: newBalance,
	}, nil
}
