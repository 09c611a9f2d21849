package services

import (
	"errors"

	"github.com/PhamKien043/datn-sub000/entity"
	"gorm.io/gorm"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrStatusConflict    = errors.New("status changed concurrently")
)

// The happy path advances one step at a time; failed/cancelled exit it.
var statusChain = map[string]string{
	entity.StatusPending:         entity.StatusDepositPaid,
	entity.StatusDepositPaid:     entity.StatusConfirmed,
	entity.StatusConfirmed:       entity.StatusAwaitingBalance,
	entity.StatusAwaitingBalance: entity.StatusCompleted,
}

// NextStatus reports the next step in the chain, if any.
func NextStatus(current string) (string, bool) {
	next, ok := statusChain[current]
	return next, ok
}

func cancellable(current string) bool {
	_, inChain := statusChain[current]
	return inChain // everything before completed, excluding terminal states
}

// Advance moves an order one step along the chain. The guarded update makes
// concurrent admins race safely: exactly one wins, the rest see a conflict.
func (s *OrderService) Advance(orderID uint) (string, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return "", err
	}
	current := s.Status.Name(o.OrderStatusID)
	next, ok := NextStatus(current)
	if !ok {
		return "", ErrInvalidTransition
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, s.Status.ID(current), s.Status.ID(next))
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrStatusConflict
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return next, nil
}

// SetStatus accepts an explicit target but only for moves the chain allows:
// the next step, or cancellation of a not-yet-completed order.
func (s *OrderService) SetStatus(orderID uint, target string) error {
	if !s.Status.Known(target) {
		return ErrInvalidTransition
	}
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return err
	}
	current := s.Status.Name(o.OrderStatusID)

	legal := false
	if next, ok := NextStatus(current); ok && target == next {
		legal = true
	}
	if target == entity.StatusCancelled && cancellable(current) {
		legal = true
	}
	if target == entity.StatusFailed && current == entity.StatusPending {
		legal = true
	}
	if !legal {
		return ErrInvalidTransition
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, s.Status.ID(current), s.Status.ID(target))
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrStatusConflict
		}
		return nil
	})
}
