package services

import (
	"errors"

	"github.com/alimgiray/menuhub/internal/repositories"
)

var (
	ErrMerchantNotFound    = errors.New("merchant not found")
	ErrSpecialHourNotFound = errors.New("special hour not found")
)

func requireMerchant(merchantRepo *repositories.MerchantRepository, merchantID string) error {
	merchant, err := merchantRepo.GetByID(merchantID)
	if err != nil {
		return err
	}
	if merchant == nil {
		return ErrMerchantNotFound
	}
	return nil
}
