package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/sutratex/bunai-backend/internal/core/domain"
)

var entryTypes = map[domain.EntryType]bool{
	domain.EntryKhata:       true,
	domain.EntryBill:        true,
	domain.EntryTransaction: true,
	domain.EntryCheque:      true,
	domain.EntryInventory:   true,
	domain.EntryBank:        true,
	domain.EntryPayable:     true,
	domain.EntryReceivable:  true,
}

var partyKinds = map[domain.PartyKind]bool{
	domain.PartyVendor:   true,
	domain.PartyCustomer: true,
}

// RegisterCustomValidators wires the domain enum checks into gin's binding
// validator. Call once during startup, before any request binding happens.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("entrytype", func(fl validator.FieldLevel) bool {
		return entryTypes[domain.EntryType(fl.Field().String())]
	}); err != nil {
		return err
	}
	return v.RegisterValidation("partykind", func(fl validator.FieldLevel) bool {
		return partyKinds[domain.PartyKind(fl.Field().String())]
	})
}
