package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-vault-keeper/models"
)

// Field names accepted by [BridgeRequestValidator.Validate].
const (
	FieldOwner       = "owner"
	FieldNumber      = "number"
	FieldSize        = "size"
	FieldKind        = "kind"
	FieldSlot        = "slot"
	FieldStack       = "stack"
	FieldInvolved    = "involved"
	FieldPermissions = "permissions"
	FieldEntity      = "entity"
)

type BridgeRequestValidator struct{}

func NewBridgeRequestValidator() Validator {
	return &BridgeRequestValidator{}
}

func (v *BridgeRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error

	switch value := obj.(type) {
	case models.OpenViewRequest:
		err = v.validateOpenView(value, fields...)
	case *models.OpenViewRequest:
		err = v.validateOpenView(*value, fields...)

	case models.JoinRequest:
		err = v.validateJoin(value, fields...)
	case *models.JoinRequest:
		err = v.validateJoin(*value, fields...)

	case models.MutationRequest:
		err = v.validateMutation(value, fields...)
	case *models.MutationRequest:
		err = v.validateMutation(*value, fields...)

	case models.InteractionRequest:
		err = v.validateInteraction(value, fields...)
	case *models.InteractionRequest:
		err = v.validateInteraction(*value, fields...)

	case models.SlotStack:
		err = validateStack(value)
	case *models.SlotStack:
		if value != nil {
			err = validateStack(*value)
		}

	// relocations carry a free-form cause; unknown causes are ignored later
	case models.RelocationRequest, *models.RelocationRequest:
		return nil

	default:
		return ErrUnsupportedType
	}

	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return nil
}

func (v *BridgeRequestValidator) validateOpenView(req models.OpenViewRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwner, FieldNumber, FieldSize}
	}

	for _, f := range fields {
		switch f {
		case FieldOwner:
			if strings.TrimSpace(req.Owner) == "" {
				return ErrEmptyOwner
			}
		case FieldNumber:
			if req.Number < 1 {
				return ErrInvalidNumber
			}
		case FieldSize:
			// zero and odd sizes are replaced by the default size on load
			if req.Size < 0 || req.Size > models.MaxContainerSize {
				return ErrInvalidSize
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *BridgeRequestValidator) validateJoin(req models.JoinRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwner}
	}

	for _, f := range fields {
		switch f {
		case FieldOwner:
			if strings.TrimSpace(req.Owner) == "" {
				return ErrEmptyOwner
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *BridgeRequestValidator) validateMutation(req models.MutationRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKind, FieldSlot, FieldStack, FieldInvolved, FieldPermissions}
	}

	for _, f := range fields {
		switch f {
		case FieldKind:
			if strings.TrimSpace(req.Kind) == "" {
				return ErrEmptyMutationKind
			}
		case FieldSlot:
			if req.Slot < 0 {
				return ErrInvalidSlot
			}
		case FieldStack:
			if req.Stack == nil {
				continue
			}
			if err := validateStack(*req.Stack); err != nil {
				return err
			}
		case FieldInvolved:
			for i, stack := range req.Involved {
				if err := validateStack(stack); err != nil {
					return fmt.Errorf("involved stack %d: %w", i, err)
				}
			}
		case FieldPermissions:
			for _, p := range req.Permissions {
				if strings.TrimSpace(p) == "" {
					return ErrEmptyPermission
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *BridgeRequestValidator) validateInteraction(req models.InteractionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEntity}
	}

	for _, f := range fields {
		switch f {
		case FieldEntity:
			if strings.TrimSpace(req.Entity) == "" {
				return ErrEmptyEntity
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateStack checks the shape of a stack. Amounts above the stack limit
// are legal here; they are clamped when the vault is saved.
func validateStack(s models.SlotStack) error {
	switch {
	case strings.TrimSpace(s.Type) == "":
		return ErrEmptyItemType
	case s.Amount < 0:
		return ErrInvalidAmount
	case s.MaxStackSize < 0:
		return ErrInvalidMaxStack
	}

	for name, level := range s.Enchantments {
		if level < 1 {
			return fmt.Errorf("%w: %s=%d", ErrInvalidEnchantment, name, level)
		}
	}
	return nil
}
