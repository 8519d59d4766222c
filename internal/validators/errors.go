package validators

import "errors"

var (
	ErrInvalidRequest  = errors.New("invalid request")
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyOwner         = errors.New("owner is required")
	ErrInvalidNumber      = errors.New("vault number must be positive")
	ErrInvalidSize        = errors.New("size cannot be negative")
	ErrEmptyMutationKind  = errors.New("mutation kind is required")
	ErrInvalidSlot        = errors.New("slot cannot be negative")
	ErrEmptyItemType      = errors.New("item type is required")
	ErrInvalidAmount      = errors.New("item amount cannot be negative")
	ErrInvalidMaxStack    = errors.New("max stack size cannot be negative")
	ErrInvalidEnchantment = errors.New("enchantment level must be positive")
	ErrEmptyPermission    = errors.New("permission cannot be empty")
	ErrEmptyEntity        = errors.New("entity is required")
)
