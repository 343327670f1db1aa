package inventory

import (
	"fmt"

	"github.com/anhlog/wms/constant"
	"github.com/anhlog/wms/model"
	"github.com/anhlog/wms/utils/errors"
)

// ValidateMovement checks a proposed ledger movement against the movement-type
// rules and returns the normalized request. Pure: no I/O, safe to call twice.
//
// Rules:
//   - quantity must be a positive integer
//   - a fixed-direction type given an explicit direction must match it;
//     given none, the fixed direction is filled in
//   - TRANSFER may carry IN, OUT, or no direction at all
func ValidateMovement(req *model.MovementRequest) (*model.MovementRequest, error) {
	fields := make([]errors.FieldError, 0)

	if req.Quantity < 0 {
		fields = append(fields, errors.FieldError{Field: "quantity", Message: "quantity must be a positive integer"})
	}
	// zero rejected on its own, separate from the negative check
	if req.Quantity == 0 {
		fields = append(fields, errors.FieldError{Field: "quantity", Message: "quantity must be greater than zero"})
	}

	if !constant.IsMovementType(req.MovementType) {
		fields = append(fields, errors.FieldError{Field: "movement_type", Message: fmt.Sprintf("unknown movement type %q", req.MovementType)})
		return nil, errors.NewValidationError(fields...)
	}

	if req.Direction != "" && req.Direction != constant.DirectionIn && req.Direction != constant.DirectionOut {
		fields = append(fields, errors.FieldError{Field: "direction", Message: fmt.Sprintf("unknown direction %q", req.Direction)})
		return nil, errors.NewValidationError(fields...)
	}

	normalized := *req
	if fixed, ok := constant.MovementFixedDirection[req.MovementType]; ok {
		if req.Direction != "" && req.Direction != fixed {
			fields = append(fields, errors.FieldError{
				Field:   "direction",
				Message: fmt.Sprintf("movement type %s requires direction %s", req.MovementType, fixed),
			})
		}
		normalized.Direction = fixed
	}

	if len(fields) > 0 {
		return nil, errors.NewValidationError(fields...)
	}
	return &normalized, nil
}
