package inventory_test

import (
	"errors"
	"testing"

	appinventory "github.com/anhlog/wms/application/inventory"
	"github.com/anhlog/wms/constant"
	"github.com/anhlog/wms/model"
	cerr "github.com/anhlog/wms/utils/errors"
)

func TestValidateMovement(t *testing.T) {
	tests := []struct {
		name          string
		req           *model.MovementRequest
		wantErr       bool
		wantField     string
		wantDirection constant.MovementDirection
	}{
		{
			name: "success: inbound with no explicit direction gets IN",
			req: &model.MovementRequest{
				CustomerID:   1,
				WarehouseID:  1,
				ProductID:    1,
				MovementType: constant.MovementInbound,
				Quantity:     10,
			},
			wantDirection: constant.DirectionIn,
		},
		{
			name: "success: outbound with matching explicit direction",
			req: &model.MovementRequest{
				CustomerID:   1,
				WarehouseID:  1,
				ProductID:    1,
				MovementType: constant.MovementOutbound,
				Direction:    constant.DirectionOut,
				Quantity:     3,
			},
			wantDirection: constant.DirectionOut,
		},
		{
			name: "success: transfer may carry IN",
			req: &model.MovementRequest{
				CustomerID:   1,
				WarehouseID:  1,
				ProductID:    1,
				MovementType: constant.MovementTransfer,
				Direction:    constant.DirectionIn,
				Quantity:     5,
			},
			wantDirection: constant.DirectionIn,
		},
		{
			name: "success: transfer may carry no direction",
			req: &model.MovementRequest{
				CustomerID:   1,
				WarehouseID:  1,
				ProductID:    1,
				MovementType: constant.MovementTransfer,
				Quantity:     5,
			},
			wantDirection: "",
		},
		{
			name: "error: direction contradicts fixed-direction type",
			req: &model.MovementRequest{
				CustomerID:   1,
				WarehouseID:  1,
				ProductID:    1,
				MovementType: constant.MovementDisposal,
				Direction:    constant.DirectionIn,
				Quantity:     2,
			},
			wantErr:   true,
			wantField: "direction",
		},
		{
			name: "error: zero quantity",
			req: &model.MovementRequest{
				CustomerID:   1,
				WarehouseID:  1,
				ProductID:    1,
				MovementType: constant.MovementInbound,
				Quantity:     0,
			},
			wantErr:   true,
			wantField: "quantity",
		},
		{
			name: "error: negative quantity",
			req: &model.MovementRequest{
				CustomerID:   1,
				WarehouseID:  1,
				ProductID:    1,
				MovementType: constant.MovementInbound,
				Quantity:     -4,
			},
			wantErr:   true,
			wantField: "quantity",
		},
		{
			name: "error: unknown movement type",
			req: &model.MovementRequest{
				CustomerID:   1,
				WarehouseID:  1,
				ProductID:    1,
				MovementType: constant.MovementType("TELEPORT"),
				Quantity:     1,
			},
			wantErr:   true,
			wantField: "movement_type",
		},
		{
			name: "error: unknown direction",
			req: &model.MovementRequest{
				CustomerID:   1,
				WarehouseID:  1,
				ProductID:    1,
				MovementType: constant.MovementTransfer,
				Direction:    constant.MovementDirection("SIDEWAYS"),
				Quantity:     1,
			},
			wantErr:   true,
			wantField: "direction",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := appinventory.ValidateMovement(tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateMovement() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ve cerr.ValidationError
				if !errors.As(err, &ve) {
					t.Fatalf("error type = %T, want ValidationError", err)
				}
				found := false
				for _, f := range ve.Fields {
					if f.Field == tt.wantField {
						found = true
					}
				}
				if !found {
					t.Fatalf("ValidationError fields = %v, want field %q", ve.Fields, tt.wantField)
				}
				return
			}

			if got.Direction != tt.wantDirection {
				t.Fatalf("normalized direction = %q, want %q", got.Direction, tt.wantDirection)
			}
		})
	}
}

// Validation is pure: running the normalized output through again must succeed
// and change nothing.
func TestValidateMovementIdempotent(t *testing.T) {
	req := &model.MovementRequest{
		CustomerID:   1,
		WarehouseID:  2,
		ProductID:    3,
		MovementType: constant.MovementReturnB2C,
		Quantity:     7,
	}

	first, err := appinventory.ValidateMovement(req)
	if err != nil {
		t.Fatalf("first pass: %v", err)
	}
	second, err := appinventory.ValidateMovement(first)
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}

	if *first != *second {
		t.Fatalf("second pass changed the request: %+v vs %+v", first, second)
	}
	if req.Direction != "" {
		t.Fatal("input request mutated")
	}
}
