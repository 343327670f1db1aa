package constant_test

import (
	"testing"

	"github.com/anhlog/wms/constant"
)

func TestCanTransitionOrderStatus(t *testing.T) {
	tests := []struct {
		name    string
		current constant.OrderStatus
		next    constant.OrderStatus
		want    bool
	}{
		{"created to approved", constant.OrderStatusCreated, constant.OrderStatusApproved, true},
		{"created to cancelled", constant.OrderStatusCreated, constant.OrderStatusCancelled, true},
		{"created to failed", constant.OrderStatusCreated, constant.OrderStatusFailed, true},
		{"created to shipped skips steps", constant.OrderStatusCreated, constant.OrderStatusShipped, false},
		{"approved to allocated", constant.OrderStatusApproved, constant.OrderStatusAllocated, true},
		{"approved to on hold", constant.OrderStatusApproved, constant.OrderStatusOnHold, true},
		{"allocated to picked", constant.OrderStatusAllocated, constant.OrderStatusPicked, true},
		{"picked to packed", constant.OrderStatusPicked, constant.OrderStatusPacked, true},
		{"picked to shipped skips packing", constant.OrderStatusPicked, constant.OrderStatusShipped, false},
		{"packed to shipped", constant.OrderStatusPacked, constant.OrderStatusShipped, true},
		{"shipped to delivered", constant.OrderStatusShipped, constant.OrderStatusDelivered, true},
		{"shipped to return requested", constant.OrderStatusShipped, constant.OrderStatusReturnReq, true},
		{"shipped to cancelled", constant.OrderStatusShipped, constant.OrderStatusCancelled, false},
		{"delivered to return requested", constant.OrderStatusDelivered, constant.OrderStatusReturnReq, true},
		{"failed back to created", constant.OrderStatusFailed, constant.OrderStatusCreated, true},
		{"pushed to synced", constant.OrderStatusPushed, constant.OrderStatusSynced, true},
		{"synced to approved", constant.OrderStatusSynced, constant.OrderStatusApproved, true},

		// re-asserting the current status is always a no-op transition
		{"identity on created", constant.OrderStatusCreated, constant.OrderStatusCreated, true},
		{"identity on cancelled", constant.OrderStatusCancelled, constant.OrderStatusCancelled, true},
		{"identity on delivered", constant.OrderStatusDelivered, constant.OrderStatusDelivered, true},

		// cancelled is terminal
		{"cancelled to created", constant.OrderStatusCancelled, constant.OrderStatusCreated, false},
		{"cancelled to approved", constant.OrderStatusCancelled, constant.OrderStatusApproved, false},

		// unknown current status rejects everything except itself
		{"unknown current", constant.OrderStatus("BOGUS"), constant.OrderStatusCreated, false},
		{"known current unknown next", constant.OrderStatusCreated, constant.OrderStatus("BOGUS"), false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := constant.CanTransitionOrderStatus(tt.current, tt.next); got != tt.want {
				t.Fatalf("CanTransitionOrderStatus(%s, %s) = %v, want %v", tt.current, tt.next, got, tt.want)
			}
		})
	}
}

func TestOrderStatusTransitionsCoverAllStatuses(t *testing.T) {
	statuses := []constant.OrderStatus{
		constant.OrderStatusCreated,
		constant.OrderStatusApproved,
		constant.OrderStatusAllocated,
		constant.OrderStatusPicked,
		constant.OrderStatusPacked,
		constant.OrderStatusShipped,
		constant.OrderStatusDelivered,
		constant.OrderStatusCancelled,
		constant.OrderStatusFailed,
		constant.OrderStatusSynced,
		constant.OrderStatusPushed,
	}
	for _, s := range statuses {
		if _, ok := constant.OrderStatusTransitions[s]; !ok {
			t.Fatalf("status %s missing from transition table", s)
		}
	}

	// every target named in the table must itself be a defined status
	for from, targets := range constant.OrderStatusTransitions {
		for _, to := range targets {
			if to != constant.OrderStatusOnHold && to != constant.OrderStatusReturnReq {
				if _, ok := constant.OrderStatusTransitions[to]; !ok {
					t.Fatalf("transition %s -> %s points at a status missing from the table", from, to)
				}
			}
		}
	}
}
