package transport_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	appinventory "github.com/anhlog/wms/application/inventory"
	"github.com/anhlog/wms/constant"
	inventorymocks "github.com/anhlog/wms/mocks/repository/inventory"
	txmocks "github.com/anhlog/wms/mocks/repository/tx"
	"github.com/anhlog/wms/model"
	"github.com/anhlog/wms/transport"
)

func TestRestHandler_ListLedger_TenantScoping(t *testing.T) {
	tests := []struct {
		name           string
		ctx            context.Context
		query          string
		wantCustomerID uint64
	}{
		{
			name:           "admin without customer_id lists across tenants",
			ctx:            context.WithValue(context.Background(), constant.RoleKey, constant.RoleAdmin),
			query:          "",
			wantCustomerID: 0,
		},
		{
			name:           "admin may narrow to one tenant",
			ctx:            context.WithValue(context.Background(), constant.RoleKey, constant.RoleAdmin),
			query:          "?customer_id=5",
			wantCustomerID: 5,
		},
		{
			name: "partner is pinned to its own tenant",
			ctx: context.WithValue(
				context.WithValue(context.Background(), constant.RoleKey, constant.RolePartner),
				constant.CustomerIDKey, uint64(7)),
			query:          "?customer_id=5",
			wantCustomerID: 7,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			inventoryRepo := inventorymocks.NewInventoryRepository(t)
			inventoryRepo.On("ListLedger", mock.Anything, mock.MatchedBy(func(f *model.LedgerFilter) bool {
				return f.CustomerID == tt.wantCustomerID
			})).Return([]model.LedgerEntry{}, 0, nil).Once()

			rh := &transport.RestHandler{
				InventoryApp: appinventory.NewInventoryApp(txmocks.NewTxRepository(t), inventoryRepo),
			}

			req := httptest.NewRequest(http.MethodGet, "/v1/inventory/ledger"+tt.query, nil)
			req = req.WithContext(tt.ctx)
			rec := httptest.NewRecorder()

			rh.ListLedger(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
			}
			var envelope struct {
				Code string `json:"code"`
			}
			if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if envelope.Code != constant.ErrorTypeCode[constant.Successful] {
				t.Fatalf("code = %s, want %s", envelope.Code, constant.ErrorTypeCode[constant.Successful])
			}
		})
	}
}
