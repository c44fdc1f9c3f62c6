package purchases

import (
	"context"
	"net/http"
	"testing"

	"github.com/kbukum/bukku-go/bukkutest"
	"github.com/kbukum/bukku-go/common"
	"github.com/kbukum/bukku-go/util"
)

func TestBillService_Create(t *testing.T) {
	srv := bukkutest.NewServer(t)
	api := New(srv.NewClient(t))

	bill, err := api.Bills.Create(context.Background(), &BillCreateParams{
		BillUpdateParams: BillUpdateParams{
			PaymentMode: common.PaymentCredit,
			DocumentFields: common.DocumentFields{
				ContactID:    7,
				Date:         "2025-01-15",
				CurrencyCode: "MYR",
				ExchangeRate: 1,
			},
			TaxMode: common.TaxExclusive,
			FormItems: []common.FormItemParams{
				{AccountID: 50, Description: "Paper", UnitPrice: util.Ptr(10.0), Quantity: util.Ptr(3.0)},
			},
			EInvoiceParams: common.EInvoiceParams{MyInvoisAction: common.MyInvoisValidate},
		},
		Status: common.StatusDraft,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bill.ContactID != 7 || bill.PaymentMode != common.PaymentCredit {
		t.Errorf("bill = %+v", bill)
	}
	if bill.MyInvoisAction == nil || *bill.MyInvoisAction != common.MyInvoisValidate {
		t.Errorf("myinvois_action = %v", bill.MyInvoisAction)
	}
	if len(bill.FormItems) != 1 || bill.FormItems[0].Quantity != 3 {
		t.Errorf("form items = %+v", bill.FormItems)
	}

	req, _ := srv.LastRequest()
	if req.Method != http.MethodPost || req.Path != "/purchases/bills" {
		t.Errorf("request = %s %s", req.Method, req.Path)
	}
	var body map[string]any
	if err := req.DecodeJSON(&body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, key := range []string{"payment_mode", "contact_id", "date", "currency_code", "exchange_rate", "tax_mode", "form_items", "status", "myinvois_action"} {
		if _, ok := body[key]; !ok {
			t.Errorf("body missing %q: %v", key, body)
		}
	}
	for _, key := range []string{"number", "deposit_items", "customs_form_no", "DocumentFields"} {
		if _, ok := body[key]; ok {
			t.Errorf("body should not contain %q: %v", key, body)
		}
	}
}

func TestBillService_List(t *testing.T) {
	srv := bukkutest.NewServer(t)
	srv.Seed("/purchases/bills", map[string]any{
		"number":                   "PB-00001",
		"contact_name":             "Acme Supplies",
		"payment_mode":             "credit",
		"balance":                  30.5,
		"myinvois_document_status": "VALID",
	})
	api := New(srv.NewClient(t))

	list, err := api.Bills.List(context.Background(), &BillListParams{
		DocumentListParams: common.DocumentListParams{
			Search:  "acme",
			Status:  common.StatusAll,
			SortBy:  "date",
			SortDir: common.SortDesc,
		},
		PaymentStatus: common.PaymentStatusOutstanding,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list.Transactions) != 1 {
		t.Fatalf("transactions = %+v", list.Transactions)
	}
	row := list.Transactions[0]
	if row.Number != "PB-00001" || row.Balance == nil || *row.Balance != 30.5 {
		t.Errorf("row = %+v", row)
	}
	if row.MyInvoisDocumentStatus == nil || *row.MyInvoisDocumentStatus != "VALID" {
		t.Errorf("myinvois status = %v", row.MyInvoisDocumentStatus)
	}

	req, _ := srv.LastRequest()
	want := "search=acme&status=all&sort_by=date&sort_dir=desc&payment_status=OUTSTANDING"
	if req.RawQuery != want {
		t.Errorf("query = %q, want %q", req.RawQuery, want)
	}
}

func TestDocumentServices_Paths(t *testing.T) {
	srv := bukkutest.NewServer(t)
	api := New(srv.NewClient(t))

	tests := []struct {
		name string
		path string
		call func(ctx context.Context) error
	}{
		{"orders", "/purchases/orders", func(ctx context.Context) error {
			_, err := api.Orders.List(ctx, nil)
			return err
		}},
		{"goods received notes", "/purchases/goods_received_notes", func(ctx context.Context) error {
			_, err := api.GoodsReceivedNotes.List(ctx, nil)
			return err
		}},
		{"credit notes", "/purchases/credit_notes", func(ctx context.Context) error {
			_, err := api.CreditNotes.List(ctx, nil)
			return err
		}},
		{"payments", "/purchases/payments", func(ctx context.Context) error {
			_, err := api.Payments.List(ctx, nil)
			return err
		}},
		{"refunds", "/purchases/refunds", func(ctx context.Context) error {
			_, err := api.Refunds.List(ctx, nil)
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(context.Background()); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			req, _ := srv.LastRequest()
			if req.Path != tt.path {
				t.Errorf("path = %q, want %q", req.Path, tt.path)
			}
		})
	}
}

func TestPaymentService_Lifecycle(t *testing.T) {
	srv := bukkutest.NewServer(t)
	api := New(srv.NewClient(t))
	ctx := context.Background()

	payment, err := api.Payments.Create(ctx, &PaymentCreateParams{
		PaymentUpdateParams: PaymentUpdateParams{
			DocumentFields: common.DocumentFields{ContactID: 7, Date: "2025-02-01", CurrencyCode: "MYR", ExchangeRate: 1},
			Amount:         100,
			LinkItems:      []common.LinkItemParams{{TargetTransactionID: 3, ApplyAmount: 100}},
			DepositItems:   []common.DepositItemParams{{AccountID: 9, Amount: 100, FeeText: "2%", FeeAccountID: 12}},
		},
		Status: common.StatusReady,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(payment.DepositItems) != 1 || !payment.DepositItems[0].FeeText.IsPercent() {
		t.Errorf("deposit items = %+v", payment.DepositItems)
	}

	voided, err := api.Payments.UpdateStatus(ctx, payment.ID, common.StatusUpdate{Status: common.StatusVoid})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if voided.Status != common.StatusVoid {
		t.Errorf("status = %q", voided.Status)
	}
	req, _ := srv.LastRequest()
	if req.Method != http.MethodPatch || string(req.Body) != `{"status":"void"}` {
		t.Errorf("request = %s %s", req.Method, req.Body)
	}

	if err := api.Payments.Delete(ctx, payment.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
