package lists

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/kbukum/bukku-go/bukkutest"
	"github.com/kbukum/bukku-go/errors"
	"github.com/kbukum/bukku-go/httpclient"
)

func TestService_Get(t *testing.T) {
	srv := bukkutest.NewServer(t)
	srv.SetList("countries", map[string]any{
		"items": []map[string]any{{"code": "MY", "name": "Malaysia"}},
	})
	srv.SetList("tax_codes", map[string]any{
		"items": []map[string]any{{"id": 1, "code": "SR-6", "rate": 6, "type": "sale"}},
	})
	svc := NewService(srv.NewClient(t))

	resp, err := svc.Get(context.Background(), &Request{
		Lists:  []ListType{Countries, TaxCodes, Terms},
		Params: []httpclient.Params{{"product_id": 3}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Countries == nil || len(resp.Countries.Items) != 1 || resp.Countries.Items[0].Name != "Malaysia" {
		t.Errorf("countries = %+v", resp.Countries)
	}
	if resp.TaxCodes == nil || resp.TaxCodes.Items[0].Rate != 6 {
		t.Errorf("tax codes = %+v", resp.TaxCodes)
	}
	if resp.Terms == nil || len(resp.Terms.Items) != 0 {
		t.Errorf("terms = %+v", resp.Terms)
	}
	if resp.Settings != nil {
		t.Errorf("settings should be absent, got %+v", resp.Settings)
	}

	req, _ := srv.LastRequest()
	if req.Method != http.MethodPost || req.Path != "/v2/lists" {
		t.Errorf("request = %s %s", req.Method, req.Path)
	}
	var body struct {
		Lists  []string         `json:"lists"`
		Params []map[string]any `json:"params"`
	}
	if err := req.DecodeJSON(&body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(body.Lists) != 3 || body.Lists[2] != "terms" {
		t.Errorf("lists = %v", body.Lists)
	}
	if len(body.Params) != 1 || body.Params[0]["product_id"] != float64(3) {
		t.Errorf("params = %v", body.Params)
	}
}

func TestService_Get_EmptyLists(t *testing.T) {
	srv := bukkutest.NewServer(t)
	svc := NewService(srv.NewClient(t))

	for _, req := range []*Request{nil, {}} {
		_, err := svc.Get(context.Background(), req)
		appErr, ok := errors.AsAppError(err)
		if !ok {
			t.Fatalf("expected AppError, got %v", err)
		}
		if appErr.Message != "The 'lists' array in the request body is required and cannot be empty." {
			t.Errorf("message = %q", appErr.Message)
		}
	}
	if reqs := srv.Requests(); len(reqs) != 0 {
		t.Errorf("expected no requests, got %d", len(reqs))
	}
}

func TestService_Get_Settings(t *testing.T) {
	srv := bukkutest.NewServer(t)
	srv.SetList("settings", map[string]any{
		"version": "42",
		"items":   map[string]any{"default_tax_mode": "exclusive", "store_on": false},
	})
	srv.SetList("limits", []map[string]any{{
		"plan_type":   "pro",
		"transaction": map[string]any{"usage": 10, "limit": 1000},
		"email":       map[string]any{"usage": 1, "limit": false},
	}})
	svc := NewService(srv.NewClient(t))

	resp, err := svc.Get(context.Background(), &Request{Lists: []ListType{Settings, Limits}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Settings.Version != "42" || resp.Settings.Items.DefaultTaxMode != "exclusive" {
		t.Errorf("settings = %+v", resp.Settings)
	}
	if len(resp.Limits) != 1 || resp.Limits[0].Email.Limit != false {
		t.Errorf("limits = %+v", resp.Limits)
	}
}

func TestParseTypes(t *testing.T) {
	got, err := ParseTypes("countries", "state_list")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[1] != StateList {
		t.Errorf("got %v", got)
	}
	if _, err := ParseTypes("countries", "planets"); err == nil {
		t.Error("expected error for unknown list type")
	}
	if len(AllTypes) != 28 {
		t.Errorf("AllTypes has %d entries", len(AllTypes))
	}
}

func TestService_Get_SettingsFields(t *testing.T) {
	srv := bukkutest.NewServer(t)
	srv.SetList("settings", map[string]any{
		"version": "v42",
		"items": map[string]any{
			"default_receivable_account_id":                12,
			"sale_invoice_form_design_id":                  3,
			"period_lock_date":                             "2025-12-31",
			"payment_gateway_fee_account_id":               nil,
			"signature1_bottom_label":                      "Authorised",
			"signature_sale_invoice":                       []int{1, 2},
			"store_order_received_notification_recipients": []string{"ops@acme.my"},
			"mysst_sales_tax_on":                           true,
			"brand_new_setting":                            "kept",
		},
	})
	svc := NewService(srv.NewClient(t))

	resp, err := svc.Get(context.Background(), &Request{Lists: []ListType{Settings}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Settings == nil {
		t.Fatal("settings missing")
	}
	if resp.Settings.Version != "v42" {
		t.Errorf("version = %q", resp.Settings.Version)
	}

	items := resp.Settings.Items
	if items.DefaultReceivableAccountID != 12 || items.SaleInvoiceFormDesignID != 3 {
		t.Errorf("account ids = %d, %d", items.DefaultReceivableAccountID, items.SaleInvoiceFormDesignID)
	}
	if items.PeriodLockDate == nil || *items.PeriodLockDate != "2025-12-31" {
		t.Errorf("period_lock_date = %v", items.PeriodLockDate)
	}
	if items.PaymentGatewayFeeAccountID != nil {
		t.Errorf("payment_gateway_fee_account_id = %v, want nil", *items.PaymentGatewayFeeAccountID)
	}
	if items.Signature1BottomLabel != "Authorised" {
		t.Errorf("signature1_bottom_label = %q", items.Signature1BottomLabel)
	}
	if len(items.SignatureSaleInvoice) != 2 || items.SignatureSaleInvoice[1] != 2 {
		t.Errorf("signature_sale_invoice = %v", items.SignatureSaleInvoice)
	}
	if len(items.StoreOrderReceivedNotificationRecipients) != 1 {
		t.Errorf("recipients = %v", items.StoreOrderReceivedNotificationRecipients)
	}
	if !items.MySSTSalesTaxOn {
		t.Error("mysst_sales_tax_on = false")
	}
	if len(items.Extra) != 1 || items.Extra["brand_new_setting"] != "kept" {
		t.Errorf("extra = %v", items.Extra)
	}
}

func TestContactItem_OptionalFields(t *testing.T) {
	var item ContactItem
	data := `{"id":7,"legal_name":"Acme","types":["customer"],"is_archived":false,"field_1":"A","field_8":"H"}`
	if err := json.Unmarshal([]byte(data), &item); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Field1 != "A" || item.Field8 != "H" {
		t.Errorf("fields = %q, %q", item.Field1, item.Field8)
	}
}
