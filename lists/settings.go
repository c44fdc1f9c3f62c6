package lists

import (
	"encoding/json"
	"reflect"
	"strings"
	"sync"
)

// SettingsList is the company settings list.
type SettingsList struct {
	Version string       `json:"version"`
	Items   SettingsItem `json:"items"`
}

// SettingsItem holds the company settings. Keys without a field are kept in
// Extra.
type SettingsItem struct {
	AccountListVersion                       string   `json:"account_list_version,omitempty"`
	APIAccessOn                              bool     `json:"api_access_on,omitempty"`
	APIAccessToken                           string   `json:"api_access_token,omitempty"`
	AssetListVersion                         string   `json:"asset_list_version,omitempty"`
	AssetNumberFormatID                      int      `json:"asset_number_format_id,omitempty"`
	BankExpenseEmailMessage                  *string  `json:"bank_expense_email_message,omitempty"`
	BankExpenseFormDesignID                  int      `json:"bank_expense_form_design_id,omitempty"`
	BankExpenseNumberFormatID                int      `json:"bank_expense_number_format_id,omitempty"`
	BankIncomeEmailMessage                   *string  `json:"bank_income_email_message,omitempty"`
	BankIncomeFormDesignID                   int      `json:"bank_income_form_design_id,omitempty"`
	BankIncomeNumberFormatID                 int      `json:"bank_income_number_format_id,omitempty"`
	BankTransferFormDesignID                 int      `json:"bank_transfer_form_design_id,omitempty"`
	BankTransferNumberFormatID               int      `json:"bank_transfer_number_format_id,omitempty"`
	BusinessDigestFrequency                  string   `json:"business_digest_frequency,omitempty"`
	BusinessDigestOn                         bool     `json:"business_digest_on,omitempty"`
	ComingDueEmailMessage                    *string  `json:"coming_due_email_message,omitempty"`
	ComingDueEmailOn                         bool     `json:"coming_due_email_on,omitempty"`
	ComingDueEmailSchedule                   string   `json:"coming_due_email_schedule,omitempty"`
	CompanyAddressesListVersion              string   `json:"company_addresses_list_version,omitempty"`
	ContactGroupListVersion                  string   `json:"contact_group_list_version,omitempty"`
	ContactListVersion                       string   `json:"contact_list_version,omitempty"`
	ContraFormDesignID                       int      `json:"contra_form_design_id,omitempty"`
	ContraNumberFormatID                     int      `json:"contra_number_format_id,omitempty"`
	ContraRemarks                            *string  `json:"contra_remarks,omitempty"`
	ContraSignatures                         any      `json:"contra_signatures,omitempty"`
	CreditLimitPasscode                      *string  `json:"credit_limit_passcode,omitempty"`
	CreditNoteEmailMessage                   *string  `json:"credit_note_email_message,omitempty"`
	CurrencyListVersion                      string   `json:"currency_list_version,omitempty"`
	CustomTransactionNumberOn                bool     `json:"custom_transaction_number_on,omitempty"`
	DashboardBankAccountIDs                  []int    `json:"dashboard_bank_account_ids,omitempty"`
	DashboardCashflowForecastPreset          string   `json:"dashboard_cashflow_forecast_preset,omitempty"`
	DashboardCashflowTrendPreset             string   `json:"dashboard_cashflow_trend_preset,omitempty"`
	DashboardExpenseBreakdownPreset          string   `json:"dashboard_expense_breakdown_preset,omitempty"`
	DashboardExpenseHideSubAccounts          bool     `json:"dashboard_expense_hide_sub_accounts,omitempty"`
	DashboardIncomeBreakdownPreset           string   `json:"dashboard_income_breakdown_preset,omitempty"`
	DashboardIncomeHideSubAccounts           bool     `json:"dashboard_income_hide_sub_accounts,omitempty"`
	DashboardProfitLossTrendPreset           string   `json:"dashboard_profit_loss_trend_preset,omitempty"`
	DashboardSalesTrendPreset                string   `json:"dashboard_sales_trend_preset,omitempty"`
	DefaultAssetCapitalGainAccountID         *int     `json:"default_asset_capital_gain_account_id,omitempty"`
	DefaultAssetGainAccountID                *int     `json:"default_asset_gain_account_id,omitempty"`
	DefaultAssetLossAccountID                *int     `json:"default_asset_loss_account_id,omitempty"`
	DefaultBankAdjustmentAccountID           int      `json:"default_bank_adjustment_account_id,omitempty"`
	DefaultBankCashAccountID                 int      `json:"default_bank_cash_account_id,omitempty"`
	DefaultCOSAccountID                      int      `json:"default_cos_account_id,omitempty"`
	DefaultEmailSubject                      string   `json:"default_email_subject,omitempty"`
	DefaultExpenseAccountID                  int      `json:"default_expense_account_id,omitempty"`
	DefaultIncomeAccountID                   int      `json:"default_income_account_id,omitempty"`
	DefaultInventoryAccountID                int      `json:"default_inventory_account_id,omitempty"`
	DefaultInventoryAdjustmentAccountID      int      `json:"default_inventory_adjustment_account_id,omitempty"`
	DefaultLocationID                        int      `json:"default_location_id,omitempty"`
	DefaultPayableAccountID                  int      `json:"default_payable_account_id,omitempty"`
	DefaultPaymentMethodID                   *int     `json:"default_payment_method_id,omitempty"`
	DefaultProductUnitLabel                  string   `json:"default_product_unit_label,omitempty"`
	DefaultPurchaseTaxCodeID                 int      `json:"default_purchase_tax_code_id,omitempty"`
	DefaultReceivableAccountID               int      `json:"default_receivable_account_id,omitempty"`
	DefaultRoundingOn                        bool     `json:"default_rounding_on,omitempty"`
	DefaultSalesTaxCodeID                    int      `json:"default_sales_tax_code_id,omitempty"`
	DefaultTaxMode                           string   `json:"default_tax_mode,omitempty"`
	DefaultTermID                            int      `json:"default_term_id,omitempty"`
	DefaultTransactionFeeAccountID           int      `json:"default_transaction_fee_account_id,omitempty"`
	DescriptionContra                        *string  `json:"description_contra,omitempty"`
	DescriptionExpense                       *string  `json:"description_expense,omitempty"`
	DescriptionIncome                        *string  `json:"description_income,omitempty"`
	DescriptionJournalEntry                  *string  `json:"description_journal_entry,omitempty"`
	DescriptionPurchaseBill                  *string  `json:"description_purchase_bill,omitempty"`
	DescriptionPurchaseCreditNote            *string  `json:"description_purchase_credit_note,omitempty"`
	DescriptionPurchaseGoodsReceived         *string  `json:"description_purchase_goods_received,omitempty"`
	DescriptionPurchaseOrder                 *string  `json:"description_purchase_order,omitempty"`
	DescriptionPurchasePayment               *string  `json:"description_purchase_payment,omitempty"`
	DescriptionPurchaseRefund                *string  `json:"description_purchase_refund,omitempty"`
	DescriptionSaleCreditNote                *string  `json:"description_sale_credit_note,omitempty"`
	DescriptionSaleDeliveryOrder             *string  `json:"description_sale_delivery_order,omitempty"`
	DescriptionSaleInvoice                   *string  `json:"description_sale_invoice,omitempty"`
	DescriptionSaleOrder                     *string  `json:"description_sale_order,omitempty"`
	DescriptionSalePayment                   *string  `json:"description_sale_payment,omitempty"`
	DescriptionSaleQuote                     *string  `json:"description_sale_quote,omitempty"`
	DescriptionSaleRefund                    *string  `json:"description_sale_refund,omitempty"`
	DescriptionStockAdjustment               *string  `json:"description_stock_adjustment,omitempty"`
	DescriptionStockTransfer                 *string  `json:"description_stock_transfer,omitempty"`
	DescriptionTaxDeemedPayment              *string  `json:"description_tax_deemed_payment,omitempty"`
	DescriptionTransfer                      *string  `json:"description_transfer,omitempty"`
	EInvoiceAttachmentOn                     bool     `json:"e_invoice_attachment_on,omitempty"`
	EInvoiceCCEmailAddresses                 *string  `json:"e_invoice_cc_email_addresses,omitempty"`
	EmailFooter                              *string  `json:"email_footer,omitempty"`
	FieldListVersion                         string   `json:"field_list_version,omitempty"`
	FinancialYearEndMonth                    int      `json:"financial_year_end_month,omitempty"`
	FormDesignListVersion                    string   `json:"form_design_list_version,omitempty"`
	FSFacilityCode                           *string  `json:"fs_facility_code,omitempty"`
	InventoryGRNIDate                        *string  `json:"inventory_grni_date,omitempty"`
	InventoryGRNIOn                          bool     `json:"inventory_grni_on,omitempty"`
	InvoiceEmailMessage                      *string  `json:"invoice_email_message,omitempty"`
	JournalEntryFormDesignID                 int      `json:"journal_entry_form_design_id,omitempty"`
	JournalEntryNumberFormatID               int      `json:"journal_entry_number_format_id,omitempty"`
	JournalEntryRemarks                      *string  `json:"journal_entry_remarks,omitempty"`
	LocationListVersion                      string   `json:"location_list_version,omitempty"`
	MySSTExemptedTaxCodeShow                 bool     `json:"mysst_exempted_tax_code_show,omitempty"`
	MySSTSalesTaxID                          string   `json:"mysst_sales_tax_id,omitempty"`
	MySSTSalesTaxOn                          bool     `json:"mysst_sales_tax_on,omitempty"`
	MySSTServiceTaxID                        string   `json:"mysst_service_tax_id,omitempty"`
	MySSTServiceTaxOn                        bool     `json:"mysst_service_tax_on,omitempty"`
	NumberingListVersion                     string   `json:"numbering_list_version,omitempty"`
	OfficialReceiptRemarks                   *string  `json:"official_receipt_remarks,omitempty"`
	OrderEmailMessage                        *string  `json:"order_email_message,omitempty"`
	OverdueEmailMessage                      *string  `json:"overdue_email_message,omitempty"`
	OverdueEmailOn                           bool     `json:"overdue_email_on,omitempty"`
	OverdueEmailSchedule                     string   `json:"overdue_email_schedule,omitempty"`
	PaymentEmailMessage                      *string  `json:"payment_email_message,omitempty"`
	PaymentGatewayDepositAccountID           int      `json:"payment_gateway_deposit_account_id,omitempty"`
	PaymentGatewayFeeAccountID               *int     `json:"payment_gateway_fee_account_id,omitempty"`
	PaymentGatewayPaymentMethodID            int      `json:"payment_gateway_payment_method_id,omitempty"`
	PaymentGatewayProvider                   string   `json:"payment_gateway_provider,omitempty"`
	PaymentGatewaySecret                     string   `json:"payment_gateway_secret,omitempty"`
	PaymentGatewaySettlementAccountID        *int     `json:"payment_gateway_settlement_account_id,omitempty"`
	PaymentGatewaySwitch                     bool     `json:"payment_gateway_switch,omitempty"`
	PaymentGatewayTrackFee                   bool     `json:"payment_gateway_track_fee,omitempty"`
	PaymentGatewayTrackSettlement            bool     `json:"payment_gateway_track_settlement,omitempty"`
	PaymentGatewayUsername                   *string  `json:"payment_gateway_username,omitempty"`
	PaymentMethodListVersion                 string   `json:"payment_method_list_version,omitempty"`
	PaymentVoucherRemarks                    *string  `json:"payment_voucher_remarks,omitempty"`
	PeriodLockDate                           *string  `json:"period_lock_date,omitempty"`
	PeriodLockPasscode                       *string  `json:"period_lock_passcode,omitempty"`
	PriceLevelListVersion                    string   `json:"price_level_list_version,omitempty"`
	ProductGroupListVersion                  string   `json:"product_group_list_version,omitempty"`
	ProductListVersion                       string   `json:"product_list_version,omitempty"`
	PurchaseBillFormDesignID                 int      `json:"purchase_bill_form_design_id,omitempty"`
	PurchaseBillNumberFormatID               int      `json:"purchase_bill_number_format_id,omitempty"`
	PurchaseCreditNoteFormDesignID           int      `json:"purchase_credit_note_form_design_id,omitempty"`
	PurchaseCreditNoteNumberFormatID         int      `json:"purchase_credit_note_number_format_id,omitempty"`
	PurchaseGoodsReceivedNoteEmailMessage    *string  `json:"purchase_goods_received_note_email_message,omitempty"`
	PurchaseGoodsReceivedNoteFormDesignID    int      `json:"purchase_goods_received_note_form_design_id,omitempty"`
	PurchaseGoodsReceivedNoteNumberFormatID  int      `json:"purchase_goods_received_note_number_format_id,omitempty"`
	PurchaseGoodsReceivedNoteRemarks         *string  `json:"purchase_goods_received_note_remarks,omitempty"`
	PurchaseOrderFormDesignID                int      `json:"purchase_order_form_design_id,omitempty"`
	PurchaseOrderNumberFormatID              int      `json:"purchase_order_number_format_id,omitempty"`
	PurchaseOrderRemarks                     *string  `json:"purchase_order_remarks,omitempty"`
	PurchasePaymentEmailMessage              *string  `json:"purchase_payment_email_message,omitempty"`
	PurchasePaymentFormDesignID              int      `json:"purchase_payment_form_design_id,omitempty"`
	PurchasePaymentNumberFormatID            int      `json:"purchase_payment_number_format_id,omitempty"`
	PurchaseRefundEmailMessage               *string  `json:"purchase_refund_email_message,omitempty"`
	PurchaseRefundFormDesignID               int      `json:"purchase_refund_form_design_id,omitempty"`
	PurchaseRefundNumberFormatID             int      `json:"purchase_refund_number_format_id,omitempty"`
	QuoteEmailMessage                        *string  `json:"quote_email_message,omitempty"`
	RefundEmailMessage                       *string  `json:"refund_email_message,omitempty"`
	SaleCreditNoteFormDesignID               int      `json:"sale_credit_note_form_design_id,omitempty"`
	SaleCreditNoteNumberFormatID             int      `json:"sale_credit_note_number_format_id,omitempty"`
	SaleCreditNoteRemarks                    *string  `json:"sale_credit_note_remarks,omitempty"`
	SaleDeliveryNoteRemarks                  *string  `json:"sale_delivery_note_remarks,omitempty"`
	SaleDeliveryOrderEmailMessage            *string  `json:"sale_delivery_order_email_message,omitempty"`
	SaleDeliveryOrderFormDesignID            int      `json:"sale_delivery_order_form_design_id,omitempty"`
	SaleDeliveryOrderNumberFormatID          int      `json:"sale_delivery_order_number_format_id,omitempty"`
	SaleDeliveryOrderRemarks                 string   `json:"sale_delivery_order_remarks,omitempty"`
	SaleInvoiceFormDesignID                  int      `json:"sale_invoice_form_design_id,omitempty"`
	SaleInvoiceNumberFormatID                int      `json:"sale_invoice_number_format_id,omitempty"`
	SaleInvoiceRemarks                       *string  `json:"sale_invoice_remarks,omitempty"`
	SaleOrderEmailMessage                    *string  `json:"sale_order_email_message,omitempty"`
	SaleOrderFormDesignID                    int      `json:"sale_order_form_design_id,omitempty"`
	SaleOrderNumberFormatID                  int      `json:"sale_order_number_format_id,omitempty"`
	SaleOrderRemarks                         string   `json:"sale_order_remarks,omitempty"`
	SalePaymentFormDesignID                  int      `json:"sale_payment_form_design_id,omitempty"`
	SalePaymentNumberFormatID                int      `json:"sale_payment_number_format_id,omitempty"`
	SaleQuoteFormDesignID                    int      `json:"sale_quote_form_design_id,omitempty"`
	SaleQuoteNumberFormatID                  int      `json:"sale_quote_number_format_id,omitempty"`
	SaleQuoteRemarks                         string   `json:"sale_quote_remarks,omitempty"`
	SaleRefundFormDesignID                   int      `json:"sale_refund_form_design_id,omitempty"`
	SaleRefundNumberFormatID                 int      `json:"sale_refund_number_format_id,omitempty"`
	ServiceDateOn                            bool     `json:"service_date_on,omitempty"`
	SettingListVersion                       string   `json:"setting_list_version,omitempty"`
	SignatureBankTransfer                    any      `json:"signature_bank_transfer,omitempty"`
	SignatureJournalEntry                    []int    `json:"signature_journal_entry,omitempty"`
	SignatureOfficialReceipt                 []int    `json:"signature_official_receipt,omitempty"`
	SignaturePaymentVoucher                  []int    `json:"signature_payment_voucher,omitempty"`
	SignaturePurchaseBill                    []int    `json:"signature_purchase_bill,omitempty"`
	SignaturePurchaseCreditNote              []int    `json:"signature_purchase_credit_note,omitempty"`
	SignaturePurchaseGoodsReceivedNote       []int    `json:"signature_purchase_goods_received_note,omitempty"`
	SignaturePurchaseOrder                   []int    `json:"signature_purchase_order,omitempty"`
	SignatureSaleCreditNote                  []int    `json:"signature_sale_credit_note,omitempty"`
	SignatureSaleDeliveryNote                []int    `json:"signature_sale_delivery_note,omitempty"`
	SignatureSaleDeliveryOrder               []int    `json:"signature_sale_delivery_order,omitempty"`
	SignatureSaleInvoice                     []int    `json:"signature_sale_invoice,omitempty"`
	SignatureSaleOrder                       []int    `json:"signature_sale_order,omitempty"`
	SignatureSaleQuote                       []int    `json:"signature_sale_quote,omitempty"`
	Signature1BottomLabel                    string   `json:"signature1_bottom_label,omitempty"`
	Signature1FileID                         int      `json:"signature1_file_id,omitempty"`
	Signature1FileURL                        string   `json:"signature1_file_url,omitempty"`
	Signature1IsOverride                     bool     `json:"signature1_is_override,omitempty"`
	Signature1TopLabel                       *string  `json:"signature1_top_label,omitempty"`
	Signature2BottomLabel                    string   `json:"signature2_bottom_label,omitempty"`
	Signature2FileID                         int      `json:"signature2_file_id,omitempty"`
	Signature2FileURL                        string   `json:"signature2_file_url,omitempty"`
	Signature2IsOverride                     bool     `json:"signature2_is_override,omitempty"`
	Signature2TopLabel                       *string  `json:"signature2_top_label,omitempty"`
	Signature3BottomLabel                    string   `json:"signature3_bottom_label,omitempty"`
	Signature3FileID                         int      `json:"signature3_file_id,omitempty"`
	Signature3FileURL                        string   `json:"signature3_file_url,omitempty"`
	Signature3IsOverride                     bool     `json:"signature3_is_override,omitempty"`
	Signature3TopLabel                       *string  `json:"signature3_top_label,omitempty"`
	Signature4BottomLabel                    string   `json:"signature4_bottom_label,omitempty"`
	Signature4FileID                         int      `json:"signature4_file_id,omitempty"`
	Signature4FileURL                        string   `json:"signature4_file_url,omitempty"`
	Signature4IsOverride                     bool     `json:"signature4_is_override,omitempty"`
	Signature4TopLabel                       *string  `json:"signature4_top_label,omitempty"`
	Signature5BottomLabel                    string   `json:"signature5_bottom_label,omitempty"`
	Signature5FileID                         int      `json:"signature5_file_id,omitempty"`
	Signature5FileURL                        string   `json:"signature5_file_url,omitempty"`
	Signature5IsOverride                     bool     `json:"signature5_is_override,omitempty"`
	Signature5TopLabel                       *string  `json:"signature5_top_label,omitempty"`
	Signature6BottomLabel                    string   `json:"signature6_bottom_label,omitempty"`
	Signature6FileID                         int      `json:"signature6_file_id,omitempty"`
	Signature6FileURL                        string   `json:"signature6_file_url,omitempty"`
	Signature6IsOverride                     bool     `json:"signature6_is_override,omitempty"`
	Signature6TopLabel                       *string  `json:"signature6_top_label,omitempty"`
	StatementEmailMessage                    *string  `json:"statement_email_message,omitempty"`
	StatementEmailReplyTo                    *string  `json:"statement_email_reply_to,omitempty"`
	StatementEmailSubject                    string   `json:"statement_email_subject,omitempty"`
	StatementFormDesignID                    int      `json:"statement_form_design_id,omitempty"`
	StatementInterestShow                    bool     `json:"statement_interest_show,omitempty"`
	StatementRemarks                         *string  `json:"statement_remarks,omitempty"`
	StatementSendDay                         int      `json:"statement_send_day,omitempty"`
	StatementSendOn                          bool     `json:"statement_send_on,omitempty"`
	StatementSendOutstandingOnly             bool     `json:"statement_send_outstanding_only,omitempty"`
	StatementSendPeriodFrom                  string   `json:"statement_send_period_from,omitempty"`
	StatementSendPeriodTo                    string   `json:"statement_send_period_to,omitempty"`
	StockAdjustmentFormDesignID              int      `json:"stock_adjustment_form_design_id,omitempty"`
	StockAdjustmentNumberFormatID            int      `json:"stock_adjustment_number_format_id,omitempty"`
	StockTransferFormDesignID                int      `json:"stock_transfer_form_design_id,omitempty"`
	StockTransferNumberFormatID              int      `json:"stock_transfer_number_format_id,omitempty"`
	StoreAllowNegativeInventory              bool     `json:"store_allow_negative_inventory,omitempty"`
	StoreBannerFileID                        *int     `json:"store_banner_file_id,omitempty"`
	StoreContactID                           int      `json:"store_contact_id,omitempty"`
	StoreHideOutOfStockItems                 bool     `json:"store_hide_out_of_stock_items,omitempty"`
	StoreOn                                  bool     `json:"store_on,omitempty"`
	StoreOnlinePayment                       bool     `json:"store_online_payment,omitempty"`
	StoreOrderNumberFormatID                 int      `json:"store_order_number_format_id,omitempty"`
	StoreOrderReceivedNotificationRecipients []string `json:"store_order_received_notification_recipients,omitempty"`
	StorePaymentInstructions                 string   `json:"store_payment_instructions,omitempty"`
	SupportAccess                            bool     `json:"support_access,omitempty"`
	TagListVersion                           string   `json:"tag_list_version,omitempty"`
	TaxDeemedPaymentNumberFormatID           int      `json:"tax_deemed_payment_number_format_id,omitempty"`
	TermListVersion                          string   `json:"term_list_version,omitempty"`
	TransactionEmailMasterOn                 bool     `json:"transaction_email_master_on,omitempty"`
	TransactionEmailReplyTo                  *string  `json:"transaction_email_reply_to,omitempty"`
	TransactionEmailReplyToUser              bool     `json:"transaction_email_reply_to_user,omitempty"`

	Extra map[string]any `json:"-"`
}

var settingsKeys = sync.OnceValue(func() map[string]struct{} {
	t := reflect.TypeFor[SettingsItem]()
	keys := make(map[string]struct{}, t.NumField())
	for i := range t.NumField() {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name != "" && name != "-" {
			keys[name] = struct{}{}
		}
	}
	return keys
})

// UnmarshalJSON decodes the known settings and collects the rest in Extra.
func (s *SettingsItem) UnmarshalJSON(data []byte) error {
	type plain SettingsItem
	var known plain
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}
	var all map[string]any
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}

	keys := settingsKeys()
	for k, v := range all {
		if _, ok := keys[k]; ok {
			continue
		}
		if known.Extra == nil {
			known.Extra = make(map[string]any)
		}
		known.Extra[k] = v
	}
	*s = SettingsItem(known)
	return nil
}
