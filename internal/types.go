package internal

// ProductPricing is a single catalog entry for one vendor product.
// DisplayName doubles as the primary matching keyword and the label
// written into purchase-order rows.
type ProductPricing struct {
	SupplyPrice     int64    `json:"supplyPrice"`
	DisplayName     string   `json:"displayName"`
	SiteProductName string   `json:"siteProductName,omitempty"`
	SellingPrice    int64    `json:"sellingPrice,omitempty"`
	Margin          int64    `json:"margin,omitempty"`
	Aliases         []string `json:"aliases,omitempty"` // legacy keyword path, kept for old configs
}

type CompanyConfig struct {
	Phone             string                    `json:"phone,omitempty"`
	BankName          string                    `json:"bankName,omitempty"`
	AccountNumber     string                    `json:"accountNumber,omitempty"`
	OrderFormHeaders  []string                  `json:"orderFormHeaders,omitempty"`
	OrderFormFilename string                    `json:"orderFormFilename,omitempty"`
	Deadline          string                    `json:"deadline,omitempty"` // HH:MM, display/sort ordering only
	Products          map[string]ProductPricing `json:"products"`
}

// PricingConfig maps company name to its pricing and matching metadata.
type PricingConfig map[string]CompanyConfig

// ProductStat accumulates matched quantity and supply total per product key.
type ProductStat struct {
	Count      int   `json:"count"`
	TotalPrice int64 `json:"totalPrice"`
}

// AnalysisResult is the per-product summary of one classification run.
type AnalysisResult map[string]ProductStat

type ExcludedOrder struct {
	CompanyName   string `json:"companyName"`
	RecipientName string `json:"recipientName"`
	ProductName   string `json:"productName"`
	Phone         string `json:"phone"`
	OrderNumber   string `json:"orderNumber"`
}

type ManualOrder struct {
	ID            string `json:"id"`
	CompanyName   string `json:"companyName"`
	RecipientName string `json:"recipientName"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	ProductName   string `json:"productName"`
	Qty           int    `json:"qty"`
}

// FailureDetail records one order row that found no tracking number.
type FailureDetail struct {
	OrderNumber string `json:"orderNum"`
	Recipient   string `json:"recipient"`
	Reason      string `json:"reason"`
}

// CompanyStat carries per-company merge counters for both projections.
type CompanyStat struct {
	Mgmt     int             `json:"mgmt"`
	Upload   int             `json:"upload"`
	Failures []FailureDetail `json:"failures"`
}

type SalesRecord struct {
	Date        string `json:"date"` // YYYY-MM-DD
	Company     string `json:"company"`
	Product     string `json:"product"`
	Count       int    `json:"count"`
	SupplyPrice int64  `json:"supplyPrice"`
	TotalPrice  int64  `json:"totalPrice"`
	Margin      int64  `json:"margin,omitempty"`
}

type DepositRecord struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	Amount        int64  `json:"amount"`
	Label         string `json:"label,omitempty"`
}

// DailySales is one persisted document per calendar date, overwritten
// wholesale on each save.
type DailySales struct {
	Date           string          `json:"date"`
	Records        []SalesRecord   `json:"records"`
	TotalAmount    int64           `json:"totalAmount"`
	SavedAt        string          `json:"savedAt"` // RFC3339
	OrderRows      [][]string      `json:"orderRows,omitempty"`
	OrderHeaders   []string        `json:"orderHeaders,omitempty"`
	InvoiceRows    [][]string      `json:"invoiceRows,omitempty"`
	InvoiceHeaders []string        `json:"invoiceHeaders,omitempty"`
	DepositRecords []DepositRecord `json:"depositRecords,omitempty"`
	DepositTotal   int64           `json:"depositTotal,omitempty"`
}

// SessionAdjustment is a signed per-session amount folded into that
// session's settlement total (returns, manual corrections).
type SessionAdjustment struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

// ManualTransfer is a free-standing deposit outside the order pipeline.
type ManualTransfer struct {
	ID            string `json:"id"`
	Label         string `json:"label"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	Amount        int64  `json:"amount"`
	IsAdjustment  bool   `json:"isAdjustment,omitempty"`
	CompanyName   string `json:"companyName,omitempty"`
}

// Session is one vendor/round processing pass. Totals and row sets are
// filled by the classify and merge steps and consumed by settlement.
type Session struct {
	ID           string              `json:"id"`
	CompanyName  string              `json:"companyName"`
	Round        int                 `json:"round"`
	Summary      string              `json:"summary,omitempty"`
	SummaryExcel string              `json:"summaryExcel,omitempty"`
	Total        int64               `json:"total"`
	Header       []string            `json:"header,omitempty"`
	OrderRows    [][]string          `json:"orderRows,omitempty"`
	InvoiceRows  [][]string          `json:"invoiceRows,omitempty"`
	UploadRows   [][]string          `json:"uploadRows,omitempty"`
	Adjustments  []SessionAdjustment `json:"adjustments,omitempty"`
}

// InboxFile is a spreadsheet attachment fetched from the mailbox.
type InboxFile struct {
	ID         int
	MessageID  string
	Subject    string
	Sender     string
	ReceivedAt string
	FileName   string
	Path       string
	Status     string
}
