package backend

import "time"

// Profile is the account profile behind /auth/me.
type Profile struct {
	ID                int        `json:"id"`
	Email             string     `json:"email"`
	CompanyName       string     `json:"company_name"`
	IndustryType      string     `json:"industry_type"`
	PreferredLanguage string     `json:"preferred_language"`
	IsActive          bool       `json:"is_active"`
	IsVerified        bool       `json:"is_verified"`
	CreatedAt         time.Time  `json:"created_at"`
	LastLogin         *time.Time `json:"last_login,omitempty"`
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	CompanyName       string `json:"company_name,omitempty"`
	IndustryType      string `json:"industry_type,omitempty"`
	PreferredLanguage string `json:"preferred_language,omitempty"`
}

// FinancialSummary is the dashboard's headline dataset.
type FinancialSummary struct {
	TotalRevenue  float64 `json:"total_revenue"`
	TotalExpenses float64 `json:"total_expenses"`
	NetProfit     float64 `json:"net_profit"`
	ProfitMargin  float64 `json:"profit_margin"`

	CurrentCash       float64 `json:"current_cash"`
	OperatingCashFlow float64 `json:"operating_cash_flow"`

	CurrentRatio *float64 `json:"current_ratio,omitempty"`
	DebtToEquity *float64 `json:"debt_to_equity,omitempty"`

	RevenueChange *float64 `json:"revenue_change,omitempty"`
	ExpenseChange *float64 `json:"expense_change,omitempty"`
	ProfitChange  *float64 `json:"profit_change,omitempty"`

	HealthScore  int    `json:"health_score"`
	HealthStatus string `json:"health_status"` // healthy, caution, critical
	PeriodLabel  string `json:"period_label"`
}

// RiskFactor is a single contributor to the overall risk picture.
type RiskFactor struct {
	Name           string `json:"name"`
	Severity       string `json:"severity"` // low, medium, high, critical
	Description    string `json:"description"`
	ImpactArea     string `json:"impact_area"`
	Recommendation string `json:"recommendation,omitempty"`
}

// Recommendation is a backend-generated suggested action.
type Recommendation struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Priority         string   `json:"priority"`
	PotentialSavings *float64 `json:"potential_savings,omitempty"`
	Category         string   `json:"category"`
}

// RiskAssessment is the risk page dataset.
type RiskAssessment struct {
	ID                    int    `json:"id"`
	OverallRiskScore      int    `json:"overall_risk_score"`
	CreditworthinessScore int    `json:"creditworthiness_score"`
	RiskLevel             string `json:"risk_level"`

	LiquidityRiskScore   int `json:"liquidity_risk_score"`
	SolvencyRiskScore    int `json:"solvency_risk_score"`
	OperationalRiskScore int `json:"operational_risk_score"`

	RiskFactors     []RiskFactor     `json:"risk_factors"`
	Recommendations []Recommendation `json:"recommendations"`
	InsightsSummary string           `json:"insights_summary,omitempty"`

	GeneratedAt time.Time `json:"generated_at"`
}

// ReportSummary is one entry in the generated-reports list.
type ReportSummary struct {
	ID          int        `json:"id"`
	ReportType  string     `json:"report_type"`
	Title       string     `json:"title"`
	Status      string     `json:"status"`
	Language    string     `json:"language"`
	GeneratedAt time.Time  `json:"generated_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// ReportList is the reports page dataset.
type ReportList struct {
	Items []ReportSummary `json:"items"`
	Total int             `json:"total"`
}

// ReportRequest asks the backend to generate a report.
type ReportRequest struct {
	ReportType      string `json:"report_type"`
	Title           string `json:"title,omitempty"`
	Language        string `json:"language,omitempty"`
	IncludeForecast bool   `json:"include_forecast"`
	PeriodMonths    int    `json:"period_months,omitempty"`
}

// UploadRecord is one entry in the statement upload history.
type UploadRecord struct {
	ID               int        `json:"id"`
	OriginalFilename string     `json:"original_filename"`
	FileType         string     `json:"file_type"`
	FileSizeBytes    int64      `json:"file_size_bytes"`
	ProcessingStatus string     `json:"processing_status"`
	UploadDate       time.Time  `json:"upload_date"`
	ProcessedAt      *time.Time `json:"processed_at,omitempty"`
	RecordCount      *int       `json:"record_count,omitempty"`
	ErrorMessage     string     `json:"error_message,omitempty"`
}

// UploadHistory is the upload page dataset.
type UploadHistory struct {
	Items []UploadRecord `json:"items"`
	Total int            `json:"total"`
}
