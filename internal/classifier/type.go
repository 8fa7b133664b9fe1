package classifier

// CustomerProfile is the feature record the scorer consumes. Fields mirror
// the intake form; categorical fields are free-form strings normalized
// before encoding.
type CustomerProfile struct {
	TenureMonths      int     `json:"tenure_in_months"`
	MonthlyCharge     float64 `json:"monthly_charge"`
	TotalRevenue      float64 `json:"total_revenue"`
	TotalRefunds      float64 `json:"total_refunds"`
	ExtraDataCharges  float64 `json:"total_extra_data_charges"`
	NumberOfReferrals int     `json:"number_of_referrals"`
	Age               int     `json:"age"`
	Contract          string  `json:"contract"`
	PaymentMethod     string  `json:"payment_method"`
	PaperlessBilling  string  `json:"paperless_billing"`
}

// Feature is one standardized model input: the raw value is shifted by Mean
// and scaled by StdDev before the weight applies.
type Feature struct {
	Name   string  `json:"name"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Weight float64 `json:"weight"`
}

// Artifact is the serialized trained model: logistic regression weights
// over standardized features plus the intercept.
type Artifact struct {
	Version   string    `json:"version"`
	Intercept float64   `json:"intercept"`
	Features  []Feature `json:"features"`
}

// Feature names recognized by the encoder.
const (
	featTenure           = "tenure_in_months"
	featMonthlyCharge    = "monthly_charge"
	featTotalRevenue     = "total_revenue"
	featTotalRefunds     = "total_refunds"
	featExtraDataCharges = "total_extra_data_charges"
	featReferrals        = "number_of_referrals"
	featAge              = "age"
	featMonthToMonth     = "contract_month_to_month"
	featTwoYear          = "contract_two_year"
	featElectronicCheck  = "payment_electronic_check"
	featPaperless        = "paperless_billing_yes"
)
