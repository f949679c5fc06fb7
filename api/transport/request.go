package transport

type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CustomerLoginRequest struct {
	// Identifier is an account number or an email address.
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type CreateCustomerRequest struct {
	AccountNumber string `json:"accountNumber"`
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	Balance       int64  `json:"balance"`
	Photo         string `json:"photo"`
}

type UpdateCustomerRequest struct {
	FullName *string `json:"fullName"`
	Email    *string `json:"email"`
	Photo    *string `json:"photo"`
}

type PasswordRequest struct {
	Password string `json:"password"`
}

type CustomerStatusRequest struct {
	Status string `json:"status"`
}

type CreateTransactionRequest struct {
	CustomerID     string `json:"customerId"`
	Type           string `json:"type"`
	Amount         int64  `json:"amount"`
	ChargesApplied int64  `json:"chargesApplied"`
	Description    string `json:"description"`
	Status         string `json:"status"`
	Date           string `json:"date"`
	TransactionID  string `json:"transactionId"`
	SenderName     string `json:"senderName"`
	SenderBank     string `json:"senderBank"`
	SenderAccount  string `json:"senderAccount"`
}

type AmendTransactionRequest struct {
	TransactionID string `json:"transactionId"`
	Date          string `json:"date"`
}

type TransferCodesRequest struct {
	COT string `json:"cot"`
	Tax string `json:"tax"`
	IRS string `json:"irs"`
}

type ValidateCodeRequest struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type OfferRequest struct {
	Type         string   `json:"type"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Value        string   `json:"value"`
	StartsAt     string   `json:"startsAt"`
	EndsAt       string   `json:"endsAt"`
	Eligibility  string   `json:"eligibility"`
	CTALabel     string   `json:"ctaLabel"`
	CTATarget    string   `json:"ctaTarget"`
	Status       string   `json:"status"`
	PageChannels []string `json:"pageChannels"`
	Banner       string   `json:"banner"`
	Icon         string   `json:"icon"`
}

type LeadRequest struct {
	OfferID    string            `json:"offerId"`
	Type       string            `json:"type"`
	Data       map[string]string `json:"data"`
	SourcePage string            `json:"sourcePage"`
	Client     string            `json:"client"`
}

type LeadStatusRequest struct {
	Status string `json:"status"`
}

type ProvisionAdminRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Name     string `json:"name"`
}

type AdminRoleRequest struct {
	Role string `json:"role"`
}
