package model

// RevenueCat webhook payload. Only the fields the handler consumes are
// mapped; the rest of the event is ignored.
type RevenueCatWebhook struct {
	Event RevenueCatEvent `json:"event"`
}

type RevenueCatEvent struct {
	Type          string `json:"type"`
	AppUserID     string `json:"app_user_id"`
	ProductID     string `json:"product_id"`
	EntitlementID string `json:"entitlement_id"`
	ExpiresDate   string `json:"expires_date"`
}

const (
	RCInitialPurchase     = "INITIAL_PURCHASE"
	RCRenewal             = "RENEWAL"
	RCNonRenewingPurchase = "NON_RENEWING_PURCHASE"
	RCUncancellation      = "UNCANCELLATION"
	RCCancellation        = "CANCELLATION"
	RCExpiration          = "EXPIRATION"
	RCBillingIssue        = "BILLING_ISSUE"
)
