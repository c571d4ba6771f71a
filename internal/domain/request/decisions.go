package request

import vo "github.com/saase/requesthub/internal/domain/request/valueobjects"

// ShowReviewControls reports whether accept/reject controls apply. Any other
// status shows the "reviewed" banner instead.
func ShowReviewControls(s vo.RequestStatus) bool {
	return s == vo.StatusPending || s == vo.StatusSubmitted
}

// ShowFinancialApproval reports whether the financial approval view is
// available rather than the "pending" placeholder.
func ShowFinancialApproval(s vo.RequestStatus) bool {
	switch s {
	case vo.StatusAccepted, vo.StatusClientApproved, vo.StatusImplementation:
		return true
	}
	return false
}

// InvoiceUnlocked reports whether the invoice view is available.
func InvoiceUnlocked(s vo.RequestStatus) bool {
	return s == vo.StatusClientApproved || s == vo.StatusImplementation
}

// Decisions bundles the pure UI decisions for one status.
type Decisions struct {
	ReviewControls    bool `json:"review_controls"`
	ReviewedBanner    bool `json:"reviewed_banner"`
	FinancialApproval bool `json:"financial_approval"`
	InvoiceUnlocked   bool `json:"invoice_unlocked"`
}

func DecideFor(s vo.RequestStatus) Decisions {
	review := ShowReviewControls(s)
	return Decisions{
		ReviewControls:    review,
		ReviewedBanner:    !review,
		FinancialApproval: ShowFinancialApproval(s),
		InvoiceUnlocked:   InvoiceUnlocked(s),
	}
}
