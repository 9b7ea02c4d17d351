package common

// Client
const (
	ClientActive   = "Active"
	ClientInactive = "Inactive"

	ClientPrivate = "Private"
	ClientPublic  = "Public"
)

// Contract
const (
	ContractNegotiating       = "Negotiating"
	ContractAwaitingSignature = "AwaitingSignature"
	ContractActive            = "Active"
	ContractExpired           = "Expired"
	ContractRejected          = "Rejected"
	ContractPending           = "Pending"
	ContractCompleted         = "Completed"
	ContractInactive          = "Inactive"

	PaymentMonthly      = "Monthly"
	PaymentOneTime      = "OneTime"
	PaymentInstallments = "Installments"

	HiringPrivate      = "Private"
	HiringPublicBid    = "PublicBid"
	HiringBidExemption = "BidExemption"
)

// Consultant
const (
	EmploymentFixed    = "Fixed"
	EmploymentOnDemand = "OnDemand"

	ConsultantContract = "Contract"
	ConsultantOther    = "Other"
)

// Service
const (
	ServiceInProgress = "InProgress"
	ServicePending    = "Pending"
	ServiceCompleted  = "Completed"
	ServiceCancelled  = "Cancelled"
)

var (
	ClientStatuses   = []string{ClientActive, ClientInactive}
	ClientTypes      = []string{ClientPrivate, ClientPublic}
	ContractStatuses = []string{
		ContractNegotiating, ContractAwaitingSignature, ContractActive, ContractExpired,
		ContractRejected, ContractPending, ContractCompleted, ContractInactive,
	}
	PaymentMethods  = []string{PaymentMonthly, PaymentOneTime, PaymentInstallments}
	HiringTypes     = []string{HiringPrivate, HiringPublicBid, HiringBidExemption}
	EmploymentTypes = []string{EmploymentFixed, EmploymentOnDemand}
	ContractTypes   = []string{ConsultantContract, ConsultantOther}
	ServiceStatuses = []string{ServiceInProgress, ServicePending, ServiceCompleted, ServiceCancelled}
)

// DateLayout is the calendar date format used by every date field.
const DateLayout = "2006-01-02"
