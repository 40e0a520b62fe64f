package request

import (
	"strings"
	"time"

	"gwansang/internal/domain/entities"
)

type CreateSessionRequest struct {
	UserAgent  string `json:"userAgent"`
	Platform   string `json:"platform"`
	Language   string `json:"language"`
	ScreenSize string `json:"screenSize"`
}

// ToDeviceInfo fills IP and user agent from the transport when the body omits them.
func (r CreateSessionRequest) ToDeviceInfo(clientIP, headerUA string) entities.DeviceInfo {
	ua := strings.TrimSpace(r.UserAgent)
	if ua == "" {
		ua = headerUA
	}
	return entities.DeviceInfo{
		UserAgent:  ua,
		IP:         clientIP,
		Platform:   strings.TrimSpace(r.Platform),
		Language:   strings.TrimSpace(r.Language),
		ScreenSize: strings.TrimSpace(r.ScreenSize),
	}
}

type ContactInfoRequest struct {
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Name             string `json:"name"`
	PreferredContact string `json:"preferredContact"`
}

func (r *ContactInfoRequest) ToContactInfo() *entities.ContactInfo {
	if r == nil {
		return nil
	}
	return &entities.ContactInfo{
		Email:            r.Email,
		Phone:            r.Phone,
		Name:             r.Name,
		PreferredContact: entities.ContactChannel(strings.ToLower(strings.TrimSpace(r.PreferredContact))),
	}
}

type StartServiceRequest struct {
	ServiceType string              `json:"serviceType" binding:"required"`
	ContactInfo *ContactInfoRequest `json:"contactInfo"`
}

type LinkPaymentRequest struct {
	OrderID       string              `json:"orderId"`
	PaymentID     string              `json:"paymentId" binding:"required"`
	Amount        int64               `json:"amount"`
	PaymentStatus string              `json:"paymentStatus"`
	ContactInfo   *ContactInfoRequest `json:"contactInfo"`
	CardLastFour  string              `json:"cardLastFour"`
}

func (r LinkPaymentRequest) ToPaymentLink() (entities.PaymentLink, error) {
	if r.Amount < 0 {
		return entities.PaymentLink{}, ErrNegativeAmount
	}
	ps, err := parsePaymentStatus(r.PaymentStatus)
	if err != nil {
		return entities.PaymentLink{}, err
	}
	return entities.PaymentLink{
		OrderID:       strings.TrimSpace(r.OrderID),
		PaymentID:     strings.TrimSpace(r.PaymentID),
		Amount:        r.Amount,
		PaymentStatus: ps,
		ContactInfo:   r.ContactInfo.ToContactInfo(),
		CardLastFour:  strings.TrimSpace(r.CardLastFour),
	}, nil
}

type CompleteServiceRequest struct {
	Success bool   `json:"success"`
	Summary string `json:"summary"`
	Error   string `json:"error"`
	Kind    string `json:"kind"`
}

func (r CompleteServiceRequest) ToServiceResult() (entities.ServiceResult, error) {
	res := entities.ServiceResult{Success: r.Success, Summary: r.Summary, Error: r.Error}
	if strings.TrimSpace(r.Kind) != "" {
		kind, err := entities.ParseErrorKind(r.Kind)
		if err != nil {
			return entities.ServiceResult{}, err
		}
		res.Kind = kind
	}
	return res, nil
}

type SessionErrorRequest struct {
	ServiceID string `json:"serviceId"`
	Kind      string `json:"kind" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

type TimeRangeRequest struct {
	Start time.Time `json:"start" binding:"required"`
	End   time.Time `json:"end" binding:"required"`
}

// FindUserRequest carries what a support agent learned from the customer.
type FindUserRequest struct {
	TimeRange    *TimeRangeRequest `json:"timeRange"`
	Amount       *int64            `json:"amount"`
	Phone        string            `json:"phone"`
	Email        string            `json:"email"`
	CardLastFour string            `json:"cardLastFour"`
}

func (r FindUserRequest) ToMatchConditions() entities.MatchConditions {
	cond := entities.MatchConditions{
		Amount:       r.Amount,
		Phone:        strings.TrimSpace(r.Phone),
		Email:        strings.TrimSpace(r.Email),
		CardLastFour: strings.TrimSpace(r.CardLastFour),
	}
	if r.TimeRange != nil {
		cond.TimeRange = &entities.TimeRange{Start: r.TimeRange.Start, End: r.TimeRange.End}
	}
	return cond
}
