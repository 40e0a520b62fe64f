package request

import (
	"strings"

	"gwansang/internal/domain/entities"
)

type RefundPaymentInfoRequest struct {
	OrderID       string `json:"orderId"`
	PaymentID     string `json:"paymentId"`
	Amount        int64  `json:"amount"`
	PaymentStatus string `json:"paymentStatus" binding:"required"`
	PaymentMethod string `json:"paymentMethod"`
}

type RefundUserInfoRequest struct {
	IP        string `json:"ip"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	UserAgent string `json:"userAgent"`
}

type TrackRefundableErrorRequest struct {
	SessionID    string                    `json:"sessionId"`
	ServiceType  string                    `json:"serviceType" binding:"required"`
	ErrorType    string                    `json:"errorType" binding:"required"`
	ErrorMessage string                    `json:"errorMessage" binding:"required"`
	PaymentInfo  *RefundPaymentInfoRequest `json:"paymentInfo"`
	UserInfo     *RefundUserInfoRequest    `json:"userInfo"`
}

// ToDetails falls back to the caller's address when userInfo.ip is absent.
func (r TrackRefundableErrorRequest) ToDetails(clientIP, headerUA string) (entities.RefundableErrorDetails, error) {
	st, err := entities.ParseServiceType(r.ServiceType)
	if err != nil {
		return entities.RefundableErrorDetails{}, err
	}
	kind, err := entities.ParseErrorKind(r.ErrorType)
	if err != nil {
		return entities.RefundableErrorDetails{}, err
	}

	d := entities.RefundableErrorDetails{
		SessionID:    strings.TrimSpace(r.SessionID),
		ServiceType:  st,
		ErrorType:    kind,
		ErrorMessage: r.ErrorMessage,
		UserInfo:     entities.RefundUserInfo{IP: clientIP, UserAgent: headerUA},
	}
	if u := r.UserInfo; u != nil {
		if u.IP != "" {
			d.UserInfo.IP = u.IP
		}
		if u.UserAgent != "" {
			d.UserInfo.UserAgent = u.UserAgent
		}
		d.UserInfo.Phone = u.Phone
		d.UserInfo.Email = u.Email
	}
	if p := r.PaymentInfo; p != nil {
		if p.Amount < 0 {
			return entities.RefundableErrorDetails{}, ErrNegativeAmount
		}
		ps, err := parsePaymentStatus(p.PaymentStatus)
		if err != nil {
			return entities.RefundableErrorDetails{}, err
		}
		d.PaymentInfo = &entities.RefundPaymentInfo{
			OrderID:       p.OrderID,
			PaymentID:     p.PaymentID,
			Amount:        p.Amount,
			PaymentStatus: ps,
			PaymentMethod: p.PaymentMethod,
		}
	}
	return d, nil
}

type ApproveRefundRequest struct {
	Notes string `json:"notes"`
}

type UpdateRefundStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

func (r UpdateRefundStatusRequest) RefundStatus() (entities.RefundStatus, error) {
	s := entities.RefundStatus(strings.ToLower(strings.TrimSpace(r.Status)))
	if !s.Valid() {
		return "", entities.ErrInvalidRefundStatus
	}
	return s, nil
}
