package request

import (
	"testing"
	"time"

	"gwansang/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreateOrderRequest_ToNewOrder(t *testing.T) {
	t.Run("normalizes catalog values", func(t *testing.T) {
		in, err := CreateOrderRequest{
			OrderID:       " ORD-1 ",
			ServiceType:   "MBTI_FACE",
			Amount:        4900,
			PaymentStatus: "Completed",
		}.ToNewOrder()
		require.NoError(t, err)
		assert.Equal(t, "ORD-1", in.OrderID)
		assert.Equal(t, entities.ServiceTypeMBTIFace, in.ServiceType)
		assert.Equal(t, entities.PaymentStatusCompleted, in.PaymentStatus)
		assert.Empty(t, in.ServiceStatus)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		_, err := CreateOrderRequest{ServiceType: "tarot"}.ToNewOrder()
		assert.ErrorIs(t, err, entities.ErrUnknownServiceType)
		_, err = CreateOrderRequest{ServiceType: "saju", Amount: -1}.ToNewOrder()
		assert.ErrorIs(t, err, ErrNegativeAmount)
		_, err = CreateOrderRequest{ServiceType: "saju", PaymentStatus: "paid"}.ToNewOrder()
		assert.ErrorIs(t, err, entities.ErrInvalidPaymentStatus)
		_, err = CreateOrderRequest{ServiceType: "saju", ServiceStatus: "done"}.ToNewOrder()
		assert.ErrorIs(t, err, entities.ErrInvalidServiceStatus)
	})
}

func TestUpdateOrderStatusRequest_ToOrderUpdate(t *testing.T) {
	_, err := UpdateOrderStatusRequest{}.ToOrderUpdate()
	assert.ErrorIs(t, err, ErrEmptyUpdate)

	upd, err := UpdateOrderStatusRequest{ServiceStatus: strPtr("IN_PROGRESS"), PaymentID: strPtr("pay-1")}.ToOrderUpdate()
	require.NoError(t, err)
	require.NotNil(t, upd.ServiceStatus)
	assert.Equal(t, entities.ServiceStatusInProgress, *upd.ServiceStatus)
	assert.Nil(t, upd.PaymentStatus)
	assert.Equal(t, "pay-1", *upd.PaymentID)

	_, err = UpdateOrderStatusRequest{PaymentStatus: strPtr("settled")}.ToOrderUpdate()
	assert.ErrorIs(t, err, entities.ErrInvalidPaymentStatus)
}

func TestSessionRequests(t *testing.T) {
	d := CreateSessionRequest{Platform: "iOS"}.ToDeviceInfo("10.0.0.1", "Safari")
	assert.Equal(t, entities.DeviceInfo{UserAgent: "Safari", IP: "10.0.0.1", Platform: "iOS"}, d)

	link, err := LinkPaymentRequest{
		PaymentID:    " pay-1 ",
		Amount:       9900,
		ContactInfo:  &ContactInfoRequest{Phone: "010-1234-5678", PreferredContact: "SMS"},
		CardLastFour: "4242",
	}.ToPaymentLink()
	require.NoError(t, err)
	assert.Equal(t, "pay-1", link.PaymentID)
	assert.Equal(t, entities.ContactChannelSMS, link.ContactInfo.PreferredContact)

	var nilContact *ContactInfoRequest
	assert.Nil(t, nilContact.ToContactInfo())

	res, err := CompleteServiceRequest{Success: false, Error: "timeout", Kind: "network-error"}.ToServiceResult()
	require.NoError(t, err)
	assert.Equal(t, entities.ErrorKindNetwork, res.Kind)
	_, err = CompleteServiceRequest{Kind: "oops"}.ToServiceResult()
	assert.ErrorIs(t, err, entities.ErrUnknownErrorKind)
}

func TestFindUserRequest_ToMatchConditions(t *testing.T) {
	assert.True(t, FindUserRequest{}.ToMatchConditions().Empty())

	start := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	amount := int64(9900)
	cond := FindUserRequest{
		TimeRange: &TimeRangeRequest{Start: start, End: start.Add(time.Hour)},
		Amount:    &amount,
		Email:     " kim@example.com ",
	}.ToMatchConditions()
	require.NotNil(t, cond.TimeRange)
	assert.Equal(t, start, cond.TimeRange.Start)
	assert.Equal(t, "kim@example.com", cond.Email)
	assert.Equal(t, int64(9900), *cond.Amount)
}

func TestTrackRefundableErrorRequest_ToDetails(t *testing.T) {
	d, err := TrackRefundableErrorRequest{
		SessionID:    "s-1",
		ServiceType:  "face-saju",
		ErrorType:    "analysis_error",
		ErrorMessage: "empty",
		PaymentInfo:  &RefundPaymentInfoRequest{PaymentID: "pay-1", Amount: 9900, PaymentStatus: "completed"},
		UserInfo:     &RefundUserInfoRequest{Phone: "01012345678"},
	}.ToDetails("10.0.0.9", "curl")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.9", d.UserInfo.IP)
	assert.Equal(t, "01012345678", d.UserInfo.Phone)
	assert.Equal(t, entities.PaymentStatusCompleted, d.PaymentInfo.PaymentStatus)

	_, err = TrackRefundableErrorRequest{ServiceType: "saju", ErrorType: "cosmic_ray"}.ToDetails("", "")
	assert.ErrorIs(t, err, entities.ErrUnknownErrorKind)

	s, err := UpdateRefundStatusRequest{Status: "Approved"}.RefundStatus()
	require.NoError(t, err)
	assert.Equal(t, entities.RefundStatusApproved, s)
	_, err = UpdateRefundStatusRequest{Status: "maybe"}.RefundStatus()
	assert.ErrorIs(t, err, entities.ErrInvalidRefundStatus)
}

func TestAdminRequests(t *testing.T) {
	l, err := ServiceErrorRequest{Kind: "SYSTEM_ERROR", Message: "disk full"}.ToServiceErrorLog()
	require.NoError(t, err)
	assert.Equal(t, entities.ErrorKindSystem, l.Kind)
	assert.Empty(t, l.ServiceType)

	f, err := ServiceFailureRequest{OrderID: "A", Kind: "api_error", Message: "quota", ServiceType: "saju"}.ToServiceFailure("1.2.3.4", "ua")
	require.NoError(t, err)
	assert.Equal(t, entities.ServiceTypeSaju, f.ServiceType)
	assert.Equal(t, "1.2.3.4", f.UserInfo.IP)

	_, err = ServiceFailureRequest{Kind: "api_error", Message: "x", ServiceType: "tarot"}.ToServiceFailure("", "")
	assert.ErrorIs(t, err, entities.ErrUnknownServiceType)
}
