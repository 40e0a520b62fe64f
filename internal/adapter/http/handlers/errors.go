package handlers

import (
	"errors"
	"net/http"

	request "gwansang/internal/adapter/http/dto/request"
	"gwansang/internal/domain/entities"
	"gwansang/internal/usecase"
	"gwansang/internal/usecase/interfaces"
	"gwansang/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "요청 형식이 올바르지 않습니다.", http.StatusBadRequest)
	errConcurrent     = pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "다른 요청과 충돌했습니다. 잠시 후 다시 시도해주세요.", http.StatusConflict)
)

// respondError writes the failure envelope and records the cause for the request logger.
func respondError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "일시적인 오류가 발생했습니다. 잠시 후 다시 시도해주세요.", err, http.StatusInternalServerError)
}

// inputError maps parse failures shared by every route. It returns nil for anything else.
func inputError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrUnknownServiceType), errors.Is(err, request.ErrMissingServiceType):
		return pkg.NewDomainErrorSimple("INVALID_SERVICE_TYPE", "지원하지 않는 서비스 종류입니다.", http.StatusBadRequest)
	case errors.Is(err, entities.ErrUnknownErrorKind):
		return pkg.NewDomainErrorSimple("INVALID_ERROR_TYPE", "알 수 없는 오류 유형입니다.", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidPaymentStatus):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_STATUS", "결제 상태 값이 올바르지 않습니다.", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidServiceStatus):
		return pkg.NewDomainErrorSimple("INVALID_SERVICE_STATUS", "서비스 상태 값이 올바르지 않습니다.", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidRefundStatus):
		return pkg.NewDomainErrorSimple("INVALID_REFUND_STATUS", "환불 상태 값이 올바르지 않습니다.", http.StatusBadRequest)
	case errors.Is(err, request.ErrNegativeAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "금액은 0 이상이어야 합니다.", http.StatusBadRequest)
	case errors.Is(err, request.ErrEmptyUpdate):
		return pkg.NewDomainErrorSimple("EMPTY_UPDATE", "변경할 항목이 없습니다.", http.StatusBadRequest)
	}
	return nil
}

func mapOrderError(err error) *pkg.AppError {
	if appErr := inputError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidOrderInput):
		return errInvalidPayload
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "주문을 찾을 수 없습니다.", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderAlreadyExists):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_EXISTS", "이미 존재하는 주문번호입니다.", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderAlreadyRefunded):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_REFUNDED", "이미 환불된 주문입니다.", http.StatusConflict)
	case errors.Is(err, usecase.ErrRefundViaStatusUpdate):
		return pkg.NewDomainErrorSimple("REFUND_REQUIRES_PROCESSING", "환불은 환불 처리 요청으로만 진행할 수 있습니다.", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidServiceTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "현재 상태에서는 변경할 수 없습니다.", http.StatusConflict)
	case errors.Is(err, interfaces.ErrVersionConflict):
		return errConcurrent
	case errors.Is(err, usecase.ErrPaymentCancelFailed):
		return pkg.NewDomainError("PAYMENT_CANCEL_FAILED", "결제 취소에 실패했습니다. 고객센터로 문의해주세요.", err, http.StatusBadGateway)
	default:
		return internalError(err)
	}
}

func mapSessionError(err error) *pkg.AppError {
	if appErr := inputError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrInvalidSessionInput):
		return errInvalidPayload
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "세션을 찾을 수 없습니다.", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceUsageNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "서비스 이용 내역을 찾을 수 없습니다.", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentTrackerMissing):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "결제 내역을 찾을 수 없습니다.", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceUsageFinished):
		return pkg.NewDomainErrorSimple("SERVICE_ALREADY_FINISHED", "이미 종료된 서비스입니다.", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentAlreadyLinked):
		return pkg.NewDomainErrorSimple("PAYMENT_ALREADY_LINKED", "이미 결제가 연결된 서비스입니다.", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentTrackerFinal):
		return pkg.NewDomainErrorSimple("PAYMENT_ALREADY_FINAL", "이미 처리가 끝난 결제입니다.", http.StatusConflict)
	case errors.Is(err, interfaces.ErrVersionConflict):
		return errConcurrent
	default:
		return internalError(err)
	}
}

func mapRefundError(err error) *pkg.AppError {
	if appErr := inputError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidRefundableError):
		return errInvalidPayload
	case errors.Is(err, usecase.ErrRefundableErrorNotFound):
		return pkg.NewDomainErrorSimple("REFUNDABLE_ERROR_NOT_FOUND", "환불 대상 오류를 찾을 수 없습니다.", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRefundAlreadyProcessed):
		return pkg.NewDomainErrorSimple("REFUND_ALREADY_PROCESSED", "이미 처리된 환불 건입니다.", http.StatusConflict)
	case errors.Is(err, interfaces.ErrVersionConflict):
		return errConcurrent
	default:
		return internalError(err)
	}
}

func mapMetricsError(err error) *pkg.AppError {
	if appErr := inputError(err); appErr != nil {
		return appErr
	}
	if errors.Is(err, usecase.ErrInvalidMetricInput) {
		return errInvalidPayload
	}
	return internalError(err)
}

// mapAdminError also covers the order and session failures surfaced by failure handling.
func mapAdminError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrInvalidServiceError) {
		return pkg.NewDomainErrorSimple("INVALID_SERVICE_ERROR", "오류 유형과 메시지는 필수입니다.", http.StatusBadRequest)
	}
	if appErr := mapOrderError(err); appErr.HTTPStatus != http.StatusInternalServerError {
		return appErr
	}
	return mapSessionError(err)
}
