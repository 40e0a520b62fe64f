package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"gwansang/internal/domain/entities"
	"gwansang/internal/usecase/interfaces"

	"github.com/jordan-wright/email"
	log "github.com/sirupsen/logrus"
)

type sendFunc func(e *email.Email, addr string, auth smtp.Auth) error

// SMTPNotifier mails the operator whenever a refund-eligible failure is tracked.
type SMTPNotifier struct {
	host string
	port string
	user string
	pass string
	from string
	to   string
	send sendFunc
}

var _ interfaces.IAdminNotifier = (*SMTPNotifier)(nil)

func NewSMTPNotifier(host, port, user, pass, from, to string) *SMTPNotifier {
	return &SMTPNotifier{
		host: host,
		port: port,
		user: user,
		pass: pass,
		from: from,
		to:   to,
		send: func(e *email.Email, addr string, auth smtp.Auth) error { return e.Send(addr, auth) },
	}
}

func (n *SMTPNotifier) NotifyRefundableError(ctx context.Context, re entities.RefundableError) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var auth smtp.Auth
	if n.user != "" {
		auth = smtp.PlainAuth("", n.user, n.pass, n.host)
	}

	e := buildRefundEmail(n.from, n.to, re)
	if err := n.send(e, fmt.Sprintf("%s:%s", n.host, n.port), auth); err != nil {
		log.WithError(err).WithField("error_id", re.ID).Error("[refund][notify] failed to send admin email")
		return err
	}
	log.WithFields(log.Fields{"error_id": re.ID, "to": n.to}).Info("[refund][notify] admin email sent")
	return nil
}

func buildRefundEmail(from, to string, re entities.RefundableError) *email.Email {
	e := email.NewEmail()
	e.From = from
	e.To = []string{to}
	e.Subject = fmt.Sprintf("[환불 필요] %s 서비스 오류 (%s)", re.ServiceType.DisplayName(), re.ErrorType)

	var b strings.Builder
	fmt.Fprintf(&b, "환불 대상 오류가 발생했습니다.\n\n")
	fmt.Fprintf(&b, "오류 ID: %s\n", re.ID)
	fmt.Fprintf(&b, "세션 ID: %s\n", re.SessionID)
	fmt.Fprintf(&b, "서비스: %s\n", re.ServiceType)
	fmt.Fprintf(&b, "오류 유형: %s\n", re.ErrorType)
	fmt.Fprintf(&b, "오류 메시지: %s\n", re.ErrorMessage)
	if p := re.PaymentInfo; p != nil {
		fmt.Fprintf(&b, "결제 ID: %s\n", p.PaymentID)
		fmt.Fprintf(&b, "결제 금액: %d원\n", p.Amount)
	}
	fmt.Fprintf(&b, "발생 시각: %s\n", re.OccurredAt.Format("2006-01-02 15:04:05 MST"))
	e.Text = []byte(b.String())
	return e
}

// NoopNotifier is used when SMTP is not configured.
type NoopNotifier struct{}

var _ interfaces.IAdminNotifier = NoopNotifier{}

func (NoopNotifier) NotifyRefundableError(_ context.Context, re entities.RefundableError) error {
	log.WithField("error_id", re.ID).Debug("[refund][notify] smtp disabled, notification skipped")
	return nil
}
