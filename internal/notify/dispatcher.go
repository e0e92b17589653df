package notify

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/sirupsen/logrus"

	"dealer-orders/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

const PaymentBankTransfer = "bank_transfer"

type BankDetails struct {
	Name          string
	AccountName   string
	AccountNumber string
	RoutingNumber string
}

type Dispatcher struct {
	mailer   Mailer
	tpl      *template.Template
	operator string
	bank     BankDetails
}

func NewDispatcher(mailer Mailer, operator string, bank BankDetails) (*Dispatcher, error) {
	tpl, err := template.New("mail").Funcs(template.FuncMap{
		"money":        Money,
		"paymentLabel": PaymentLabel,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse mail templates: %w", err)
	}
	return &Dispatcher{mailer: mailer, tpl: tpl, operator: operator, bank: bank}, nil
}

func Money(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	intPart, frac := s[:len(s)-3], s[len(s)-3:]
	neg := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-$" + b.String() + frac
	}
	return "$" + b.String() + frac
}

func PaymentLabel(method string) string {
	switch method {
	case PaymentBankTransfer:
		return "Bank transfer"
	case "crypto":
		return "Cryptocurrency"
	case "financing":
		return "Financing"
	case "":
		return "Not specified"
	}
	return method
}

func DefaultReplySubject(orderID string) string {
	return "Regarding Your Order " + orderID
}

type orderData struct {
	Order        models.Order
	Bank         BankDetails
	BankTransfer bool
	Lines        []string
}

func (d *Dispatcher) render(name string, data orderData) (string, error) {
	var buf bytes.Buffer
	if err := d.tpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

func (d *Dispatcher) send(ctx context.Context, kind string, msg Message) error {
	if err := d.mailer.Send(ctx, msg); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"kind": kind, "to": msg.To}).Error("mail send failed")
		return err
	}
	logrus.WithFields(logrus.Fields{"kind": kind, "to": msg.To}).Info("mail sent")
	return nil
}

// OrderConfirmation mails the buyer an itemised receipt.
func (d *Dispatcher) OrderConfirmation(ctx context.Context, o models.Order) error {
	html, err := d.render("confirmation.html", orderData{
		Order:        o,
		Bank:         d.bank,
		BankTransfer: o.PaymentMethod == PaymentBankTransfer,
	})
	if err != nil {
		return err
	}
	return d.send(ctx, "confirmation", Message{
		To:      o.Email,
		Subject: fmt.Sprintf("Order Confirmation - %s", o.OrderID),
		HTML:    html,
	})
}

// AdminAlert tells the sales desk a new order came in.
func (d *Dispatcher) AdminAlert(ctx context.Context, o models.Order) error {
	if d.operator == "" {
		return fmt.Errorf("admin alert: operator address not configured")
	}
	html, err := d.render("admin_alert.html", orderData{Order: o})
	if err != nil {
		return err
	}
	return d.send(ctx, "admin_alert", Message{
		To:      d.operator,
		Subject: fmt.Sprintf("New Order %s - %s %s", o.OrderID, o.FirstName, o.LastName),
		HTML:    html,
	})
}

func (d *Dispatcher) Reply(ctx context.Context, o models.Order, subject, body string, att *Attachment) error {
	if strings.TrimSpace(subject) == "" {
		subject = DefaultReplySubject(o.OrderID)
	}
	var lines []string
	for _, l := range strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	html, err := d.render("reply.html", orderData{Order: o, Lines: lines})
	if err != nil {
		return err
	}
	msg := Message{To: o.Email, Subject: subject, HTML: html}
	if att != nil {
		msg.Attachments = append(msg.Attachments, *att)
	}
	return d.send(ctx, "reply", msg)
}
