package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/storefront/internal/config"
	"github.com/SergeyBogomolovv/storefront/internal/entities"

	"github.com/wneessen/go-mail"
)

type Sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

type Mailer struct {
	logger   *slog.Logger
	sender   Sender
	renderer *Renderer
	from     string
}

func NewSMTPClient(cfg config.SMTP) (*mail.Client, error) {
	opts := []mail.Option{mail.WithPort(cfg.Port)}
	if cfg.TLS {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}
	return client, nil
}

func NewMailer(logger *slog.Logger, sender Sender, renderer *Renderer, from string) *Mailer {
	return &Mailer{
		logger:   logger.With(slog.String("component", "mailer")),
		sender:   sender,
		renderer: renderer,
		from:     from,
	}
}

func (m *Mailer) SendConfirmation(ctx context.Context, c entities.OrderConfirmation) error {
	subject, body, err := m.renderer.Render(c)
	if err != nil {
		return err
	}

	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(c.Email); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := m.sender.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	m.logger.Info("order confirmation sent", slog.String("order_id", c.OrderID))
	return nil
}
