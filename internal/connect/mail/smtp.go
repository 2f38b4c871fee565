package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"mime/quotedprintable"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/connect/pkg/idx"
)

// DefaultSMTPTimeout bounds a send when ctx carries no deadline.
const DefaultSMTPTimeout = 30 * time.Second

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// SMTPDispatcher sends mail through an SMTP relay. Port 465 uses implicit
// TLS, other ports upgrade with STARTTLS when the server offers it.
// Credentials are optional.
type SMTPDispatcher struct {
	cfg SMTPConfig
	now func() time.Time
}

func NewSMTPDispatcher(cfg SMTPConfig) *SMTPDispatcher {
	return &SMTPDispatcher{cfg: cfg, now: time.Now}
}

func (d *SMTPDispatcher) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	from, _ := mail.ParseAddress(msg.From)
	to, _ := mail.ParseAddress(msg.To)

	client, err := d.dial(ctx)
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	defer client.Close()

	if d.cfg.Username != "" {
		auth := smtp.PlainAuth("", d.cfg.Username, d.cfg.Password, d.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}
	if err := client.Mail(from.Address); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := client.Rcpt(to.Address); err != nil {
		return fmt.Errorf("smtp rcpt: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(buildMessage(msg, d.now())); err != nil {
		_ = w.Close()
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp data close: %w", err)
	}

	return client.Quit()
}

func (d *SMTPDispatcher) dial(ctx context.Context) (*smtp.Client, error) {
	addr := net.JoinHostPort(d.cfg.Host, strconv.Itoa(d.cfg.Port))
	tlsCfg := &tls.Config{ServerName: d.cfg.Host, MinVersion: tls.VersionTLS12}

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(DefaultSMTPTimeout)
	}
	if err := conn.SetDeadline(deadline); err != nil {
		_ = conn.Close()
		return nil, err
	}

	if d.cfg.Port == 465 {
		tconn := tls.Client(conn, tlsCfg)
		if err := tconn.HandshakeContext(ctx); err != nil {
			_ = conn.Close()
			return nil, err
		}
		conn = tconn
	}

	client, err := smtp.NewClient(conn, d.cfg.Host)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	if d.cfg.Port != 465 {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(tlsCfg); err != nil {
				_ = client.Close()
				return nil, err
			}
		}
	}
	return client, nil
}

func buildMessage(msg Message, now time.Time) []byte {
	var b strings.Builder
	header := func(k, v string) {
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\r\n")
	}

	domain := "localhost"
	if from, err := mail.ParseAddress(msg.From); err == nil {
		if at := strings.LastIndex(from.Address, "@"); at >= 0 {
			domain = from.Address[at+1:]
		}
	}

	header("From", msg.From)
	header("To", msg.To)
	header("Subject", mime.QEncoding.Encode("utf-8", msg.Subject))
	header("Date", now.Format(time.RFC1123Z))
	header("Message-ID", "<"+idx.New().String()+"@"+domain+">")
	header("MIME-Version", "1.0")
	header("Content-Type", `text/html; charset="utf-8"`)
	header("Content-Transfer-Encoding", "quoted-printable")
	b.WriteString("\r\n")

	qp := quotedprintable.NewWriter(&b)
	_, _ = qp.Write([]byte(msg.HTML))
	_ = qp.Close()

	return []byte(b.String())
}
