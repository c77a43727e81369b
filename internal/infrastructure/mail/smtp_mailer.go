package mail

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"

	"github.com/vktkrum1/sistema-de-propostas/internal/usecase/interfaces"
)

var (
	ErrMissingMailServer = errors.New("configuração MAIL_SERVER ausente para envio de e-mail")
	ErrMissingMailSender = errors.New("configuração MAIL_SENDER ausente para envio de e-mail")
)

// Config carries the SMTP settings. Ports default from the TLS mode the way
// mail clients expect: 465 for SSL, 587 for STARTTLS, 25 for plain.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
	ReplyTo  string
	UseSSL   bool
	UseTLS   bool
}

// ConfigFromEnv reads MAIL_* environment variables.
func ConfigFromEnv() Config {
	useSSL := envBool("MAIL_USE_SSL", false)
	useTLS := envBool("MAIL_USE_TLS", !useSSL)

	port := envInt("MAIL_PORT", 0)
	if port == 0 {
		switch {
		case useSSL:
			port = 465
		case useTLS:
			port = 587
		default:
			port = 25
		}
	}

	return Config{
		Host:     os.Getenv("MAIL_SERVER"),
		Port:     port,
		Username: os.Getenv("MAIL_USERNAME"),
		Password: os.Getenv("MAIL_PASSWORD"),
		Sender:   os.Getenv("MAIL_SENDER"),
		ReplyTo:  os.Getenv("MAIL_REPLY_TO"),
		UseSSL:   useSSL,
		UseTLS:   useTLS,
	}
}

// SMTPMailer delivers proposal e-mails with the rendered PDF attached.
type SMTPMailer struct {
	cfg Config

	// send is swapped in tests.
	send func(m *gomail.Message) error
}

var _ interfaces.IMailer = (*SMTPMailer)(nil)

func NewSMTPMailer(cfg Config) *SMTPMailer {
	mailer := &SMTPMailer{cfg: cfg}
	mailer.send = func(m *gomail.Message) error {
		d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
		d.SSL = cfg.UseSSL
		return d.DialAndSend(m)
	}
	return mailer
}

func (s *SMTPMailer) SendProposal(ctx context.Context, mail interfaces.ProposalMail) error {
	if s.cfg.Host == "" {
		return ErrMissingMailServer
	}
	if s.cfg.Sender == "" {
		return ErrMissingMailSender
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.Sender)
	m.SetHeader("To", mail.To...)
	if len(mail.CC) > 0 {
		m.SetHeader("Cc", mail.CC...)
	}
	if s.cfg.ReplyTo != "" {
		m.SetHeader("Reply-To", s.cfg.ReplyTo)
	}
	m.SetHeader("Subject", mail.Subject)
	m.SetBody("text/plain", mail.Body)

	if len(mail.AttachmentPDF) > 0 {
		pdf := mail.AttachmentPDF
		m.Attach(mail.AttachmentName,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := io.Copy(w, bytes.NewReader(pdf))
				return err
			}),
			gomail.SetHeader(map[string][]string{"Content-Type": {"application/pdf"}}),
		)
	}

	if err := s.send(m); err != nil {
		log.Printf("[mail] send failed subject=%q err=%v", mail.Subject, err)
		return err
	}
	log.Printf("[mail] sent subject=%q to=%v cc=%d", mail.Subject, mail.To, len(mail.CC))
	return nil
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
