package infra

import (
	"fmt"
	"net/smtp"

	"github.com/BarkaHamza235/store-management-again6/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer sends transactional mail over plain SMTP.
type Mailer struct {
	host     string
	user     string
	password string
	addr     string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
	}
}

func (m *Mailer) SendPasswordReset(to, resetLink string) error {
	e := email.NewEmail()
	e.From = m.user
	e.To = []string{to}
	e.Subject = "Réinitialisation de votre mot de passe"
	e.Text = []byte(fmt.Sprintf(
		"Bonjour,\n\nPour réinitialiser votre mot de passe, suivez ce lien :\n%s\n\n"+
			"Si vous n'êtes pas à l'origine de cette demande, ignorez cet email.\n",
		resetLink,
	))

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return e.Send(m.addr, auth)
}
