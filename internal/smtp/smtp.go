package smtp

import (
	"fmt"

	"github.com/RaulAli/Vall-Activa-sub001/internal/config"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type EmailServer struct {
	server       string
	port         int
	user         string
	pass         string
	admin        string
	serverConfig config.ServerConfig
}

func New(conf config.Config) *EmailServer {
	return &EmailServer{
		server:       conf.Email.Server,
		port:         conf.Email.Port,
		user:         conf.Email.User,
		pass:         conf.Email.Pass,
		admin:        conf.Email.Admin,
		serverConfig: conf.Server,
	}
}

func (s *EmailServer) GetMessageBase(subject, toEmail string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", s.user)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	return m
}

func (s *EmailServer) Send(m *gomail.Message) error {
	d := gomail.NewDialer(s.server, s.port, s.user, s.pass)
	if err := d.DialAndSend(m); err != nil {
		zap.L().Error(
			"Failed to send an email",
			zap.Error(err),
		)
		return err
	}
	return nil
}

// SendReuseAlert warns an account owner that an already-rotated refresh
// token was replayed and that all sessions on that device chain were
// terminated.
func (s *EmailServer) SendReuseAlert(toEmail string) error {
	m := s.GetMessageBase("Security alert: suspicious session activity", toEmail)
	m.SetBody(
		"text/plain",
		fmt.Sprintf(
			"A previously used sign-in token for your account was presented again. "+
				"As a precaution, the affected device's sessions were signed out. "+
				"If this wasn't you, change your password at %s://%s.",
			s.serverConfig.Scheme,
			s.serverConfig.Domain,
		),
	)
	return s.Send(m)
}
