package utils

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"

	"github.com/voguevault/voguevault-backend-go/config"
)

// OTPSender delivers a one-time code out-of-band. Failures surface to the
// caller of Login/ResendOtp; there is no retry.
type OTPSender interface {
	SendOTP(ctx context.Context, otp, to string) error
}

// SMTPSender sends the OTP mail over implicit TLS (port 465 style).
type SMTPSender struct {
	cfg config.SMTPConfig
}

func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) SendOTP(ctx context.Context, otp, to string) error {
	msg := []byte(
		fmt.Sprintf("From: %s\r\n", s.cfg.From) +
			fmt.Sprintf("To: %s\r\n", to) +
			"Subject: OTP verification\r\n" +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=\"utf-8\"\r\n" +
			"\r\n" +
			fmt.Sprintf("Your otp is <b>%s</b>", otp),
	)

	serverAddr := net.JoinHostPort(s.cfg.Host, s.cfg.Port)

	// The dialer honors the caller's deadline so a hung SMTP server cannot
	// stall the login response indefinitely.
	dialer := &net.Dialer{}
	if deadline, ok := ctx.Deadline(); ok {
		dialer.Deadline = deadline
	}

	conn, err := tls.DialWithDialer(dialer, "tcp", serverAddr, &tls.Config{
		ServerName: s.cfg.Host,
	})
	if err != nil {
		return err
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return err
		}
	}

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer client.Quit()

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)
	if err := client.Auth(auth); err != nil {
		return err
	}

	if err := client.Mail(s.cfg.From); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}
