package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"
	"time"

	"github.com/SacredMindInfotech/SacredMind-sub001/config"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: SacredMind <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		log.Println("Error sending email:", err)
		return err
	}
	return nil
}

// SendDiscountTokenEmail notifies the admin mailbox that a discount token was
// created, with its code and expiry for the records.
func SendDiscountTokenEmail(code string, percentage int, expiresAt time.Time) error {
	if config.AppConfig.AdminEmail == "" {
		return nil
	}

	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Discount Token Created</h2>
					<h1 style="text-align: center; color: #4CAF50; font-size: 32px; margin: 20px 0;">%s</h1>
					<p style="font-size: 14px; color: #555555; text-align: center;">%d%% off, valid until %s.</p>
				</div>
			</body>
		</html>
	`, code, percentage, expiresAt.Format("02 Jan 2006 15:04"))

	return SendEmail([]string{config.AppConfig.AdminEmail}, "Discount Token Created", body)
}

// SendCoursePublishedEmail notifies the admin mailbox when a course goes live.
func SendCoursePublishedEmail(courseTitle string) error {
	if config.AppConfig.AdminEmail == "" {
		return nil
	}

	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Course Published</h2>
					<h3 style="text-align: center; color: #4CAF50; margin: 20px 0;">%s</h3>
					<p style="font-size: 14px; color: #555555; text-align: center;">The course is now visible on the storefront.</p>
				</div>
			</body>
		</html>
	`, courseTitle)

	return SendEmail([]string{config.AppConfig.AdminEmail}, "Course Published", body)
}
