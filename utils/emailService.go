package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"barasho/config"
)

// SendEmail sends an HTML email through the configured SMTP account
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Barasho <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	return smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">%s</h2>
					%s
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">Barasho Team</p>
				</div>
			</body>
		</html>
	`, title, bodyContent)
}

// SendPaymentApprovedEmail notifies a learner their payment claim was approved
func SendPaymentApprovedEmail(email, courseName string) error {
	body := fmt.Sprintf(`
		<p style="font-size: 16px; color: #555555;">Your payment has been approved. You now have full access to:</p>
		<h3 style="text-align: center; color: #4CAF50; margin: 20px 0;">%s</h3>
		<p style="font-size: 14px; color: #666666;">Open your dashboard to start watching the lessons.</p>
	`, courseName)

	return SendEmail([]string{email}, "Payment Approved - Barasho", getEmailTemplate("Payment Approved", body))
}

// SendPaymentRejectedEmail notifies a learner their payment claim was rejected
func SendPaymentRejectedEmail(email, courseName string) error {
	body := fmt.Sprintf(`
		<p style="font-size: 16px; color: #555555;">Unfortunately your payment for the course below could not be verified:</p>
		<h3 style="text-align: center; color: #e53935; margin: 20px 0;">%s</h3>
		<p style="font-size: 14px; color: #666666;">Please double-check the phone number you submitted and try again.</p>
	`, courseName)

	return SendEmail([]string{email}, "Payment Rejected - Barasho", getEmailTemplate("Payment Rejected", body))
}
