package utils

import (
	"fmt"
	"ilmhub/config"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sendEmail sends one HTML email via Sendgrid.
func sendEmail(toEmail, toName, subject, htmlBody string) error {
	if config.AppConfig.SendgridKey == "" {
		log.Printf("Sendgrid key not configured, skipping email to %s (%s)", toEmail, subject)
		return nil
	}

	from := mail.NewEmail("Ilm Hub", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("Sendgrid rejected email to %s: %d %s", toEmail, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid rejected email, code: %d", resp.StatusCode)
	}
	return nil
}

// getEmailTemplate wraps body content in the portal's email layout.
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #0B3D2E; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1B1B1B; line-height: 1.6; }
			.content h2 { color: #0B3D2E; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F5EE; padding: 15px; border-radius: 4px; border-left: 4px solid #C9A227; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>Ilm Hub</h1></div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">This is an automated message from Ilm Hub. Please do not reply.</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendOTPEmail emails a verification code.
func SendOTPEmail(email, name, otp string) error {
	body := fmt.Sprintf(`
		<p>Assalamu alaikum %s,</p>
		<p>Your verification code is:</p>
		<div class="info-box"><strong style="font-size: 22px; letter-spacing: 4px;">%s</strong></div>
		<p>The code is valid for 5 minutes. If you did not request it, ignore this email.</p>`, name, otp)

	return sendEmail(email, name, "Your Ilm Hub verification code", getEmailTemplate("Email Verification", body))
}

// SendEnrollmentConfirmation emails the learner after a committed enrollment.
func SendEnrollmentConfirmation(email, name, reference string, coursesEnrolled int) {
	body := fmt.Sprintf(`
		<p>Assalamu alaikum %s,</p>
		<p>Your enrollment has been confirmed.</p>
		<div class="info-box">
			<p>Reference: <strong>%s</strong></p>
			<p>Courses enrolled: <strong>%d</strong></p>
		</div>
		<p>You can start learning from your dashboard right away.</p>`, name, reference, coursesEnrolled)

	if err := sendEmail(email, name, "Enrollment confirmed", getEmailTemplate("Enrollment Confirmed", body)); err != nil {
		log.Printf("Error sending enrollment confirmation to %s: %v", email, err)
	}
}
