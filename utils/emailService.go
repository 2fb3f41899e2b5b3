package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"skillforge/config"
)

// SendEmail delivers one HTML email over SMTP. Callers that must not block on
// delivery run it in a goroutine; a failed send is logged and never fails the
// request that triggered it.
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: SkillForge <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

// HTML wrapper shared by every outbound mail
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1D2B53; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1D2B53; line-height: 1.6; }
			.content h2 { color: #1D2B53; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.badge-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #FFA300; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>SKILLFORGE</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 SkillForge. Keep learning, one day at a time.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// SendWelcomeEmail greets a freshly registered user. Fire-and-forget.
func SendWelcomeEmail(email, name string) {
	subject := "Welcome to SkillForge!"
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Thanks for joining <strong>SkillForge</strong>!</p>
		<p>Browse the catalog, enroll in a course and start earning XP. Your learning journey begins now.</p>
	`, name)

	go SendEmail([]string{email}, subject, getEmailTemplate("Welcome Onboard!", body))
}

// SendCourseCompletedEmail congratulates a user on finishing a course. Fire-and-forget.
func SendCourseCompletedEmail(email, name, courseTitle string) {
	subject := "Course Completed: " + courseTitle
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Congratulations! You have completed <strong>%s</strong>.</p>
		<div class="badge-box">
			You earned the <strong>Finisher</strong> badge and a 50 XP bonus.
		</div>
		<p>Check the leaderboard to see where you stand.</p>
	`, name, courseTitle)

	go SendEmail([]string{email}, subject, getEmailTemplate("You Did It!", body))
}
