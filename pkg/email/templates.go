package email

import (
	"fmt"
)

// StaffCredentialsData carries the data for the staff onboarding email.
type StaffCredentialsData struct {
	FirstName    string
	Email        string
	Username     string
	TempPassword string
	Role         string
	AppName      string
	BaseURL      string
}

// BuildStaffCredentialsEmail creates the email sent to newly registered
// staff members with their temporary credentials.
func BuildStaffCredentialsEmail(data StaffCredentialsData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "FertiTrack"
	}

	firstName := data.FirstName
	if firstName == "" {
		firstName = "there"
	}

	subject := fmt.Sprintf("Your %s account is ready", appName)

	textBody := fmt.Sprintf(`Hi %s,

An account has been created for you on %s with the role %s.

Username: %s
Temporary password: %s

Sign in at %s and change your password on first login.

Thanks,
The %s Team`,
		firstName, appName, data.Role, data.Username, data.TempPassword, data.BaseURL, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>An account has been created for you on %s with the role <strong>%s</strong>.</p>
    <p>Username: <strong>%s</strong></p>
    <p>Temporary password:</p>
    <p style="background-color: #f3f4f6; padding: 10px 15px; border-radius: 4px; font-family: monospace; font-size: 16px;">%s</p>
    <p style="text-align: center; margin: 30px 0;">
        <a href="%s" style="background-color: #2563eb; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Sign In</a>
    </p>
    <p style="color: #6b7280; font-size: 14px;"><em>Change your password on first login.</em></p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		firstName, appName, data.Role, data.Username, data.TempPassword, data.BaseURL, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// PatientWelcomeData carries the data for the patient welcome email.
type PatientWelcomeData struct {
	FirstName string
	Email     string
	AppName   string
	BaseURL   string
}

// BuildPatientWelcomeEmail creates the email sent after patient self-registration.
func BuildPatientWelcomeEmail(data PatientWelcomeData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "FertiTrack"
	}

	firstName := data.FirstName
	if firstName == "" {
		firstName = "there"
	}

	subject := fmt.Sprintf("Welcome to %s", appName)

	textBody := fmt.Sprintf(`Hi %s,

Your %s account has been created. You can now follow your treatments,
study results and laboratory progress online.

Sign in at %s

Thanks,
The %s Team`,
		firstName, appName, data.BaseURL, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>Your %s account has been created. You can now follow your treatments, study results and laboratory progress online.</p>
    <p style="text-align: center; margin: 30px 0;">
        <a href="%s" style="background-color: #16a34a; color: white; padding: 14px 28px; text-decoration: none; border-radius: 6px; display: inline-block; font-size: 16px;">Sign In</a>
    </p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		firstName, appName, data.BaseURL, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
