// Package mailer builds the branded notification messages and hands them to
// the SMTP transport. One outbound message per call, no retry and no queue:
// a failed send is terminal for that message and is only reported through
// the returned error.
package mailer

import (
	"fmt"

	"kridavista-backend/lib/smtp"
	"kridavista-backend/models"
)

type Provider interface {
	SendWaitlistWelcome(name, email string) error
	SendNewsletterWelcome(name, email string) error
	SendSupportTicket(name, email, ticketID, message string) error
	SendSupportAlert(sub models.Submission, attachments []smtp.Attachment) error
	SendCareerConfirmation(name, email, ticketID, roleTitle string) error
	SendCareerAlert(app models.Application, resume smtp.Attachment) error
}

var Instance Provider

func NewHandler(client smtp.Provider, from, adminEmail string) Provider {
	Instance = &impl{
		client:     client,
		from:       from,
		adminEmail: adminEmail,
	}
	return Instance
}

type impl struct {
	client     smtp.Provider
	from       string
	adminEmail string
}

func (i impl) SendWaitlistWelcome(name, email string) error {
	return i.client.SendEMail(i.from, email,
		"You have joined the Kridavista Waitlist",
		waitlistWelcomeBody(name), nil)
}

func (i impl) SendNewsletterWelcome(name, email string) error {
	return i.client.SendEMail(i.from, email,
		"Welcome to Kridavista Newsletter",
		newsletterWelcomeBody(name), nil)
}

func (i impl) SendSupportTicket(name, email, ticketID, message string) error {
	return i.client.SendEMail(i.from, email,
		fmt.Sprintf("Support Ticket Created #%s", ticketID),
		supportTicketBody(ticketID, name, message), nil)
}

func (i impl) SendSupportAlert(sub models.Submission, attachments []smtp.Attachment) error {
	return i.client.SendEMail(i.from, i.adminEmail,
		fmt.Sprintf("[SUPPORT] New Ticket - %s", sub.ID),
		supportAlertBody(sub.ID, sub.Type, sub.Name, sub.Email, sub.Phone, sub.Message),
		attachments)
}

func (i impl) SendCareerConfirmation(name, email, ticketID, roleTitle string) error {
	return i.client.SendEMail(i.from, email,
		fmt.Sprintf("Thank You for Applying to Kridavista - %s", roleTitle),
		careerConfirmationBody(ticketID, name, roleTitle), nil)
}

func (i impl) SendCareerAlert(app models.Application, resume smtp.Attachment) error {
	return i.client.SendEMail(i.from, i.adminEmail,
		fmt.Sprintf("New Career Application - %s (%s)", app.RoleTitle, app.Name),
		careerAlertBody(app.ID, app.Name, app.Email, app.Phone, app.RoleTitle, app.Fields),
		[]smtp.Attachment{resume})
}
