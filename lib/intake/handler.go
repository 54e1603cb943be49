// Package intake is the submission pipeline: validate, generate an id,
// persist the upload and the record, then fire best-effort notifications.
// Validation always happens before the first side effect; notification
// failures never fail a persisted submission.
package intake

import (
	"context"
	"fmt"
	"strings"
	"time"

	auditlog "kridavista-backend/lib/audit-log"
	roleprovider "kridavista-backend/lib/dicts/role"
	filestorage "kridavista-backend/lib/file-storage"
	"kridavista-backend/lib/mailer"
	recordstore "kridavista-backend/lib/record-store"
	"kridavista-backend/lib/smtp"
	connectionhub "kridavista-backend/lib/ws/hub/connection-hub"
	"kridavista-backend/models"
	intakeapimodels "kridavista-backend/models/api/intake"
	wsmodels "kridavista-backend/models/ws"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	SubmitWaitlist(ctx context.Context, req intakeapimodels.SubscribeRequest) error
	SubmitNewsletter(ctx context.Context, req intakeapimodels.SubscribeRequest) error
	SubmitSupport(ctx context.Context, req intakeapimodels.SupportRequest) (ticketID string, err error)
	SubmitCareer(ctx context.Context, req intakeapimodels.CareerRequest) (ticketID string, err error)
	SubmitContact(ctx context.Context, req intakeapimodels.ContactRequest) (intakeapimodels.ContactResponse, error)
}

var Instance Provider

// Deps are the pipeline collaborators, constructed once at startup and
// passed in explicitly.
type Deps struct {
	Applications recordstore.Provider
	Submissions  recordstore.Provider
	Audit        auditlog.Provider
	Files        filestorage.Provider
	Mailer       mailer.Provider
	Roles        roleprovider.Provider
	Hub          connectionhub.Provider // optional
}

func NewHandler(deps Deps) Provider {
	Instance = &impl{deps: deps}
	return Instance
}

type impl struct {
	deps Deps
}

func (i impl) SubmitWaitlist(ctx context.Context, req intakeapimodels.SubscribeRequest) error {
	return i.subscribe(req, models.SubmissionWaitlist)
}

func (i impl) SubmitNewsletter(ctx context.Context, req intakeapimodels.SubscribeRequest) error {
	return i.subscribe(req, models.SubmissionNewsletter)
}

func (i impl) subscribe(req intakeapimodels.SubscribeRequest, submissionType string) error {
	if req.Name == "" || req.Email == "" {
		return NewValidationError("Missing required fields")
	}
	sub := models.Submission{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Type:      submissionType,
		Message:   fmt.Sprintf("User joined via %s popup.", submissionType),
		CreatedAt: time.Now().UTC(),
		Status:    models.StatusForType(submissionType),
	}
	if err := i.deps.Submissions.Append(sub); err != nil {
		return errors.Wrap(err, "failed to persist subscription")
	}
	i.deps.Audit.Log(submissionType, sub)

	logger := log.WithField("submission_id", sub.ID)
	if submissionType == models.SubmissionWaitlist {
		i.dispatch(logger, "waitlist welcome", i.deps.Mailer.SendWaitlistWelcome(req.Name, req.Email))
	} else {
		i.dispatch(logger, "newsletter welcome", i.deps.Mailer.SendNewsletterWelcome(req.Name, req.Email))
	}
	i.notify(wsmodels.EventNewSubscriber, fmt.Sprintf("%s: %s", sub.Status, req.Email))
	return nil
}

func (i impl) SubmitSupport(ctx context.Context, req intakeapimodels.SupportRequest) (string, error) {
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return "", NewValidationError("Missing required fields")
	}
	ticketID := newTicketID("SUP")
	sub := models.Submission{
		ID:        ticketID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Type:      models.SubmissionSupport,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
		Status:    models.StatusForType(models.SubmissionSupport),
	}
	if err := i.deps.Submissions.Append(sub); err != nil {
		return "", errors.Wrap(err, "failed to persist support ticket")
	}
	i.deps.Audit.Log("support_ticket", sub)

	logger := log.WithField("ticket_id", ticketID)
	i.dispatch(logger, "ticket confirmation", i.deps.Mailer.SendSupportTicket(req.Name, req.Email, ticketID, req.Message))
	i.dispatch(logger, "admin alert", i.deps.Mailer.SendSupportAlert(sub, nil))
	i.notify(wsmodels.EventNewTicket, fmt.Sprintf("New support ticket %s", ticketID))
	return ticketID, nil
}

func (i impl) SubmitCareer(ctx context.Context, req intakeapimodels.CareerRequest) (string, error) {
	if req.Name == "" || req.Email == "" || req.RoleSlug == "" || req.RoleTitle == "" {
		return "", NewValidationError("Missing required fields")
	}
	if len(req.Resume.Content) == 0 {
		return "", NewValidationError("Resume file is required")
	}
	if _, ok := i.deps.Roles.GetBySlug(req.RoleSlug); !ok {
		return "", NewValidationError("Unknown role")
	}

	ticketID := newTicketID("APP")
	resumeFilename := fmt.Sprintf("%s-%s-%s.pdf", ticketID, req.RoleSlug, underscoreName(req.Name))
	if err := i.deps.Files.Store(ctx, resumeFilename, req.Resume.Content); err != nil {
		return "", errors.Wrap(err, "failed to store resume")
	}

	app := models.Application{
		ID:          ticketID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		RoleSlug:    req.RoleSlug,
		RoleTitle:   req.RoleTitle,
		Resume:      resumeFilename,
		SubmittedAt: time.Now().UTC(),
		Fields:      req.Fields,
	}
	if err := i.deps.Applications.Append(app); err != nil {
		return "", errors.Wrap(err, "failed to persist application")
	}
	i.deps.Audit.Log("career_application", map[string]string{
		"ticketId":  ticketID,
		"name":      req.Name,
		"email":     req.Email,
		"phone":     req.Phone,
		"roleTitle": req.RoleTitle,
		"resume":    resumeFilename,
	})

	logger := log.WithField("ticket_id", ticketID)
	i.dispatch(logger, "application confirmation",
		i.deps.Mailer.SendCareerConfirmation(req.Name, req.Email, ticketID, req.RoleTitle))
	i.dispatch(logger, "admin alert",
		i.deps.Mailer.SendCareerAlert(app, smtp.Attachment{
			Filename:    req.Resume.Name,
			Content:     req.Resume.Content,
			ContentType: "application/pdf",
		}))
	i.notify(wsmodels.EventNewApplication, fmt.Sprintf("New application %s for %s", ticketID, req.RoleTitle))
	return ticketID, nil
}

func (i impl) SubmitContact(ctx context.Context, req intakeapimodels.ContactRequest) (intakeapimodels.ContactResponse, error) {
	finalMessage := req.Message
	isSubscription := req.Type == models.SubmissionWaitlist || req.Type == models.SubmissionNewsletter
	if finalMessage == "" && isSubscription {
		finalMessage = fmt.Sprintf("User joined via %s popup.", req.Type)
	}
	if req.Name == "" || req.Email == "" || req.Type == "" || finalMessage == "" {
		return intakeapimodels.ContactResponse{}, NewValidationError("Missing required fields")
	}

	id := uuid.NewString()
	if !isSubscription {
		// Everything that is not a plain subscription needs staff attention
		// and gets a referenceable ticket code. Unknown types included.
		id = newTicketID("SUP")
	}
	sub := models.Submission{
		ID:            id,
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Type:          req.Type,
		Message:       finalMessage,
		CreatedAt:     time.Now().UTC(),
		HasAttachment: req.Attachment != nil && len(req.Attachment.Content) > 0,
		Status:        models.StatusForType(req.Type),
	}
	if err := i.deps.Submissions.Append(sub); err != nil {
		return intakeapimodels.ContactResponse{}, errors.Wrap(err, "failed to persist submission")
	}
	i.deps.Audit.Log(req.Type, sub)

	logger := log.WithField("submission_id", id)
	switch req.Type {
	case models.SubmissionWaitlist:
		i.dispatch(logger, "waitlist welcome", i.deps.Mailer.SendWaitlistWelcome(req.Name, req.Email))
		i.notify(wsmodels.EventNewSubscriber, fmt.Sprintf("%s: %s", sub.Status, req.Email))
		return intakeapimodels.ContactResponse{Message: "Successfully subscribed!"}, nil
	case models.SubmissionNewsletter:
		i.dispatch(logger, "newsletter welcome", i.deps.Mailer.SendNewsletterWelcome(req.Name, req.Email))
		i.notify(wsmodels.EventNewSubscriber, fmt.Sprintf("%s: %s", sub.Status, req.Email))
		return intakeapimodels.ContactResponse{Message: "Successfully subscribed!"}, nil
	default:
		// Support templates also cover career and unrecognized types here.
		var attachments []smtp.Attachment
		if sub.HasAttachment {
			attachments = append(attachments, smtp.Attachment{
				Filename: req.Attachment.Name,
				Content:  req.Attachment.Content,
			})
		}
		i.dispatch(logger, "admin alert", i.deps.Mailer.SendSupportAlert(sub, attachments))
		i.dispatch(logger, "ticket confirmation", i.deps.Mailer.SendSupportTicket(req.Name, req.Email, id, finalMessage))
		i.notify(wsmodels.EventNewTicket, fmt.Sprintf("New support ticket %s", id))
		return intakeapimodels.ContactResponse{
			Message:  "Your request has been submitted successfully.",
			TicketID: id,
		}, nil
	}
}

// dispatch is the named "ignore but log" step for notification outcomes:
// the submission is already persisted, so a failed send is logged and
// deliberately discarded.
func (i impl) dispatch(logger *log.Entry, kind string, err error) {
	if err != nil {
		logger.WithError(err).Errorf("failed to send %s email", kind)
	}
}

func (i impl) notify(code, msg string) {
	if i.deps.Hub == nil {
		return
	}
	i.deps.Hub.Broadcast(wsmodels.ServerMessage{
		Time: time.Now().UTC().Format(time.RFC3339),
		Code: code,
		Msg:  msg,
	})
}

// newTicketID returns "<PREFIX>-XXXXXXXX", the truncated upper-cased head
// of a fresh UUID.
func newTicketID(prefix string) string {
	return prefix + "-" + strings.ToUpper(uuid.NewString()[:8])
}

// underscoreName collapses whitespace in a person's name to underscores for
// use inside a generated filename.
func underscoreName(name string) string {
	return strings.Join(strings.Fields(name), "_")
}
