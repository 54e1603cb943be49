package apiv1

import (
	"io"

	"kridavista-backend/controllers"
	"kridavista-backend/lib/intake"
	apimodels "kridavista-backend/models/api"
	intakeapimodels "kridavista-backend/models/api/intake"

	"github.com/gofiber/fiber/v2"
)

type intakeApiController struct {
	controllers.BaseAPIController
}

func InitIntakeApiRouters(app *fiber.App) {
	controller := intakeApiController{}
	app.Post("waitlist", controller.waitlist)
	app.Post("newsletter", controller.newsletter)
	app.Post("support", controller.support)
	app.Post("contact", controller.contact)
}

// @Summary Join the waitlist
// @Tags Intake
// @Description Join the waitlist
// @Param   name	formData	string	true	"name"
// @Param   email	formData	string	true	"email"
// @Success 200 {object} intakeapimodels.SubscribeResponse
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/waitlist [post]
func (c *intakeApiController) waitlist(ctx *fiber.Ctx) error {
	var payload intakeapimodels.SubscribeRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := intake.Instance.SubmitWaitlist(ctx.UserContext(), payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to process waitlist signup")
	}
	return ctx.Status(fiber.StatusOK).JSON(intakeapimodels.SubscribeResponse{
		Success: true,
		Message: "Successfully joined the waitlist!",
	})
}

// @Summary Subscribe to the newsletter
// @Tags Intake
// @Description Subscribe to the newsletter
// @Param   name	formData	string	true	"name"
// @Param   email	formData	string	true	"email"
// @Success 200 {object} intakeapimodels.SubscribeResponse
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/newsletter [post]
func (c *intakeApiController) newsletter(ctx *fiber.Ctx) error {
	var payload intakeapimodels.SubscribeRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := intake.Instance.SubmitNewsletter(ctx.UserContext(), payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to process newsletter signup")
	}
	return ctx.Status(fiber.StatusOK).JSON(intakeapimodels.SubscribeResponse{
		Success: true,
		Message: "Successfully subscribed to updates!",
	})
}

// @Summary Open a support ticket
// @Tags Intake
// @Description Open a support ticket
// @Param   name	formData	string	true	"name"
// @Param   email	formData	string	true	"email"
// @Param   phone	formData	string	false	"phone"
// @Param   message	formData	string	true	"message"
// @Success 200 {object} intakeapimodels.TicketResponse
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/support [post]
func (c *intakeApiController) support(ctx *fiber.Ctx) error {
	var payload intakeapimodels.SupportRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	ticketID, err := intake.Instance.SubmitSupport(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to process support ticket")
	}
	return ctx.Status(fiber.StatusOK).JSON(intakeapimodels.TicketResponse{
		Success:  true,
		TicketID: ticketID,
		Message:  "Support ticket created successfully",
	})
}

// @Summary Unified contact submit
// @Tags Intake
// @Description Unified contact submit for waitlist/newsletter/career/support popups
// @Param   name		formData	string	true	"name"
// @Param   email		formData	string	true	"email"
// @Param   phone		formData	string	false	"phone"
// @Param   type		formData	string	true	"waitlist|newsletter|career|support"
// @Param   message		formData	string	false	"message, optional for waitlist/newsletter"
// @Param   attachment	formData	file	false	"optional attachment, forwarded to staff"
// @Success 200 {object} intakeapimodels.ContactResponse
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/contact [post]
func (c *intakeApiController) contact(ctx *fiber.Ctx) error {
	payload := intakeapimodels.ContactRequest{
		Name:    ctx.FormValue("name"),
		Email:   ctx.FormValue("email"),
		Phone:   ctx.FormValue("phone"),
		Type:    ctx.FormValue("type"),
		Message: ctx.FormValue("message"),
	}
	if upload, err := readFormFile(ctx, "attachment"); err == nil && upload != nil {
		payload.Attachment = upload
	}

	resp, err := intake.Instance.SubmitContact(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to process contact submission")
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// readFormFile loads one multipart file into memory; a missing part is not
// an error, the caller decides whether the file was required.
func readFormFile(ctx *fiber.Ctx, key string) (*intakeapimodels.FileUpload, error) {
	fileHeader, err := ctx.FormFile(key)
	if err != nil {
		return nil, nil
	}
	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &intakeapimodels.FileUpload{
		Name:    fileHeader.Filename,
		Content: content,
	}, nil
}
