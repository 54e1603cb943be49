package apiv1

import (
	"kridavista-backend/controllers"
	roleprovider "kridavista-backend/lib/dicts/role"
	"kridavista-backend/lib/intake"
	apimodels "kridavista-backend/models/api"
	intakeapimodels "kridavista-backend/models/api/intake"

	"github.com/gofiber/fiber/v2"
)

type careerApiController struct {
	controllers.BaseAPIController
}

func InitCareerApiRouters(app *fiber.App) {
	controller := careerApiController{}
	app.Post("career", controller.apply)
	app.Route("careers", func(router fiber.Router) {
		router.Get("", controller.listRoles)
		router.Get(":slug", controller.getRole)
	})
}

// @Summary Open roles
// @Tags Careers
// @Description List of open roles with their application form fields
// @Success 200 {object} apimodels.Response{data=[]roleprovider.CareerRole}
// @router /api/v1/careers [get]
func (c *careerApiController) listRoles(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(roleprovider.Instance.List()))
}

// @Summary One open role
// @Tags Careers
// @Description One open role by slug
// @Param   slug	path	string	true	"role slug"
// @Success 200 {object} apimodels.Response{data=roleprovider.CareerRole}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/careers/{slug} [get]
func (c *careerApiController) getRole(ctx *fiber.Ctx) error {
	role, ok := roleprovider.Instance.GetBySlug(ctx.Params("slug"))
	if !ok {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("Role not found"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(role))
}

// @Summary Submit a career application
// @Tags Careers
// @Description Submit a career application with resume and role questions
// @Param   name		formData	string	true	"name"
// @Param   email		formData	string	true	"email"
// @Param   phone		formData	string	false	"phone"
// @Param   roleSlug	formData	string	true	"role slug from the catalog"
// @Param   roleTitle	formData	string	true	"role title"
// @Param   resume		formData	file	true	"resume PDF"
// @Success 200 {object} intakeapimodels.CareerResponse
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/career [post]
func (c *careerApiController) apply(ctx *fiber.Ctx) error {
	payload := intakeapimodels.CareerRequest{
		Name:      ctx.FormValue("name"),
		Email:     ctx.FormValue("email"),
		Phone:     ctx.FormValue("phone"),
		RoleSlug:  ctx.FormValue("roleSlug"),
		RoleTitle: ctx.FormValue("roleTitle"),
		Fields:    formFields(ctx),
	}
	if upload, err := readFormFile(ctx, "resume"); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("failed to read resume file"))
	} else if upload != nil {
		payload.Resume = *upload
	}

	ticketID, err := intake.Instance.SubmitCareer(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to process career application")
	}
	return ctx.Status(fiber.StatusOK).JSON(intakeapimodels.CareerResponse{
		TicketID: ticketID,
		Message:  "Application submitted successfully!",
	})
}

// formFields captures every submitted value, role questions included. Keys
// are free-form, by convention snake_case ids from the role catalog.
func formFields(ctx *fiber.Ctx) map[string]string {
	fields := map[string]string{}
	form, err := ctx.MultipartForm()
	if err != nil {
		return fields
	}
	for key, values := range form.Value {
		if len(values) > 0 {
			fields[key] = values[0]
		}
	}
	return fields
}
