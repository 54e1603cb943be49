package apiv1

import (
	"fmt"

	"kridavista-backend/controllers"
	adminpanel "kridavista-backend/lib/admin-panel"
	pdfexport "kridavista-backend/lib/export/pdf"
	filestorage "kridavista-backend/lib/file-storage"
	connectionhub "kridavista-backend/lib/ws/hub/connection-hub"
	apimodels "kridavista-backend/models/api"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type adminApiController struct {
	controllers.BaseAPIController
}

func InitAdminApiRouters(app *fiber.App) {
	controller := adminApiController{}
	app.Get("applications", controller.listApplications)
	app.Get("applications/export", controller.exportApplications)
	app.Get("applications/:id/summary", controller.applicationSummary)
	app.Get("download", controller.download)

	app.Use("ws", func(ctx *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(ctx) {
			return ctx.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("ws", websocket.New(liveFeedHandler))
}

// @Summary List career applications
// @Tags Admin
// @Description List career applications, newest first
// @Param   password	query	string	true	"admin secret"
// @Param   role		query	string	false	"filter by role slug"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} apimodels.Response
// @router /api/v1/admin/applications [get]
func (c *adminApiController) listApplications(ctx *fiber.Ctx) error {
	apps, err := adminpanel.Instance.ListApplications(ctx.Query("role"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list applications")
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"applications": apps})
}

// @Summary Export career applications to Excel
// @Tags Admin
// @Description Export career applications as an XLSX workbook
// @Param   password	query	string	true	"admin secret"
// @Success 200
// @Failure 401 {object} apimodels.Response
// @router /api/v1/admin/applications/export [get]
func (c *adminApiController) exportApplications(ctx *fiber.Ctx) error {
	content, err := adminpanel.Instance.ExportApplications()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to export applications")
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="applications.xlsx"`)
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return ctx.Status(fiber.StatusOK).Send(content)
}

// @Summary One application as PDF
// @Tags Admin
// @Description PDF summary of a single application
// @Param   password	query	string	true	"admin secret"
// @Param   id			path	string	true	"application id"
// @Success 200
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/admin/applications/{id}/summary [get]
func (c *adminApiController) applicationSummary(ctx *fiber.Ctx) error {
	app, found, err := adminpanel.Instance.GetApplication(ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load application")
	}
	if !found {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("Application not found"))
	}
	content, err := pdfexport.GenerateApplicationSummary(app)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to render application summary")
	}
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", app.ID+".pdf"))
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	return ctx.Status(fiber.StatusOK).Send(content)
}

// @Summary Download a stored resume
// @Tags Admin
// @Description Download a stored resume by its generated filename
// @Param   password	query	string	true	"admin secret"
// @Param   filename	query	string	true	"generated resume filename"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/admin/download [get]
func (c *adminApiController) download(ctx *fiber.Ctx) error {
	filename := ctx.Query("filename")
	if filename == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("Filename is required"))
	}
	content, err := adminpanel.Instance.DownloadResume(ctx.UserContext(), filename)
	if err != nil {
		if errors.Is(err, filestorage.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("File not found"))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to read stored file")
	}
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	return ctx.Status(fiber.StatusOK).Send(content)
}

// @Summary Live submission feed
// @Tags Admin
// @Description Websocket feed of new submission events
// @Param   password	query	string	true	"admin secret"
// @Success 200 {object} wsmodels.ServerMessage
// @router /api/v1/admin/ws [get]
func liveFeedHandler(c *websocket.Conn) {
	clientID := uuid.NewString()
	connectionhub.Instance.AddClient(clientID, c)
	defer connectionhub.Instance.DeleteClient(clientID)
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}
