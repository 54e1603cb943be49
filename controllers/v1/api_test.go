package apiv1

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"kridavista-backend/config"
	adminpanel "kridavista-backend/lib/admin-panel"
	auditlog "kridavista-backend/lib/audit-log"
	roleprovider "kridavista-backend/lib/dicts/role"
	xlsexport "kridavista-backend/lib/export/xls"
	filestorage "kridavista-backend/lib/file-storage"
	"kridavista-backend/lib/intake"
	"kridavista-backend/lib/mailer"
	recordstore "kridavista-backend/lib/record-store"
	"kridavista-backend/lib/smtp"
	connectionhub "kridavista-backend/lib/ws/hub/connection-hub"
	"kridavista-backend/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	app        *fiber.App
	uploadsDir string
}

// newTestEnv wires the full stack against a temp directory, with the SMTP
// client left unconfigured so every send is a logged no-op.
func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	dir := t.TempDir()

	config.Conf = &config.Configuration{}
	config.Conf.Admin.Password = "admin123"
	config.Conf.Admin.Email = "support@kridavista.in"

	require.Nil(t, smtp.Connect("", "", "", "", false))
	roleprovider.NewHandler()
	xlsexport.NewHandler()
	connectionhub.Init()

	uploadsDir := filepath.Join(dir, "uploads")
	applications := recordstore.NewCollection(filepath.Join(dir, "applications.json"))
	submissions := recordstore.NewCollection(filepath.Join(dir, "submissions.json"))
	files := filestorage.NewLocalHandler(uploadsDir)
	mailer.NewHandler(smtp.Instance, config.Conf.SmtpFrom(), config.Conf.Admin.Email)
	adminpanel.NewHandler(applications, files, xlsexport.Instance)
	intake.NewHandler(intake.Deps{
		Applications: applications,
		Submissions:  submissions,
		Audit:        auditlog.NewHandler(filepath.Join(dir, "database.txt")),
		Files:        files,
		Mailer:       mailer.Instance,
		Roles:        roleprovider.Instance,
		Hub:          connectionhub.Instance,
	})

	app := fiber.New()
	apiV1 := fiber.New()
	app.Mount("/api/v1", apiV1)
	InitIntakeApiRouters(apiV1)
	InitCareerApiRouters(apiV1)

	adminPanel := fiber.New()
	apiV1.Mount("/admin", adminPanel)
	adminPanel.Use(middleware.AdminRequired())
	InitAdminApiRouters(adminPanel)

	return testEnv{app: app, uploadsDir: uploadsDir}
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	resp, err := app.Test(req)
	require.Nil(t, err)
	return resp
}

func postMultipart(t *testing.T, app *fiber.App, path string, fields map[string]string, fileKey, fileName string, fileContent []byte) *http.Response {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for key, value := range fields {
		require.Nil(t, mw.WriteField(key, value))
	}
	if fileKey != "" {
		part, err := mw.CreateFormFile(fileKey, fileName)
		require.Nil(t, err)
		_, err = part.Write(fileContent)
		require.Nil(t, err)
	}
	require.Nil(t, mw.Close())

	req := httptest.NewRequest(fiber.MethodPost, path, &body)
	req.Header.Set(fiber.HeaderContentType, mw.FormDataContentType())
	resp, err := app.Test(req)
	require.Nil(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	content, err := io.ReadAll(resp.Body)
	require.Nil(t, err)
	require.Nil(t, json.Unmarshal(content, out))
}

func TestIntakeEndpoints(t *testing.T) {
	t.Run(`waitlist signup check`, func(t *testing.T) {
		env := newTestEnv(t)
		resp := postForm(t, env.app, "/api/v1/waitlist", url.Values{
			"name":  {"John Doe"},
			"email": {"john@example.com"},
		})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		decodeBody(t, resp, &body)
		require.Equal(t, true, body.Success)
		require.Equal(t, "Successfully joined the waitlist!", body.Message)
	})

	t.Run(`waitlist missing email check`, func(t *testing.T) {
		env := newTestEnv(t)
		resp := postForm(t, env.app, "/api/v1/waitlist", url.Values{"name": {"John Doe"}})
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run(`support ticket check`, func(t *testing.T) {
		env := newTestEnv(t)
		resp := postForm(t, env.app, "/api/v1/support", url.Values{
			"name":    {"John Doe"},
			"email":   {"john@example.com"},
			"message": {"My order never arrived"},
		})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body struct {
			Success  bool   `json:"success"`
			TicketID string `json:"ticketId"`
		}
		decodeBody(t, resp, &body)
		require.Equal(t, true, body.Success)
		require.Regexp(t, regexp.MustCompile(`^SUP-[0-9A-F]{8}$`), body.TicketID)
	})

	t.Run(`contact fallback for unknown type check`, func(t *testing.T) {
		env := newTestEnv(t)
		resp := postMultipart(t, env.app, "/api/v1/contact", map[string]string{
			"name":    "John Doe",
			"email":   "john@example.com",
			"type":    "partnership",
			"message": "We would like to collaborate",
		}, "", "", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body struct {
			Message  string `json:"message"`
			TicketID string `json:"ticketId"`
		}
		decodeBody(t, resp, &body)
		require.Regexp(t, regexp.MustCompile(`^SUP-[0-9A-F]{8}$`), body.TicketID)
	})
}

func TestCareerEndpoints(t *testing.T) {
	t.Run(`application with resume check`, func(t *testing.T) {
		env := newTestEnv(t)
		resp := postMultipart(t, env.app, "/api/v1/career", map[string]string{
			"name":      "Jane Doe",
			"email":     "jane@example.com",
			"phone":     "+91 99999 11111",
			"roleSlug":  "hr-intern",
			"roleTitle": "HR Internship",
		}, "resume", "resume.pdf", []byte("%PDF-1.4 fake"))
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body struct {
			TicketID string `json:"ticketId"`
			Message  string `json:"message"`
		}
		decodeBody(t, resp, &body)
		require.Regexp(t, regexp.MustCompile(`^APP-[0-9A-F]{8}$`), body.TicketID)

		stored := filepath.Join(env.uploadsDir, body.TicketID+"-hr-intern-Jane_Doe.pdf")
		_, err := os.Stat(stored)
		require.Nil(t, err)
	})

	t.Run(`application without resume check`, func(t *testing.T) {
		env := newTestEnv(t)
		resp := postMultipart(t, env.app, "/api/v1/career", map[string]string{
			"name":      "Jane Doe",
			"email":     "jane@example.com",
			"roleSlug":  "hr-intern",
			"roleTitle": "HR Internship",
		}, "", "", nil)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run(`role catalog check`, func(t *testing.T) {
		env := newTestEnv(t)

		resp, err := env.app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/careers", nil))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		resp, err = env.app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/careers/hr-intern", nil))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		resp, err = env.app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/careers/crypto-wizard", nil))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestAdminEndpoints(t *testing.T) {
	t.Run(`password gate check`, func(t *testing.T) {
		env := newTestEnv(t)

		resp, err := env.app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/admin/applications", nil))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

		resp, err = env.app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/admin/applications?password=wrong", nil))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

		resp, err = env.app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/admin/applications?password=admin123", nil))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run(`applications list reflects submissions check`, func(t *testing.T) {
		env := newTestEnv(t)
		resp := postMultipart(t, env.app, "/api/v1/career", map[string]string{
			"name":      "Jane Doe",
			"email":     "jane@example.com",
			"roleSlug":  "hr-intern",
			"roleTitle": "HR Internship",
		}, "resume", "resume.pdf", []byte("%PDF-1.4 fake"))
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		resp, err := env.app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/admin/applications?password=admin123", nil))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body struct {
			Applications []struct {
				ID     string `json:"id"`
				Resume string `json:"resume"`
			} `json:"applications"`
		}
		decodeBody(t, resp, &body)
		require.Equal(t, 1, len(body.Applications))
		require.Regexp(t, regexp.MustCompile(`^APP-[0-9A-F]{8}$`), body.Applications[0].ID)
	})

	t.Run(`download guards check`, func(t *testing.T) {
		env := newTestEnv(t)

		resp, err := env.app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/admin/download?password=admin123", nil))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		traversal := url.QueryEscape("../../etc/passwd")
		resp, err = env.app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/admin/download?password=admin123&filename="+traversal, nil))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run(`application summary pdf check`, func(t *testing.T) {
		env := newTestEnv(t)
		resp := postMultipart(t, env.app, "/api/v1/career", map[string]string{
			"name":      "Jane Doe",
			"email":     "jane@example.com",
			"roleSlug":  "hr-intern",
			"roleTitle": "HR Internship",
		}, "resume", "resume.pdf", []byte("%PDF-1.4 fake"))
		var created struct {
			TicketID string `json:"ticketId"`
		}
		decodeBody(t, resp, &created)

		resp, err := env.app.Test(httptest.NewRequest(fiber.MethodGet,
			"/api/v1/admin/applications/"+created.TicketID+"/summary?password=admin123", nil))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		content, err := io.ReadAll(resp.Body)
		require.Nil(t, err)
		require.Equal(t, "%PDF", string(content[:4]))

		resp, err = env.app.Test(httptest.NewRequest(fiber.MethodGet,
			"/api/v1/admin/applications/APP-MISSING1/summary?password=admin123", nil))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}
