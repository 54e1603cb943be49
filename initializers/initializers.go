package initializers

import (
	"context"

	"kridavista-backend/config"
	"kridavista-backend/fiberlog"
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
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitSmtp()
	InitFileStorage(ctx)
	connectionhub.Init()
	roleprovider.NewHandler()
	xlsexport.NewHandler()

	applications := recordstore.NewCollection(config.Conf.Store.ApplicationsFile)
	submissions := recordstore.NewCollection(config.Conf.Store.SubmissionsFile)
	audit := auditlog.NewHandler(config.Conf.Store.AuditLogFile)
	mailer.NewHandler(smtp.Instance, config.Conf.SmtpFrom(), config.Conf.Admin.Email)

	adminpanel.NewHandler(applications, filestorage.Instance, xlsexport.Instance)
	intake.NewHandler(intake.Deps{
		Applications: applications,
		Submissions:  submissions,
		Audit:        audit,
		Files:        filestorage.Instance,
		Mailer:       mailer.Instance,
		Roles:        roleprovider.Instance,
		Hub:          connectionhub.Instance,
	})
}
