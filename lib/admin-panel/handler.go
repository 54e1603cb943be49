// Package adminpanel is the read/export side of the stores: everything the
// password-gated dashboard can see.
package adminpanel

import (
	"context"
	"sort"

	xlsexport "kridavista-backend/lib/export/xls"
	filestorage "kridavista-backend/lib/file-storage"
	recordstore "kridavista-backend/lib/record-store"
	"kridavista-backend/models"

	"github.com/pkg/errors"
)

type Provider interface {
	ListApplications(roleSlug string) ([]models.Application, error)
	GetApplication(id string) (models.Application, bool, error)
	ExportApplications() ([]byte, error)
	DownloadResume(ctx context.Context, filename string) ([]byte, error)
}

var Instance Provider

func NewHandler(applications recordstore.Provider, files filestorage.Provider, xls xlsexport.Provider) Provider {
	Instance = &impl{
		applications: applications,
		files:        files,
		xls:          xls,
	}
	return Instance
}

type impl struct {
	applications recordstore.Provider
	files        filestorage.Provider
	xls          xlsexport.Provider
}

// ListApplications returns applications newest first, optionally narrowed
// to one role slug.
func (i impl) ListApplications(roleSlug string) ([]models.Application, error) {
	apps := []models.Application{}
	if err := i.applications.Load(&apps); err != nil {
		return nil, errors.Wrap(err, "failed to load applications")
	}
	if roleSlug != "" {
		filtered := apps[:0]
		for _, app := range apps {
			if app.RoleSlug == roleSlug {
				filtered = append(filtered, app)
			}
		}
		apps = filtered
	}
	sort.Slice(apps, func(a, b int) bool {
		return apps[a].SubmittedAt.After(apps[b].SubmittedAt)
	})
	return apps, nil
}

func (i impl) GetApplication(id string) (models.Application, bool, error) {
	apps, err := i.ListApplications("")
	if err != nil {
		return models.Application{}, false, err
	}
	for _, app := range apps {
		if app.ID == id {
			return app, true, nil
		}
	}
	return models.Application{}, false, nil
}

func (i impl) ExportApplications() ([]byte, error) {
	apps, err := i.ListApplications("")
	if err != nil {
		return nil, err
	}
	return i.xls.Applications(apps)
}

func (i impl) DownloadResume(ctx context.Context, filename string) ([]byte, error) {
	return i.files.Retrieve(ctx, filename)
}
