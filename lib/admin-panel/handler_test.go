package adminpanel

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	xlsexport "kridavista-backend/lib/export/xls"
	filestorage "kridavista-backend/lib/file-storage"
	recordstore "kridavista-backend/lib/record-store"
	"kridavista-backend/models"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newTestHandler(t *testing.T) (Provider, recordstore.Provider, filestorage.Provider) {
	t.Helper()
	dir := t.TempDir()
	apps := recordstore.NewCollection(filepath.Join(dir, "applications.json"))
	files := filestorage.NewLocalHandler(filepath.Join(dir, "uploads"))
	xlsexport.NewHandler()
	return NewHandler(apps, files, xlsexport.Instance), apps, files
}

func seedApplications(t *testing.T, store recordstore.Provider) []models.Application {
	t.Helper()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	apps := []models.Application{
		{ID: "APP-AAAA1111", Name: "Jane Doe", Email: "jane@example.com", RoleSlug: "hr-intern",
			RoleTitle: "HR Internship", Resume: "APP-AAAA1111-hr-intern-Jane_Doe.pdf", SubmittedAt: base},
		{ID: "APP-BBBB2222", Name: "John Doe", Email: "john@example.com", RoleSlug: "full-stack-developer-intern",
			RoleTitle: "Full Stack Developer", Resume: "APP-BBBB2222-full-stack-developer-intern-John_Doe.pdf",
			SubmittedAt: base.Add(time.Hour)},
		{ID: "APP-CCCC3333", Name: "Ann Lee", Email: "ann@example.com", RoleSlug: "hr-intern",
			RoleTitle: "HR Internship", Resume: "APP-CCCC3333-hr-intern-Ann_Lee.pdf",
			SubmittedAt: base.Add(2 * time.Hour)},
	}
	for _, app := range apps {
		require.Nil(t, store.Append(app))
	}
	return apps
}

func TestListApplications(t *testing.T) {
	t.Run(`newest first check`, func(t *testing.T) {
		h, store, _ := newTestHandler(t)
		seedApplications(t, store)

		apps, err := h.ListApplications("")
		require.Nil(t, err)
		require.Equal(t, 3, len(apps))
		require.Equal(t, "APP-CCCC3333", apps[0].ID)
		require.Equal(t, "APP-BBBB2222", apps[1].ID)
		require.Equal(t, "APP-AAAA1111", apps[2].ID)
	})

	t.Run(`role filter check`, func(t *testing.T) {
		h, store, _ := newTestHandler(t)
		seedApplications(t, store)

		apps, err := h.ListApplications("hr-intern")
		require.Nil(t, err)
		require.Equal(t, 2, len(apps))
		for _, app := range apps {
			require.Equal(t, "hr-intern", app.RoleSlug)
		}
	})

	t.Run(`empty store check`, func(t *testing.T) {
		h, _, _ := newTestHandler(t)
		apps, err := h.ListApplications("")
		require.Nil(t, err)
		require.Equal(t, 0, len(apps))
	})
}

func TestGetApplication(t *testing.T) {
	h, store, _ := newTestHandler(t)
	seedApplications(t, store)

	app, found, err := h.GetApplication("APP-BBBB2222")
	require.Nil(t, err)
	require.Equal(t, true, found)
	require.Equal(t, "John Doe", app.Name)

	_, found, err = h.GetApplication("APP-MISSING1")
	require.Nil(t, err)
	require.Equal(t, false, found)
}

func TestExportApplications(t *testing.T) {
	h, store, _ := newTestHandler(t)
	seedApplications(t, store)

	content, err := h.ExportApplications()
	require.Nil(t, err)

	book, err := excelize.OpenReader(bytes.NewReader(content))
	require.Nil(t, err)
	defer book.Close()

	rows, err := book.GetRows(book.GetSheetName(0))
	require.Nil(t, err)
	require.Equal(t, 4, len(rows))
	require.Equal(t, "Application ID", rows[0][0])
	require.Equal(t, "APP-CCCC3333", rows[1][0])
}

func TestDownloadResume(t *testing.T) {
	ctx := context.Background()
	h, _, files := newTestHandler(t)

	content := []byte("%PDF-1.4 resume")
	require.Nil(t, files.Store(ctx, "APP-AAAA1111-hr-intern-Jane_Doe.pdf", content))

	got, err := h.DownloadResume(ctx, "APP-AAAA1111-hr-intern-Jane_Doe.pdf")
	require.Nil(t, err)
	require.Equal(t, content, got)

	_, err = h.DownloadResume(ctx, "../../etc/passwd")
	require.Equal(t, filestorage.ErrNotFound, err)
}
