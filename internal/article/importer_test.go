package article

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&Article{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "articles.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func runImport(t *testing.T, repo *Repo, path string) (ImportStats, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	im := NewImporter(repo, &out, &errOut)
	stats, err := im.ImportFile(context.Background(), path)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	return stats, errOut.String()
}

const twoRowCSV = "id,title,time,content\n" +
	"1,CSV Test Article 1,2025-06-20 10:00:00,Beware of fake investment groups.\n" +
	"2,CSV Test Article 2,2025/06/21 09:30,Never share one-time passwords.\n"

func TestImport_CreateThenIdempotent(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepo(db)
	path := writeCSV(t, twoRowCSV)

	stats, _ := runImport(t, repo, path)
	if stats.Created != 2 || stats.Updated != 0 || stats.Unchanged != 0 || stats.Errors != 0 {
		t.Fatalf("first run stats: %+v", stats)
	}

	// second run over the identical file must not rewrite anything
	stats, _ = runImport(t, repo, path)
	if stats.Created != 0 || stats.Updated != 0 || stats.Unchanged != 2 || stats.Errors != 0 {
		t.Fatalf("second run stats: %+v", stats)
	}

	var count int64
	if err := db.Model(&Article{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 articles, got %d", count)
	}
}

func TestImport_UpdateOnChangedField(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepo(db)

	runImport(t, repo, writeCSV(t, twoRowCSV))

	changed := "id,title,time,content\n" +
		"1,CSV Test Article 1,2025-06-20 10:00:00,Updated warning about investment groups.\n" +
		"2,CSV Test Article 2,2025/06/21 09:30,Never share one-time passwords.\n"
	stats, _ := runImport(t, repo, writeCSV(t, changed))

	if stats.Created != 0 || stats.Updated != 1 || stats.Unchanged != 1 || stats.Errors != 0 {
		t.Fatalf("stats after change: %+v", stats)
	}

	a, err := repo.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("get article 1: %v", err)
	}
	if a.Content != "Updated warning about investment groups." {
		t.Fatalf("content not overwritten: %q", a.Content)
	}
	if a.Title != "CSV Test Article 1" {
		t.Fatalf("title clobbered: %q", a.Title)
	}
	want := time.Date(2025, 6, 20, 10, 0, 0, 0, time.UTC)
	if !a.Time.Equal(want) {
		t.Fatalf("time changed: got %v want %v", a.Time, want)
	}
}

func TestImport_MissingColumnAborts(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepo(db)
	path := writeCSV(t, "id,title,time\n1,No Content Column,2025/06/21 09:30\n")

	var out, errOut bytes.Buffer
	im := NewImporter(repo, &out, &errOut)
	_, err := im.ImportFile(context.Background(), path)
	if !errors.Is(err, ErrInvalidSchema) {
		t.Fatalf("expected schema error, got %v", err)
	}

	var count int64
	if err := db.Model(&Article{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("rows were imported despite bad schema: %d", count)
	}
}

func TestImport_BadRowSkippedAndCounted(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepo(db)

	csv := "id,title,time,content\n" +
		"1,Good Row,2025/06/21 09:30,Some content.\n" +
		"x,Bad ID,2025/06/21 09:30,Broken.\n" +
		"3,Bad Time,yesterday,Broken too.\n"
	stats, errOut := runImport(t, repo, writeCSV(t, csv))

	if stats.Created != 1 || stats.Errors != 2 {
		t.Fatalf("stats: %+v", stats)
	}
	if !strings.Contains(errOut, "invalid row x") {
		t.Fatalf("missing bad-id report: %q", errOut)
	}
	if !strings.Contains(errOut, "invalid row 3") {
		t.Fatalf("missing bad-time report: %q", errOut)
	}
}

func TestImport_ColumnOrderIndependent(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepo(db)

	csv := "content,id,time,title\n" +
		"Shuffled columns still import.,7,2025/06/21 09:30,Shuffled\n"
	stats, _ := runImport(t, repo, writeCSV(t, csv))
	if stats.Created != 1 || stats.Errors != 0 {
		t.Fatalf("stats: %+v", stats)
	}

	a, err := repo.GetByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if a.Title != "Shuffled" || a.Content != "Shuffled columns still import." {
		t.Fatalf("fields mismapped: %+v", a)
	}
}

func TestParseTimeFormats(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2025-06-20T10:00:00+08:00", time.Date(2025, 6, 20, 10, 0, 0, 0, time.FixedZone("", 8*3600))},
		{"2025-06-20 10:00:00", time.Date(2025, 6, 20, 10, 0, 0, 0, time.UTC)},
		{"2025/06/20 10:00", time.Date(2025, 6, 20, 10, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, err := parseTime(tc.in)
		if err != nil {
			t.Fatalf("parseTime(%q): %v", tc.in, err)
		}
		if !got.Equal(tc.want) {
			t.Fatalf("parseTime(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	if _, err := parseTime("not a time"); err == nil {
		t.Fatal("expected error for garbage input")
	}
}

func TestResolvePath(t *testing.T) {
	dir := t.TempDir()
	name := "anti_scam_article.csv"
	full := filepath.Join(dir, name)
	if err := os.WriteFile(full, []byte("id,title,time,content\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := ResolvePath(dir, name)
	if err != nil {
		t.Fatalf("resolve relative: %v", err)
	}
	if got != full {
		t.Fatalf("resolve relative = %q, want %q", got, full)
	}

	got, err = ResolvePath("ignored", full)
	if err != nil {
		t.Fatalf("resolve absolute: %v", err)
	}
	if got != full {
		t.Fatalf("resolve absolute = %q, want %q", got, full)
	}

	if _, err := ResolvePath(dir, "missing.csv"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
