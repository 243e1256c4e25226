package repository

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	dbpkg "github.com/BruksfildServices01/client-directory/internal/db"
	domain "github.com/BruksfildServices01/client-directory/internal/domain/client"
	"github.com/BruksfildServices01/client-directory/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// :memory: is per connection
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func sampleClient() *models.Client {
	return &models.Client{
		Image:       "http://x/a.png",
		CNPJ:        "12345678000199",
		Name:        "Acme",
		FantasyName: "Acme Co",
		CEP:         "01310000",
		Logradouro:  "Av Paulista",
		Bairro:      "Bela Vista",
		City:        "São Paulo",
		UF:          "SP",
		Complement:  "Sala 1",
		Email:       "a@a.com",
		Phone:       "1199999999",
	}
}

func TestClientRepository_CreateThenGet(t *testing.T) {
	repo := NewClientGormRepository(newTestDB(t))
	ctx := context.Background()

	c := sampleClient()
	c.ID = 77
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if c.ID == 0 || c.ID == 77 {
		t.Fatalf("expected store-assigned id, got %d", c.ID)
	}

	got, err := repo.Get(ctx, c.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	want := sampleClient()
	if got.CNPJ != want.CNPJ || got.Name != want.Name || got.City != want.City ||
		got.Complement != want.Complement || got.Phone != want.Phone || got.Image != want.Image {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestClientRepository_GetMissing(t *testing.T) {
	repo := NewClientGormRepository(newTestDB(t))

	_, err := repo.Get(context.Background(), 999999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClientRepository_ListOrderedByID(t *testing.T) {
	repo := NewClientGormRepository(newTestDB(t))
	ctx := context.Background()

	empty, err := repo.List(ctx)
	if err != nil || empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil list, got %v, %v", empty, err)
	}

	for _, name := range []string{"A", "B", "C"} {
		c := sampleClient()
		c.Name = name
		if err := repo.Create(ctx, c); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 clients, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("list not ordered by id: %d before %d", list[i-1].ID, list[i].ID)
		}
	}
}

func TestClientRepository_UpdateOverwritesEveryColumn(t *testing.T) {
	repo := NewClientGormRepository(newTestDB(t))
	ctx := context.Background()

	c := sampleClient()
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("create: %v", err)
	}
	before, err := repo.Get(ctx, c.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	upd := sampleClient()
	upd.ID = c.ID
	upd.Name = "Acme Renamed"
	upd.Complement = ""
	for i := 0; i < 2; i++ {
		if err := repo.Update(ctx, upd); err != nil {
			t.Fatalf("update #%d: %v", i, err)
		}
	}

	got, err := repo.Get(ctx, c.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Acme Renamed" {
		t.Fatalf("expected new name, got %q", got.Name)
	}
	if got.Complement != "" {
		t.Fatalf("expected complement to be cleared, got %q", got.Complement)
	}
	if !got.CreatedAt.Equal(before.CreatedAt) {
		t.Fatalf("created_at changed: %v -> %v", before.CreatedAt, got.CreatedAt)
	}
}

func TestClientRepository_UpdateMissing(t *testing.T) {
	repo := NewClientGormRepository(newTestDB(t))

	c := sampleClient()
	c.ID = 999999
	if err := repo.Update(context.Background(), c); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClientRepository_DeleteIsIdempotent(t *testing.T) {
	repo := NewClientGormRepository(newTestDB(t))
	ctx := context.Background()

	c := sampleClient()
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("create: %v", err)
	}

	removed, err := repo.Delete(ctx, c.ID)
	if err != nil || !removed {
		t.Fatalf("first delete: removed=%v err=%v", removed, err)
	}
	if _, err := repo.Get(ctx, c.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	removed, err = repo.Delete(ctx, c.ID)
	if err != nil || removed {
		t.Fatalf("second delete: removed=%v err=%v", removed, err)
	}
}
