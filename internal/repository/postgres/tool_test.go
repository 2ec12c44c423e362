package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"toolshed-backend/internal/domain"
)

func toolRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "owner_id", "title", "description", "category", "price_per_day_cents",
		"district", "municipality", "active", "created_on",
	})
}

func TestToolRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewToolRepository(db)
	ctx := context.Background()

	tool := &domain.Tool{
		OwnerID:          "owner-1",
		Title:            "Cordless Drill",
		Description:      "18V with two batteries",
		Category:         "power-tools",
		PricePerDayCents: 2000,
		District:         "Lisboa",
		Municipality:     "Sintra",
		Active:           true,
	}

	mock.ExpectExec("INSERT INTO tools").
		WithArgs(sqlmock.AnyArg(), tool.OwnerID, tool.Title, tool.Description, tool.Category,
			tool.PricePerDayCents, tool.District, tool.Municipality, tool.Active, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Create(ctx, tool)
	assert.NoError(t, err)
	assert.NotEmpty(t, tool.ID)
}

func TestToolRepository_Search(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewToolRepository(db)
	ctx := context.Background()

	t.Run("district and query filters", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM tools WHERE deleted_on IS NULL AND active = TRUE AND lower\\(district\\)").
			WithArgs("Lisboa", "drill").
			WillReturnRows(toolRows().AddRow(
				"tool-1", "owner-1", "Cordless Drill", "18V", "power-tools", 2000,
				"Lisboa", "Sintra", true, time.Now(),
			))

		tools, err := repo.Search(ctx, "Lisboa", "", "drill")
		assert.NoError(t, err)
		assert.Len(t, tools, 1)
		assert.Equal(t, "Cordless Drill", tools[0].Title)
	})

	t.Run("no filters", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM tools WHERE deleted_on IS NULL AND active = TRUE").
			WillReturnRows(toolRows())

		tools, err := repo.Search(ctx, "", "", "")
		assert.NoError(t, err)
		assert.Empty(t, tools)
	})
}

func TestToolRepository_SetActive(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewToolRepository(db)
	ctx := context.Background()

	mock.ExpectExec("UPDATE tools SET active").
		WithArgs(false, "tool-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.SetActive(ctx, "tool-1", false)
	assert.NoError(t, err)
}

func TestToolRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewToolRepository(db)
	ctx := context.Background()

	mock.ExpectExec("UPDATE tools SET deleted_on").
		WithArgs(sqlmock.AnyArg(), "tool-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Delete(ctx, "tool-1")
	assert.NoError(t, err)
}
