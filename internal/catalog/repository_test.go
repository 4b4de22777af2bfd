package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var materialCols = []string{
	"id", "name", "description", "price", "quantity", "image", "group_id", "specifications", "pdf_ref",
}

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(materialCols).
			AddRow("m1", "Ballpoint Pens (Box of 50)", "Black ink ballpoint pens", 15.99, 120,
				"pens.png", "g1", nil, nil).
			AddRow("m3", "Wireless Mouse", "Ergonomic design", 24.99, 45,
				"mouse.png", "g2", []byte(`{"dpi":"1600"}`), nil)

		mock.ExpectQuery("SELECT .* FROM materials").
			WillReturnRows(rows)

		res, err := repo.List(ctx, ListOptions{})
		assert.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, "m1", res[0].ID)
		assert.Equal(t, 15.99, res[0].Price)
		assert.Equal(t, "1600", res[1].Specifications["dpi"])
	})

	t.Run("GroupFilter", func(t *testing.T) {
		rows := sqlmock.NewRows(materialCols).
			AddRow("m3", "Wireless Mouse", "Ergonomic design", 24.99, 45,
				"mouse.png", "g2", nil, nil)

		mock.ExpectQuery("SELECT .* FROM materials").
			WithArgs("g2").
			WillReturnRows(rows)

		res, err := repo.List(ctx, ListOptions{GroupID: "g2"})
		assert.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "g2", res[0].GroupID)
	})

	t.Run("SearchFilter", func(t *testing.T) {
		rows := sqlmock.NewRows(materialCols).
			AddRow("m3", "Wireless Mouse", "Ergonomic design", 24.99, 45,
				"mouse.png", "g2", nil, nil)

		mock.ExpectQuery("SELECT .* FROM materials").
			WithArgs("%mouse%").
			WillReturnRows(rows)

		res, err := repo.List(ctx, ListOptions{Search: "mouse"})
		assert.NoError(t, err)
		assert.Len(t, res, 1)
	})

	t.Run("QueryError", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM materials").
			WillReturnError(errors.New("db error"))

		res, err := repo.List(ctx, ListOptions{})
		assert.Error(t, err)
		assert.Nil(t, res)
	})
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(materialCols).
			AddRow("m8", "Hard Hat", "ANSI certified", 29.99, 25, "hat.png", "g4", nil, nil)

		mock.ExpectQuery("SELECT .* FROM materials WHERE id = \\$1").
			WithArgs("m8").
			WillReturnRows(rows)

		m, err := repo.GetByID(ctx, "m8")
		assert.NoError(t, err)
		require.NotNil(t, m)
		assert.Equal(t, "Hard Hat", m.Name)
	})

	t.Run("NotFoundReturnsNilNil", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM materials WHERE id = \\$1").
			WithArgs("m99").
			WillReturnRows(sqlmock.NewRows(materialCols))

		m, err := repo.GetByID(ctx, "m99")
		assert.NoError(t, err)
		assert.Nil(t, m)
	})
}

func TestRepository_ListGroups(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name"}).
		AddRow("g1", "Office Supplies").
		AddRow("g2", "Electronics")

	mock.ExpectQuery("SELECT id, name FROM material_groups").
		WillReturnRows(rows)

	res, err := repo.ListGroups(context.Background())
	assert.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "Office Supplies", res[0].Name)
}
