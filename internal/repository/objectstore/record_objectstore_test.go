package objectstore

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"salarydash/internal/dataset"
	"salarydash/internal/storage"
	storeMocks "salarydash/internal/storage/mocks"
)

func TestRecordObjectStore_LoadAll(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		csv := strings.Join(dataset.Columns, ",") + "\n2024,senior,integral,media,Engineer,remoto,PRT,85000\n"
		mStore.On("Get", ctx, "datasets", "salarios.csv").
			Return(io.NopCloser(strings.NewReader(csv)), storage.ObjectInfo{Key: "salarios.csv"}, nil)

		repo := NewRecordObjectStore(mStore, "datasets", "salarios.csv")
		recs, err := repo.LoadAll(ctx)

		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, "PRT", recs[0].CountryISO3)
		assert.Equal(t, "s3://datasets/salarios.csv", repo.Source())
		mStore.AssertExpectations(t)
	})

	t.Run("storage error", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mStore.On("Get", ctx, mock.Anything, mock.Anything).
			Return(nil, storage.ObjectInfo{}, errors.New("NoSuchKey"))

		_, err := NewRecordObjectStore(mStore, "datasets", "missing.csv").LoadAll(ctx)

		assert.ErrorIs(t, err, dataset.ErrRetrieval)
		assert.Contains(t, err.Error(), "NoSuchKey")
		mStore.AssertExpectations(t)
	})

	t.Run("bad content", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mStore.On("Get", ctx, mock.Anything, mock.Anything).
			Return(io.NopCloser(strings.NewReader("a,b\n1,2\n")), storage.ObjectInfo{}, nil)

		_, err := NewRecordObjectStore(mStore, "datasets", "other.csv").LoadAll(ctx)

		assert.ErrorIs(t, err, dataset.ErrParse)
	})
}
