package listing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huynhtuanvt18/pah-mobile-client/internal/models"
	"github.com/huynhtuanvt18/pah-mobile-client/internal/repository"
)

func TestPagerWalksFullPages(t *testing.T) {
	p := NewPager(10)

	page, ok := p.Next()
	require.True(t, ok)
	assert.Equal(t, 1, page)
	p.Observe(10)

	page, ok = p.Next()
	require.True(t, ok)
	assert.Equal(t, 2, page)
	assert.True(t, p.HasMore())
}

func TestPagerShortPageEndsTheList(t *testing.T) {
	p := NewPager(10)

	_, ok := p.Next()
	require.True(t, ok)
	p.Observe(10)
	_, ok = p.Next()
	require.True(t, ok)
	p.Observe(4)

	assert.False(t, p.HasMore())
	_, ok = p.Next()
	assert.False(t, ok, "scroll-end after a short page must be a no-op")
	assert.Equal(t, 2, p.Page())
}

func TestPagerEmptyFirstPage(t *testing.T) {
	p := NewPager(10)
	_, ok := p.Next()
	require.True(t, ok)
	p.Observe(0)
	assert.False(t, p.HasMore())
}

func TestPagerReset(t *testing.T) {
	p := NewPager(10)
	_, _ = p.Next()
	p.Observe(3)
	require.False(t, p.HasMore())

	p.Reset()
	assert.True(t, p.HasMore())
	assert.Equal(t, 0, p.Page())
	page, ok := p.Next()
	require.True(t, ok)
	assert.Equal(t, 1, page)
}

type fakeTaxonomy struct {
	categoriesErr error
	materialsErr  error
}

func (f *fakeTaxonomy) Categories(ctx context.Context) ([]models.Category, error) {
	if f.categoriesErr != nil {
		return nil, f.categoriesErr
	}
	return []models.Category{{ID: 1, Name: "Pottery"}}, nil
}

func (f *fakeTaxonomy) Materials(ctx context.Context) ([]models.Material, error) {
	if f.materialsErr != nil {
		return nil, f.materialsErr
	}
	return []models.Material{{ID: 1, Name: "Clay"}, {ID: 2, Name: "Bronze"}}, nil
}

type fakeAuctions struct {
	err   error
	query repository.AuctionQuery
}

func (f *fakeAuctions) List(ctx context.Context, q repository.AuctionQuery) (repository.AuctionPage, error) {
	f.query = q
	if f.err != nil {
		return repository.AuctionPage{}, f.err
	}
	return repository.AuctionPage{
		Auctions: []models.Auction{{ID: 10, Title: "Vase"}},
		Count:    31,
	}, nil
}

func TestLoadBrowseDataJoinsAllBranches(t *testing.T) {
	auctions := &fakeAuctions{}
	query := repository.AuctionQuery{CategoryID: 1, PageNumber: 1}

	data, err := LoadBrowseData(context.Background(), &fakeTaxonomy{}, auctions, query)
	require.NoError(t, err)

	assert.Len(t, data.Categories, 1)
	assert.Len(t, data.Materials, 2)
	assert.Equal(t, 31, data.Auctions.Count)
	assert.Equal(t, query, auctions.query)
}

func TestLoadBrowseDataFailsOnAnyBranch(t *testing.T) {
	boom := errors.New("taxonomy down")
	_, err := LoadBrowseData(context.Background(),
		&fakeTaxonomy{materialsErr: boom}, &fakeAuctions{}, repository.AuctionQuery{})
	assert.ErrorIs(t, err, boom)

	_, err = LoadBrowseData(context.Background(),
		&fakeTaxonomy{}, &fakeAuctions{err: boom}, repository.AuctionQuery{})
	assert.ErrorIs(t, err, boom)
}
