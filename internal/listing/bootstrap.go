package listing

import (
	"context"
	"sync"

	"github.com/huynhtuanvt18/pah-mobile-client/internal/models"
	"github.com/huynhtuanvt18/pah-mobile-client/internal/repository"
)

type TaxonomyAPI interface {
	Categories(ctx context.Context) ([]models.Category, error)
	Materials(ctx context.Context) ([]models.Material, error)
}

type AuctionAPI interface {
	List(ctx context.Context, q repository.AuctionQuery) (repository.AuctionPage, error)
}

// BrowseData is everything the auction browse screen needs on first load.
type BrowseData struct {
	Categories []models.Category
	Materials  []models.Material
	Auctions   repository.AuctionPage
}

// LoadBrowseData fetches the filter lists and the first auction page
// concurrently and joins. Any branch failing fails the whole bootstrap,
// matching the all-or-nothing first render.
func LoadBrowseData(ctx context.Context, taxonomy TaxonomyAPI, auctions AuctionAPI, q repository.AuctionQuery) (BrowseData, error) {
	var (
		data BrowseData
		errs [3]error
		wg   sync.WaitGroup
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		data.Categories, errs[0] = taxonomy.Categories(ctx)
	}()
	go func() {
		defer wg.Done()
		data.Materials, errs[1] = taxonomy.Materials(ctx)
	}()
	go func() {
		defer wg.Done()
		data.Auctions, errs[2] = auctions.List(ctx, q)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return BrowseData{}, err
		}
	}
	return data, nil
}
