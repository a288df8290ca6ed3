package publisher

import (
	"cmp"
	"context"
	"slices"

	"github.com/dtnitsch/pageqr/models"
)

// PageSource is the ordered read the store must offer.
// *db.DB satisfies it.
type PageSource interface {
	ListPageMetadata(ctx context.Context) ([]models.PageMetadata, error)
}

// Reader fetches the full page list before any artifact is produced.
type Reader struct {
	source PageSource
}

// NewReader returns a Reader over source.
func NewReader(source PageSource) *Reader {
	return &Reader{source: source}
}

// FetchOrderedPages returns every page record in ascending page index order.
// Zero pages is a valid result. Any store failure is reported as ErrStoreUnavailable.
func (r *Reader) FetchOrderedPages(ctx context.Context) ([]models.PageMetadata, error) {
	pages, err := r.source.ListPageMetadata(ctx)
	if err != nil {
		return nil, StoreUnavailable(err)
	}
	if pages == nil {
		return []models.PageMetadata{}, nil
	}

	byIndex := func(a, b models.PageMetadata) int {
		return cmp.Compare(a.PageIndex, b.PageIndex)
	}
	if !slices.IsSortedFunc(pages, byIndex) {
		slices.SortStableFunc(pages, byIndex)
	}

	return pages, nil
}
