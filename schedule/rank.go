package schedule

import (
	"github.com/Patrick-M8/tabelog-map/models/hours"
	"github.com/Patrick-M8/tabelog-map/models/venue"
)

// Open venues get rank 2, closed ones 0: a two-tier partition, not a
// continuous score. The gap leaves room for an intermediate "closing
// soon" tier on the consumer side.
const (
	openRankOpen   = 2
	openRankClosed = 0
)

// RankKeys derives the comparison keys for one evaluation, merged with the
// venue's price and rating data. Equal inputs always produce equal keys.
func RankKeys(res hours.EvaluationResult, price venue.Price, ratings venue.Ratings) venue.SortKeys {
	keys := venue.SortKeys{
		OpenRank:      openRankClosed,
		PriceMin:      price.MinForSort,
		RatingTabelog: ratings.Tabelog.Score,
		RatingGoogle:  ratings.Google.Score,
	}
	if res.IsOpen() {
		keys.OpenRank = openRankOpen
		keys.ClosesInMin = res.ClosesInMin
	}
	return keys
}

// Less is the default total order over ranked venues: open before closed;
// within the open tier soonest-closing first; then rating descending; the
// venue ID breaks any remaining tie so the order is independent of
// insertion order.
func Less(a, b *venue.Venue) bool {
	if a.SortKeys.OpenRank != b.SortKeys.OpenRank {
		return a.SortKeys.OpenRank > b.SortKeys.OpenRank
	}
	if c := compareMinPtr(a.SortKeys.ClosesInMin, b.SortKeys.ClosesInMin); c != 0 {
		return c < 0
	}
	if c := compareRating(a.SortKeys.RatingTabelog, b.SortKeys.RatingTabelog); c != 0 {
		return c > 0
	}
	return a.ID < b.ID
}

// compareMinPtr orders ascending with nil after any value.
func compareMinPtr(a, b *int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	}
	return 0
}

// compareRating orders by value with nil below any score.
func compareRating(a, b *float64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	}
	return 0
}
