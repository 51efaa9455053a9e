package ingest

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Patrick-M8/tabelog-map/models/venue"
)

var yenNumRE = regexp.MustCompile(`\d+`)

// ParsePriceBand reads a tabelog yen band like "￥1,000～￥1,999" into low
// and high bounds. "-" or empty means no price listed. A band opening
// with the range mark ("～￥999") is read as zero up to the bound.
func ParsePriceBand(s string) (lo, hi *int) {
	if strings.TrimSpace(s) == "" || strings.TrimSpace(s) == "-" {
		return nil, nil
	}
	s2 := strings.ReplaceAll(s, ",", "")
	var nums []int
	for _, m := range yenNumRE.FindAllString(s2, -1) {
		n, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		nums = append(nums, n)
	}
	hasRange := strings.Contains(s2, "～") || strings.Contains(s2, "-")
	switch {
	case strings.HasPrefix(strings.TrimSpace(s2), "～"):
		zero := 0
		lo = &zero
		if len(nums) > 0 {
			hi = &nums[len(nums)-1]
		}
	case hasRange:
		if len(nums) > 0 {
			lo = &nums[0]
		}
		if len(nums) >= 2 {
			hi = &nums[len(nums)-1]
		}
	case len(nums) > 0:
		lo = &nums[0]
		hi = &nums[0]
	}
	return lo, hi
}

// PriceBucket maps a band to the 0-5 display bucket used for marker
// sizing and filters.
func PriceBucket(lo, hi *int) int {
	v := 0
	if lo != nil {
		v = *lo
	}
	if hi != nil {
		if lo != nil {
			v = (v + *hi) / 2
		} else {
			v = *hi
		}
	}
	switch {
	case v == 0:
		return 0
	case v <= 999:
		return 1
	case v <= 1999:
		return 2
	case v <= 2999:
		return 3
	case v <= 4999:
		return 4
	}
	return 5
}

// ChoosePrice builds the venue price block, preferring the dinner band
// for the bucket and keeping the cheapest listed bound for sorting.
func ChoosePrice(rec *venue.RawRecord) venue.Price {
	dinnerLo, dinnerHi := ParsePriceBand(rec.PriceDinner)
	lunchLo, lunchHi := ParsePriceBand(rec.PriceLunch)

	prefLo, prefHi := dinnerLo, dinnerHi
	if dinnerLo == nil && dinnerHi == nil {
		prefLo, prefHi = lunchLo, lunchHi
	}

	var minForSort *int
	for _, v := range []*int{dinnerLo, lunchLo} {
		if v == nil {
			continue
		}
		if minForSort == nil || *v < *minForSort {
			minForSort = v
		}
	}

	return venue.Price{
		DinnerRaw:  rec.PriceDinner,
		LunchRaw:   rec.PriceLunch,
		DinnerLo:   dinnerLo,
		DinnerHi:   dinnerHi,
		LunchLo:    lunchLo,
		LunchHi:    lunchHi,
		Bucket:     PriceBucket(prefLo, prefHi),
		MinForSort: minForSort,
	}
}
