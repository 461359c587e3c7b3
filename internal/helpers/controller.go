package helpers

import (
	"strconv"
	"strings"

	"virtual-product-studio/api/internal/common"
	"virtual-product-studio/api/pkg/models"
	"virtual-product-studio/api/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// GetPaginationArgs extracts pagination parameters from HTTP request.
// A limit of 0 means no limit.
func GetPaginationArgs(c *gin.Context) util.PaginationArgs {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	sort := c.DefaultQuery("sort", "")

	return util.PaginationArgs{
		Limit: limit,
		Skip:  skip,
		Sort:  sort,
	}
}

// GetFilterCriteria reads catalog filters from the query string:
// q, minPrice, maxPrice, brand (repeatable or comma separated),
// deviceType (same), minRating and sort.
func GetFilterCriteria(c *gin.Context, stats models.PriceStats) (models.FilterCriteria, error) {
	criteria := models.FilterCriteria{
		TextQuery:   c.Query("q"),
		Brands:      listQuery(c, "brand"),
		DeviceTypes: listQuery(c, "deviceType"),
		Sort:        models.ParseProductSort(c.Query("sort")),
	}

	minPrice, hasMin := c.GetQuery("minPrice")
	maxPrice, hasMax := c.GetQuery("maxPrice")
	if hasMin || hasMax {
		r := models.PriceRange{Min: stats.Min, Max: stats.Max}
		if hasMin {
			v, err := strconv.Atoi(minPrice)
			if err != nil {
				return criteria, errors.Errorf("invalid minPrice %q", minPrice)
			}
			r.Min = v
		}
		if hasMax {
			v, err := strconv.Atoi(maxPrice)
			if err != nil {
				return criteria, errors.Errorf("invalid maxPrice %q", maxPrice)
			}
			r.Max = v
		}
		criteria.PriceRange = &r
	}

	if v := c.Query("minRating"); v != "" {
		rating, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return criteria, errors.Errorf("invalid minRating %q", v)
		}
		criteria.MinRating = rating
	}

	if err := common.Validate.Struct(criteria); err != nil {
		return criteria, errors.Wrap(err, "invalid filter")
	}
	return criteria, nil
}

func listQuery(c *gin.Context, key string) []string {
	var out []string
	for _, raw := range c.QueryArray(key) {
		for _, v := range strings.Split(raw, ",") {
			if !common.IsEmptyString(v) {
				out = append(out, strings.TrimSpace(v))
			}
		}
	}
	return out
}
