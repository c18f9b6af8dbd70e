package watchControllers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/hbertrand-dev/watchstore-api/models"
	"github.com/hbertrand-dev/watchstore-api/utils"
)

// Criteria is the set of optional catalog filters. Supplied fields are
// combined with logical AND; slice fields are OR'd within themselves.
type Criteria struct {
	Search       string
	Brand        string
	Category     string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	Movements    []string
	Materials    []string
	MinDiameter  *int
	MaxDiameter  *int
	Colors       []string
	IsFeatured   *bool
	IsBestSeller *bool
}

// Condition is one SQL predicate with its bind arguments.
type Condition struct {
	Expr string
	Args []any
}

// Conditions renders the conjunctive predicate for the supplied criteria.
func (cr Criteria) Conditions() []Condition {
	var conds []Condition

	if cr.Search != "" {
		conds = append(conds, Condition{"name ILIKE ?", []any{"%" + cr.Search + "%"}})
	}
	if cr.Brand != "" {
		conds = append(conds, Condition{"brand = ?", []any{cr.Brand}})
	}
	if cr.Category != "" {
		conds = append(conds, Condition{"category = ?", []any{cr.Category}})
	}
	if cr.MinPrice != nil {
		conds = append(conds, Condition{"price >= ?", []any{*cr.MinPrice}})
	}
	if cr.MaxPrice != nil {
		conds = append(conds, Condition{"price <= ?", []any{*cr.MaxPrice}})
	}
	if len(cr.Movements) > 0 {
		conds = append(conds, Condition{"movement IN ?", []any{cr.Movements}})
	}
	if len(cr.Materials) > 0 {
		// A material matches on either the case or the strap.
		conds = append(conds, Condition{"(case_material IN ? OR strap_material IN ?)", []any{cr.Materials, cr.Materials}})
	}
	if cr.MinDiameter != nil {
		conds = append(conds, Condition{"case_diameter >= ?", []any{*cr.MinDiameter}})
	}
	if cr.MaxDiameter != nil {
		conds = append(conds, Condition{"case_diameter <= ?", []any{*cr.MaxDiameter}})
	}
	if len(cr.Colors) > 0 {
		exprs := make([]string, len(cr.Colors))
		args := make([]any, len(cr.Colors))
		for i, color := range cr.Colors {
			exprs[i] = "color ILIKE ?"
			args[i] = "%" + color + "%"
		}
		conds = append(conds, Condition{"(" + strings.Join(exprs, " OR ") + ")", args})
	}
	if cr.IsFeatured != nil {
		conds = append(conds, Condition{"is_featured = ?", []any{*cr.IsFeatured}})
	}
	if cr.IsBestSeller != nil {
		conds = append(conds, Condition{"is_best_seller = ?", []any{*cr.IsBestSeller}})
	}

	return conds
}

// ParseCriteria reads the filter query parameters. Malformed numeric or
// boolean values and unknown movements are rejected as invalid criteria.
func ParseCriteria(c *gin.Context) (Criteria, error) {
	cr := Criteria{
		Search:   c.Query("search"),
		Brand:    c.Query("brand"),
		Category: c.Query("category"),
	}

	var err error
	if cr.MinPrice, err = parsePrice(c.Query("minPrice")); err != nil {
		return cr, utils.ErrInvalidCriteria.Wrap(err)
	}
	if cr.MaxPrice, err = parsePrice(c.Query("maxPrice")); err != nil {
		return cr, utils.ErrInvalidCriteria.Wrap(err)
	}
	if cr.MinDiameter, err = parseIntParam(c.Query("minDiameter")); err != nil {
		return cr, utils.ErrInvalidCriteria.Wrap(err)
	}
	if cr.MaxDiameter, err = parseIntParam(c.Query("maxDiameter")); err != nil {
		return cr, utils.ErrInvalidCriteria.Wrap(err)
	}
	if cr.IsFeatured, err = parseBoolParam(c.Query("isFeatured")); err != nil {
		return cr, utils.ErrInvalidCriteria.Wrap(err)
	}
	if cr.IsBestSeller, err = parseBoolParam(c.Query("isBestSeller")); err != nil {
		return cr, utils.ErrInvalidCriteria.Wrap(err)
	}

	cr.Movements = splitParam(c.Query("movements"))
	for _, m := range cr.Movements {
		if !models.ValidMovement(m) {
			return cr, utils.ErrInvalidCriteria.Wrap(fmt.Errorf("unknown movement %q", m))
		}
	}
	cr.Materials = splitParam(c.Query("materials"))
	cr.Colors = splitParam(c.Query("colors"))

	return cr, nil
}

func parsePrice(raw string) (*decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid price bound %q", raw)
	}
	return &d, nil
}

func parseIntParam(raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid integer bound %q", raw)
	}
	return &n, nil
}

func parseBoolParam(raw string) (*bool, error) {
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid boolean %q", raw)
	}
	return &b, nil
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// ratingExpr orders by the average review rating; watches without reviews
// sort as zero.
const ratingExpr = "(SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE reviews.watch_id = watches.id)"

// SortClause whitelists sortBy/sortOrder into an ORDER BY expression.
// Sorting must happen before the page is sliced, so callers apply this to
// the filtered set ahead of Limit/Offset. The primary key is appended as a
// tiebreaker: none of the sortable columns are unique, and without a total
// order rows that compare equal can shuffle between page queries, making
// adjacent windows drop or repeat rows.
func SortClause(sortBy, sortOrder string) (string, error) {
	order := strings.ToLower(sortOrder)
	if order == "" {
		order = "desc"
	}
	if order != "asc" && order != "desc" {
		return "", utils.ErrInvalidCriteria.Wrap(fmt.Errorf("invalid sort order %q", sortOrder))
	}

	var column string
	switch sortBy {
	case "", "createdAt", "created_at":
		column = "created_at"
	case "price":
		column = "price"
	case "name":
		column = "name"
	case "rating":
		column = ratingExpr
	default:
		return "", utils.ErrInvalidCriteria.Wrap(fmt.Errorf("invalid sort field %q", sortBy))
	}

	return column + " " + order + ", id " + order, nil
}
