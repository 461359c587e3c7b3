package validators

import (
	"fmt"

	"virtual-product-studio/api/internal/common"
	"virtual-product-studio/api/pkg/models"

	"github.com/go-playground/validator/v10"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// CatalogIssue is one broken catalog invariant.
type CatalogIssue struct {
	ProductId string   `json:"productId"`
	Field     string   `json:"field"`
	Problem   string   `json:"problem"`
	Severity  Severity `json:"severity"`
}

func (ci CatalogIssue) String() string {
	return fmt.Sprintf("%s %s: %s (%s)", ci.ProductId, ci.Field, ci.Problem, ci.Severity)
}

// ValidateCatalog checks struct tags, id uniqueness at every level and that
// the first option of each variant is free. A priced default option is only a
// warning: the default total then differs from base + color.
func ValidateCatalog(products []models.Product) []CatalogIssue {
	var issues []CatalogIssue
	add := func(productID, field, problem string, sev Severity) {
		issues = append(issues, CatalogIssue{ProductId: productID, Field: field, Problem: problem, Severity: sev})
	}

	seen := make(map[string]bool, len(products))
	for _, p := range products {
		if err := common.Validate.Struct(p); err != nil {
			if verrs, ok := err.(validator.ValidationErrors); ok {
				for _, fe := range verrs {
					add(p.Id, fe.Namespace(), "failed "+fe.Tag(), SeverityError)
				}
			} else {
				add(p.Id, "", err.Error(), SeverityError)
			}
		}

		if seen[p.Id] {
			add(p.Id, "id", "duplicate product id", SeverityError)
		}
		seen[p.Id] = true

		colors := make(map[string]bool, len(p.Colors))
		for _, c := range p.Colors {
			if colors[c.Id] {
				add(p.Id, "colors."+c.Id, "duplicate color id", SeverityError)
			}
			colors[c.Id] = true
		}

		variants := make(map[string]bool, len(p.Variants))
		for _, v := range p.Variants {
			if variants[v.Id] {
				add(p.Id, "variants."+v.Id, "duplicate variant id", SeverityError)
			}
			variants[v.Id] = true

			options := make(map[string]bool, len(v.Options))
			for _, o := range v.Options {
				if options[o.Id] {
					add(p.Id, "variants."+v.Id+"."+o.Id, "duplicate option id", SeverityError)
				}
				options[o.Id] = true
			}

			if len(v.Options) > 0 && v.Options[0].Price != 0 {
				add(p.Id, "variants."+v.Id, fmt.Sprintf("default option %q is priced %d", v.Options[0].Id, v.Options[0].Price), SeverityWarning)
			}
		}
	}
	return issues
}

// HasErrors reports whether any issue is an error rather than a warning.
func HasErrors(issues []CatalogIssue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}
