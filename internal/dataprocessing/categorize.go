package dataprocessing

import (
	"log/slog"
	"strings"

	"fedspend/internal/config"
	"fedspend/pkg/contracts/domain"
)

// Categorizer assigns technology and recipient-type labels by keyword
// matching. Category lists are evaluated in declared order and the first
// category with any keyword occurring as a case-insensitive substring wins;
// list order is the tie-break contract. Missing text yields the default label.
type Categorizer struct {
	logger     *slog.Logger
	technology []config.Category
	recipient  []config.Category
}

// NewCategorizer creates a categorizer with the given ordered category
// lists. Nil lists fall back to the built-in configuration.
func NewCategorizer(logger *slog.Logger, technology, recipient []config.Category) *Categorizer {
	if logger == nil {
		logger = slog.Default()
	}
	if technology == nil {
		technology = config.TechnologyCategories
	}
	if recipient == nil {
		recipient = config.RecipientTypes
	}
	return &Categorizer{logger: logger, technology: technology, recipient: recipient}
}

// Categorize returns a new slice in which every award carries exactly one
// technology category and one recipient type.
func (c *Categorizer) Categorize(awards []domain.Award) []domain.Award {
	out := make([]domain.Award, len(awards))
	for i, award := range awards {
		award.TechnologyCategory = classify(award.Description, c.technology)
		award.RecipientType = classify(award.RecipientName, c.recipient)
		out[i] = award
	}

	c.logger.Info("categorized awards", slog.Int("records", len(out)))
	return out
}

// classify scans the ordered category list and returns the first label whose
// keyword set matches the text, or the default label.
func classify(text string, categories []config.Category) string {
	if text == "" {
		return config.DefaultCategoryLabel
	}
	lower := strings.ToLower(text)
	for _, cat := range categories {
		for _, keyword := range cat.Keywords {
			if strings.Contains(lower, keyword) {
				return cat.Label
			}
		}
	}
	return config.DefaultCategoryLabel
}
