// Package seeds holds the module catalog. It is the only definition of the
// catalog; clients read it through /api/modules.
package seeds

import "pandas-platform/backend/models"

// Modules returns a fresh copy of the catalog in display order.
func Modules() []models.Module {
	return []models.Module{
		{
			ID:            "01_fundamentals",
			Title:         "Pandas Fundamentals",
			Description:   "Introduction to pandas library, basic concepts, and core data structures",
			Difficulty:    models.DifficultyBeginner,
			EstimatedTime: "2 hours",
			OrderIndex:    1,
			Topics: []models.Topic{
				{ID: "what_is_pandas", Title: "What is Pandas", Type: models.TopicTheory},
				{ID: "installation_setup", Title: "Installation and Setup", Type: models.TopicPractical},
				{ID: "importing_pandas", Title: "Importing Pandas", Type: models.TopicCode},
				{ID: "intro_series", Title: "Introduction to Series", Type: models.TopicTheory},
				{ID: "intro_dataframe", Title: "Introduction to DataFrame", Type: models.TopicTheory},
			},
		},
		{
			ID:            "02_data_structures",
			Title:         "Data Structures Deep Dive",
			Description:   "Comprehensive understanding of Series and DataFrame structures",
			Difficulty:    models.DifficultyBeginner,
			EstimatedTime: "3 hours",
			OrderIndex:    2,
			Topics: []models.Topic{
				{ID: "creating_series", Title: "Creating Series", Type: models.TopicPractical},
				{ID: "series_methods", Title: "Series Methods", Type: models.TopicTheory},
				{ID: "creating_dataframes", Title: "Creating DataFrames", Type: models.TopicPractical},
			},
		},
	}
}
