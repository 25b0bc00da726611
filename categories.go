package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Category handler functions

// categoryInfos lists the taxonomy in scan order. Others always comes last
// and has no keywords.
func categoryInfos(categorizer *Categorizer) []CategoryInfo {
	rules := categorizer.Rules()
	infos := make([]CategoryInfo, 0, len(rules)+1)
	for i, rule := range rules {
		infos = append(infos, CategoryInfo{
			Name:     rule.Category,
			Priority: i + 1,
			Keywords: len(rule.Keywords),
		})
	}
	return append(infos, CategoryInfo{Name: CategoryOthers, Priority: len(rules) + 1})
}

// @Summary Get all categories
// @Description Retrieve the category taxonomy in matching priority order with keyword counts
// @Tags categories
// @Produce json
// @Success 200 {array} CategoryInfo "List of categories"
// @Router /api/categories [get]
func getCategories(c *gin.Context) {
	c.JSON(http.StatusOK, categoryInfos(defaultCategorizer))
}
