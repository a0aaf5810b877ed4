package main

import (
	"fmt"

	"github.com/fwojciec/idscrape"
)

// Run executes the categories command.
func (c *CategoriesCmd) Run(deps *Dependencies) error {
	table, err := deps.Categories.LoadCategories(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", idscrape.ErrorMessage(err))
		return err
	}

	if table.Len() == 0 {
		fmt.Fprintf(deps.Stdout, "No ids in %s\n", c.File)
		return nil
	}

	for _, id := range table.IDs() {
		category, _ := table.Category(id)
		fmt.Fprintf(deps.Stdout, "%s\t%s\n", id, category)
	}
	return nil
}
