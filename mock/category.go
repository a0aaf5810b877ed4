package mock

import "github.com/fwojciec/idscrape"

var _ idscrape.CategoryLoader = (*CategoryLoader)(nil)

// CategoryLoader is a mock implementation of idscrape.CategoryLoader.
type CategoryLoader struct {
	LoadCategoriesFn func(path string) (*idscrape.CategoryTable, error)
}

func (l *CategoryLoader) LoadCategories(path string) (*idscrape.CategoryTable, error) {
	return l.LoadCategoriesFn(path)
}
