package app

import (
	"github.com/j-veylop/bikeshare-explorer/internal/models"
)

// QueryLoadedMsg carries the outcome of a query.
type QueryLoadedMsg struct {
	Filter models.Filter
	Result *models.QueryResult
	Err    error
}
