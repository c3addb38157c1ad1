package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/j-veylop/bikeshare-explorer/internal/models"
)

// Querier runs a filtered query. It is satisfied by *explorer.Service.
type Querier interface {
	Query(filter models.Filter) (*models.QueryResult, error)
}

// runQueryCmd returns a command that runs the query off the UI loop.
func runQueryCmd(q Querier, filter models.Filter) tea.Cmd {
	return func() tea.Msg {
		result, err := q.Query(filter)
		return QueryLoadedMsg{
			Filter: filter,
			Result: result,
			Err:    err,
		}
	}
}
