package projections

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"caseboard/internal/application/listutil"
	"caseboard/internal/domain/client"
)

// ClientListReader is the client surface the roster listing reads.
type ClientListReader interface {
	List(ctx context.Context) ([]client.Client, error)
	ListByStatus(ctx context.Context, status string) ([]client.Client, error)
}

// GetClientListDeps declares the stores the roster projection reads.
type GetClientListDeps struct {
	ClientStore ClientListReader
}

// ClientListView is one page of the client roster.
type ClientListView struct {
	Clients  []client.Client   `json:"clients"`
	PageInfo listutil.PageInfo `json:"pageInfo"`
}

// GetClientList returns a filtered, sorted, paginated page of the roster.
// The status filter and free-text search are applied before pagination;
// sorting defaults to name ascending.
// PRE: params parsed via listutil
// POST: PageInfo reflects the filtered total, not the page size
func GetClientList(ctx context.Context, params listutil.ListParams, deps GetClientListDeps) (ClientListView, error) {
	var clients []client.Client
	var err error

	if status := params.Filters["status"]; status != "" {
		clients, err = deps.ClientStore.ListByStatus(ctx, status)
	} else {
		clients, err = deps.ClientStore.List(ctx)
	}
	if err != nil {
		return ClientListView{}, fmt.Errorf("list clients: %w", err)
	}

	if q := strings.ToLower(strings.TrimSpace(params.Search)); q != "" {
		filtered := make([]client.Client, 0, len(clients))
		for _, c := range clients {
			if strings.Contains(strings.ToLower(c.Name), q) ||
				strings.Contains(strings.ToLower(c.Guardian), q) {
				filtered = append(filtered, c)
			}
		}
		clients = filtered
	}

	sortClients(clients, params.Sort, params.Dir)

	info := listutil.NewPageInfo(params.Page, params.PerPage, len(clients))
	start := info.Offset()
	end := start + info.PerPage
	if start > len(clients) {
		start = len(clients)
	}
	if end > len(clients) {
		end = len(clients)
	}

	return ClientListView{Clients: clients[start:end], PageInfo: info}, nil
}

// sortClients orders the roster in place. Unknown columns fall back to name.
func sortClients(clients []client.Client, column, dir string) {
	less := func(a, b client.Client) bool { return a.Name < b.Name }
	switch column {
	case "status":
		less = func(a, b client.Client) bool { return a.Status < b.Status }
	case "admitted_at":
		less = func(a, b client.Client) bool { return a.AdmittedAt < b.AdmittedAt }
	}
	sort.SliceStable(clients, func(i, j int) bool {
		if dir == "desc" {
			return less(clients[j], clients[i])
		}
		return less(clients[i], clients[j])
	})
}
