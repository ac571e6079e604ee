package guard

// Route names
const (
	RouteHome         = "home"
	RouteBooks        = "books"
	RouteBookDetails  = "book-details"
	RouteBookReader   = "book-reader"
	RouteLogin        = "login"
	RouteRegistration = "registration"
	RouteProfile      = "profile"
	RouteAdmin        = "admin"
	RouteNotFound     = "not-found"
)

// Route is a named page with its access requirements. Path uses gin's
// ":param" syntax.
type Route struct {
	Name string    `json:"name"`
	Path string    `json:"path"`
	Meta RouteMeta `json:"meta"`
}

// RouteTable maps gin path patterns to route metadata.
type RouteTable map[string]RouteMeta

var pageRoutes = []Route{
	{Name: RouteHome, Path: "/"},
	{Name: RouteBooks, Path: "/books", Meta: RouteMeta{RequiresAuth: true}},
	{Name: RouteBookDetails, Path: "/books/:id", Meta: RouteMeta{RequiresAuth: true}},
	{Name: RouteBookReader, Path: "/books/:id/read", Meta: RouteMeta{RequiresAuth: true}},
	{Name: RouteLogin, Path: "/login"},
	{Name: RouteRegistration, Path: "/registration"},
	{Name: RouteProfile, Path: "/profile", Meta: RouteMeta{RequiresAuth: true}},
	{Name: RouteAdmin, Path: "/admin", Meta: RouteMeta{RequiresAuth: true, RequiresAdmin: true}},
}

// PageRoutes returns the application's pages. The not-found page has no path
// and is served for anything unmatched.
func PageRoutes() []Route {
	out := make([]Route, len(pageRoutes))
	copy(out, pageRoutes)
	return out
}

// PathFor returns the path of a named page, or "" for unknown names.
func PathFor(name string) string {
	for _, r := range pageRoutes {
		if r.Name == name {
			return r.Path
		}
	}
	return ""
}

// Table builds a RouteTable from routes.
func Table(routes []Route) RouteTable {
	table := make(RouteTable, len(routes))
	for _, r := range routes {
		table[r.Path] = r.Meta
	}
	return table
}

// Merge returns a table holding the entries of t overridden by other.
func (t RouteTable) Merge(other RouteTable) RouteTable {
	out := make(RouteTable, len(t)+len(other))
	for path, meta := range t {
		out[path] = meta
	}
	for path, meta := range other {
		out[path] = meta
	}
	return out
}
