package web

import (
	"log"
	"net/http"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"

	"inkwell/constants"
)

type endpoint struct {
	method, path, note string
}

var endpoints = []endpoint{
	{"GET", "/api/v1/posts", "paginated post list (limit, offset, sort, order)"},
	{"GET", "/api/v1/posts/{id}", "single post"},
	{"POST", "/api/v1/posts", "create a post (auth)"},
	{"PUT", "/api/v1/posts/{id}", "partial update (auth)"},
	{"DELETE", "/api/v1/posts/{id}", "delete a post (auth)"},
	{"GET", "/api/v1/posts/category/{categoryId}", "posts in a category"},
	{"GET", "/api/v1/posts/type/{type}", "posts of one type"},
	{"GET", "/api/v1/posts/latest", "newest posts"},
	{"GET", "/api/v1/posts/search", "search title and content (q)"},
	{"GET", "/api/v1/categories", "category list"},
	{"GET", "/api/v1/users", "user list"},
	{"POST", "/api/v1/contacts", "leave a contact message"},
	{"GET", "/api/v1/home", "landing page bundle"},
	{"GET", "/api/v1/health", "liveness"},
}

// IndexHandler serves a small human-readable map of the API.
func IndexHandler(w http.ResponseWriter, r *http.Request) {
	if err := indexPage().Render(w); err != nil {
		log.Printf("Failed to render index page: %v", err)
	}
}

func indexPage() g.Node {
	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(constants.APP_NAME+" API")),
			),
			Body(
				Main(
					H1(g.Text(constants.APP_NAME)),
					P(g.Textf("A small content API, version %s. All endpoints live under /api/%s and speak JSON.",
						constants.API_VERSION, constants.API_VERSION)),
					Table(
						THead(Tr(Th(g.Text("Method")), Th(g.Text("Path")), Th(g.Text("Description")))),
						TBody(g.Group(g.Map(endpoints, func(e endpoint) g.Node {
							return Tr(
								Td(Code(g.Text(e.method))),
								Td(Code(g.Text(e.path))),
								Td(g.Text(e.note)),
							)
						}))),
					),
				),
			),
		),
	)
}
