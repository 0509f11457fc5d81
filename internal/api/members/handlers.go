// internal/api/members/handlers.go
package members

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/tanmaydb/courtdesk/internal/api/apiutil"
	"github.com/tanmaydb/courtdesk/internal/directory"
	"github.com/tanmaydb/courtdesk/internal/ui"
)

var resolver *directory.Resolver

func InitHandlers(r *directory.Resolver) {
	resolver = r
}

// HandleMemberSearch returns the merged identity rows as JSON.
func HandleMemberSearch(w http.ResponseWriter, r *http.Request) {
	people, err := resolver.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	_ = apiutil.WriteJSON(w, http.StatusOK, people)
}

// HandleMemberSearchFragment renders the same search as an HTML fragment for
// the admin search box.
func HandleMemberSearchFragment(w http.ResponseWriter, r *http.Request) {
	people, err := resolver.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Member search failed")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	component := ui.MemberSearchResults(people)
	if err := component.Render(r.Context(), w); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to render search results")
	}
}
