package handler

import (
	"html/template"
	"net/http"

	"github.com/bytearena/gridarena/vizserver/types"
)

var homeTemplate = template.Must(template.New("home").Parse(`<h2>Grid arena viz server</h2>
{{range .}}<a href="/game/{{.Id}}">{{.Id}}</a> ({{.Width}}x{{.Height}}, {{.Watchers}} watchers right now)<br />
{{else}}<p>No game running.</p>
{{end}}`))

type gameDescription struct {
	Id       string   `json:"id"`
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	Rows     []string `json:"rows,omitempty"`
	Watchers int      `json:"watchers"`
}

func describe(game *types.VizGame) gameDescription {
	return gameDescription{
		Id:       game.GetId(),
		Width:    game.GetMap().Width,
		Height:   game.GetMap().Height,
		Watchers: game.GetNumberWatchers(),
	}
}

func Home(games *types.VizGameMap) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		descriptions := make([]gameDescription, 0)
		for _, game := range games.All() {
			descriptions = append(descriptions, describe(game))
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := homeTemplate.Execute(w, descriptions); err != nil {
			http.Error(w, "could not render game list", http.StatusInternalServerError)
		}
	}
}
