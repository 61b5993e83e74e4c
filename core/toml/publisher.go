package toml

import (
	"bytes"
	"net/http"

	burntsushi "github.com/BurntSushi/toml"
)

type Publisher struct {
	info *Info
}

func NewPublisher(info *Info) *Publisher {
	return &Publisher{info: info}
}

func (p *Publisher) Render() (string, error) {
	var b bytes.Buffer
	if err := burntsushi.NewEncoder(&b).Encode(p.info); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Handler serves the rendered document, typically mounted at /.well-known/stellar.toml.
func (p *Publisher) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		content, err := p.Render()
		if err != nil {
			http.Error(w, "failed to render stellar.toml", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(content))
	}
}
