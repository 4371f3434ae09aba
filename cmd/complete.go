package cmd

import (
	"github.com/etnz/notas"
	"github.com/etnz/notas/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete handles shell completion requests for the notas command, it exits
// when it answered one. It does nothing otherwise.
//
// Install it with `COMP_INSTALL=1 notas`.
func Complete() {
	completion().Complete("notas")
}

func completion() *complete.Command {
	var names []string
	for _, l := range notas.NewLayouts().All() {
		names = append(names, l.Name)
	}
	layouts := predict.Set(names)
	topics, _ := docs.GetAllTopics()

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"v":       predict.Nothing,
			"layouts": predict.Files("*.yaml"),
		},
		Sub: map[string]*complete.Command{
			"report": {
				Flags: map[string]complete.Predictor{
					"i":        predict.Dirs("*"),
					"md":       predict.Files("*.md"),
					"csv":      predict.Files("*.csv"),
					"xlsx":     predict.Files("*.xlsx"),
					"jsonl":    predict.Files("*.jsonl"),
					"layout":   layouts,
					"evaluate": predict.Nothing,
					"pretty":   predict.Nothing,
					"quiet":    predict.Nothing,
				},
			},
			"extract": {
				Flags: map[string]complete.Predictor{
					"layout": layouts,
					"jsonl":  predict.Nothing,
				},
				Args: predict.Files("*.pdf"),
			},
			"layouts": {},
			"topic": {
				Flags: map[string]complete.Predictor{"list": predict.Nothing},
				Args:  predict.Set(topics),
			},
		},
	}
}
