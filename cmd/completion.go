package cmd

import (
	"github.com/etnz/costcalc"
	"github.com/etnz/costcalc/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of ccc. Run `COMP_INSTALL=1 ccc`
// to install it.
func Completion() *complete.Command {
	categories := make(predict.Set, 0, len(costcalc.Categories))
	for _, c := range costcalc.Categories {
		categories = append(categories, string(c))
	}
	topics, _ := docs.GetAllTopics()
	entry := map[string]complete.Predictor{
		"type":   categories,
		"desc":   predict.Something,
		"salary": predict.Something,
		"people": predict.Something,
		"cpu":    predict.Something,
		"users":  predict.Something,
		"cpm":    predict.Something,
		"days":   predict.Something,
		"margin": predict.Something,
	}
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"session": {Flags: map[string]complete.Predictor{
				"json":   predict.Nothing,
				"script": predict.Files("*"),
			}},
			"cost":   {Flags: entry},
			"format": {Args: predict.Something},
			"topic":  {Args: predict.Set(append(topics, "*"))},
		},
		Flags: map[string]complete.Predictor{
			"currency":  predict.Set{costcalc.DefaultCurrency, "EUR", "USD"},
			"env-file":  predict.Files("*"),
			"plain":     predict.Nothing,
			"log-level": predict.Set{"debug", "info", "warn", "error"},
			"v":         predict.Nothing,
		},
	}
}
