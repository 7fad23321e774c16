package pipeline_test

import (
	"context"
	"fmt"
	"time"

	"github.com/novaent/labelsheet/pkg/label"
	"github.com/novaent/labelsheet/pkg/pipeline"
)

func ExampleGenerate() {
	rec := label.Sample(time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC))

	pdf, err := pipeline.Generate("3x6", rec)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(pdf[:5]))
	// Output: %PDF-
}

func ExampleRunner_Run() {
	rec := label.Sample(time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC))

	res, err := pipeline.NewRunner(nil).Run(context.Background(), pipeline.Options{
		Layout: "2x8",
		Format: pipeline.FormatSVG,
		Strict: true,
	}, rec)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%s sheet, %d cells, %d marks\n", res.Plan.Option, res.Stats.Cells, res.Stats.Marks)
	// Output: 2x8 sheet, 16 cells, 23 marks
}
