package sheet_test

import (
	"fmt"

	"github.com/novaent/labelsheet/pkg/sheet"
)

func ExampleNew() {
	p, err := sheet.New(sheet.Layout3x6, nil)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Sheet: %.1f x %.1f mm\n", p.Spec.Width, p.Spec.Height)
	fmt.Printf("Grid: %d x %d\n", p.Columns(), p.Rows())
	fmt.Printf("Cell: %.2f x %.2f mm\n", p.CellWidth, p.CellHeight)
	// Output:
	// Sheet: 457.2 x 304.8 mm
	// Grid: 3 x 6
	// Cell: 142.40 x 40.80 mm
}

func ExamplePlanString() {
	p, recognized, _ := sheet.PlanString("A4")

	fmt.Println("Recognized:", recognized)
	fmt.Println("Layout:", p.Option)
	fmt.Printf("Cell: %.2f x %.2f mm\n", p.CellWidth, p.CellHeight)
	// Output:
	// Recognized: false
	// Layout: 2x8
	// Cell: 142.40 x 47.15 mm
}

func ExamplePlan_GapCentersX() {
	p := sheet.MustPlan(sheet.Layout3x6)
	for _, x := range p.GapCentersX() {
		fmt.Printf("%.1f\n", x)
	}
	// Output:
	// 152.4
	// 304.8
}
