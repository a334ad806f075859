package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/Gunvolt24/product_wizard/internal/domain"
	"github.com/Gunvolt24/product_wizard/internal/variant"
	"github.com/Gunvolt24/product_wizard/pkg/validate"
)

// planOutput — строка результата: план и, с -apply, варианты после записи.
type planOutput struct {
	domain.VariantPlan
	After []domain.ExistingVariant `json:"after,omitempty"`
}

// CLI-приложение для офлайн-планирования вариантов (без обращения к Shopify).
func main() {
	inputPath := flag.String("in", validate.StdinPath, "path to input (.json or .jsonl), - for stdin")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	sizeTable := flag.String("size-table", "", "optional YAML size table overriding the built-in one")
	apply := flag.Bool("apply", false, "also print the variant list after the planned creates")
	flag.Parse()

	format, err := validate.ParseFormat(*formatStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "plan: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	requestValidator := validate.NewRequestValidator(validate.MaxVariants)

	sorter := variant.DefaultSorter()
	if *sizeTable != "" {
		table, err := variant.LoadSizeTable(*sizeTable)
		if err != nil {
			fmt.Fprintf(os.Stderr, "size table: %v\n", err)
			os.Exit(1)
		}
		sorter = variant.NewSorter(table)
	}

	handle := func(_ context.Context, in *validate.PlanInput) (any, error) {
		out := planOutput{VariantPlan: sorter.Plan(in.VariantRequest, in.Existing)}
		if *apply {
			out.After = variant.ApplyCreates(in.Existing, out.Result.ToCreate, func(i int) string {
				return fmt.Sprintf("new-%d", i+1)
			})
		}
		return out, nil
	}

	summary, err := validate.ProcessFile(ctx, requestValidator, *inputPath, format, os.Stdout, handle)
	for _, rej := range summary.Rejected {
		fmt.Fprintf(os.Stderr, "line %d: %v\n", rej.Line, rej.Err)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "plan: %v (%s)\n", err, summary)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "plan ok (%s)\n", summary)
}
