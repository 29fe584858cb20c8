package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nekruzvatanshoev/carval/pkg/carval/analysis"
	"github.com/nekruzvatanshoev/carval/pkg/carval/dal"
	"github.com/nekruzvatanshoev/carval/pkg/carval/validation"
)

var (
	batchFile    string
	batchWorkers int
)

var (
	BatchCmd = &cobra.Command{
		Use:   BatchCmdName,
		Short: BatchCmdShort,
		Long:  BatchCmdLong,
		RunE:  batchCmdFunc(),
	}
)

func init() {
	BatchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "garage JSON file (array of vehicles), - for stdin")
	BatchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "concurrent valuations, overrides engine.batch_workers")
	_ = BatchCmd.MarkFlagRequired("file")
}

// batchSummary is the per-vehicle line of a garage valuation.
type batchSummary struct {
	Index         int    `json:"index"`
	ID            string `json:"id,omitempty"`
	Brand         string `json:"brand"`
	Model         string `json:"model"`
	Year          int    `json:"year"`
	TotalValue    int    `json:"totalValue"`
	Confidence    int    `json:"confidence"`
	MileageMethod string `json:"mileageMethod"`
	Fallback      string `json:"fallback,omitempty"`
}

func summarize(i int, v dal.Vehicle, res dal.ValuationResult) batchSummary {
	s := batchSummary{
		Index:         i,
		ID:            v.ID,
		Brand:         v.Brand,
		Model:         v.Model,
		Year:          v.Year,
		TotalValue:    res.TotalValue,
		Confidence:    res.Confidence,
		MileageMethod: string(res.Mileage.Method),
	}
	if res.Fallback != nil {
		s.Fallback = string(res.Fallback.Method)
	}
	return s
}

// valuateGarage values every vehicle with at most workers valuations in
// flight. Summaries come back in input order.
func valuateGarage(ctx context.Context, e analysis.Valuer, vehicles []dal.Vehicle, workers int) ([]batchSummary, error) {
	out := make([]batchSummary, len(vehicles))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, v := range vehicles {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = summarize(i, v, e.Valuate(v))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func batchCmdFunc() func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		data, err := readInput(cmd, batchFile)
		if err != nil {
			return err
		}
		vehicles, err := validation.Garage(data)
		if err != nil {
			return err
		}

		rt, err := setup()
		if err != nil {
			return err
		}
		defer func() { _ = rt.log.Sync() }()

		workers := rt.cfg.Engine.BatchWorkers
		if batchWorkers > 0 {
			workers = batchWorkers
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		rt.log.Info("valuing garage", zap.Int("vehicles", len(vehicles)), zap.Int("workers", workers))
		out, err := valuateGarage(ctx, rt.engine, vehicles, workers)
		if err != nil {
			return err
		}
		return writeIndented(cmd.OutOrStdout(), out)
	}
}
