package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nekruzvatanshoev/carval/pkg/carval/analysis"
	"github.com/nekruzvatanshoev/carval/pkg/carval/dal"
	"github.com/nekruzvatanshoev/carval/pkg/carval/markets"
	"github.com/nekruzvatanshoev/carval/pkg/carval/validation"
)

var (
	valuateFile     string
	valuateAnalysis string
	valuateFrom     string
	valuateTo       string
)

var (
	ValuateCmd = &cobra.Command{
		Use:   ValuateCmdName,
		Short: ValuateCmdShort,
		Long:  ValuateCmdLong,
		RunE:  valuateCmdFunc(),
	}
)

func init() {
	ValuateCmd.Flags().StringVarP(&valuateFile, "file", "f", "", "vehicle JSON file, - for stdin")
	ValuateCmd.Flags().StringVarP(&valuateAnalysis, "analysis", "a", "valuation", "analysis to run")
	ValuateCmd.Flags().StringVar(&valuateFrom, "from", "", "source market for compare")
	ValuateCmd.Flags().StringVar(&valuateTo, "to", "", "target market for compare")
	_ = ValuateCmd.MarkFlagRequired("file")
}

// analyses maps every --analysis value to its computation.
var analyses = map[string]func(e analysis.Valuer, v dal.Vehicle, from, to string) any{
	"valuation":    func(e analysis.Valuer, v dal.Vehicle, _, _ string) any { return e.Valuate(v) },
	"timeline":     func(e analysis.Valuer, v dal.Vehicle, _, _ string) any { return analysis.Timeline(e, v) },
	"tco":          func(e analysis.Valuer, v dal.Vehicle, _, _ string) any { return analysis.TCO(e, v) },
	"depreciation": func(e analysis.Valuer, v dal.Vehicle, _, _ string) any { return analysis.Depreciation(e, v) },
	"swap":         func(e analysis.Valuer, v dal.Vehicle, _, _ string) any { return analysis.Swap(e, v) },
	"regional":     func(e analysis.Valuer, v dal.Vehicle, _, _ string) any { return markets.Regional(e, v) },
	"net-value":    func(e analysis.Valuer, v dal.Vehicle, _, _ string) any { return markets.NetValue(e, v) },
	"sell":         func(e analysis.Valuer, v dal.Vehicle, _, _ string) any { return markets.BestSellMarket(e, v) },
	"buy":          func(e analysis.Valuer, v dal.Vehicle, _, _ string) any { return markets.BestBuyMarket(e, v) },
	"compare": func(e analysis.Valuer, v dal.Vehicle, from, to string) any {
		return markets.Compare(e, v, from, to)
	},
}

func analysisNames() []string {
	names := make([]string, 0, len(analyses)+1)
	for name := range analyses {
		names = append(names, name)
	}
	names = append(names, "all")
	sort.Strings(names)
	return names
}

// runAnalysis computes one named analysis, or every analysis keyed by name
// for "all".
func runAnalysis(e analysis.Valuer, v dal.Vehicle, kind, from, to string) (any, error) {
	kind = strings.ToLower(kind)
	if kind == "all" {
		out := make(map[string]any, len(analyses))
		for name, fn := range analyses {
			out[name] = fn(e, v, from, to)
		}
		return out, nil
	}
	fn, ok := analyses[kind]
	if !ok {
		return nil, fmt.Errorf("unknown analysis %q, want one of %s", kind, strings.Join(analysisNames(), ", "))
	}
	return fn(e, v, from, to), nil
}

func writeIndented(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func valuateCmdFunc() func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		data, err := readInput(cmd, valuateFile)
		if err != nil {
			return err
		}
		v, err := validation.Vehicle(data)
		if err != nil {
			return err
		}

		rt, err := setup()
		if err != nil {
			return err
		}
		defer func() { _ = rt.log.Sync() }()

		out, err := runAnalysis(rt.engine, v, valuateAnalysis, valuateFrom, valuateTo)
		if err != nil {
			return err
		}
		return writeIndented(cmd.OutOrStdout(), out)
	}
}
